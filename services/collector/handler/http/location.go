package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/autotoll/tollway/internal/utils"
	"github.com/autotoll/tollway/services/collector"
	"github.com/autotoll/tollway/services/collector/usecase"
	"github.com/labstack/echo/v4"
)

// LocationHandler handles position report requests
type LocationHandler struct {
	collectorUC collector.CollectorUC
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(collectorUC collector.CollectorUC) *LocationHandler {
	return &LocationHandler{collectorUC: collectorUC}
}

// UpdateLocation accepts a position report from an authenticated vehicle.
// The vehicle identity comes from the session token, never the body.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	vehicleID := c.Get("vehicle_id")
	if vehicleID == nil {
		return utils.UnauthorizedResponse(c, "Missing vehicle identity")
	}

	var req models.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	reading, err := h.collectorUC.RecordPosition(c.Request().Context(), fmt.Sprintf("%v", vehicleID), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidLatitude) || errors.Is(err, usecase.ErrInvalidLongitude) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to record position")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", reading)
}

// GetVehicleLocation returns the latest stored position for a vehicle
func (h *LocationHandler) GetVehicleLocation(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "Vehicle ID is required")
	}

	position, err := h.collectorUC.GetVehicleLocation(c.Request().Context(), vehicleID)
	if err != nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("No location found for vehicle %s", vehicleID))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location found", position)
}
