package handler

import (
	"github.com/autotoll/tollway/internal/pkg/middleware"
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/autotoll/tollway/services/collector"
	httpHandler "github.com/autotoll/tollway/services/collector/handler/http"
	"github.com/labstack/echo/v4"
)

// HTTPHandler combines all handlers for the collector service
type HTTPHandler struct {
	locationHTTP *httpHandler.LocationHandler
	cfg          *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(collectorUC collector.CollectorUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		locationHTTP: httpHandler.NewLocationHandler(collectorUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	// Vehicle-facing endpoint, session token required
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.POST("/update_location", h.locationHTTP.UpdateLocation)

	// Internal routes for the toll pipeline services
	internal := e.Group("/internal")
	internal.GET("/vehicles/:id/location", h.locationHTTP.GetVehicleLocation)
}
