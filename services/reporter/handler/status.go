package handler

import (
	"net/http"

	"github.com/autotoll/tollway/services/reporter/status"
	"github.com/labstack/echo/v4"
)

// StatusHandler renders the reporting session state. It is the read side of
// the status cell: the session writes, this handler only snapshots.
type StatusHandler struct {
	cell *status.Cell
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(cell *status.Cell) *StatusHandler {
	return &StatusHandler{cell: cell}
}

// GetStatus returns the current session snapshot
func (h *StatusHandler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cell.Snapshot())
}

// RegisterRoutes registers the status routes
func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/status", h.GetStatus)
}
