package collector

import (
	"context"

	"github.com/autotoll/tollway/internal/pkg/models"
)

// CollectorUC defines the interface for collector business logic
type CollectorUC interface {
	// RecordPosition validates and stores a position report from a vehicle
	RecordPosition(ctx context.Context, vehicleID string, req models.UpdateLocationRequest) (*models.PositionReading, error)
	// GetVehicleLocation returns the latest stored position for a vehicle
	GetVehicleLocation(ctx context.Context, vehicleID string) (*models.Position, error)
}
