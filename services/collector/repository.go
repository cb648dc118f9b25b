package collector

import (
	"context"

	"github.com/autotoll/tollway/internal/pkg/models"
)

// CollectorRepo defines the interface for position data access operations
type CollectorRepo interface {
	// UpdateVehicleLocation stores the latest position for a vehicle
	UpdateVehicleLocation(ctx context.Context, vehicleID string, position *models.Position) error
	// GetVehicleLocation returns the latest stored position for a vehicle
	GetVehicleLocation(ctx context.Context, vehicleID string) (*models.Position, error)
	// StoreReading appends a reading to the durable history
	StoreReading(ctx context.Context, reading *models.PositionReading) error
}
