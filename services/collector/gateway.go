package collector

import (
	"context"

	"github.com/autotoll/tollway/internal/pkg/models"
)

// CollectorGW defines the interface for publishing accepted readings to the
// toll pipeline
type CollectorGW interface {
	PublishLocationUpdate(ctx context.Context, event models.LocationUpdateEvent) error
}
