package gateway

import (
	"context"
	"fmt"

	"github.com/autotoll/tollway/internal/pkg/constants"
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/autotoll/tollway/internal/pkg/retry"
	"github.com/autotoll/tollway/services/collector"
)

// Publisher is the slice of the NSQ producer this gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type collectorGW struct {
	producer Publisher
	retrier  *retry.Retrier
}

// NewCollectorGW creates a new collector gateway. The retrier absorbs
// transient broker hiccups; a publish that exhausts retries is reported to
// the caller.
func NewCollectorGW(producer Publisher, retrier *retry.Retrier) collector.CollectorGW {
	return &collectorGW{
		producer: producer,
		retrier:  retrier,
	}
}

// PublishLocationUpdate publishes a location update event for the toll
// pipeline
func (g *collectorGW) PublishLocationUpdate(ctx context.Context, event models.LocationUpdateEvent) error {
	publish := func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicLocationUpdate, event)
	}

	if g.retrier != nil {
		if err := g.retrier.Execute(ctx, publish); err != nil {
			return fmt.Errorf("failed to publish location update: %w", err)
		}
		return nil
	}

	if err := publish(ctx); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}
