package reporter

import (
	"context"

	"github.com/autotoll/tollway/internal/pkg/models"
)

// CollectorGW defines the interface for delivering position reports to the
// collector endpoint. On success it returns the server acknowledgement
// message; on failure the error is a *gateway.SendError classified by kind.
type CollectorGW interface {
	SendPosition(ctx context.Context, position models.Position) (string, error)
}
