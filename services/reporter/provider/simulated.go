package provider

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/autotoll/tollway/internal/pkg/models"
)

// SimulatedProvider produces synthetic fixes for local runs and demos.
// It drives a slow circle around a center point.
type SimulatedProvider struct {
	mu         sync.Mutex
	permission Permission
	centerLat  float64
	centerLon  float64
	t          float64
}

// NewSimulatedProvider creates a simulated provider centered on the given
// coordinates with permission granted
func NewSimulatedProvider(centerLat, centerLon float64) *SimulatedProvider {
	return &SimulatedProvider{
		permission: PermissionGranted,
		centerLat:  centerLat,
		centerLon:  centerLon,
	}
}

// Name identifies the provider
func (p *SimulatedProvider) Name() string { return "Simulated GPS" }

// SetPermission overrides the reported permission state
func (p *SimulatedProvider) SetPermission(perm Permission) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.permission = perm
}

// Permission reports the configured permission state
func (p *SimulatedProvider) Permission(ctx context.Context) Permission {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.permission
}

// CurrentPosition returns the next fix along the simulated route
func (p *SimulatedProvider) CurrentPosition(ctx context.Context, opts AcquireOptions) (*models.Position, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.permission == PermissionDenied {
		return nil, ErrPermissionDenied
	}
	if p.permission == PermissionUnsupported {
		return nil, ErrPositionUnavailable
	}

	p.t += 0.1
	radius := 0.005 // roughly 500 m

	return &models.Position{
		Latitude:   p.centerLat + radius*math.Sin(p.t),
		Longitude:  p.centerLon + radius*math.Cos(p.t),
		CapturedAt: time.Now().UTC(),
	}, nil
}

// Close is a no-op for the simulated provider
func (p *SimulatedProvider) Close() error { return nil }
