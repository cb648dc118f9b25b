package provider

import (
	"context"
	"errors"
	"time"

	"github.com/autotoll/tollway/internal/pkg/models"
)

// Permission is the current permission state of the location provider
type Permission int

const (
	// PermissionUnsupported means the device offers no location capability
	PermissionUnsupported Permission = iota
	// PermissionGranted means position fixes can be requested
	PermissionGranted
	// PermissionPrompt means access has not been decided yet; fixes may
	// still be requested and the first request decides it
	PermissionPrompt
	// PermissionDenied means access has been refused for this session
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionPrompt:
		return "prompt"
	case PermissionDenied:
		return "denied"
	default:
		return "unsupported"
	}
}

// Acquisition errors. Callers branch on these to decide whether the
// reporting loop continues.
var (
	// ErrPermissionDenied is terminal for the session
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrPositionUnavailable means the provider could not produce a fix
	ErrPositionUnavailable = errors.New("position unavailable")
	// ErrAcquireTimeout means no fix arrived within the allowed wait
	ErrAcquireTimeout = errors.New("position acquisition timed out")
)

// AcquireOptions controls a single position request
type AcquireOptions struct {
	// HighAccuracy requests the best fix the hardware can produce
	HighAccuracy bool
	// Timeout is the maximum wait for a fix
	Timeout time.Duration
	// MaxAge is the oldest cached fix the caller will accept; zero means a
	// fresh fix must be produced
	MaxAge time.Duration
}

// DefaultAcquireOptions returns the options used by the reporting loop
func DefaultAcquireOptions() AcquireOptions {
	return AcquireOptions{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaxAge:       0,
	}
}

// Provider is a source of device positions
type Provider interface {
	// Name identifies the provider in logs and status output
	Name() string
	// Permission reports the current permission state
	Permission(ctx context.Context) Permission
	// CurrentPosition requests a position subject to the given options
	CurrentPosition(ctx context.Context, opts AcquireOptions) (*models.Position, error)
	// Close releases any underlying device
	Close() error
}
