package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedProvider_ProducesNearbyFixes(t *testing.T) {
	p := NewSimulatedProvider(-6.175392, 106.827153)
	defer p.Close()

	require.Equal(t, PermissionGranted, p.Permission(context.Background()))

	for i := 0; i < 5; i++ {
		pos, err := p.CurrentPosition(context.Background(), DefaultAcquireOptions())
		require.NoError(t, err)
		assert.InDelta(t, -6.175392, pos.Latitude, 0.01)
		assert.InDelta(t, 106.827153, pos.Longitude, 0.01)
		assert.False(t, pos.CapturedAt.IsZero())
	}
}

func TestSimulatedProvider_DeniedPermission(t *testing.T) {
	p := NewSimulatedProvider(0, 0)
	p.SetPermission(PermissionDenied)

	assert.Equal(t, PermissionDenied, p.Permission(context.Background()))

	_, err := p.CurrentPosition(context.Background(), DefaultAcquireOptions())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
