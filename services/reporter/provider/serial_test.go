package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateChecksum(t *testing.T) {
	testCases := []struct {
		name  string
		line  string
		valid bool
	}{
		{
			name:  "Valid RMC sentence",
			line:  "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A",
			valid: true,
		},
		{
			name:  "Corrupted payload",
			line:  "$GPRMC,123519,A,4808.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A",
			valid: false,
		},
		{
			name:  "Missing checksum",
			line:  "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W",
			valid: false,
		},
		{
			name:  "Truncated checksum",
			line:  "$GPRMC,123519,A*6",
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, validateChecksum(tc.line))
		})
	}
}

func TestParseRMC(t *testing.T) {
	t.Run("Valid fix", func(t *testing.T) {
		pos, ok := parseRMC("$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A")
		require.True(t, ok)
		assert.InDelta(t, 48.1173, pos.Latitude, 0.0001)
		assert.InDelta(t, 11.5167, pos.Longitude, 0.0001)
		assert.False(t, pos.CapturedAt.IsZero())
	})

	t.Run("Southern and western hemispheres", func(t *testing.T) {
		pos, ok := parseRMC("$GNRMC,060512.00,A,3751.65,S,14507.36,E,000.0,360.0,290826,,*33")
		require.True(t, ok)
		assert.InDelta(t, -37.860833, pos.Latitude, 0.0001)
		assert.InDelta(t, 145.122667, pos.Longitude, 0.0001)
	})

	t.Run("Void fix is rejected", func(t *testing.T) {
		_, ok := parseRMC("$GPRMC,123519,V,,,,,,,230394,,*33")
		assert.False(t, ok)
	})

	t.Run("Short sentence is rejected", func(t *testing.T) {
		_, ok := parseRMC("$GPRMC,123519,A")
		assert.False(t, ok)
	})
}

func TestParseCoord(t *testing.T) {
	assert.InDelta(t, 48.1173, parseCoord("4807.038", "N"), 0.0001)
	assert.InDelta(t, -48.1173, parseCoord("4807.038", "S"), 0.0001)
	assert.InDelta(t, -11.5167, parseCoord("01131.000", "W"), 0.0001)
	assert.Zero(t, parseCoord("", "N"))
	assert.Zero(t, parseCoord("4807.038", ""))
	assert.Zero(t, parseCoord("not-a-number", "N"))
}

func TestSerialProvider_MissingPortIsUnsupported(t *testing.T) {
	p := NewSerialProvider(SerialConfig{Port: "/dev/does-not-exist"})
	defer p.Close()

	assert.Equal(t, PermissionUnsupported, p.Permission(context.Background()))
}
