package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCell_InitialState(t *testing.T) {
	cell := NewCell()

	snap := cell.Snapshot()
	assert.Equal(t, StateUninitialized, snap.State)
	assert.Empty(t, snap.StatusText)
	assert.Empty(t, snap.Coordinates)
	assert.True(t, snap.LastSuccessAt.IsZero())
}

func TestCell_TerminalStates(t *testing.T) {
	t.Run("Unsupported", func(t *testing.T) {
		cell := NewCell()
		cell.SetUnsupported()

		snap := cell.Snapshot()
		assert.Equal(t, StateUnsupported, snap.State)
		assert.Equal(t, TextUnsupported, snap.StatusText)
	})

	t.Run("Denied", func(t *testing.T) {
		cell := NewCell()
		cell.SetCheckingPermission()
		cell.SetDenied()

		snap := cell.Snapshot()
		assert.Equal(t, StateDenied, snap.State)
		assert.Equal(t, TextDenied, snap.StatusText)
	})
}

func TestCell_SendingShowsCoordinatesBeforeResolution(t *testing.T) {
	cell := NewCell()
	cell.SetAcquiring()
	cell.SetSending(37.7749, -122.4194)

	snap := cell.Snapshot()
	assert.Equal(t, StateActive, snap.State)
	assert.Equal(t, TextSending, snap.StatusText)
	assert.Equal(t, "Lat=37.774900, Lon=-122.419400", snap.Coordinates)
}

func TestCell_SendSuccessRecordsInitiationTime(t *testing.T) {
	cell := NewCell()
	cell.SetSending(1.5, 2.5)

	sentAt := time.Now().Add(-3 * time.Second)
	cell.SetSendSuccess(sentAt)

	snap := cell.Snapshot()
	assert.Equal(t, TextSent, snap.StatusText)
	assert.Equal(t, sentAt, snap.LastSuccessAt)
	assert.Equal(t, "Lat=1.500000, Lon=2.500000", snap.Coordinates)
}

func TestCell_FailuresLeaveCoordinatesAndTimestamp(t *testing.T) {
	cell := NewCell()
	cell.SetSending(1.5, 2.5)
	sentAt := time.Now()
	cell.SetSendSuccess(sentAt)

	// A later failed cycle must not clear what was last shown
	cell.SetAcquireFailure(TextTimeout)
	snap := cell.Snapshot()
	assert.Equal(t, "Lat=1.500000, Lon=2.500000", snap.Coordinates)
	assert.Equal(t, sentAt, snap.LastSuccessAt)

	cell.SetSendFailure(SendFailureText("db down"))
	snap = cell.Snapshot()
	assert.Equal(t, "Failed to send: db down", snap.StatusText)
	assert.Equal(t, "Lat=1.500000, Lon=2.500000", snap.Coordinates)
	assert.Equal(t, sentAt, snap.LastSuccessAt)
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "Lat=-6.175392, Lon=106.827153", FormatCoordinates(-6.175392, 106.827153))
	assert.Equal(t, "Lat=0.000000, Lon=0.000000", FormatCoordinates(0, 0))
}
