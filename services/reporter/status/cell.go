package status

import (
	"fmt"
	"sync"
	"time"
)

// State is the reporting session state
type State string

const (
	StateUninitialized      State = "uninitialized"
	StateCheckingPermission State = "checking_permission"
	StateActive             State = "active"
	StateDenied             State = "denied"
	StateUnsupported        State = "unsupported"
)

// User-visible status texts
const (
	TextUnsupported = "Location is not supported on this device."
	TextDenied      = "Location permission denied. Reporting stopped."
	TextAcquiring   = "Getting current position..."
	TextSending     = "Sending location to server..."
	TextSent        = "Location sent successfully. Monitoring..."
	TextUnavailable = "Position unavailable."
	TextTimeout     = "Timed out waiting for a position fix."
	TextNetworkErr  = "Network error: cannot reach server."
)

// SendFailureText formats the status line for a failed transmission using
// the server-supplied or fallback message
func SendFailureText(message string) string {
	return fmt.Sprintf("Failed to send: %s", message)
}

// FormatCoordinates renders a coordinate pair the way it is displayed
func FormatCoordinates(latitude, longitude float64) string {
	return fmt.Sprintf("Lat=%.6f, Lon=%.6f", latitude, longitude)
}

// Snapshot is a point-in-time copy of the cell
type Snapshot struct {
	State         State     `json:"state"`
	StatusText    string    `json:"status_text"`
	Coordinates   string    `json:"coordinates,omitempty"`
	LastSuccessAt time.Time `json:"last_success_at,omitempty"`
}

// Cell is an observable state cell with a single writer (the reporting
// session) and any number of readers (the render layer). Displayed
// coordinates survive failures: only a new fix replaces them.
type Cell struct {
	mu            sync.RWMutex
	state         State
	statusText    string
	coordinates   string
	lastSuccessAt time.Time
}

// NewCell creates a cell in the uninitialized state
func NewCell() *Cell {
	return &Cell{state: StateUninitialized}
}

// Snapshot returns a copy of the current cell contents
func (c *Cell) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		State:         c.state,
		StatusText:    c.statusText,
		Coordinates:   c.coordinates,
		LastSuccessAt: c.lastSuccessAt,
	}
}

// SetUnsupported moves the cell to the terminal unsupported state
func (c *Cell) SetUnsupported() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateUnsupported
	c.statusText = TextUnsupported
}

// SetCheckingPermission marks the permission query in progress
func (c *Cell) SetCheckingPermission() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateCheckingPermission
}

// SetDenied moves the cell to the terminal denied state
func (c *Cell) SetDenied() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateDenied
	c.statusText = TextDenied
}

// SetAcquiring marks the start of a reporting cycle
func (c *Cell) SetAcquiring() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateActive
	c.statusText = TextAcquiring
}

// SetAcquireFailure records a transient acquisition failure. Coordinates
// are left untouched.
func (c *Cell) SetAcquireFailure(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateActive
	c.statusText = text
}

// SetSending optimistically shows the captured coordinates before the
// network call resolves
func (c *Cell) SetSending(latitude, longitude float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateActive
	c.statusText = TextSending
	c.coordinates = FormatCoordinates(latitude, longitude)
}

// SetSendSuccess records a confirmed delivery. sentAt is the time the send
// was initiated, not server time.
func (c *Cell) SetSendSuccess(sentAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateActive
	c.statusText = TextSent
	c.lastSuccessAt = sentAt
}

// SetSendFailure records a failed transmission. Coordinates and the last
// success timestamp are left untouched.
func (c *Cell) SetSendFailure(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateActive
	c.statusText = text
}
