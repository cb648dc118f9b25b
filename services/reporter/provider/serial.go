package provider

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/autotoll/tollway/internal/pkg/models"
	"go.bug.st/serial"
)

// SerialConfig holds configuration for the serial GPS provider
type SerialConfig struct {
	Port     string
	BaudRate int
}

// SerialProvider reads standard NMEA 0183 sentences from a UART GPS unit.
// Works with u-blox NEO-M8N and any standard NMEA receiver.
type SerialProvider struct {
	portPath string
	baudRate int

	mu      sync.Mutex
	port    serial.Port
	scanner *bufio.Scanner
	openErr error
	opened  bool
}

// NewSerialProvider creates a provider for the given serial port
func NewSerialProvider(cfg SerialConfig) *SerialProvider {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 9600 // Standard NMEA default
	}
	return &SerialProvider{
		portPath: cfg.Port,
		baudRate: cfg.BaudRate,
	}
}

// Name identifies the provider
func (p *SerialProvider) Name() string {
	return fmt.Sprintf("NMEA GPS (%s)", p.portPath)
}

// Permission maps device access onto the permission model: a missing port is
// an unsupported device, an access error is a denial, a readable port is a
// grant. The port is opened lazily on the first query.
func (p *SerialProvider) Permission(ctx context.Context) Permission {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureOpenLocked(); err != nil {
		if os.IsPermission(err) {
			return PermissionDenied
		}
		return PermissionUnsupported
	}
	return PermissionGranted
}

// CurrentPosition reads sentences until a valid RMC fix arrives or the
// options' timeout expires. With MaxAge zero the input buffer is flushed
// first so a buffered stale sentence is never served.
func (p *SerialProvider) CurrentPosition(ctx context.Context, opts AcquireOptions) (*models.Position, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureOpenLocked(); err != nil {
		if os.IsPermission(err) {
			return nil, ErrPermissionDenied
		}
		return nil, ErrPositionUnavailable
	}

	if opts.MaxAge == 0 {
		// Discard anything the receiver emitted before this request
		if err := p.port.ResetInputBuffer(); err != nil {
			return nil, ErrPositionUnavailable
		}
		p.scanner = bufio.NewScanner(p.port)
	}

	deadline := time.Now().Add(opts.Timeout)
	sawSentence := false

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, ErrAcquireTimeout
		default:
		}

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil && os.IsPermission(err) {
				return nil, ErrPermissionDenied
			}
			// Serial read timeout produces an empty scan; reset and keep
			// waiting until the deadline
			p.scanner = bufio.NewScanner(p.port)
			continue
		}

		line := strings.TrimSpace(p.scanner.Text())
		if !strings.HasPrefix(line, "$") || !validateChecksum(line) {
			continue
		}

		if strings.HasPrefix(line, "$GPRMC") || strings.HasPrefix(line, "$GNRMC") {
			sawSentence = true
			if pos, ok := parseRMC(line); ok {
				return pos, nil
			}
		}
	}

	if sawSentence {
		// The receiver is talking but has no fix
		return nil, ErrPositionUnavailable
	}
	return nil, ErrAcquireTimeout
}

// Close releases the serial port
func (p *SerialProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.port != nil {
		err := p.port.Close()
		p.port = nil
		p.scanner = nil
		p.opened = false
		return err
	}
	return nil
}

func (p *SerialProvider) ensureOpenLocked() error {
	if p.opened {
		return p.openErr
	}
	p.opened = true

	mode := &serial.Mode{
		BaudRate: p.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(p.portPath, mode)
	if err != nil {
		p.openErr = fmt.Errorf("failed to open %s: %w", p.portPath, err)
		return p.openErr
	}
	port.SetReadTimeout(200 * time.Millisecond)
	p.port = port
	p.scanner = bufio.NewScanner(port)
	return nil
}

// parseRMC extracts a position from a recommended-minimum sentence.
// $GPRMC,hhmmss.ss,A,llll.ll,a,yyyyy.yy,a,x.x,x.x,ddmmyy,x.x,a*hh
func parseRMC(line string) (*models.Position, bool) {
	parts := splitSentence(line)
	if len(parts) < 10 {
		return nil, false
	}

	// Field 2 is the fix status: A = valid, V = void
	if parts[2] != "A" {
		return nil, false
	}

	lat := parseCoord(parts[3], parts[4])
	lon := parseCoord(parts[5], parts[6])

	return &models.Position{
		Latitude:   lat,
		Longitude:  lon,
		CapturedAt: time.Now().UTC(),
	}, true
}

// splitSentence splits a sentence and strips the checksum suffix
func splitSentence(line string) []string {
	if idx := strings.Index(line, "*"); idx >= 0 {
		line = line[:idx]
	}
	if strings.HasPrefix(line, "$") {
		line = line[1:]
	}
	return strings.Split(line, ",")
}

// parseCoord converts NMEA ddmm.mmmm format to decimal degrees
func parseCoord(raw, dir string) float64 {
	if raw == "" || dir == "" {
		return 0
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	deg := math.Floor(val / 100)
	min := val - deg*100
	result := deg + min/60

	if dir == "S" || dir == "W" {
		result = -result
	}
	return result
}

// validateChecksum checks the XOR checksum after *
func validateChecksum(line string) bool {
	idx := strings.Index(line, "*")
	if idx < 0 || idx+3 > len(line) {
		return false
	}
	body := line[1:idx]
	var calc byte
	for i := 0; i < len(body); i++ {
		calc ^= body[i]
	}
	expected, err := strconv.ParseUint(line[idx+1:idx+3], 16, 8)
	if err != nil {
		return false
	}
	return byte(expected) == calc
}
