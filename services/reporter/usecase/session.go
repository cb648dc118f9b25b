package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/autotoll/tollway/internal/pkg/logger"
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/autotoll/tollway/services/reporter"
	"github.com/autotoll/tollway/services/reporter/gateway"
	"github.com/autotoll/tollway/services/reporter/provider"
	"github.com/autotoll/tollway/services/reporter/status"
	"github.com/sirupsen/logrus"
)

const (
	defaultInterval       = 15 * time.Second
	defaultAcquireTimeout = 10 * time.Second
)

// Session drives the reporting loop: check capability and permission once,
// then acquire and transmit a fresh position every interval until the
// context ends or the provider denies access.
type Session struct {
	provider       provider.Provider
	gateway        reporter.CollectorGW
	cell           *status.Cell
	interval       time.Duration
	acquireTimeout time.Duration
	log            *logger.AppLogger
}

// NewSession creates a reporting session from configuration. Zero interval
// and timeout values fall back to the defaults (15 s cadence, 10 s fix
// wait).
func NewSession(p provider.Provider, gw reporter.CollectorGW, cell *status.Cell, cfg models.ReporterConfig, log *logger.AppLogger) *Session {
	interval := time.Duration(cfg.IntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultInterval
	}
	acquireTimeout := time.Duration(cfg.AcquireTimeoutMs) * time.Millisecond
	if acquireTimeout <= 0 {
		acquireTimeout = defaultAcquireTimeout
	}

	return &Session{
		provider:       p,
		gateway:        gw,
		cell:           cell,
		interval:       interval,
		acquireTimeout: acquireTimeout,
		log:            log,
	}
}

// Cell returns the observable session state
func (s *Session) Cell() *status.Cell {
	return s.cell
}

// Run executes the session until the context is cancelled or the session
// reaches a terminal state. Unsupported devices and denied permission end
// the session without error: both are one-way within a session's lifetime.
func (s *Session) Run(ctx context.Context) error {
	s.cell.SetCheckingPermission()

	perm := s.provider.Permission(ctx)
	switch perm {
	case provider.PermissionUnsupported:
		s.cell.SetUnsupported()
		s.infoLog(logrus.Fields{"provider": s.provider.Name()}, "Location provider not supported, reporting disabled")
		return nil
	case provider.PermissionDenied:
		s.cell.SetDenied()
		s.infoLog(logrus.Fields{"provider": s.provider.Name()}, "Location permission denied, reporting not started")
		return nil
	}

	s.infoLog(logrus.Fields{
		"provider":   s.provider.Name(),
		"permission": perm.String(),
		"interval":   s.interval.String(),
	}, "Starting location reporting")

	// First cycle runs immediately, then on every tick
	if stop := s.tick(ctx); stop {
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if stop := s.tick(ctx); stop {
				return nil
			}
		}
	}
}

// tick runs one acquire-then-transmit cycle. It returns true when the
// session must stop permanently (permission revoked mid-session).
func (s *Session) tick(ctx context.Context) (stop bool) {
	s.cell.SetAcquiring()

	acquireCtx, cancel := context.WithTimeout(ctx, s.acquireTimeout)
	opts := provider.AcquireOptions{
		HighAccuracy: true,
		Timeout:      s.acquireTimeout,
		MaxAge:       0,
	}
	position, err := s.provider.CurrentPosition(acquireCtx, opts)
	cancel()

	if err != nil {
		switch {
		case errors.Is(err, provider.ErrPermissionDenied):
			// A denial during an active session will not silently become
			// a grant again: cancel the timer for good
			s.cell.SetDenied()
			s.infoLog(nil, "Location permission revoked, reporting stopped")
			return true
		case errors.Is(err, provider.ErrAcquireTimeout):
			s.cell.SetAcquireFailure(status.TextTimeout)
		default:
			s.cell.SetAcquireFailure(status.TextUnavailable)
		}
		s.warnLog(err, nil, "Position acquisition failed")
		return false
	}

	sentAt := time.Now()
	s.cell.SetSending(position.Latitude, position.Longitude)

	// Transmission is deliberately unserialized: a slow send from this
	// cycle may still be in flight when the next cycle begins
	go s.transmit(ctx, *position, sentAt)

	return false
}

func (s *Session) transmit(ctx context.Context, position models.Position, sentAt time.Time) {
	message, err := s.gateway.SendPosition(ctx, position)
	if err == nil {
		s.cell.SetSendSuccess(sentAt)
		s.infoLog(logrus.Fields{
			"latitude":  position.Latitude,
			"longitude": position.Longitude,
			"message":   message,
		}, "Position report delivered")
		return
	}

	var sendErr *gateway.SendError
	if errors.As(err, &sendErr) {
		if sendErr.Kind == gateway.SendErrorNetwork {
			s.cell.SetSendFailure(status.TextNetworkErr)
		} else {
			s.cell.SetSendFailure(status.SendFailureText(sendErr.Message))
		}
	} else {
		s.cell.SetSendFailure(status.SendFailureText(err.Error()))
	}
	s.warnLog(err, logrus.Fields{
		"latitude":  position.Latitude,
		"longitude": position.Longitude,
	}, "Position report failed")
}

func (s *Session) infoLog(fields logrus.Fields, message string) {
	if s.log == nil {
		return
	}
	s.log.WithFields(fields).Info(message)
}

func (s *Session) warnLog(err error, fields logrus.Fields, message string) {
	if s.log == nil {
		return
	}
	s.log.WithError(err).WithFields(fields).Warn(message)
}
