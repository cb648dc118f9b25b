package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/autotoll/tollway/internal/pkg/logger"
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/autotoll/tollway/internal/utils"
	"github.com/autotoll/tollway/services/collector"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Validation errors surfaced to the reporting client
var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// CollectorUC implements the collector.CollectorUC interface
type CollectorUC struct {
	repo    collector.CollectorRepo
	gateway collector.CollectorGW
	cfg     *models.Config
	log     *logger.AppLogger
}

// NewCollectorUC creates a new collector use case
func NewCollectorUC(repo collector.CollectorRepo, gw collector.CollectorGW, cfg *models.Config, log *logger.AppLogger) collector.CollectorUC {
	return &CollectorUC{
		repo:    repo,
		gateway: gw,
		cfg:     cfg,
		log:     log,
	}
}

// RecordPosition validates and stores a position report from a vehicle.
// The recorded timestamp is stamped here on receipt; the wire format
// carries only the coordinate pair.
func (uc *CollectorUC) RecordPosition(ctx context.Context, vehicleID string, req models.UpdateLocationRequest) (*models.PositionReading, error) {
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	now := time.Now()
	position := &models.Position{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		CapturedAt: now,
	}

	precision := uc.cfg.Collector.GeohashPrecision
	if precision == 0 {
		precision = 9
	}

	reading := &models.PositionReading{
		ID:         uuid.New(),
		VehicleID:  vehicleID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Geohash:    utils.EncodePosition(*position, precision),
		RecordedAt: now,
	}

	// The latest position is the authoritative record for this endpoint
	if err := uc.repo.UpdateVehicleLocation(ctx, vehicleID, position); err != nil {
		return nil, err
	}

	// History and eventing are best effort: a full history table or a
	// slow broker must not fail the report
	if err := uc.repo.StoreReading(ctx, reading); err != nil {
		uc.warnLog(err, vehicleID, "Failed to store position reading history")
	}

	event := models.LocationUpdateEvent{
		VehicleID:  vehicleID,
		Latitude:   reading.Latitude,
		Longitude:  reading.Longitude,
		Geohash:    reading.Geohash,
		RecordedAt: reading.RecordedAt,
	}
	if err := uc.gateway.PublishLocationUpdate(ctx, event); err != nil {
		uc.warnLog(err, vehicleID, "Failed to publish location update event")
	}

	return reading, nil
}

// GetVehicleLocation returns the latest stored position for a vehicle
func (uc *CollectorUC) GetVehicleLocation(ctx context.Context, vehicleID string) (*models.Position, error) {
	return uc.repo.GetVehicleLocation(ctx, vehicleID)
}

func (uc *CollectorUC) warnLog(err error, vehicleID string, message string) {
	if uc.log == nil {
		return
	}
	uc.log.WithError(err).WithFields(logrus.Fields{"vehicle_id": vehicleID}).Warn(message)
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}
