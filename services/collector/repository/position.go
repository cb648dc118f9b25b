package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/autotoll/tollway/internal/pkg/constants"
	"github.com/autotoll/tollway/internal/pkg/database"
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/autotoll/tollway/services/collector"
	"github.com/jmoiron/sqlx"
)

const (
	// LocationTTL is how long the latest position stays in Redis. A day
	// covers trip reconstruction without keeping idle vehicles forever.
	LocationTTL = 24 * time.Hour
)

type collectorRepo struct {
	redisClient *database.RedisClient
	db          *sqlx.DB
}

// NewCollectorRepository creates a new collector repository
func NewCollectorRepository(redisClient *database.RedisClient, db *sqlx.DB) collector.CollectorRepo {
	return &collectorRepo{
		redisClient: redisClient,
		db:          db,
	}
}

// UpdateVehicleLocation stores the latest position for a vehicle in a hash
// and in the geo set
func (r *collectorRepo) UpdateVehicleLocation(ctx context.Context, vehicleID string, position *models.Position) error {
	locationKey := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(position.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(position.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(position.CapturedAt.Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store vehicle location: %w", err)
	}

	if err := r.redisClient.Expire(ctx, locationKey, LocationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyVehicleGeo, position.Longitude, position.Latitude, vehicleID); err != nil {
		return fmt.Errorf("failed to update vehicle geo set: %w", err)
	}

	return nil
}

// GetVehicleLocation returns the latest stored position for a vehicle
func (r *collectorRepo) GetVehicleLocation(ctx context.Context, vehicleID string) (*models.Position, error) {
	locationKey := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID)

	fields := []string{
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
	}

	values, err := r.redisClient.HMGet(ctx, locationKey, fields...)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle location: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}

	if !hasValue || len(values) != 3 {
		return nil, fmt.Errorf("no location data found for vehicle %s", vehicleID)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.Position{
		Latitude:   lat,
		Longitude:  lng,
		CapturedAt: time.Unix(ts, 0),
	}, nil
}

// StoreReading appends a reading to the position_readings history table
func (r *collectorRepo) StoreReading(ctx context.Context, reading *models.PositionReading) error {
	query := `
		INSERT INTO position_readings (id, vehicle_id, latitude, longitude, geohash, recorded_at)
		VALUES (:id, :vehicle_id, :latitude, :longitude, :geohash, :recorded_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, reading)
	if err != nil {
		return fmt.Errorf("failed to insert position reading: %w", err)
	}

	return nil
}
