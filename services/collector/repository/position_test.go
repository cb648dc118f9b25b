package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/autotoll/tollway/internal/pkg/constants"
	"github.com/autotoll/tollway/internal/pkg/database"
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, &database.RedisClient{Client: client}
}

func TestUpdateVehicleLocation(t *testing.T) {
	mr, redisClient := newTestRedis(t)
	repo := NewCollectorRepository(redisClient, nil)

	capturedAt := time.Unix(1756400000, 0)
	err := repo.UpdateVehicleLocation(context.Background(), "vehicle-123", &models.Position{
		Latitude:   -6.175392,
		Longitude:  106.827153,
		CapturedAt: capturedAt,
	})
	require.NoError(t, err)

	locationKey := fmt.Sprintf(constants.KeyVehicleLocation, "vehicle-123")
	assert.Equal(t, "-6.175392", mr.HGet(locationKey, constants.FieldLatitude))
	assert.Equal(t, "106.827153", mr.HGet(locationKey, constants.FieldLongitude))
	assert.Equal(t, "1756400000", mr.HGet(locationKey, constants.FieldTimestamp))

	ttl := mr.TTL(locationKey)
	assert.True(t, ttl > 0 && ttl <= LocationTTL)
}

func TestGetVehicleLocation(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		_, redisClient := newTestRedis(t)
		repo := NewCollectorRepository(redisClient, nil)

		capturedAt := time.Unix(1756400000, 0)
		require.NoError(t, repo.UpdateVehicleLocation(context.Background(), "vehicle-123", &models.Position{
			Latitude:   -6.175392,
			Longitude:  106.827153,
			CapturedAt: capturedAt,
		}))

		position, err := repo.GetVehicleLocation(context.Background(), "vehicle-123")
		require.NoError(t, err)
		assert.Equal(t, -6.175392, position.Latitude)
		assert.Equal(t, 106.827153, position.Longitude)
		assert.Equal(t, capturedAt.Unix(), position.CapturedAt.Unix())
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		_, redisClient := newTestRedis(t)
		repo := NewCollectorRepository(redisClient, nil)

		_, err := repo.GetVehicleLocation(context.Background(), "ghost")
		assert.Error(t, err)
	})
}

func TestStoreReading(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	_, redisClient := newTestRedis(t)
	repo := NewCollectorRepository(redisClient, db)

	reading := &models.PositionReading{
		ID:         uuid.New(),
		VehicleID:  "vehicle-123",
		Latitude:   -6.175392,
		Longitude:  106.827153,
		Geohash:    "qqguwtqhh",
		RecordedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO position_readings").
		WithArgs(reading.ID, reading.VehicleID, reading.Latitude, reading.Longitude, reading.Geohash, reading.RecordedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.StoreReading(context.Background(), reading))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreReading_DBError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	_, redisClient := newTestRedis(t)
	repo := NewCollectorRepository(redisClient, db)

	mock.ExpectExec("INSERT INTO position_readings").
		WillReturnError(fmt.Errorf("connection reset"))

	err = repo.StoreReading(context.Background(), &models.PositionReading{ID: uuid.New()})
	assert.Error(t, err)
}
