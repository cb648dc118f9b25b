package models

import (
	"time"

	"github.com/google/uuid"
)

// Position represents a single geographical sample from a location provider
type Position struct {
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	CapturedAt time.Time `json:"captured_at,omitempty" db:"captured_at"`
}

// PositionReading is a persisted location report from a vehicle
type PositionReading struct {
	ID         uuid.UUID `json:"id" db:"id"`
	VehicleID  string    `json:"vehicle_id" db:"vehicle_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Geohash    string    `json:"geohash" db:"geohash"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// UpdateLocationRequest is the body of POST /api/update_location.
// Only the coordinate pair travels on the wire; the capture timestamp is
// stamped locally by each side.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateLocationResponse is the collector's acknowledgement body
type UpdateLocationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LocationUpdateEvent is published for every accepted reading so the toll
// pipeline can consume entries and exits downstream
type LocationUpdateEvent struct {
	VehicleID  string    `json:"vehicle_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Geohash    string    `json:"geohash"`
	RecordedAt time.Time `json:"recorded_at"`
}
