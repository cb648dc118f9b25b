package utils

import (
	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// EncodePosition converts a position to a geohash string
func EncodePosition(position models.Position, precision uint) string {
	return geohash.EncodeWithPrecision(position.Latitude, position.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GeohashNeighbors returns the neighboring geohashes of a given geohash
func GeohashNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
