package utils

import (
	"math"
	"strings"

	"github.com/mmcloughlin/geohash"
	"github.com/recab/recab/internal/pkg/models"
)

// PresenceGeohashPrecision gives cells of roughly 150m x 150m
const PresenceGeohashPrecision uint = 7

// EncodeGeohash converts a point to a geohash string
func EncodeGeohash(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// InGeohashCell reports whether hash lies inside the cell named by prefix or
// one of its eight neighbours, so actors near a cell border are not missed
func InGeohashCell(hash, prefix string) bool {
	if prefix == "" {
		return true
	}
	if strings.HasPrefix(hash, prefix) {
		return true
	}
	for _, neighbor := range geohash.Neighbors(prefix) {
		if strings.HasPrefix(hash, neighbor) {
			return true
		}
	}
	return false
}

// ValidCoordinates reports whether lat/lng are a valid WGS84 position
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.Coordinates) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Lat * math.Pi / 180.0
	lon1 := point1.Lng * math.Pi / 180.0
	lat2 := point2.Lat * math.Pi / 180.0
	lon2 := point2.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
