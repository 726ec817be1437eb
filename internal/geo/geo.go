package geo

import (
	"errors"
	"math"
)

const earthRadiusMeters = 6371000.0

var ErrOutOfRange = errors.New("coordinate out of range")

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Validate checks latitude and longitude bounds.
func (p Point) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return ErrOutOfRange
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return ErrOutOfRange
	}
	return nil
}

// Fence is a circular geofence: center plus radius in meters.
type Fence struct {
	Center       Point
	RadiusMeters float64
}

// Contains reports whether the point falls within the fence, along with the
// great-circle distance from the center in meters.
func (f Fence) Contains(p Point) (bool, float64) {
	d := Distance(f.Center, p)
	return d <= f.RadiusMeters, d
}

// Distance computes the haversine great-circle distance between two points
// in meters.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
