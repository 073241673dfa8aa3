// Package geo holds the coordinate checks and great-circle math used to
// validate question locations and to post-filter spatial index results.
package geo

import (
	"errors"
	"math"
)

// EarthRadiusMeters is the mean Earth radius (IUGG).
const EarthRadiusMeters = 6371008.8

// MaxIndexableLatitude bounds the Web Mercator band Redis GEO commands accept.
// Locations further north or south are valid but must be searched without it.
const MaxIndexableLatitude = 85.05112878

var (
	ErrLongitudeOutOfRange = errors.New("longitude must be within [-180, 180]")
	ErrLatitudeOutOfRange  = errors.New("latitude must be within [-90, 90]")
)

// Point is a WGS84 coordinate.
type Point struct {
	Longitude float64
	Latitude  float64
}

// Validate reports whether both coordinates are finite and within range.
func (p Point) Validate() error {
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return ErrLongitudeOutOfRange
	}
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return ErrLatitudeOutOfRange
	}
	return nil
}

// Indexable reports whether the point lies inside the Redis GEO latitude band.
func (p Point) Indexable() bool {
	return math.Abs(p.Latitude) <= MaxIndexableLatitude
}

// LatitudeBounds returns the latitude range a circle of radius meters around
// center can reach, clamped to the poles.
func LatitudeBounds(center Point, radius float64) (south, north float64) {
	span := radius / EarthRadiusMeters * 180 / math.Pi
	return math.Max(center.Latitude-span, -90), math.Min(center.Latitude+span, 90)
}

// ReachesPolarCap reports whether a circle of radius meters around center
// touches a latitude outside the indexable band.
func ReachesPolarCap(center Point, radius float64) bool {
	south, north := LatitudeBounds(center, radius)
	return south < -MaxIndexableLatitude || north > MaxIndexableLatitude
}

// Distance returns the haversine great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
