// Package geo computes great-circle distances and compass bearings between
// points on the Earth's surface.
package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used for all distance calculations.
const EarthRadiusKm = 6371.0

// Point is a location in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Valid reports whether p is a finite coordinate within latitude [-90,90]
// and longitude [-180,180].
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

func (p Point) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lon)
}

// Measurement is what a guess reports about the target: how far and which way.
type Measurement struct {
	DistanceKm float64 // rounded to one decimal place
	Bearing    float64 // degrees clockwise from north, [0,360)
	Direction  Direction
}

// Distance returns the haversine great-circle distance between a and b in km.
func Distance(a, b Point) float64 {
	return a.latLng().Distance(b.latLng()).Radians() * EarthRadiusKm
}

// Bearing returns the initial bearing from a towards b in degrees,
// normalized to [0,360). Coincident points, including the same place
// written with different coordinates, have a bearing of 0.
func Bearing(a, b Point) float64 {
	if s2.PointFromLatLng(a.latLng()).ApproxEqual(s2.PointFromLatLng(b.latLng())) {
		return 0
	}
	lat1 := a.latLng().Lat.Radians()
	lat2 := b.latLng().Lat.Radians()
	dLon := b.latLng().Lng.Radians() - a.latLng().Lng.Radians()

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return normalizeDegrees(math.Atan2(y, x) * 180 / math.Pi)
}

// Measure computes the distance and bearing from origin to destination.
func Measure(origin, destination Point) Measurement {
	bearing := Bearing(origin, destination)
	return Measurement{
		DistanceKm: Round1(Distance(origin, destination)),
		Bearing:    bearing,
		Direction:  DirectionOf(bearing),
	}
}

// Round1 rounds v to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -0.0 and values that round up to 360 after the addition.
	if deg >= 360 || deg == 0 {
		return 0
	}
	return deg
}
