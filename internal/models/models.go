package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/tatianab/worldle/internal/geo"
)

// ErrInvalidCountry is returned for records that cannot be played.
var ErrInvalidCountry = errors.New("invalid country record")

const geohashPrecision = 5

// Country is a single playable country as described by the data file.
type Country struct {
	Code       string  `yaml:"Country Code"`
	Name       string  `yaml:"Country Name"`
	Latitude   float64 `yaml:"Latitude"`
	Longitude  float64 `yaml:"Longitude"`
	Population int64   `yaml:"Population"`
	Area       float64 `yaml:"Area"` // km²
}

// Point returns the country's reference coordinate.
func (c Country) Point() geo.Point {
	return geo.Point{Lat: c.Latitude, Lon: c.Longitude}
}

// Geohash returns a short geohash of the reference coordinate.
func (c Country) Geohash() string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, geohashPrecision)
}

// Validate checks that the record has identity and plausible attributes.
func (c Country) Validate() error {
	switch {
	case strings.TrimSpace(c.Code) == "":
		return fmt.Errorf("%w: empty country code (name %q)", ErrInvalidCountry, c.Name)
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: empty country name (code %q)", ErrInvalidCountry, c.Code)
	case !c.Point().Valid():
		return fmt.Errorf("%w: %s has invalid coordinates (%v, %v)", ErrInvalidCountry, c.Code, c.Latitude, c.Longitude)
	case c.Population < 0:
		return fmt.Errorf("%w: %s has negative population %d", ErrInvalidCountry, c.Code, c.Population)
	case c.Area < 0 || math.IsNaN(c.Area) || math.IsInf(c.Area, 0):
		return fmt.Errorf("%w: %s has invalid area %v", ErrInvalidCountry, c.Code, c.Area)
	}
	return nil
}
