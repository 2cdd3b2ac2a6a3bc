// pkg/math/latlong.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

// MetersPerDegreeLatitude gives the ground distance covered by one degree
// of latitude; unlike longitude, it is (very nearly) constant over the
// Earth.
const MetersPerDegreeLatitude = 111320.0

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude.
type Point2LL [2]float64

func (p Point2LL) Longitude() float64 {
	return p[0]
}

func (p Point2LL) Latitude() float64 {
	return p[1]
}

// DDString returns the position in decimal degrees, e.g.:
// (34.052200, -118.243700)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

func Add2LL(a Point2LL, b Point2LL) Point2LL {
	return Point2LL(Add2f(a, b))
}

func Sub2LL(a Point2LL, b Point2LL) Point2LL {
	return Point2LL(Sub2f(a, b))
}

// MetersPerDegreeLongitude returns the ground distance covered by one
// degree of longitude at the given latitude. It shrinks toward zero at the
// poles; callers operating in a polar envelope need to account for the
// divergence of its reciprocal there.
func MetersPerDegreeLongitude(latitude float64) float64 {
	return MetersPerDegreeLatitude * gomath.Cos(Radians(latitude))
}

// LocalMetersFromLL converts a geographic position to flat-earth meter
// coordinates in the tangent plane centered at origin: +x east, +y north.
// Valid for short distances from the origin.
func LocalMetersFromLL(p Point2LL, origin Point2LL) [2]float64 {
	d := Sub2LL(p, origin)
	return [2]float64{d.Longitude() * MetersPerDegreeLongitude(origin.Latitude()),
		d.Latitude() * MetersPerDegreeLatitude}
}

// LLFromLocalMeters is the exact inverse of LocalMetersFromLL for a fixed
// origin.
func LLFromLocalMeters(m [2]float64, origin Point2LL) Point2LL {
	lon := origin.Longitude() + m[0]/MetersPerDegreeLongitude(origin.Latitude())
	lat := origin.Latitude() + m[1]/MetersPerDegreeLatitude
	return Point2LL{lon, lat}
}

// DistanceM returns the great-circle ground distance in meters between two
// lat-long positions.
func DistanceM(a Point2LL, b Point2LL) float64 {
	// https://www.movable-type.co.uk/scripts/latlong.html
	const R = 6371000 // metres
	lat1, lon1 := Radians(a[1]), Radians(a[0])
	lat2, lon2 := Radians(b[1]), Radians(b[0])
	dlat, dlon := lat2-lat1, lon2-lon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	return R * c
}
