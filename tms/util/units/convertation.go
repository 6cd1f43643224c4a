// Package units contains functions that convert between different units.
package units

import "math"

const (
	// KmhPerKnot is the number of km/h in one knot.
	KmhPerKnot = 1.852
	// MinuteScale is the number of AIS position units per degree, 1/10000 minute.
	MinuteScale = 600000.0
	earthRadius = 6371.0
)

// FromKnotsToKmh converts knots to km/h.
func FromKnotsToKmh(kn float64) float64 {
	return kn * KmhPerKnot
}

// FromKmhToKnots converts km/h to knots.
func FromKmhToKnots(kmh float64) float64 {
	return kmh / KmhPerKnot
}

// FromTenthsKnotsToKmh converts an AIS speed field in tenths of a knot to
// whole km/h. Tenths are dropped before scaling and the product truncated.
func FromTenthsKnotsToKmh(tenths uint32) uint32 {
	return uint32(float64(tenths/10) * KmhPerKnot)
}

// FromKmhToTenthsKnots converts whole km/h to an AIS speed field in tenths of
// a knot, truncated.
func FromKmhToTenthsKnots(kmh uint32) uint32 {
	return uint32(float64(kmh) / KmhPerKnot * 10)
}

// ToMinuteScale converts degrees to AIS position units, truncated.
func ToMinuteScale(deg float64) int32 {
	return int32(deg * MinuteScale)
}

// FromMinuteScale converts AIS position units to degrees.
func FromMinuteScale(v int32) float64 {
	return float64(v) / MinuteScale
}

// ToTenths scales v by ten and truncates, keeping the two's complement bits
// of negative values.
func ToTenths(v float64) uint32 {
	return uint32(int32(v * 10))
}

// FromTenths converts a field in tenths to its value.
func FromTenths(v uint32) float64 {
	return float64(v) / 10
}

// DistanceGeoID computes meters between to GEO points
func DistanceGeoID(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180.0
	rlon1 := lon1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	rlon2 := lon2 * math.Pi / 180.0

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c * 1000
}
