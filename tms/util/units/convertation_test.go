package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromKnotsToKmh(t *testing.T) {
	assert.InDelta(t, 185.2, FromKnotsToKmh(100), 0.001)
	assert.Zero(t, FromKnotsToKmh(0))
	assert.InDelta(t, 1, FromKmhToKnots(1.852), 0.001)
}

func TestTenthsKnots(t *testing.T) {
	// 10 km/h is 5.39 knots, stored as 53 tenths
	assert.Equal(t, uint32(53), FromKmhToTenthsKnots(10))
	// tenths are dropped before scaling: 5 knots is 9.26 km/h
	assert.Equal(t, uint32(9), FromTenthsKnotsToKmh(53))
	assert.Equal(t, uint32(0), FromTenthsKnotsToKmh(9))
	assert.Equal(t, uint32(185), FromTenthsKnotsToKmh(1000))
}

func TestMinuteScale(t *testing.T) {
	assert.Equal(t, int32(29031000), ToMinuteScale(48.385))
	assert.Equal(t, int32(-2696400), ToMinuteScale(-4.494))
	assert.Equal(t, int32(108600000), ToMinuteScale(181))
	assert.InDelta(t, -122.345833, FromMinuteScale(-73407500), 0.000001)
}

func TestTenths(t *testing.T) {
	assert.Equal(t, uint32(1672), ToTenths(167.2))
	assert.Equal(t, uint32(3600), ToTenths(360))
	assert.Equal(t, uint32(0xFFFFFFF6), ToTenths(-1))
	assert.InDelta(t, 51.0, FromTenths(510), 0.0001)
}

// http://www.onlineconversion.com/map_greatcircle_distance.htm
func TestDistanceGeoID(t *testing.T) {
	assert.InDelta(t, 157.24938127194397*1000, DistanceGeoID(0, 0, 1, 1), 0.1)
}
