package object

import (
	"strings"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"aisproto/tms/nmea"
	"aisproto/tms/util/units"
)

const metersPerNM = 1852.0

var (
	geo  = ellipsoid.Init("WGS84", ellipsoid.Degrees, ellipsoid.Nm, ellipsoid.LongitudeIsSymmetric, ellipsoid.BearingNotSymmetric)
	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

// Coordinate is a latitude or a longitude in signed decimal degrees. In JSON
// it is either a number or a string in any form nmea.NewLatLong reads, e.g.
// "48° 23' 6\" N" or "4829.64 W".
type Coordinate float64

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "coordinate")
		}
	}
	l, err := nmea.NewLatLong(s)
	if err != nil {
		return errors.Wrap(err, "coordinate")
	}
	*c = Coordinate(l)
	return nil
}

// Point is a position on the WGS84 ellipsoid.
type Point struct {
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`
}

func (p Point) lat() float64 { return float64(p.Latitude) }
func (p Point) lon() float64 { return float64(p.Longitude) }

// DistanceNM returns the great circle distance to q in nautical miles.
func (p Point) DistanceNM(q Point) float64 {
	return units.DistanceGeoID(p.lat(), p.lon(), q.lat(), q.lon()) / metersPerNM
}

// To returns the distance in nautical miles and the bearing in degrees from
// p to q.
func (p Point) To(q Point) (float64, float64) {
	return geo.To(p.lat(), p.lon(), q.lat(), q.lon())
}

// At returns the point nm nautical miles away from p along bearing.
func (p Point) At(nm, bearing float64) Point {
	lat, lon := geo.At(p.lat(), p.lon(), nm, bearing)
	return Point{Latitude: Coordinate(lat), Longitude: Coordinate(lon)}
}
