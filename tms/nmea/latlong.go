package nmea

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	// Degrees value
	Degrees = '°'
	// Minutes value
	Minutes = '\''
	// Seconds value
	Seconds = '"'
	North   = "N"
	South   = "S"
	East    = "E"
	West    = "W"
)

// LatLong is a coordinate in signed decimal degrees.
type LatLong float64

// NewLatLong parses the supplied string into the LatLong.
//
// Supported formats are:
// - DMS (e.g. 33° 23' 22" S)
// - GPS (e.g 15113.4322 S)
// - Decimal (e.g. -33.23454)
//
func NewLatLong(s string) (LatLong, error) {
	var l LatLong
	var err error
	if l, err = ParseDMS(s); err != nil {
		if l, err = ParseGPS(s); err != nil {
			if l, err = ParseDecimal(s); err != nil {
				return 0, errors.Errorf("cannot parse [%s], unknown format", s)
			}
		}
	}
	if !l.ValidRange() {
		return 0, errors.Errorf("coordinate [%s] is not in range -180, 180", s)
	}
	return l, nil
}

// ParseDecimal parses a signed decimal coordinate.
func ParseDecimal(s string) (LatLong, error) {
	l, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse error (not decimal coordinate)")
	}
	return LatLong(l), nil
}

// ParseDMS parses a coordinate in degrees, minutes, seconds with an optional
// trailing hemisphere letter.
func ParseDMS(s string) (LatLong, error) {
	s, sign := hemisphere(s)
	var degrees, minutes, seconds float64
	var seen bool
	var num []rune
	for _, r := range s {
		var err error
		switch {
		case unicode.IsDigit(r) || r == '.':
			num = append(num, r)
			continue
		case unicode.IsSpace(r):
			continue
		case r == Degrees:
			degrees, err = strconv.ParseFloat(string(num), 64)
			seen = true
		case r == Minutes:
			minutes, err = strconv.ParseFloat(string(num), 64)
		case r == Seconds:
			seconds, err = strconv.ParseFloat(string(num), 64)
		default:
			return 0, errors.Errorf("parse error (unknown symbol %q)", r)
		}
		if err != nil {
			return 0, errors.Wrapf(err, "parse error (%q)", r)
		}
		num = num[:0]
	}
	if !seen || len(num) > 0 {
		return 0, errors.New("parse error (not a DMS coordinate)")
	}
	return LatLong(sign * (degrees + minutes/60 + seconds/3600)), nil
}

// ParseGPS parses the NMEA dddmm.mmmm form followed by a hemisphere letter.
func ParseGPS(s string) (LatLong, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return 0, errors.New("parse error (not a GPS coordinate)")
	}
	value, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse error")
	}
	degrees := math.Floor(value / 100)
	value = degrees + (value-degrees*100)/60
	switch parts[1] {
	case North, East:
		return LatLong(value), nil
	case South, West:
		return LatLong(-value), nil
	}
	return 0, errors.Errorf("invalid direction [%s]", parts[1])
}

// ValidRange reports whether the coordinate lies in [-180, 180].
func (l LatLong) ValidRange() bool {
	return -180.0 <= l && l <= 180.0
}

func hemisphere(s string) (string, float64) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, South), strings.HasSuffix(s, West):
		return s[:len(s)-1], -1
	case strings.HasSuffix(s, North), strings.HasSuffix(s, East):
		return s[:len(s)-1], 1
	}
	return s, 1
}
