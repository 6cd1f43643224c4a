package ais

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisproto/tms/util/bits"
)

func sampleAircraft() *AircraftPositionReport {
	m := NewAircraftPositionReport()
	m.MMSI = 111227123
	m.Altitude = 300
	m.SpeedOverGround = 150
	m.Longitude = -4.494
	m.Latitude = 48.385
	m.CourseOverGround = 90.5
	m.Timestamp = 12
	m.DataTerminalReady = true
	return m
}

func TestAircraftRoundTrip(t *testing.T) {
	buf := sampleAircraft().Encode()
	require.Len(t, buf, 21)
	assert.Equal(t, uint32(0), bits.Uint(buf, 142, 2))

	got, err := DecodeAircraftPositionReport(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), got.MessageID)
	assert.Equal(t, uint32(111227123), got.MMSI)
	assert.Equal(t, uint16(300), got.Altitude)
	// 150 km/h is 80.9 knots, sent as 809 tenths
	assert.Equal(t, uint32(148), got.SpeedOverGround)
	assert.InDelta(t, -4.494, got.Longitude, 1/600000.0)
	assert.InDelta(t, 48.385, got.Latitude, 1/600000.0)
	assert.InDelta(t, 90.5, got.CourseOverGround, 0.1)
	assert.Equal(t, uint8(12), got.Timestamp)
	assert.True(t, got.DataTerminalReady)
}

func TestAircraftDefaults(t *testing.T) {
	m := NewAircraftPositionReport()
	got, err := DecodeAircraftPositionReport(m.Encode())
	require.NoError(t, err)
	assert.Equal(t, uint16(4095), got.Altitude)
	assert.Equal(t, uint8(60), got.Timestamp)
	assert.False(t, got.DataTerminalReady)
}

func TestAircraftLegacyID(t *testing.T) {
	buf := sampleAircraft().Encode()
	bits.SetUint(buf, 0, 6, 13)

	_, err := DecodeAircraftPositionReport(buf)
	assert.Equal(t, ErrWrongID, errors.Cause(err))
	_, err = Decode(buf)
	assert.Equal(t, ErrUnsupported, errors.Cause(err))

	d := testDecoder()
	d.AcceptLegacyAircraftID = true
	got, err := d.DecodeAircraftPositionReport(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(13), got.MessageID)
	assert.Equal(t, uint16(300), got.Altitude)

	msg, err := d.Decode(buf)
	require.NoError(t, err)
	assert.IsType(t, &AircraftPositionReport{}, msg)

	// re-encoding restores the standard id
	assert.Equal(t, uint8(9), ID(got.Encode()))
}

func TestAircraftReject(t *testing.T) {
	_, err := DecodeAircraftPositionReport(sampleAircraft().Encode()[:20])
	assert.Equal(t, ErrTooShort, errors.Cause(err))
}
