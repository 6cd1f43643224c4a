package ais

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyMMSI(t *testing.T) {
	for mmsi, kind := range map[uint32]StationKind{
		820512345: HandheldVHF,
		203123456: ShipStation,
		77512345:  GroupOfShips,
		3091234:   CoastStation,
		9991234:   AllCoastStations,
		111654123: SARAircraft,
		997741234: AidToNavigation,
		984561234: AuxiliaryCraft,
		970100000: SARTransmitter,
		972334444: ManOverboard,
		974557777: EPIRB,
	} {
		got, err := ClassifyMMSI(mmsi)
		assert.NoError(t, err, FormatMMSI(mmsi))
		assert.Equal(t, kind, got, FormatMMSI(mmsi))
	}
}

func TestClassifyMMSIWrongFormat(t *testing.T) {
	for _, mmsi := range []uint32{799512345, 803123456, 77612345, 9091234, 9981234, 112654123} {
		_, err := ClassifyMMSI(mmsi)
		assert.Equal(t, ErrMID, errors.Cause(err), FormatMMSI(mmsi))
	}
	for _, mmsi := range []uint32{968881234, 971112345, 1000000000} {
		_, err := ClassifyMMSI(mmsi)
		assert.Equal(t, ErrMMSIFormat, errors.Cause(err), FormatMMSI(mmsi))
	}
}

func TestStationKindString(t *testing.T) {
	assert.Equal(t, "AIS-SART", SARTransmitter.String())
	assert.Equal(t, "StationKind(42)", StationKind(42).String())
}
