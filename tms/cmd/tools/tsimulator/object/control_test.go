package object

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisproto/tms/ais"
	"aisproto/tms/util/clock"
)

var brest = Station{
	Name:     "brest",
	MMSI:     2275000,
	Position: Point{Latitude: 48.385, Longitude: -4.494},
	RadiusNM: 10,
}

func testControl(t *testing.T) *Control {
	c, err := NewControl([]Station{brest}, []Vessel{
		{MMSI: 227006760, Position: Point{Latitude: 48.485, Longitude: -4.494}, Speed: 10},
		{MMSI: 227006761, Class: "B", Position: Point{Latitude: 48.885, Longitude: -4.494}},
	}, &clock.Mock{MockNow: now})
	require.NoError(t, err)
	return c
}

func TestStationSees(t *testing.T) {
	assert.True(t, brest.Sees(Point{Latitude: 48.485, Longitude: -4.494}))
	assert.False(t, brest.Sees(Point{Latitude: 48.885, Longitude: -4.494}))
	assert.True(t, (&Station{}).Sees(Point{Latitude: 10}))
}

func TestStationReport(t *testing.T) {
	m := brest.Report(now.Add(500 * time.Millisecond)).(*ais.BaseStationReport)
	assert.Equal(t, uint8(4), m.MessageID)
	require.NotNil(t, m.UTC)
	assert.Equal(t, now, *m.UTC)
	assert.Equal(t, ais.FixSurveyed, m.PositionFix)
}

func TestControlStore(t *testing.T) {
	c := testControl(t)
	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, uint32(227006760), list[0].MMSI)

	v, err := c.Get(227006761)
	require.NoError(t, err)
	assert.Equal(t, "B", v.Class)

	v.Name = "RENAMED"
	require.NoError(t, c.Put(v))
	v, _ = c.Get(227006761)
	assert.Equal(t, "RENAMED", v.Name)

	require.NoError(t, c.Delete(227006761))
	_, err = c.Get(227006761)
	assert.Equal(t, ErrVesselNotFound, errors.Cause(err))
	assert.Equal(t, ErrVesselNotFound, errors.Cause(c.Delete(227006761)))

	assert.Equal(t, ErrNoMMSI, c.Put(Vessel{}))
	_, err = NewControl(nil, []Vessel{{Class: "Z", MMSI: 5}}, nil)
	assert.Error(t, err)
}

func TestControlMove(t *testing.T) {
	c := testControl(t)
	c.Move(time.Hour)
	v, _ := c.Get(227006760)
	assert.InDelta(t, 48.485+10.0/60, float64(v.Position.Latitude), 0.01)
}

func TestControlPacket(t *testing.T) {
	c := testControl(t)

	msgs := c.Messages(false)
	require.Len(t, msgs, 2)
	assert.IsType(t, &ais.BaseStationReport{}, msgs[0])
	assert.Equal(t, uint32(227006760), msgs[1].GetHeader().MMSI)

	packet := c.Packet(true)
	lines := strings.SplitAfter(packet, "\r\n")
	lines = lines[:len(lines)-1]
	require.Len(t, lines, 3)
	var ids []uint8
	for _, line := range lines {
		m, err := ais.DecodeSentence(line)
		require.NoError(t, err)
		ids = append(ids, m.GetHeader().MessageID)
	}
	assert.Equal(t, []uint8{4, 1, 5}, ids)
}

func TestControlListClass(t *testing.T) {
	c := testControl(t)
	b := c.ListClass("b")
	require.Len(t, b, 1)
	assert.Equal(t, uint32(227006761), b[0].MMSI)
	assert.Len(t, c.ListClass("A"), 1)
	assert.Empty(t, c.ListClass("C"))
}
