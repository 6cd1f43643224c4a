package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"aisproto/gogroup"
	"aisproto/tms/ais"
	"aisproto/tms/cmd/tools/tsimulator/object"
)

func testControl(t *testing.T) *object.Control {
	control, err := object.NewControl(nil, []object.Vessel{{
		MMSI:     227006760,
		Name:     "ALICE",
		Position: object.Point{Latitude: 48.3, Longitude: -4.6},
		Speed:    12,
		Course:   90,
	}}, nil)
	require.NoError(t, err)
	return control
}

func sentenceIDs(t *testing.T, packet string) []uint8 {
	var ids []uint8
	for _, line := range strings.SplitAfter(packet, "\r\n") {
		if line == "" {
			continue
		}
		m, err := ais.DecodeSentence(line)
		require.NoError(t, err)
		ids = append(ids, m.GetHeader().MessageID)
	}
	return ids
}

func TestLifeCycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := NewBroadcaster()
	member := b.group.Join()
	g := gogroup.New(nil, "lifecycle")
	g.Go(func(g gogroup.GoGroup) error {
		return lifeCycle(g, testControl(t), b, 10*time.Millisecond, 2)
	})

	var got [][]uint8
	for len(got) < 3 {
		select {
		case packet := <-member.In:
			got = append(got, sentenceIDs(t, packet.(string)))
		case <-time.After(5 * time.Second):
			t.Fatal("no packet broadcast")
		}
	}
	g.Cancel(nil)
	leave(member)
	g.Wait()
	b.Close()

	assert.Equal(t, [][]uint8{{1, 5}, {1}, {1, 5}}, got)
}
