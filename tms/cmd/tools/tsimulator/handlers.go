package main

import (
	"time"

	"aisproto/gogroup"
	"aisproto/tms/cmd/tools/tsimulator/object"
	"aisproto/tms/log"
)

// lifeCycle moves the vessels every period and broadcasts their reports.
// Static data goes along with every staticEvery-th broadcast, the first one
// included.
func lifeCycle(ctxt gogroup.GoGroup, control *object.Control, b *Broadcaster, period time.Duration, staticEvery uint32) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	var tick uint32
	for {
		packet := control.Packet(tick%staticEvery == 0)
		log.Debug("broadcasting %d bytes", len(packet))
		b.Send(packet)
		tick++

		select {
		case <-ctxt.Done():
			return nil
		case <-ticker.C:
			control.Move(period)
		}
	}
}
