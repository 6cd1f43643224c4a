package main

import (
	"net"
	"time"

	"github.com/grafov/bcast"
	"github.com/pkg/errors"

	"aisproto/gogroup"
	"aisproto/tms/log"
)

const (
	writeTimeout = 5 * time.Second
	// acceptRetry is the pause before accepting again after a failure.
	acceptRetry = time.Second
)

// Broadcaster fans framed sentences out to every connected client.
type Broadcaster struct {
	group  *bcast.Group
	source *bcast.Member
}

func NewBroadcaster() *Broadcaster {
	group := bcast.NewGroup()
	go group.Broadcast()
	return &Broadcaster{
		group:  group,
		source: group.Join(),
	}
}

// Send queues a packet of sentences for every client.
func (b *Broadcaster) Send(packet string) {
	if packet == "" {
		return
	}
	b.source.Send(packet)
}

func (b *Broadcaster) Close() {
	b.source.Close()
	b.group.Close()
}

// listenClients accepts clients on listener until the group is canceled or
// accepting fails.
func listenClients(ctxt gogroup.GoGroup, listener net.Listener, b *Broadcaster) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctxt.Done():
			listener.Close()
		case <-stop:
		}
	}()
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctxt.Canceled() {
				return nil
			}
			return errors.Wrap(err, "accept a connection")
		}
		log.Info("got a connection from %v", conn.RemoteAddr())
		member := b.group.Join()
		ctxt.Go(func(g gogroup.GoGroup) error {
			handleConnection(g, conn, member)
			return nil
		})
	}
}

// handleConnection writes every broadcast packet to conn until the client
// goes away or the group is canceled.
func handleConnection(ctxt gogroup.GoGroup, conn net.Conn, member *bcast.Member) {
	defer conn.Close()
	defer leave(member)
	for {
		select {
		case <-ctxt.Done():
			return
		case packet := <-member.In:
			data, ok := packet.(string)
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if _, err := conn.Write([]byte(data)); err != nil {
				log.Info("connection %v closed: %v", conn.RemoteAddr(), err)
				return
			}
		}
	}
}

// leave removes member from its group. The group may be blocked delivering
// to member, so its channel is drained until the removal went through.
func leave(member *bcast.Member) {
	done := make(chan struct{})
	go func() {
		member.Close()
		close(done)
	}()
	for {
		select {
		case <-member.In:
		case <-done:
			return
		}
	}
}
