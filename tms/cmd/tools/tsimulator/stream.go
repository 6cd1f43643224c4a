package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/grafov/bcast"

	"aisproto/gogroup"
	"aisproto/tms/log"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamHandler serves the sentence stream over websocket, one text message
// per broadcast packet.
type streamHandler struct {
	ctxt gogroup.GoGroup
	b    *Broadcaster
}

func (h *streamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade for %v: %v", r.RemoteAddr, err)
		return
	}
	log.Info("got a websocket from %v", r.RemoteAddr)
	member := h.b.group.Join()
	h.ctxt.Go(func(g gogroup.GoGroup) error {
		streamTo(g, conn, member)
		return nil
	})
}

func streamTo(ctxt gogroup.GoGroup, conn *websocket.Conn, member *bcast.Member) {
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	defer func() {
		leave(member)
		conn.Close()
		<-gone
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctxt.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
			return
		case <-gone:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case packet := <-member.In:
			data, ok := packet.(string)
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(data)); err != nil {
				log.Info("websocket %v closed: %v", conn.RemoteAddr(), err)
				return
			}
		}
	}
}
