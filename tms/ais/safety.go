package ais

import (
	"strings"

	"aisproto/tms/nmea"
)

const (
	maxAddressedText = 156
	maxBroadcastText = 967
	defaultPing      = "PING"
)

// safetyText normalizes text and pads it with spaces so that it fills whole
// bytes, four characters being 24 bits. The padded text never exceeds max
// rounded down to whole bytes.
func safetyText(text string, max int) string {
	text = nmea.NormalizeText(text)
	if limit := max - max%4; len(text) > limit {
		text = text[:limit]
	}
	if pad := len(text) % 4; pad != 0 {
		text += strings.Repeat(" ", 4-pad)
	}
	return text
}

// variableText reads the text filling buf after headerBytes. Armoring can
// leave zero bits after the last byte, which read as '@', the padding code.
func variableText(buf []byte, headerBytes int) string {
	text := nmea.DecodeText(buf, headerBytes*8, (len(buf)-headerBytes)*8)
	return strings.TrimRight(text, "@ ")
}

// AddressedSafetyMessage is message type 12.
type AddressedSafetyMessage struct {
	Header
	Addressed
	Text string
}

func NewAddressedSafetyMessage() *AddressedSafetyMessage {
	return &AddressedSafetyMessage{Header: Header{MessageID: 12}}
}

func (*AddressedSafetyMessage) message() {}

func DecodeAddressedSafetyMessage(buf []byte) (*AddressedSafetyMessage, error) {
	r, err := checkVariable(buf, addressedHeaderBytes, 12)
	if err != nil {
		return nil, err
	}
	m := &AddressedSafetyMessage{Header: readHeader(r)}
	m.Addressed = readAddressed(r)
	m.Text = variableText(buf, addressedHeaderBytes)
	return m, nil
}

func (m *AddressedSafetyMessage) Encode() []byte {
	text := safetyText(m.Text, maxAddressedText)
	w := newWriter(addressedHeaderBytes + len(text)*6/8)
	m.Header.write(w, 12)
	m.Addressed.write(w)
	w.text(len(text)*6, text)
	return w.buf
}

// SafetyBroadcastMessage is message type 14. An empty Text is sent as PING.
type SafetyBroadcastMessage struct {
	Header
	Text string
}

func NewSafetyBroadcastMessage() *SafetyBroadcastMessage {
	return &SafetyBroadcastMessage{Header: Header{MessageID: 14}}
}

func (*SafetyBroadcastMessage) message() {}

func DecodeSafetyBroadcastMessage(buf []byte) (*SafetyBroadcastMessage, error) {
	r, err := checkBuffer(buf, broadcastHeaderBytes, 14)
	if err != nil {
		return nil, err
	}
	m := &SafetyBroadcastMessage{Header: readHeader(r)}
	m.Text = variableText(buf, broadcastHeaderBytes)
	return m, nil
}

func (m *SafetyBroadcastMessage) Encode() []byte {
	text := m.Text
	if text == "" {
		text = defaultPing
	}
	text = safetyText(text, maxBroadcastText)
	w := newWriter(broadcastHeaderBytes + len(text)*6/8)
	m.Header.write(w, 14)
	w.seek(broadcastHeaderBytes * 8)
	w.text(len(text)*6, text)
	return w.buf
}
