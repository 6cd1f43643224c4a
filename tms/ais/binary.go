package ais

import "github.com/pkg/errors"

const (
	addressedHeaderBytes = 9
	broadcastHeaderBytes = 5
	// maxSlotBytes is the largest message, five slots of 1008 bits.
	maxSlotBytes = 126

	maxAddressedData = maxSlotBytes - addressedHeaderBytes
	maxBroadcastData = maxSlotBytes - broadcastHeaderBytes
)

// Addressed holds the addressing fields of messages 6 and 12.
type Addressed struct {
	SequenceNumber  uint8
	DestinationMMSI uint32
	Retransmit      bool
}

func (a Addressed) write(w *writer) {
	w.uint(2, uint32(a.SequenceNumber))
	w.uint(30, a.DestinationMMSI)
	w.bool(a.Retransmit)
	w.spare(1)
}

func readAddressed(r *reader) Addressed {
	return Addressed{
		SequenceNumber:  uint8(r.uint(2)),
		DestinationMMSI: r.uint(30),
		Retransmit:      r.bool(),
	}
}

// checkVariable validates a variable length message against its header size
// and the five slot limit.
func checkVariable(buf []byte, headerBytes int, id uint8) (*reader, error) {
	r, err := checkBuffer(buf, headerBytes, id)
	if err != nil {
		return nil, err
	}
	if len(buf) > maxSlotBytes {
		return nil, errors.Wrapf(ErrTooLong, "%d bytes, max %d", len(buf), maxSlotBytes)
	}
	return r, nil
}

// AddressedBinaryMessage is message type 6. Data beyond 117 bytes is
// dropped on encode.
type AddressedBinaryMessage struct {
	Header
	Addressed
	Data []byte
}

func NewAddressedBinaryMessage() *AddressedBinaryMessage {
	return &AddressedBinaryMessage{Header: Header{MessageID: 6}}
}

func (*AddressedBinaryMessage) message() {}

func DecodeAddressedBinaryMessage(buf []byte) (*AddressedBinaryMessage, error) {
	r, err := checkVariable(buf, addressedHeaderBytes, 6)
	if err != nil {
		return nil, err
	}
	m := &AddressedBinaryMessage{Header: readHeader(r)}
	m.Addressed = readAddressed(r)
	m.Data = append([]byte{}, buf[addressedHeaderBytes:]...)
	return m, nil
}

func (m *AddressedBinaryMessage) Encode() []byte {
	data := clampBytes(m.Data, maxAddressedData)
	w := newWriter(addressedHeaderBytes + len(data))
	m.Header.write(w, 6)
	m.Addressed.write(w)
	copy(w.buf[addressedHeaderBytes:], data)
	return w.buf
}

// BinaryBroadcastMessage is message type 8. Data beyond 121 bytes is
// dropped on encode.
type BinaryBroadcastMessage struct {
	Header
	Data []byte
}

func NewBinaryBroadcastMessage() *BinaryBroadcastMessage {
	return &BinaryBroadcastMessage{Header: Header{MessageID: 8}}
}

func (*BinaryBroadcastMessage) message() {}

func DecodeBinaryBroadcastMessage(buf []byte) (*BinaryBroadcastMessage, error) {
	r, err := checkVariable(buf, broadcastHeaderBytes, 8)
	if err != nil {
		return nil, err
	}
	m := &BinaryBroadcastMessage{Header: readHeader(r)}
	m.Data = append([]byte{}, buf[broadcastHeaderBytes:]...)
	return m, nil
}

func (m *BinaryBroadcastMessage) Encode() []byte {
	data := clampBytes(m.Data, maxBroadcastData)
	w := newWriter(broadcastHeaderBytes + len(data))
	m.Header.write(w, 8)
	copy(w.buf[broadcastHeaderBytes:], data)
	return w.buf
}

func clampBytes(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
