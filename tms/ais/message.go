// Package ais encodes and decodes ITU-R M.1371 AIS messages and carries them
// in NMEA VDM sentences.
package ais

import (
	"time"

	"github.com/pkg/errors"

	"aisproto/tms/log"
	"aisproto/tms/util/bits"
	"aisproto/tms/util/clock"
)

var (
	ErrEmpty       = errors.New("empty message")
	ErrTooShort    = errors.New("message too short")
	ErrTooLong     = errors.New("message too long")
	ErrWrongID     = errors.New("unexpected message id")
	ErrUnsupported = errors.New("unsupported message id")
	ErrFragmented  = errors.New("multi-fragment sentences are not supported")
)

// headerBits is the size of message id, repeat indicator and MMSI.
const headerBits = 38

var tracer = log.GetTracer("ais")

// Header holds the fields leading every AIS message.
type Header struct {
	MessageID uint8
	Repeat    uint8
	MMSI      uint32
}

func (h *Header) GetHeader() *Header {
	return h
}

func (h *Header) write(w *writer, id uint8) {
	w.seek(0)
	w.uint(6, uint32(id))
	w.uint(2, uint32(h.Repeat))
	w.uint(30, h.MMSI)
}

func readHeader(r *reader) Header {
	r.seek(0)
	return Header{
		MessageID: uint8(r.uint(6)),
		Repeat:    uint8(r.uint(2)),
		MMSI:      r.uint(30),
	}
}

// Message is one of the AIS message types of this package.
type Message interface {
	GetHeader() *Header
	// Encode returns the unarmored message bits, always carrying the
	// message's own id.
	Encode() []byte
	message()
}

// checkBuffer validates the length and message id of buf before a decode.
func checkBuffer(buf []byte, minBytes int, ids ...uint8) (*reader, error) {
	if len(buf) == 0 {
		return nil, ErrEmpty
	}
	if len(buf) < minBytes {
		return nil, errors.Wrapf(ErrTooShort, "%d bytes, need %d", len(buf), minBytes)
	}
	id := ID(buf)
	for _, want := range ids {
		if id == want {
			return &reader{buf: buf}, nil
		}
	}
	return nil, errors.Wrapf(ErrWrongID, "got %d, want %v", id, ids)
}

// pickID returns id when it is one of the accepted ids, otherwise the first.
func pickID(id uint8, accepted ...uint8) uint8 {
	for _, a := range accepted {
		if id == a {
			return id
		}
	}
	return accepted[0]
}

// ID returns the message id of an unarmored message.
func ID(buf []byte) uint8 {
	if len(buf) == 0 {
		return 0
	}
	return uint8(bits.Uint(buf, 0, 6))
}

// Decoder turns unarmored message bits into typed messages.
type Decoder struct {
	// Clock fills date and time components a message leaves unavailable.
	Clock clock.C
	// AcceptLegacyAircraftID decodes id 13 as an aircraft position report.
	AcceptLegacyAircraftID bool
}

// NewDecoder returns a decoder backed by the system clock.
func NewDecoder() *Decoder {
	return &Decoder{Clock: &clock.Real{}}
}

var defaultDecoder = NewDecoder()

// Decode decodes buf with the default decoder.
func Decode(buf []byte) (Message, error) {
	return defaultDecoder.Decode(buf)
}

// Decode dispatches buf on its message id.
func (d *Decoder) Decode(buf []byte) (Message, error) {
	m, err := d.decode(buf)
	if err != nil {
		tracer.Logf("rejected id %d, %d bytes: %v", ID(buf), len(buf), err)
		return nil, err
	}
	return m, nil
}

func (d *Decoder) decode(buf []byte) (Message, error) {
	if len(buf) == 0 {
		return nil, ErrEmpty
	}
	switch id := ID(buf); id {
	case 1, 2, 3:
		return nilMessage(DecodePositionReport(buf))
	case 4, 11:
		return nilMessage(d.DecodeBaseStationReport(buf))
	case 5:
		return nilMessage(d.DecodeShipStaticData(buf))
	case 6:
		return nilMessage(DecodeAddressedBinaryMessage(buf))
	case 8:
		return nilMessage(DecodeBinaryBroadcastMessage(buf))
	case 9:
		return nilMessage(d.DecodeAircraftPositionReport(buf))
	case 10:
		return nilMessage(DecodeUTCDateInquiry(buf))
	case 12:
		return nilMessage(DecodeAddressedSafetyMessage(buf))
	case 13:
		if d.AcceptLegacyAircraftID {
			return nilMessage(d.DecodeAircraftPositionReport(buf))
		}
		return nil, errors.Wrapf(ErrUnsupported, "message id %d", id)
	case 14:
		return nilMessage(DecodeSafetyBroadcastMessage(buf))
	case 18:
		return nilMessage(DecodeStandardClassBPositionReport(buf))
	case 19:
		return nilMessage(DecodeExtendedClassBPositionReport(buf))
	default:
		return nil, errors.Wrapf(ErrUnsupported, "message id %d", id)
	}
}

// nilMessage keeps typed nil pointers out of the Message interface.
// Name returns a short name of the message type, e.g. for log lines.
func Name(m Message) string {
	switch m.(type) {
	case *PositionReport:
		return "PositionReport"
	case *BaseStationReport:
		if m.GetHeader().MessageID == 11 {
			return "UTCDateResponse"
		}
		return "BaseStationReport"
	case *ShipStaticData:
		return "ShipStaticData"
	case *AddressedBinaryMessage:
		return "AddressedBinaryMessage"
	case *BinaryBroadcastMessage:
		return "BinaryBroadcastMessage"
	case *AircraftPositionReport:
		return "AircraftPositionReport"
	case *UTCDateInquiry:
		return "UTCDateInquiry"
	case *AddressedSafetyMessage:
		return "AddressedSafetyMessage"
	case *SafetyBroadcastMessage:
		return "SafetyBroadcastMessage"
	case *StandardClassBPositionReport:
		return "StandardClassBPositionReport"
	case *ExtendedClassBPositionReport:
		return "ExtendedClassBPositionReport"
	}
	return "Unknown"
}

func nilMessage(m Message, err error) (Message, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (d *Decoder) now() time.Time {
	if d.Clock == nil {
		return time.Now().UTC()
	}
	return d.Clock.Now().UTC()
}
