package ais

import (
	"time"

	"aisproto/tms/nmea"
	"aisproto/tms/util/units"
)

const (
	shipStaticBytes = 53

	callSignChars = 7
	nameChars     = 20
	unknownText   = "UNKNOWN"
)

// ShipStaticData is message type 5, static and voyage related data.
type ShipStaticData struct {
	Header
	Version     Version
	IMO         uint32
	CallSign    string
	Name        string
	ShipType    ShipType
	Dimensions  Dimensions
	PositionFix PositionFixType
	// ETA is sent without a year. A nil ETA is sent as "not available".
	ETA               *time.Time
	Draught           float64 // metres, 0.1 resolution
	Destination       string
	DataTerminalReady bool
}

func NewShipStaticData() *ShipStaticData {
	return &ShipStaticData{Header: Header{MessageID: 5}}
}

func (*ShipStaticData) message() {}

// fixedText normalizes a fixed-width text field: upper case, truncated to
// n characters, UNKNOWN when empty.
func fixedText(s string, n int) string {
	if s == "" {
		s = unknownText
	}
	s = nmea.NormalizeText(s)
	if len(s) > n {
		s = s[:n]
	}
	return s
}

// DecodeShipStaticData decodes message type 5 with the default decoder.
func DecodeShipStaticData(buf []byte) (*ShipStaticData, error) {
	return defaultDecoder.DecodeShipStaticData(buf)
}

// DecodeShipStaticData decodes message type 5. ETA components marked
// unavailable are taken from the decoder clock unless all of them are, in
// which case ETA is nil. The year is the current one, or the next when the
// month has already passed.
func (d *Decoder) DecodeShipStaticData(buf []byte) (*ShipStaticData, error) {
	r, err := checkBuffer(buf, shipStaticBytes, 5)
	if err != nil {
		return nil, err
	}
	m := &ShipStaticData{Header: readHeader(r)}
	m.Version = Version(r.uint(2))
	m.IMO = r.uint(30)
	m.CallSign = r.text(callSignChars * 6)
	m.Name = r.text(nameChars * 6)
	m.ShipType = ShipType(r.uint(8))
	m.Dimensions = readDimensions(r)
	m.PositionFix = PositionFixType(r.uint(4))
	m.ETA = d.readETA(r)
	m.Draught = r.tenths(8)
	m.Destination = r.text(nameChars * 6)
	m.DataTerminalReady = !r.bool()
	return m, nil
}

func (d *Decoder) readETA(r *reader) *time.Time {
	month, day := int(r.uint(4)), int(r.uint(5))
	hour, minute := int(r.uint(5)), int(r.uint(6))
	if month == 0 && day == 0 && hour == 24 && minute == 60 {
		return nil
	}
	now := d.now()
	if month == 0 {
		month = int(now.Month())
	}
	if day == 0 {
		day = now.Day()
	}
	if hour == 24 {
		hour = now.Hour()
	}
	if minute == 60 {
		minute = now.Minute()
	}
	year := now.Year()
	if month < int(now.Month()) {
		year++
	}
	eta := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	return &eta
}

func (m *ShipStaticData) Encode() []byte {
	w := newWriter(shipStaticBytes)
	m.Header.write(w, 5)
	w.uint(2, uint32(m.Version))
	w.uint(30, m.IMO)
	w.text(callSignChars*6, fixedText(m.CallSign, callSignChars))
	w.text(nameChars*6, fixedText(m.Name, nameChars))
	w.uint(8, uint32(m.ShipType))
	m.Dimensions.write(w)
	w.uint(4, uint32(m.PositionFix))
	if m.ETA == nil {
		w.uint(4, 0)
		w.uint(5, 0)
		w.uint(5, 24)
		w.uint(6, 60)
	} else {
		eta := m.ETA.UTC()
		w.uint(4, uint32(eta.Month()))
		w.uint(5, uint32(eta.Day()))
		w.uint(5, uint32(eta.Hour()))
		w.uint(6, uint32(eta.Minute()))
	}
	w.uint(8, units.ToTenths(m.Draught))
	w.text(nameChars*6, fixedText(m.Destination, nameChars))
	w.bool(!m.DataTerminalReady)
	return w.buf
}
