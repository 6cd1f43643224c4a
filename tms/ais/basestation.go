package ais

import "time"

const (
	baseStationBytes = 21
	utcInquiryBytes  = 9
)

// BaseStationReport is message type 4, and type 11 when it answers a UTC
// date inquiry. A nil UTC is sent as "not available".
type BaseStationReport struct {
	Header
	UTC         *time.Time
	Accuracy    bool
	Longitude   float64
	Latitude    float64
	PositionFix PositionFixType
	RadioStatus CommunicationState
}

// NewBaseStationReport returns a type 4 report.
func NewBaseStationReport() *BaseStationReport {
	return &BaseStationReport{Header: Header{MessageID: 4}}
}

// NewUTCDateResponse returns a type 11 report.
func NewUTCDateResponse() *BaseStationReport {
	return &BaseStationReport{Header: Header{MessageID: 11}}
}

func (*BaseStationReport) message() {}

// DecodeBaseStationReport decodes message types 4 and 11 with the default
// decoder.
func DecodeBaseStationReport(buf []byte) (*BaseStationReport, error) {
	return defaultDecoder.DecodeBaseStationReport(buf)
}

// DecodeBaseStationReport decodes message types 4 and 11. Date and time
// components marked unavailable are taken from the decoder clock unless all
// of them are, in which case UTC is nil.
func (d *Decoder) DecodeBaseStationReport(buf []byte) (*BaseStationReport, error) {
	r, err := checkBuffer(buf, baseStationBytes, 4, 11)
	if err != nil {
		return nil, err
	}
	m := &BaseStationReport{Header: readHeader(r)}
	year, month, day := int(r.uint(14)), int(r.uint(4)), int(r.uint(5))
	hour, minute, second := int(r.uint(5)), int(r.uint(6)), int(r.uint(6))
	if year != 0 || month != 0 || day != 0 || hour != 24 || minute != 60 || second != 60 {
		now := d.now()
		if year == 0 {
			year = now.Year()
		}
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
		if second == 60 {
			second = now.Second()
		}
		utc := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
		m.UTC = &utc
	}
	m.Accuracy = r.bool()
	m.Longitude = r.degrees(28)
	m.Latitude = r.degrees(27)
	m.PositionFix = PositionFixType(r.uint(4))
	m.RadioStatus = CommunicationState(r.seek(149).uint(19))
	return m, nil
}

func (m *BaseStationReport) Encode() []byte {
	w := newWriter(baseStationBytes)
	m.Header.write(w, pickID(m.MessageID, 4, 11))
	if m.UTC == nil {
		w.uint(14, 0)
		w.uint(4, 0)
		w.uint(5, 0)
		w.uint(5, 24)
		w.uint(6, 60)
		w.uint(6, 60)
	} else {
		utc := m.UTC.UTC()
		w.uint(14, uint32(utc.Year()))
		w.uint(4, uint32(utc.Month()))
		w.uint(5, uint32(utc.Day()))
		w.uint(5, uint32(utc.Hour()))
		w.uint(6, uint32(utc.Minute()))
		w.uint(6, uint32(utc.Second()))
	}
	w.bool(m.Accuracy)
	w.degrees(28, m.Longitude)
	w.degrees(27, m.Latitude)
	w.uint(4, uint32(m.PositionFix))
	w.spare(11)
	w.uint(19, uint32(m.RadioStatus))
	return w.buf
}

// UTCDateInquiry is message type 10, asking DestinationMMSI for a type 11
// response.
type UTCDateInquiry struct {
	Header
	DestinationMMSI uint32
}

func NewUTCDateInquiry() *UTCDateInquiry {
	return &UTCDateInquiry{Header: Header{MessageID: 10}}
}

func (*UTCDateInquiry) message() {}

func DecodeUTCDateInquiry(buf []byte) (*UTCDateInquiry, error) {
	r, err := checkBuffer(buf, utcInquiryBytes, 10)
	if err != nil {
		return nil, err
	}
	m := &UTCDateInquiry{Header: readHeader(r)}
	m.DestinationMMSI = r.seek(40).uint(30)
	return m, nil
}

func (m *UTCDateInquiry) Encode() []byte {
	w := newWriter(utcInquiryBytes)
	m.Header.write(w, 10)
	w.spare(2)
	w.uint(30, m.DestinationMMSI)
	return w.buf
}
