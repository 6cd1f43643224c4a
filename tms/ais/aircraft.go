package ais

const (
	aircraftBytes = 21

	altitudeNotAvailable = 4095
	legacyAircraftID     = 13
)

// AircraftPositionReport is message type 9, a standard SAR aircraft
// position report.
type AircraftPositionReport struct {
	Header
	Altitude          uint16 // metres, 4095 when not available
	SpeedOverGround   uint32 // km/h
	Accuracy          bool
	Longitude         float64
	Latitude          float64
	CourseOverGround  float64
	Timestamp         uint8
	DataTerminalReady bool
	RadioStatus       CommunicationState
}

func NewAircraftPositionReport() *AircraftPositionReport {
	return &AircraftPositionReport{
		Header:    Header{MessageID: 9},
		Altitude:  altitudeNotAvailable,
		Timestamp: 60,
	}
}

func (*AircraftPositionReport) message() {}

// DecodeAircraftPositionReport decodes message type 9 with the default
// decoder.
func DecodeAircraftPositionReport(buf []byte) (*AircraftPositionReport, error) {
	return defaultDecoder.DecodeAircraftPositionReport(buf)
}

// DecodeAircraftPositionReport decodes message type 9, and 13 when the
// decoder accepts the legacy id.
func (d *Decoder) DecodeAircraftPositionReport(buf []byte) (*AircraftPositionReport, error) {
	ids := []uint8{9}
	if d.AcceptLegacyAircraftID {
		ids = append(ids, legacyAircraftID)
	}
	r, err := checkBuffer(buf, aircraftBytes, ids...)
	if err != nil {
		return nil, err
	}
	m := &AircraftPositionReport{Header: readHeader(r)}
	m.Altitude = uint16(r.uint(12))
	m.SpeedOverGround = r.speed()
	m.Accuracy = r.bool()
	m.Longitude = r.degrees(28)
	m.Latitude = r.degrees(27)
	m.CourseOverGround = r.tenths(12)
	m.Timestamp = uint8(r.seek(128).uint(6))
	m.DataTerminalReady = r.seek(142).uint(2) == 0
	m.RadioStatus = CommunicationState(r.seek(149).uint(19))
	return m, nil
}

func (m *AircraftPositionReport) Encode() []byte {
	w := newWriter(aircraftBytes)
	m.Header.write(w, 9)
	w.uint(12, uint32(m.Altitude))
	w.speed(m.SpeedOverGround)
	w.bool(m.Accuracy)
	w.degrees(28, m.Longitude)
	w.degrees(27, m.Latitude)
	w.tenths(12, m.CourseOverGround)
	w.seek(128).uint(6, uint32(m.Timestamp))
	w.seek(142).bool(!m.DataTerminalReady)
	w.seek(149).uint(19, uint32(m.RadioStatus))
	return w.buf
}
