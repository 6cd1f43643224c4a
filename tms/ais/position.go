package ais

const positionReportBytes = 21

// PositionReport is a class A position report, message types 1, 2 and 3.
type PositionReport struct {
	Header
	NavigationStatus  NavigationStatus
	RateOfTurn        int8
	SpeedOverGround   uint32 // km/h
	Accuracy          bool
	Longitude         float64
	Latitude          float64
	CourseOverGround  float64
	TrueHeading       uint16
	Timestamp         uint8 // UTC second, 60 when not available
	ManeuverIndicator ManeuverIndicator
	RadioStatus       CommunicationState
}

// NewPositionReport returns a report with the given id, which defaults to
// 3 when it is not one of 1, 2 or 3.
func NewPositionReport(id uint8) *PositionReport {
	return &PositionReport{
		Header:            Header{MessageID: pickID(id, 3, 1, 2)},
		NavigationStatus:  NavigationStatusNotDefined,
		Timestamp:         60,
		ManeuverIndicator: NoSpecialManeuver,
	}
}

func (*PositionReport) message() {}

// DecodePositionReport decodes message types 1, 2 and 3.
func DecodePositionReport(buf []byte) (*PositionReport, error) {
	r, err := checkBuffer(buf, positionReportBytes, 1, 2, 3)
	if err != nil {
		return nil, err
	}
	m := &PositionReport{Header: readHeader(r)}
	m.NavigationStatus = NavigationStatus(r.uint(4))
	m.RateOfTurn = int8(r.int(8))
	m.SpeedOverGround = r.speed()
	m.Accuracy = r.bool()
	m.Longitude = r.degrees(28)
	m.Latitude = r.degrees(27)
	m.CourseOverGround = r.tenths(12)
	m.TrueHeading = uint16(r.uint(9))
	m.Timestamp = uint8(r.uint(6))
	m.ManeuverIndicator = ManeuverIndicator(r.uint(2))
	m.RadioStatus = CommunicationState(r.seek(149).uint(19))
	return m, nil
}

func (m *PositionReport) Encode() []byte {
	w := newWriter(positionReportBytes)
	m.Header.write(w, pickID(m.MessageID, 3, 1, 2))
	w.uint(4, uint32(m.NavigationStatus))
	w.int(8, int32(m.RateOfTurn))
	w.speed(m.SpeedOverGround)
	w.bool(m.Accuracy)
	w.degrees(28, m.Longitude)
	w.degrees(27, m.Latitude)
	w.tenths(12, m.CourseOverGround)
	w.uint(9, uint32(m.TrueHeading))
	w.uint(6, uint32(m.Timestamp))
	w.uint(2, uint32(m.ManeuverIndicator))
	w.spare(4)
	w.uint(19, uint32(m.RadioStatus))
	return w.buf
}
