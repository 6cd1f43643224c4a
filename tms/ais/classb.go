package ais

const (
	standardClassBBytes = 21
	extendedClassBBytes = 39
)

// ClassBPosition holds the kinematic fields shared by messages 18 and 19.
type ClassBPosition struct {
	SpeedOverGround  uint32 // km/h
	Accuracy         bool
	Longitude        float64
	Latitude         float64
	CourseOverGround float64
	TrueHeading      uint16
	Timestamp        uint8
}

func (p ClassBPosition) write(w *writer) {
	w.seek(46)
	w.speed(p.SpeedOverGround)
	w.bool(p.Accuracy)
	w.degrees(28, p.Longitude)
	w.degrees(27, p.Latitude)
	w.tenths(12, p.CourseOverGround)
	w.uint(9, uint32(p.TrueHeading))
	w.uint(6, uint32(p.Timestamp))
}

func readClassBPosition(r *reader) ClassBPosition {
	r.seek(46)
	return ClassBPosition{
		SpeedOverGround:  r.speed(),
		Accuracy:         r.bool(),
		Longitude:        r.degrees(28),
		Latitude:         r.degrees(27),
		CourseOverGround: r.tenths(12),
		TrueHeading:      uint16(r.uint(9)),
		Timestamp:        uint8(r.uint(6)),
	}
}

// StandardClassBPositionReport is message type 18.
type StandardClassBPositionReport struct {
	Header
	ClassBPosition
	RadioStatus CommunicationState
}

func NewStandardClassBPositionReport() *StandardClassBPositionReport {
	return &StandardClassBPositionReport{
		Header:         Header{MessageID: 18},
		ClassBPosition: ClassBPosition{Timestamp: 60},
	}
}

func (*StandardClassBPositionReport) message() {}

func DecodeStandardClassBPositionReport(buf []byte) (*StandardClassBPositionReport, error) {
	r, err := checkBuffer(buf, standardClassBBytes, 18)
	if err != nil {
		return nil, err
	}
	m := &StandardClassBPositionReport{Header: readHeader(r)}
	m.ClassBPosition = readClassBPosition(r)
	m.RadioStatus = CommunicationState(r.seek(149).uint(19))
	return m, nil
}

func (m *StandardClassBPositionReport) Encode() []byte {
	w := newWriter(standardClassBBytes)
	m.Header.write(w, 18)
	m.ClassBPosition.write(w)
	w.seek(149).uint(19, uint32(m.RadioStatus))
	return w.buf
}

// ExtendedClassBPositionReport is message type 19.
type ExtendedClassBPositionReport struct {
	Header
	ClassBPosition
	Name              string
	ShipType          ShipType
	Dimensions        Dimensions
	PositionFix       PositionFixType
	DataTerminalReady bool
}

func NewExtendedClassBPositionReport() *ExtendedClassBPositionReport {
	return &ExtendedClassBPositionReport{
		Header:         Header{MessageID: 19},
		ClassBPosition: ClassBPosition{Timestamp: 60},
	}
}

func (*ExtendedClassBPositionReport) message() {}

func DecodeExtendedClassBPositionReport(buf []byte) (*ExtendedClassBPositionReport, error) {
	r, err := checkBuffer(buf, extendedClassBBytes, 19)
	if err != nil {
		return nil, err
	}
	m := &ExtendedClassBPositionReport{Header: readHeader(r)}
	m.ClassBPosition = readClassBPosition(r)
	m.Name = r.seek(143).text(nameChars * 6)
	m.ShipType = ShipType(r.uint(8))
	m.Dimensions = readDimensions(r)
	m.PositionFix = PositionFixType(r.uint(4))
	m.DataTerminalReady = !r.seek(306).bool()
	return m, nil
}

func (m *ExtendedClassBPositionReport) Encode() []byte {
	w := newWriter(extendedClassBBytes)
	m.Header.write(w, 19)
	m.ClassBPosition.write(w)
	w.seek(143).text(nameChars*6, fixedText(m.Name, nameChars))
	w.uint(8, uint32(m.ShipType))
	m.Dimensions.write(w)
	w.uint(4, uint32(m.PositionFix))
	w.seek(306).bool(!m.DataTerminalReady)
	return w.buf
}
