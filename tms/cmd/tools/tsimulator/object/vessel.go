package object

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"aisproto/tms/ais"
	"aisproto/tms/log"
	"aisproto/tms/util/units"
)

const etaLayout = "01021504"

var (
	// ErrNoMMSI is returned for a vessel without identity
	ErrNoMMSI = errors.New("vessel has no mmsi")
	// ErrBadClass is returned for a transceiver class other than A or B
	ErrBadClass = errors.New("vessel class must be A or B")
)

// Vessel is a simulated ship carrying a class A or class B transponder.
type Vessel struct {
	MMSI             uint32         `json:"mmsi"`
	Class            string         `json:"class"`
	Name             string         `json:"name"`
	CallSign         string         `json:"call_sign"`
	IMO              uint32         `json:"imo"`
	Type             uint8          `json:"type"`
	Dimensions       ais.Dimensions `json:"dimensions"`
	Draught          float64        `json:"draught"`
	Destination      string         `json:"destination"`
	ETA              string         `json:"eta"` // MMDDhhmm
	NavigationStatus uint8          `json:"navigation_status"`

	Position Point   `json:"position"`
	Speed    float64 `json:"speed"`  // knots
	Course   float64 `json:"course"` // degrees, used when there is no route
	Route    []Point `json:"route"`

	Waypoint int `json:"waypoint"`
}

// Init checks the vessel and fills defaults.
func (v *Vessel) Init() error {
	if v.MMSI == 0 {
		return ErrNoMMSI
	}
	if kind, err := ais.ClassifyMMSI(v.MMSI); err != nil || kind != ais.ShipStation {
		log.Warn("vessel %v does not have a ship station mmsi", ais.FormatMMSI(v.MMSI))
	}
	v.Class = strings.ToUpper(v.Class)
	switch v.Class {
	case "":
		v.Class = "A"
	case "A", "B":
	default:
		return errors.Wrapf(ErrBadClass, "mmsi %v", ais.FormatMMSI(v.MMSI))
	}
	if v.Name == "" {
		v.Name = "SIM" + ais.FormatMMSI(v.MMSI)
	}
	if v.ETA != "" {
		if _, err := time.Parse(etaLayout, v.ETA); err != nil {
			return errors.Wrapf(err, "eta of %v", ais.FormatMMSI(v.MMSI))
		}
	}
	if v.Waypoint >= len(v.Route) {
		v.Waypoint = 0
	}
	return nil
}

// Move advances the vessel by dead reckoning over d. A vessel with a route
// steers to its next waypoint and loops over the route.
func (v *Vessel) Move(d time.Duration) {
	step := v.Speed * d.Hours()
	if step <= 0 {
		return
	}
	if len(v.Route) == 0 {
		v.Position = v.Position.At(step, v.Course)
		return
	}
	// a route of coincident waypoints must not spin
	for i := 0; step > 0 && i <= len(v.Route); i++ {
		target := v.Route[v.Waypoint]
		dist, bearing := v.Position.To(target)
		if dist > step {
			v.Course = bearing
			v.Position = v.Position.At(step, bearing)
			return
		}
		if dist > 0 {
			v.Course = bearing
		}
		v.Position = target
		v.Waypoint = (v.Waypoint + 1) % len(v.Route)
		step -= dist
	}
}

func (v *Vessel) heading() uint16 {
	return uint16(math.Mod(math.Round(v.Course), 360))
}

func (v *Vessel) kmh() uint32 {
	return uint32(units.FromKnotsToKmh(v.Speed))
}

// PositionReport returns a type 1 report for class A and a type 18 report
// for class B.
func (v *Vessel) PositionReport(now time.Time) ais.Message {
	if v.Class == "B" {
		m := ais.NewStandardClassBPositionReport()
		m.MMSI = v.MMSI
		m.ClassBPosition = v.classBPosition(now)
		return m
	}
	m := ais.NewPositionReport(1)
	m.MMSI = v.MMSI
	m.NavigationStatus = ais.NavigationStatus(v.NavigationStatus)
	m.RateOfTurn = -128
	m.SpeedOverGround = v.kmh()
	m.Accuracy = true
	m.Longitude = v.Position.lon()
	m.Latitude = v.Position.lat()
	m.CourseOverGround = v.Course
	m.TrueHeading = v.heading()
	m.Timestamp = uint8(now.Second())
	return m
}

func (v *Vessel) classBPosition(now time.Time) ais.ClassBPosition {
	return ais.ClassBPosition{
		SpeedOverGround:  v.kmh(),
		Accuracy:         true,
		Longitude:        v.Position.lon(),
		Latitude:         v.Position.lat(),
		CourseOverGround: v.Course,
		TrueHeading:      v.heading(),
		Timestamp:        uint8(now.Second()),
	}
}

// StaticData returns type 5 static and voyage data for class A and a type 19
// extended report for class B.
func (v *Vessel) StaticData(now time.Time) ais.Message {
	if v.Class == "B" {
		m := ais.NewExtendedClassBPositionReport()
		m.MMSI = v.MMSI
		m.ClassBPosition = v.classBPosition(now)
		m.Name = v.Name
		m.ShipType = ais.ShipType(v.Type)
		m.Dimensions = v.Dimensions
		m.PositionFix = ais.FixGPS
		m.DataTerminalReady = true
		return m
	}
	m := ais.NewShipStaticData()
	m.MMSI = v.MMSI
	m.IMO = v.IMO
	m.CallSign = v.CallSign
	m.Name = v.Name
	m.ShipType = ais.ShipType(v.Type)
	m.Dimensions = v.Dimensions
	m.PositionFix = ais.FixGPS
	m.Draught = v.Draught
	m.Destination = v.Destination
	m.DataTerminalReady = true
	if eta, err := time.Parse(etaLayout, v.ETA); err == nil {
		eta = eta.AddDate(now.Year()-eta.Year(), 0, 0)
		m.ETA = &eta
	}
	return m
}
