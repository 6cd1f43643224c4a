package ais

import "fmt"

// NavigationStatus is the 4-bit navigational status of a class A report.
type NavigationStatus uint8

const (
	UnderWayUsingEngine NavigationStatus = iota
	AtAnchor
	NotUnderCommand
	RestrictedManoeuvrability
	ConstrainedByDraught
	Moored
	Aground
	EngagedInFishing
	UnderWaySailing
	ReservedHSC
	ReservedWIG
	_
	_
	_
	AISSARTActive
	NavigationStatusNotDefined
)

var navigationStatusNames = map[NavigationStatus]string{
	UnderWayUsingEngine:        "under way using engine",
	AtAnchor:                   "at anchor",
	NotUnderCommand:            "not under command",
	RestrictedManoeuvrability:  "restricted manoeuvrability",
	ConstrainedByDraught:       "constrained by her draught",
	Moored:                     "moored",
	Aground:                    "aground",
	EngagedInFishing:           "engaged in fishing",
	UnderWaySailing:            "under way sailing",
	ReservedHSC:                "reserved for HSC",
	ReservedWIG:                "reserved for WIG",
	AISSARTActive:              "AIS-SART active",
	NavigationStatusNotDefined: "not defined",
}

func (s NavigationStatus) String() string {
	if name, ok := navigationStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("reserved (%d)", uint8(s))
}

// ManeuverIndicator is the 2-bit special manoeuvre flag.
type ManeuverIndicator uint8

const (
	ManeuverNotAvailable ManeuverIndicator = iota
	NoSpecialManeuver
	SpecialManeuver
)

func (m ManeuverIndicator) String() string {
	switch m {
	case ManeuverNotAvailable:
		return "not available"
	case NoSpecialManeuver:
		return "no special maneuver"
	case SpecialManeuver:
		return "special maneuver"
	}
	return fmt.Sprintf("reserved (%d)", uint8(m))
}

// CommunicationState is the 19-bit radio status field. Its leading bits
// carry the synchronisation state.
type CommunicationState uint32

const (
	SyncUTCDirect CommunicationState = iota
	SyncUTCIndirect
	SyncBaseStation
	SyncOtherStation
)

func (c CommunicationState) String() string {
	switch c {
	case SyncUTCDirect:
		return "UTC direct"
	case SyncUTCIndirect:
		return "UTC indirect"
	case SyncBaseStation:
		return "base station"
	case SyncOtherStation:
		return "other station"
	}
	return fmt.Sprintf("0x%05x", uint32(c))
}

// PositionFixType is the 4-bit type of electronic position fixing device.
type PositionFixType uint8

const (
	FixUndefined PositionFixType = iota
	FixGPS
	FixGLONASS
	FixGPSGLONASS
	FixLoranC
	FixChayka
	FixIntegratedNavigation
	FixSurveyed
	FixGalileo
)

var positionFixNames = []string{
	"undefined", "GPS", "GLONASS", "GPS/GLONASS", "Loran-C", "Chayka",
	"integrated navigation system", "surveyed", "Galileo",
}

func (p PositionFixType) String() string {
	if int(p) < len(positionFixNames) {
		return positionFixNames[p]
	}
	return fmt.Sprintf("reserved (%d)", uint8(p))
}

// Version is the 2-bit AIS version indicator of a static data report.
type Version uint8

func (v Version) String() string {
	return fmt.Sprintf("ITU-R M.1371-%d", uint8(v)+1)
}

// ShipType is the 8-bit type of ship and cargo.
type ShipType uint8

const (
	ShipTypeNotAvailable ShipType = 0
	WIG                  ShipType = 20
	Fishing              ShipType = 30
	Towing               ShipType = 31
	TowingLarge          ShipType = 32
	Dredging             ShipType = 33
	Diving               ShipType = 34
	Military             ShipType = 35
	Sailing              ShipType = 36
	PleasureCraft        ShipType = 37
	HighSpeedCraft       ShipType = 40
	PilotVessel          ShipType = 50
	SearchAndRescue      ShipType = 51
	Tug                  ShipType = 52
	PortTender           ShipType = 53
	AntiPollution        ShipType = 54
	LawEnforcement       ShipType = 55
	MedicalTransport     ShipType = 58
	Noncombatant         ShipType = 59
	Passenger            ShipType = 60
	Cargo                ShipType = 70
	Tanker               ShipType = 80
	OtherType            ShipType = 90
)

var shipTypeNames = map[ShipType]string{
	ShipTypeNotAvailable: "not available",
	Fishing:              "fishing",
	Towing:               "towing",
	TowingLarge:          "towing, length exceeds 200m or breadth exceeds 25m",
	Dredging:             "dredging or underwater ops",
	Diving:               "diving ops",
	Military:             "military ops",
	Sailing:              "sailing",
	PleasureCraft:        "pleasure craft",
	PilotVessel:          "pilot vessel",
	SearchAndRescue:      "search and rescue vessel",
	Tug:                  "tug",
	PortTender:           "port tender",
	AntiPollution:        "anti-pollution equipment",
	LawEnforcement:       "law enforcement",
	56:                   "spare, local vessel",
	57:                   "spare, local vessel",
	MedicalTransport:     "medical transport",
	Noncombatant:         "noncombatant ship",
}

// shipTypeGroups names the decades whose last digit is a hazard category.
var shipTypeGroups = map[ShipType]string{
	WIG:            "wing in ground",
	HighSpeedCraft: "high speed craft",
	Passenger:      "passenger",
	Cargo:          "cargo",
	Tanker:         "tanker",
	OtherType:      "other type",
}

var hazardCategories = []string{"all ships of this type", "hazardous category A",
	"hazardous category B", "hazardous category C", "hazardous category D"}

func (s ShipType) String() string {
	if name, ok := shipTypeNames[s]; ok {
		return name
	}
	group, ok := shipTypeGroups[s/10*10]
	if !ok {
		return fmt.Sprintf("reserved (%d)", uint8(s))
	}
	switch digit := s % 10; {
	case int(digit) < len(hazardCategories):
		return group + ", " + hazardCategories[digit]
	case digit == 9:
		return group + ", no additional information"
	}
	return group + ", reserved"
}

// Dimensions are the distances from the position reference point to the
// bow (A), stern (B), port (C) and starboard (D), in metres.
type Dimensions struct {
	ToBow       uint16
	ToStern     uint16
	ToPort      uint8
	ToStarboard uint8
}

func (d Dimensions) write(w *writer) {
	w.uint(9, uint32(d.ToBow))
	w.uint(9, uint32(d.ToStern))
	w.uint(6, uint32(d.ToPort))
	w.uint(6, uint32(d.ToStarboard))
}

func readDimensions(r *reader) Dimensions {
	return Dimensions{
		ToBow:       uint16(r.uint(9)),
		ToStern:     uint16(r.uint(9)),
		ToPort:      uint8(r.uint(6)),
		ToStarboard: uint8(r.uint(6)),
	}
}

// Length returns the overall length in metres.
func (d Dimensions) Length() int {
	return int(d.ToBow) + int(d.ToStern)
}

// Beam returns the overall breadth in metres.
func (d Dimensions) Beam() int {
	return int(d.ToPort) + int(d.ToStarboard)
}
