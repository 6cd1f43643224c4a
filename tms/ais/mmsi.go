package ais

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Maritime Mobile Service Identities
// https://www.navcen.uscg.gov/?pageName=mtmmsi#format
//
// Maritime Identification Digits (MID) are three digit identifiers ranging
// from 201 to 775 denoting the administration (country) or geographical area
// of the administration responsible for the station so identified.

const (
	maxMMSI = 999999999
	minMID  = 201
	maxMID  = 775
)

var (
	// ErrMMSIFormat is returned for identities outside of any MMSI format
	ErrMMSIFormat = errors.New("malformed mmsi")
	// ErrMID is returned for a maritime identification digits out of range
	ErrMID = errors.New("expected MID number [201-775]")
)

// StationKind is the kind of station an MMSI format designates.
type StationKind uint8

const (
	ShipStation StationKind = iota
	GroupOfShips
	CoastStation
	AllCoastStations
	SARAircraft
	AidToNavigation
	AuxiliaryCraft
	HandheldVHF
	SARTransmitter
	ManOverboard
	EPIRB
)

var stationKindNames = []string{
	"ship", "group of ships", "coast station", "all coast stations",
	"SAR aircraft", "aid to navigation", "auxiliary craft", "handheld VHF",
	"AIS-SART", "man overboard", "EPIRB-AIS",
}

func (k StationKind) String() string {
	if int(k) < len(stationKindNames) {
		return stationKindNames[k]
	}
	return fmt.Sprintf("StationKind(%d)", uint8(k))
}

// FormatMMSI renders an MMSI as nine zero padded digits.
func FormatMMSI(mmsi uint32) string {
	return fmt.Sprintf("%09d", mmsi)
}

// ClassifyMMSI returns the kind of station mmsi designates, checking its MID
// where the format carries one.
func ClassifyMMSI(mmsi uint32) (StationKind, error) {
	if mmsi > maxMMSI {
		return 0, errors.Wrapf(ErrMMSIFormat, "%d has more than 9 digits", mmsi)
	}
	s := FormatMMSI(mmsi)
	switch {
	case s[:5] == "00999":
		return AllCoastStations, nil
	case s[:2] == "00":
		return CoastStation, mid(s, 2)
	case s[0] == '0':
		return GroupOfShips, mid(s, 1)
	case s[:3] == "111":
		return SARAircraft, mid(s, 3)
	case s[0] == '8':
		return HandheldVHF, mid(s, 1)
	case s[:2] == "99":
		return AidToNavigation, mid(s, 2)
	case s[:2] == "98":
		return AuxiliaryCraft, mid(s, 2)
	case s[:3] == "970":
		return SARTransmitter, nil
	case s[:3] == "972":
		return ManOverboard, nil
	case s[:3] == "974":
		return EPIRB, nil
	case s[0] == '9':
		return 0, errors.Wrapf(ErrMMSIFormat, "%v", s)
	}
	return ShipStation, mid(s, 0)
}

func mid(s string, start int) error {
	number, _ := strconv.Atoi(s[start : start+3])
	if number < minMID || number > maxMID {
		return errors.Wrapf(ErrMID, "%v has %03d", s, number)
	}
	return nil
}
