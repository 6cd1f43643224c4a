package object

import (
	"time"

	"aisproto/tms/ais"
)

// Station is a shore receiver. It reports itself with base station reports
// and relays the vessels within its radius.
type Station struct {
	Name     string  `json:"name"`
	MMSI     uint32  `json:"mmsi"`
	Position Point   `json:"position"`
	RadiusNM float64 `json:"radius_nm"`
}

// Sees reports whether p is within the station range. A station without a
// radius sees everything.
func (st *Station) Sees(p Point) bool {
	if st.RadiusNM <= 0 {
		return true
	}
	return st.Position.DistanceNM(p) <= st.RadiusNM
}

// Report returns the type 4 report of the station at now.
func (st *Station) Report(now time.Time) ais.Message {
	m := ais.NewBaseStationReport()
	m.MMSI = st.MMSI
	utc := now.UTC().Truncate(time.Second)
	m.UTC = &utc
	m.Accuracy = true
	m.Longitude = st.Position.lon()
	m.Latitude = st.Position.lat()
	m.PositionFix = ais.FixSurveyed
	return m
}
