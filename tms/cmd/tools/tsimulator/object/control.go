package object

import (
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/pkg/errors"

	"aisproto/tms/ais"
	"aisproto/tms/log"
	"aisproto/tms/util/clock"
)

// ErrVesselNotFound is used to point out a vessel is not simulated
var ErrVesselNotFound = errors.New("the vessel is not found")

const tableVessel = "vessel"

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableVessel: {
			Name: tableVessel,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"class": {
					Name:    "class",
					Indexer: &memdb.StringFieldIndex{Field: "Class"},
				},
			},
		},
	},
}

// row is a stored vessel. Rows are never modified once inserted.
type row struct {
	ID     string
	Class  string
	Vessel Vessel
}

func newRow(v Vessel) *row {
	return &row{ID: ais.FormatMMSI(v.MMSI), Class: v.Class, Vessel: v}
}

// Control works as a storage of vessels and provides moving, updating and
// reporting them safely
type Control struct {
	memDb    *memdb.MemDB
	stations []Station
	clk      clock.C
}

// NewControl returns a control of the given stations and vessels.
func NewControl(stations []Station, vessels []Vessel, clk clock.C) (*Control, error) {
	if clk == nil {
		clk = &clock.Real{}
	}
	memDb, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	c := &Control{
		memDb:    memDb,
		stations: stations,
		clk:      clk,
	}
	for _, v := range vessels {
		if err := c.Put(v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Put adds a vessel or replaces the one with the same MMSI.
func (c *Control) Put(v Vessel) error {
	if err := v.Init(); err != nil {
		return err
	}
	txn := c.memDb.Txn(true)
	if err := txn.Insert(tableVessel, newRow(v)); err != nil {
		txn.Abort()
		return err
	}
	txn.Commit()
	return nil
}

func (c *Control) Get(mmsi uint32) (Vessel, error) {
	txn := c.memDb.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(tableVessel, "id", ais.FormatMMSI(mmsi))
	if err != nil {
		return Vessel{}, err
	}
	if raw == nil {
		return Vessel{}, errors.Wrap(ErrVesselNotFound, ais.FormatMMSI(mmsi))
	}
	return raw.(*row).Vessel, nil
}

func (c *Control) Delete(mmsi uint32) error {
	txn := c.memDb.Txn(true)
	n, err := txn.DeleteAll(tableVessel, "id", ais.FormatMMSI(mmsi))
	if err != nil {
		txn.Abort()
		return err
	}
	if n == 0 {
		txn.Abort()
		return errors.Wrap(ErrVesselNotFound, ais.FormatMMSI(mmsi))
	}
	txn.Commit()
	return nil
}

// List returns the vessels ordered by MMSI.
func (c *Control) List() []Vessel {
	return c.list("id")
}

// ListClass returns the vessels of the transceiver class A or B.
func (c *Control) ListClass(class string) []Vessel {
	return c.list("class", strings.ToUpper(class))
}

func (c *Control) list(index string, args ...interface{}) []Vessel {
	txn := c.memDb.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(tableVessel, index, args...)
	if err != nil {
		log.Error("list vessels by %v: %v", index, err)
		return nil
	}
	ret := []Vessel{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		ret = append(ret, raw.(*row).Vessel)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].MMSI < ret[j].MMSI })
	return ret
}

func (c *Control) Stations() []Station {
	return c.stations
}

// Move advances every vessel by d.
func (c *Control) Move(d time.Duration) {
	txn := c.memDb.Txn(true)
	it, err := txn.Get(tableVessel, "id")
	if err != nil {
		txn.Abort()
		log.Error("move vessels: %v", err)
		return
	}
	var moved []*row
	for raw := it.Next(); raw != nil; raw = it.Next() {
		v := raw.(*row).Vessel
		v.Move(d)
		moved = append(moved, newRow(v))
	}
	for _, r := range moved {
		if err := txn.Insert(tableVessel, r); err != nil {
			txn.Abort()
			log.Error("move %v: %v", r.ID, err)
			return
		}
	}
	txn.Commit()
}

// visible reports whether some station sees p. Without stations every vessel
// is visible.
func (c *Control) visible(p Point) bool {
	if len(c.stations) == 0 {
		return true
	}
	for i := range c.stations {
		if c.stations[i].Sees(p) {
			return true
		}
	}
	return false
}

// Messages returns the station reports followed by the position report of
// every visible vessel, each followed by its static data when static is set.
func (c *Control) Messages(static bool) []ais.Message {
	now := c.clk.Now()
	var msgs []ais.Message
	for i := range c.stations {
		msgs = append(msgs, c.stations[i].Report(now))
	}
	for _, v := range c.List() {
		if !c.visible(v.Position) {
			log.Debug("%v is out of range", ais.FormatMMSI(v.MMSI))
			continue
		}
		msgs = append(msgs, v.PositionReport(now))
		if static {
			msgs = append(msgs, v.StaticData(now))
		}
	}
	return msgs
}

// Packet is Messages framed as consecutive VDM sentences.
func (c *Control) Packet(static bool) string {
	return ais.EncodeSentences(c.Messages(static)...)
}
