package main

import (
	"strings"
	"time"

	"github.com/pborman/uuid"

	"aisproto/tms/ais"
)

// Record is one decoded sentence as it is written out or published.
type Record struct {
	UUID     string      `json:"uuid"`
	Received time.Time   `json:"received"`
	Type     string      `json:"type"`
	ID       uint8       `json:"id"`
	MMSI     string      `json:"mmsi"`
	Station  string      `json:"station,omitempty"`
	Sentence string      `json:"sentence"`
	Message  ais.Message `json:"message"`
}

type lineDecoder struct {
	dec    *ais.Decoder
	strict bool
}

func newLineDecoder(strict, legacy bool) *lineDecoder {
	dec := ais.NewDecoder()
	dec.AcceptLegacyAircraftID = legacy
	return &lineDecoder{dec: dec, strict: strict}
}

// Decode returns nil, nil for blank lines.
func (d *lineDecoder) Decode(line string) (*Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	m, err := d.dec.DecodeSentence(line, d.strict)
	if err != nil {
		return nil, err
	}
	h := m.GetHeader()
	var station string
	if kind, err := ais.ClassifyMMSI(h.MMSI); err == nil {
		station = kind.String()
	}
	return &Record{
		UUID:     uuid.New(),
		Received: d.dec.Clock.Now(),
		Type:     ais.Name(m),
		ID:       h.MessageID,
		MMSI:     ais.FormatMMSI(h.MMSI),
		Station:  station,
		Sentence: line,
		Message:  m,
	}, nil
}
