// Package nmea contains parsers and structures to maintain nmea messages.
package nmea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// chars that indicates the start of a sentence.
	sentenceStart1 = "$"
	sentenceStart2 = "!"
	//  token to delimit fields of a sentence.
	fieldSep = ","
	// The token to delimit the checksum of a sentence.
	checksumSep = "*"
	lineEnd     = "\r\n"
)

var (
	ErrNoStart          = errors.New("sentence does not start with '$' or '!'")
	ErrBadAddress       = errors.New("sentence address field is malformed")
	ErrChecksumSep      = errors.New("sentence contains more than one checksum separator")
	ErrNoChecksum       = errors.New("sentence has no checksum")
	ErrChecksumMismatch = errors.New("sentence checksum mismatch")
	ErrNotVDM           = errors.New("sentence is not an AIS VDM/VDO sentence")
)

// PrefixAIS lists the sentence formats that carry AIS payloads.
var PrefixAIS = []string{"VDO", "VDM"}

var aisTalkers = []string{"AB", "AD", "AI", "AN", "AR", "AS", "AT", "AX", "BS", "SA"}

// BaseSentence contains general information about an NMEA sentence
type BaseSentence struct {
	SOS      string   // the sentence start $ or !
	Talker   string   // the sentence talker (e.g AI)
	Format   string   // The sentence format (e.g VDM)
	Fields   []string // Array of fields
	Checksum string   // Checksum, empty when the sentence carries none
	Raw      string   // The raw NMEA sentence received
}

// Parse splits a raw sentence into its parts. The checksum is not verified,
// see SumOK.
func Parse(raw string) (*BaseSentence, error) {
	s := &BaseSentence{Raw: raw}
	line := strings.TrimSpace(raw)
	if !strings.HasPrefix(line, sentenceStart1) && !strings.HasPrefix(line, sentenceStart2) {
		return nil, ErrNoStart
	}
	s.SOS, line = line[:1], line[1:]

	switch strings.Count(line, checksumSep) {
	case 0:
	case 1:
		i := strings.Index(line, checksumSep)
		s.Checksum = strings.ToUpper(line[i+1:])
		line = line[:i]
	default:
		return nil, ErrChecksumSep
	}

	fields := strings.Split(line, fieldSep)
	address := fields[0]
	if len(address) < 3 {
		return nil, errors.Wrapf(ErrBadAddress, "%q", address)
	}
	s.Talker, s.Format = address[:2], address[2:]
	s.Fields = fields[1:]
	return s, nil
}

// SumOK checks the transmitted checksum against the one computed over the
// sentence body.
func (s *BaseSentence) SumOK() error {
	if s.Checksum == "" {
		return ErrNoChecksum
	}
	if calculated := Checksum(strings.TrimSpace(s.Raw)); calculated != s.Checksum {
		return errors.Wrapf(ErrChecksumMismatch, "[%s != %s]", calculated, s.Checksum)
	}
	return nil
}

// IsAIS reports whether the sentence comes from an AIS device.
func (s *BaseSentence) IsAIS() bool {
	return s.SOS == sentenceStart2 && contains(aisTalkers, s.Talker) && contains(PrefixAIS, s.Format)
}

// VDM is an AIS VDM or VDO sentence, own or other vessel data.
type VDM struct {
	BaseSentence
	FragmentCount  int
	FragmentNumber int
	SequenceID     string
	Channel        string
	Payload        string
	FillBits       int
}

// ParseVDM parses an AIS VDM/VDO sentence. strict additionally verifies the
// checksum.
func ParseVDM(raw string, strict bool) (*VDM, error) {
	s, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if !s.IsAIS() {
		return nil, errors.Wrapf(ErrNotVDM, "%s%s", s.Talker, s.Format)
	}
	if strict {
		if err := s.SumOK(); err != nil {
			return nil, err
		}
	}
	if len(s.Fields) != 6 {
		return nil, errors.Errorf("VDM sentence has %d fields, want 6", len(s.Fields))
	}
	v := &VDM{
		BaseSentence: *s,
		SequenceID:   s.Fields[2],
		Channel:      s.Fields[3],
		Payload:      s.Fields[4],
	}
	if v.FragmentCount, err = strconv.Atoi(s.Fields[0]); err != nil {
		return nil, errors.Wrap(err, "fragment count")
	}
	if v.FragmentNumber, err = strconv.Atoi(s.Fields[1]); err != nil {
		return nil, errors.Wrap(err, "fragment number")
	}
	if v.FillBits, err = strconv.Atoi(s.Fields[5]); err != nil {
		return nil, errors.Wrap(err, "fill bits")
	}
	return v, nil
}

// Checksum returns the XOR of the sentence body as two uppercase hex digits.
// A leading '$' or '!', trailing line endings and anything from the last '*'
// on are excluded, so both bare bodies and complete sentences are accepted.
func Checksum(sentence string) string {
	body := strings.TrimRight(sentence, lineEnd)
	if strings.HasPrefix(body, sentenceStart1) || strings.HasPrefix(body, sentenceStart2) {
		body = body[1:]
	}
	if i := strings.LastIndex(body, checksumSep); i >= 0 {
		body = body[:i]
	}
	var checksum uint8
	for i := 0; i < len(body); i++ {
		checksum ^= body[i]
	}
	return fmt.Sprintf("%02X", checksum)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
