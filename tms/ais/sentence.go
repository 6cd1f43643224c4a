package ais

import (
	"strings"

	"github.com/pkg/errors"

	"aisproto/tms/nmea"
)

// EncodePayload returns the armored payload of m, or "" for a nil message.
func EncodePayload(m Message) string {
	if m == nil {
		return ""
	}
	return nmea.Armor(m.Encode())
}

// EncodeSentence returns m framed as a single VDM sentence ending in CR LF,
// or "" for a nil message.
func EncodeSentence(m Message) string {
	if m == nil {
		return ""
	}
	return nmea.Frame(EncodePayload(m))
}

// EncodeSentenceBytes is EncodeSentence as ASCII bytes.
func EncodeSentenceBytes(m Message) []byte {
	return []byte(EncodeSentence(m))
}

// EncodeSentences concatenates the sentences of msgs, e.g. a position report
// followed by the vessel's static data.
func EncodeSentences(msgs ...Message) string {
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(EncodeSentence(m))
	}
	return b.String()
}

// DecodePayload decodes an armored payload with the default decoder.
func DecodePayload(payload string) (Message, error) {
	return defaultDecoder.DecodePayload(payload)
}

// DecodeSentence decodes a VDM/VDO sentence with the default decoder.
func DecodeSentence(sentence string) (Message, error) {
	return defaultDecoder.DecodeSentence(sentence, false)
}

func (d *Decoder) DecodePayload(payload string) (Message, error) {
	return d.Decode(nmea.Dearmor(payload))
}

// DecodeSentence decodes a single-fragment VDM/VDO sentence. strict rejects
// sentences whose checksum is missing or wrong.
func (d *Decoder) DecodeSentence(sentence string, strict bool) (Message, error) {
	vdm, err := nmea.ParseVDM(sentence, strict)
	if err != nil {
		return nil, err
	}
	if vdm.FragmentCount != 1 {
		return nil, errors.Wrapf(ErrFragmented, "fragment %d of %d", vdm.FragmentNumber, vdm.FragmentCount)
	}
	return d.DecodePayload(vdm.Payload)
}
