package nmea

import (
	"strings"
	"unicode"

	"aisproto/tms/util/bits"
)

// textAlphabet is the AIS 6-bit character table, indexed by code.
const textAlphabet = "@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_ !\"#$%&'()*+,-./0123456789:;<=>?"

const unknownTextCode = 63 // '?'

// DecodeText reads width/6 characters starting at bit start. Trailing spaces
// are trimmed.
func DecodeText(buf []byte, start, width int) string {
	text := make([]byte, width/6)
	for i := range text {
		text[i] = textAlphabet[bits.Uint(buf, start+i*6, 6)]
	}
	return strings.TrimRight(string(text), " ")
}

// EncodeText writes width/6 characters of value starting at bit start.
// value is upper-cased, truncated or padded with spaces to fit, and
// characters outside the alphabet are written as '?'.
func EncodeText(buf []byte, start, width int, value string) {
	text := PadText(value, width/6)
	for i := 0; i < len(text); i++ {
		bits.SetUint(buf, start+i*6, 6, uint32(textCode(text[i])))
	}
}

// NormalizeText upper-cases value and replaces every character outside the
// alphabet with '?', so the result holds one byte per character.
func NormalizeText(value string) string {
	return strings.Map(func(r rune) rune {
		r = unicode.ToUpper(r)
		if r < unicode.MaxASCII && strings.IndexByte(textAlphabet, byte(r)) >= 0 {
			return r
		}
		return '?'
	}, value)
}

// PadText normalizes value and truncates or space pads it to n characters.
func PadText(value string, n int) string {
	value = NormalizeText(value)
	if len(value) >= n {
		return value[:n]
	}
	return value + strings.Repeat(" ", n-len(value))
}

func textCode(c byte) byte {
	if i := strings.IndexByte(textAlphabet, c); i >= 0 {
		return byte(i)
	}
	return unknownTextCode
}
