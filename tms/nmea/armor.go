package nmea

import "aisproto/tms/util/bits"

// DecodeAisChar maps a payload character to its 6-bit value.
func DecodeAisChar(character byte) byte {
	character -= 48
	if character > 39 {
		character -= 8
	}
	return character & 0x3f
}

// EncodeAisChar maps a 6-bit value to its payload character.
func EncodeAisChar(value byte) byte {
	character := value&0x3f + 48
	if character > 87 {
		character += 8
	}
	return character
}

// MessageType returns the type of an AIS message from its armored payload.
func MessageType(payload string) uint8 {
	if payload == "" {
		return 0
	}
	return DecodeAisChar(payload[0])
}

// Armor packs data into payload characters, six bits per character. A
// trailing partial group is zero padded, so len(data)*8 bits always fit in
// ceil(len(data)*8/6) characters.
func Armor(data []byte) string {
	n := (len(data)*8 + 5) / 6
	padded := make([]byte, (n*6+7)/8)
	copy(padded, data)
	out := make([]byte, n)
	for i := range out {
		out[i] = EncodeAisChar(byte(bits.Uint(padded, i*6, 6)))
	}
	return string(out)
}

// Dearmor unpacks payload characters into ceil(len(payload)*6/8) bytes.
func Dearmor(payload string) []byte {
	out := make([]byte, (len(payload)*6+7)/8)
	for i := 0; i < len(payload); i++ {
		bits.SetUint(out, i*6, 6, uint32(DecodeAisChar(payload[i])))
	}
	return out
}
