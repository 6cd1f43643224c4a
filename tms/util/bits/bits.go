// Package bits reads and writes integer fields at arbitrary bit offsets of a
// byte buffer. Bit 0 is the most significant bit of the first byte.
package bits

// Uint returns the width bits starting at bit start as an unsigned value.
// width must be in [1, 32] and the field must lie inside buf.
func Uint(buf []byte, start, width int) uint32 {
	var v uint32
	for i := start; i < start+width; i++ {
		v = v<<1 | uint32(buf[i/8]>>uint(7-i%8)&1)
	}
	return v
}

// Int returns the field as a two's complement value of the given width.
func Int(buf []byte, start, width int) int32 {
	v := Uint(buf, start, width)
	if width < 32 && v&(1<<uint(width-1)) != 0 {
		v |= ^uint32(0) << uint(width)
	}
	return int32(v)
}

// SetUint stores the low width bits of value at bit start. Bits outside the
// field are left untouched.
func SetUint(buf []byte, start, width int, value uint32) {
	for i := 0; i < width; i++ {
		pos := start + i
		shift := uint(7 - pos%8)
		bit := byte(value>>uint(width-1-i)) & 1
		buf[pos/8] = buf[pos/8]&^(1<<shift) | bit<<shift
	}
}

// SetInt stores value in two's complement form, truncated to width bits.
func SetInt(buf []byte, start, width int, value int32) {
	SetUint(buf, start, width, uint32(value))
}

// Bool reports whether the single bit at pos is set.
func Bool(buf []byte, pos int) bool {
	return Uint(buf, pos, 1) == 1
}

// SetBool sets or clears the single bit at pos.
func SetBool(buf []byte, pos int, value bool) {
	var v uint32
	if value {
		v = 1
	}
	SetUint(buf, pos, 1, v)
}
