package ais

import (
	"aisproto/tms/nmea"
	"aisproto/tms/util/bits"
	"aisproto/tms/util/units"
)

// reader walks a message buffer field by field.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) seek(pos int) *reader {
	r.pos = pos
	return r
}

func (r *reader) uint(width int) uint32 {
	v := bits.Uint(r.buf, r.pos, width)
	r.pos += width
	return v
}

func (r *reader) int(width int) int32 {
	v := bits.Int(r.buf, r.pos, width)
	r.pos += width
	return v
}

func (r *reader) bool() bool {
	return r.uint(1) == 1
}

func (r *reader) text(width int) string {
	v := nmea.DecodeText(r.buf, r.pos, width)
	r.pos += width
	return v
}

func (r *reader) degrees(width int) float64 {
	return units.FromMinuteScale(r.int(width))
}

func (r *reader) tenths(width int) float64 {
	return units.FromTenths(r.uint(width))
}

func (r *reader) speed() uint32 {
	return units.FromTenthsKnotsToKmh(r.uint(10))
}

// writer fills a freshly allocated message buffer field by field.
type writer struct {
	buf []byte
	pos int
}

func newWriter(bytes int) *writer {
	return &writer{buf: make([]byte, bytes)}
}

func (w *writer) seek(pos int) *writer {
	w.pos = pos
	return w
}

func (w *writer) uint(width int, v uint32) {
	bits.SetUint(w.buf, w.pos, width, v)
	w.pos += width
}

func (w *writer) int(width int, v int32) {
	bits.SetInt(w.buf, w.pos, width, v)
	w.pos += width
}

func (w *writer) bool(v bool) {
	bits.SetBool(w.buf, w.pos, v)
	w.pos++
}

func (w *writer) text(width int, v string) {
	nmea.EncodeText(w.buf, w.pos, width, v)
	w.pos += width
}

func (w *writer) degrees(width int, v float64) {
	w.int(width, units.ToMinuteScale(v))
}

func (w *writer) tenths(width int, v float64) {
	w.uint(width, units.ToTenths(v))
}

func (w *writer) speed(kmh uint32) {
	w.uint(10, units.FromKmhToTenthsKnots(kmh))
}

// spare skips reserved bits, left zero.
func (w *writer) spare(width int) {
	w.pos += width
}
