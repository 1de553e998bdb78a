package wkb

import (
	"encoding/binary"
	"math"
)

// ByteReader is a cursor over an immutable byte buffer, with a byte order
// that can be switched mid-stream (spec.md §4.1) — every WKB record
// declares its own order in its first byte, and child records may declare
// a different order than their parent.
type ByteReader struct {
	buf      []byte
	pos      int
	order    binary.ByteOrder
	orderTag ByteOrder
}

// NewByteReader wraps buf for reading, using defaultOrder for any read
// performed before SetByteOrder is next called.
func NewByteReader(buf []byte, defaultOrder ByteOrder) *ByteReader {
	bo, err := defaultOrder.binary()
	if err != nil {
		// Callers are expected to pass XDR or NDR; fall back to NDR for
		// an invalid default rather than panicking, since the default
		// order affects nothing but the (never-read) initial state.
		bo = binary.LittleEndian
		defaultOrder = NDR
	}
	return &ByteReader{buf: buf, order: bo, orderTag: defaultOrder}
}

// SetByteOrder switches the order used for subsequent multibyte reads.
func (r *ByteReader) SetByteOrder(order ByteOrder) error {
	bo, err := order.binary()
	if err != nil {
		return err
	}
	r.order = bo
	r.orderTag = order
	return nil
}

// ByteOrder returns the order currently in effect for multibyte reads.
func (r *ByteReader) ByteOrder() ByteOrder { return r.orderTag }

// Remaining returns the number of unread bytes.
func (r *ByteReader) Remaining() int {
	return len(r.buf) - r.pos
}

func (r *ByteReader) need(n int) error {
	if r.Remaining() < n {
		return &TruncatedError{Reason: "read past end of buffer"}
	}
	return nil
}

// ReadByte reads a single byte; it is endian-irrelevant.
func (r *ByteReader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadUInt32 reads a uint32 honoring the current byte order.
func (r *ByteReader) ReadUInt32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.order.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// ReadInt32 reads an int32 honoring the current byte order.
func (r *ByteReader) ReadInt32() (int32, error) {
	v, err := r.ReadUInt32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadDouble reads an IEEE-754 binary64 honoring the current byte order.
func (r *ByteReader) ReadDouble() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := r.order.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return math.Float64frombits(bits), nil
}
