package wkb

import (
	"encoding/binary"
	"math"
)

// ByteWriter is a growable buffer that writes multibyte values honoring a
// caller-chosen byte order (spec.md §4.1).
type ByteWriter struct {
	buf   []byte
	order binary.ByteOrder
}

// NewByteWriter creates a writer that encodes multibyte values using
// order.
func NewByteWriter(order ByteOrder) *ByteWriter {
	bo, err := order.binary()
	if err != nil {
		bo = binary.LittleEndian
	}
	return &ByteWriter{order: bo}
}

// WriteByte writes a single byte; it is endian-irrelevant.
func (w *ByteWriter) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// WriteUInt32 writes a uint32 honoring the writer's byte order.
func (w *ByteWriter) WriteUInt32(v uint32) error {
	var tmp [4]byte
	w.order.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
	return nil
}

// WriteInt32 writes an int32 honoring the writer's byte order.
func (w *ByteWriter) WriteInt32(v int32) error {
	return w.WriteUInt32(uint32(v))
}

// WriteDouble writes an IEEE-754 binary64 honoring the writer's byte
// order.
func (w *ByteWriter) WriteDouble(v float64) error {
	var tmp [8]byte
	w.order.PutUint64(tmp[:], math.Float64bits(v))
	w.buf = append(w.buf, tmp[:]...)
	return nil
}

// Bytes returns the accumulated output.
func (w *ByteWriter) Bytes() []byte {
	return w.buf
}
