package wkb

import "encoding/binary"

// ByteOrder is the WKB byte-order code written as the first byte of every
// record. There are exactly two: big-endian (XDR) and little-endian (NDR).
type ByteOrder byte

const (
	// XDR is the big-endian byte order (WKB code 0x00).
	XDR ByteOrder = 0
	// NDR is the little-endian byte order (WKB code 0x01).
	NDR ByteOrder = 1
)

// binary returns the encoding/binary.ByteOrder implementation for o.
func (o ByteOrder) binary() (binary.ByteOrder, error) {
	switch o {
	case XDR:
		return binary.BigEndian, nil
	case NDR:
		return binary.LittleEndian, nil
	default:
		return nil, &MalformedHeaderError{Reason: "unknown byte order byte"}
	}
}

func (o ByteOrder) String() string {
	switch o {
	case XDR:
		return "XDR(big-endian)"
	case NDR:
		return "NDR(little-endian)"
	default:
		return "invalid byte order"
	}
}
