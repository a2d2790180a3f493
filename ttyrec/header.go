// Package ttyrec decodes and encodes ttyrec recordings.
//
// A recording is a sequence of frames, each a 12 byte header of three signed
// 32-bit integers (seconds, microseconds, payload length) followed by the
// payload bytes. There is no file header and no footer; the stream may only
// end on a frame boundary.
package ttyrec

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// HeaderSize is the encoded size of a Header.
const HeaderSize = 12

// Header is the fixed framing record preceding every payload.
type Header struct {
	Sec  int32
	Usec int32
	Len  int32
}

// Time returns the timestamp of the frame in seconds.
func (h Header) Time() float64 {
	return float64(h.Sec) + float64(h.Usec)/1_000_000
}

// HeaderAt builds the header of a payload of n bytes recorded at t.
func HeaderAt(t time.Time, n int) Header {
	return Header{
		Sec:  int32(t.Unix()),
		Usec: int32(t.Nanosecond() / 1000),
		Len:  int32(n),
	}
}

func decodeHeader(order binary.ByteOrder, b []byte) (h Header) {
	h.Sec = int32(order.Uint32(b[0:4]))
	h.Usec = int32(order.Uint32(b[4:8]))
	h.Len = int32(order.Uint32(b[8:12]))
	return h
}

func (h Header) encode(order binary.ByteOrder, b []byte) {
	order.PutUint32(b[0:4], uint32(h.Sec))
	order.PutUint32(b[4:8], uint32(h.Usec))
	order.PutUint32(b[8:12], uint32(h.Len))
}

// Frame is one decoded record.
type Frame struct {
	Header  Header
	Payload []byte
}

// Time returns the timestamp of the frame in seconds.
func (f *Frame) Time() float64 {
	return f.Header.Time()
}

// ParseByteOrder resolves the name of a header byte order.
// Recordings are almost always little-endian since ttyrec wrote its headers in
// host order and x86 hosts produced most of them.
func ParseByteOrder(name string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "little", "le", "little-endian":
		return binary.LittleEndian, nil
	case "big", "be", "big-endian":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q (expected little or big)", name)
	}
}

type options struct {
	order binary.ByteOrder
}

// Option configures a Reader or a Writer.
type Option func(*options)

// WithByteOrder sets the byte order of frame headers. Little-endian by default.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		if order != nil {
			o.order = order
		}
	}
}

func newOptions(opts []Option) options {
	o := options{order: binary.LittleEndian}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
