package ttyrec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

// Writer encodes frames into a ttyrec stream.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
	buf   [HeaderSize]byte
}

// NewWriter returns a Writer encoding frames to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := newOptions(opts)
	return &Writer{w: w, order: o.order}
}

// WriteFrame writes payload as a frame recorded at t.
func (w *Writer) WriteFrame(t time.Time, payload []byte) error {
	if len(payload) > math.MaxInt32 {
		return fmt.Errorf("payload of %d bytes does not fit a frame", len(payload))
	}
	return w.Write(HeaderAt(t, len(payload)), payload)
}

// Write writes a frame with an explicit header. The header length must match the payload.
func (w *Writer) Write(h Header, payload []byte) error {
	if int(h.Len) != len(payload) {
		return fmt.Errorf("header announces %d bytes, payload has %d", h.Len, len(payload))
	}

	h.encode(w.order, w.buf[:])
	if _, err := w.w.Write(w.buf[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}
