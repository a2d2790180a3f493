package ttyrec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
)

var (
	// ErrMalformed is wrapped by every error caused by an invalid stream.
	ErrMalformed = errors.New("malformed ttyrec stream")

	// ErrTruncatedHeader means the stream ended inside a frame header.
	ErrTruncatedHeader = fmt.Errorf("%w: truncated frame header", ErrMalformed)

	// ErrTruncatedPayload means the stream ended before the announced payload length.
	ErrTruncatedPayload = fmt.Errorf("%w: truncated frame payload", ErrMalformed)

	// ErrNegativeLength means a header announced a negative payload length.
	ErrNegativeLength = fmt.Errorf("%w: negative payload length", ErrMalformed)
)

// Reader decodes frames from a ttyrec stream, strictly in order.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [HeaderSize]byte
	index int
}

// NewReader returns a Reader decoding frames from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := newOptions(opts)
	return &Reader{r: r, order: o.order}
}

// Next decodes the following frame.
// It returns io.EOF once the stream ends on a frame boundary. A stream ending
// anywhere else yields an error wrapping ErrMalformed.
func (r *Reader) Next() (*Frame, error) {
	n, err := io.ReadFull(r.r, r.buf[:])
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, fmt.Errorf("frame %d: %w (read %d of %d bytes)", r.index, ErrTruncatedHeader, n, HeaderSize)
	case err != nil:
		return nil, fmt.Errorf("frame %d: read header: %w", r.index, err)
	}

	header := decodeHeader(r.order, r.buf[:])
	if header.Len < 0 {
		return nil, fmt.Errorf("frame %d: %w (%d)", r.index, ErrNegativeLength, header.Len)
	}

	// The length is untrusted: grow the buffer with the data instead of allocating it upfront.
	var payload bytes.Buffer
	copied, err := io.CopyN(&payload, r.r, int64(header.Len))
	switch {
	case err == io.EOF:
		return nil, fmt.Errorf("frame %d: %w (read %d of %d bytes)", r.index, ErrTruncatedPayload, copied, header.Len)
	case err != nil:
		return nil, fmt.Errorf("frame %d: read payload: %w", r.index, err)
	}

	r.index++
	return &Frame{Header: header, Payload: payload.Bytes()}, nil
}

// All returns an iterator over the remaining frames.
// Iteration stops after the first error, which is yielded with a nil frame.
func (r *Reader) All() iter.Seq2[*Frame, error] {
	return func(yield func(*Frame, error) bool) {
		for {
			frame, err := r.Next()
			if err == io.EOF {
				return
			}
			if !yield(frame, err) || err != nil {
				return
			}
		}
	}
}
