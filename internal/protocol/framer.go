package protocol

import (
	"errors"
	"fmt"
)

// compactThreshold bounds how many consumed bytes may sit in front of the
// unread tail before the framer copies the tail down.
const compactThreshold = 1024

// Frame is one complete wire message: a packet ID and its payload, with
// the length prefix already stripped.
type Frame struct {
	ID      int32
	Payload []byte
}

// Framer reassembles length-prefixed frames from an append-only receive
// buffer. Socket reads are Pushed in arrival order; Next yields complete
// frames one at a time and reports "not yet" without consuming anything
// when the buffer holds only part of a frame, so frames may be split
// across any number of reads or batched into one.
type Framer struct {
	buf []byte
	off int
}

// Push appends freshly read socket bytes.
func (f *Framer) Push(p []byte) {
	f.buf = append(f.buf, p...)
}

// Buffered reports how many unconsumed bytes are waiting.
func (f *Framer) Buffered() int {
	return len(f.buf) - f.off
}

// Next extracts the next complete frame. ok is false when the buffer does
// not yet hold a full frame; the buffered bytes are left untouched so the
// caller can retry after the next read. Errors are protocol violations,
// never transport incompleteness.
func (f *Framer) Next() (fr Frame, ok bool, err error) {
	pending := f.buf[f.off:]
	length, lengthSize, err := DecodeVarInt(pending)
	if err != nil {
		if errors.Is(err, ErrVarIntIncomplete) {
			return Frame{}, false, nil
		}
		return Frame{}, false, fmt.Errorf("frame length: %w", err)
	}
	if length < 0 {
		return Frame{}, false, fmt.Errorf("frame length %d: %w", length, ErrNegativeLength)
	}

	totalSize := lengthSize + int(length)
	if len(pending) < totalSize {
		return Frame{}, false, nil
	}

	body := pending[lengthSize:totalSize]
	id, idSize, err := DecodeVarInt(body)
	if err != nil {
		// The frame is fully present, so a short ID is a malformed
		// packet rather than missing transport data.
		if errors.Is(err, ErrVarIntIncomplete) {
			err = ErrBufferUnderrun
		}
		return Frame{}, false, fmt.Errorf("frame packet id: %w", err)
	}

	payload := make([]byte, len(body)-idSize)
	copy(payload, body[idSize:])

	f.off += totalSize
	f.compact()
	return Frame{ID: id, Payload: payload}, true, nil
}

// compact drops the consumed prefix once it dominates the buffer, keeping
// the unread tail at the front without reallocating per frame.
func (f *Framer) compact() {
	switch {
	case f.off == len(f.buf):
		f.buf = f.buf[:0]
		f.off = 0
	case f.off >= compactThreshold && f.off > len(f.buf)/2:
		n := copy(f.buf, f.buf[f.off:])
		f.buf = f.buf[:n]
		f.off = 0
	}
}
