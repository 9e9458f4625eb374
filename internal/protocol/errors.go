package protocol

import "errors"

var (
	// ErrVarIntIncomplete means the buffer ended before a terminating byte.
	// At the frame-length position this is a "wait for more data" signal,
	// not a protocol violation.
	ErrVarIntIncomplete = errors.New("protocol: incomplete varint")

	// ErrVarIntOversized means the encoding ran past the 5-byte limit.
	ErrVarIntOversized = errors.New("protocol: varint exceeds 5 bytes")

	ErrBufferUnderrun    = errors.New("protocol: buffer underrun")
	ErrNegativeLength    = errors.New("protocol: negative length")
	ErrInvalidUTF8       = errors.New("protocol: invalid utf-8 string")
	ErrInvalidIdentifier = errors.New("protocol: invalid identifier format")
)
