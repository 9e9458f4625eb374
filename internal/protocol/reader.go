package protocol

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Reader consumes typed fields from the front of a packet payload. Every
// read either consumes the whole field or fails without consuming
// anything, so a failed read leaves the reader where it was.
type Reader struct {
	buf []byte
}

func NewReader(payload []byte) *Reader {
	return &Reader{buf: payload}
}

// Remaining reports how many unread payload bytes are left.
func (r *Reader) Remaining() int {
	return len(r.buf)
}

func (r *Reader) VarInt() (int32, error) {
	v, n, err := DecodeVarInt(r.buf)
	if err != nil {
		return 0, fmt.Errorf("read varint: %w", err)
	}
	r.buf = r.buf[n:]
	return v, nil
}

func (r *Reader) Byte() (int8, error) {
	if len(r.buf) < 1 {
		return 0, fmt.Errorf("read byte: %w", ErrBufferUnderrun)
	}
	v := int8(r.buf[0])
	r.buf = r.buf[1:]
	return v, nil
}

func (r *Reader) UnsignedByte() (uint8, error) {
	if len(r.buf) < 1 {
		return 0, fmt.Errorf("read unsigned byte: %w", ErrBufferUnderrun)
	}
	v := r.buf[0]
	r.buf = r.buf[1:]
	return v, nil
}

// Boolean treats any nonzero byte as true.
func (r *Reader) Boolean() (bool, error) {
	if len(r.buf) < 1 {
		return false, fmt.Errorf("read boolean: %w", ErrBufferUnderrun)
	}
	v := r.buf[0] != 0
	r.buf = r.buf[1:]
	return v, nil
}

func (r *Reader) UnsignedShort() (uint16, error) {
	if len(r.buf) < 2 {
		return 0, fmt.Errorf("read unsigned short: %w", ErrBufferUnderrun)
	}
	v := uint16(r.buf[0])<<8 | uint16(r.buf[1])
	r.buf = r.buf[2:]
	return v, nil
}

func (r *Reader) Long() (int64, error) {
	if len(r.buf) < 8 {
		return 0, fmt.Errorf("read long: %w", ErrBufferUnderrun)
	}
	var v int64
	for i := 0; i < 8; i++ {
		v |= int64(r.buf[i]) << ((7 - i) * 8)
	}
	r.buf = r.buf[8:]
	return v, nil
}

// String reads a VarInt length prefix followed by that many UTF-8 bytes.
// The length prefix is not consumed when the declared body is missing or
// invalid.
func (r *Reader) String() (string, error) {
	length, n, err := DecodeVarInt(r.buf)
	if err != nil {
		return "", fmt.Errorf("read string length: %w", err)
	}
	if length < 0 {
		return "", fmt.Errorf("read string: %w", ErrNegativeLength)
	}
	if len(r.buf)-n < int(length) {
		return "", fmt.Errorf("read string: declared %d bytes: %w", length, ErrBufferUnderrun)
	}
	body := r.buf[n : n+int(length)]
	if !utf8.Valid(body) {
		return "", fmt.Errorf("read string: %w", ErrInvalidUTF8)
	}
	s := string(body)
	r.buf = r.buf[n+int(length):]
	return s, nil
}

// Identifier reads a prefixed string and splits it on the first colon.
func (r *Reader) Identifier() (Identifier, error) {
	full, err := r.String()
	if err != nil {
		return Identifier{}, err
	}
	namespace, path, ok := strings.Cut(full, ":")
	if !ok {
		return Identifier{}, fmt.Errorf("read identifier %q: %w", full, ErrInvalidIdentifier)
	}
	return Identifier{Namespace: namespace, Path: path}, nil
}

// Rest consumes and returns all remaining payload bytes. Used for opaque
// trailing blobs such as plugin message bodies.
func (r *Reader) Rest() []byte {
	out := make([]byte, len(r.buf))
	copy(out, r.buf)
	r.buf = nil
	return out
}

// Identifier is a namespaced resource name, e.g. minecraft:overworld.
type Identifier struct {
	Namespace string
	Path      string
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}
