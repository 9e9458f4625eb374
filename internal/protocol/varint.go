package protocol

const (
	segmentBits byte = 0x7F
	continueBit byte = 0x80

	// MaxVarIntLen is the longest legal VarInt encoding in bytes.
	MaxVarIntLen = 5
)

// DecodeVarInt decodes one VarInt from the start of buf and returns the
// value with the number of bytes consumed. buf is never mutated, so a
// caller seeing ErrVarIntIncomplete can retry from the same offset once
// more data has arrived.
func DecodeVarInt(buf []byte) (int32, int, error) {
	var value int32
	for i := 0; ; i++ {
		if i >= MaxVarIntLen {
			return 0, 0, ErrVarIntOversized
		}
		if i >= len(buf) {
			return 0, 0, ErrVarIntIncomplete
		}
		b := buf[i]
		value |= int32(b&segmentBits) << (7 * i)
		if b&continueBit == 0 {
			return value, i + 1, nil
		}
	}
}

// AppendVarInt appends the minimal VarInt encoding of v to dst.
func AppendVarInt(dst []byte, v int32) []byte {
	u := uint32(v)
	for {
		b := byte(u) & segmentBits
		u >>= 7
		if u != 0 {
			b |= continueBit
		}
		dst = append(dst, b)
		if u == 0 {
			return dst
		}
	}
}

// VarIntSize reports the encoded byte length of v without allocating.
// Frame length prefixes are computed from this before the payload is
// assembled.
func VarIntSize(v int32) int {
	size := 0
	u := uint32(v)
	for {
		size++
		u >>= 7
		if u == 0 {
			return size
		}
	}
}
