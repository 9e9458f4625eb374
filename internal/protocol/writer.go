package protocol

// Writer accumulates outbound field bytes. Writes cannot fail; the buffer
// grows as needed.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) VarInt(v int32) {
	w.buf = AppendVarInt(w.buf, v)
}

func (w *Writer) Byte(v int8) {
	w.buf = append(w.buf, byte(v))
}

func (w *Writer) UnsignedByte(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) Boolean(v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	w.buf = append(w.buf, b)
}

func (w *Writer) UnsignedShort(v uint16) {
	w.buf = append(w.buf, byte(v>>8), byte(v))
}

func (w *Writer) Long(v int64) {
	w.buf = append(w.buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// String writes a VarInt length prefix followed by the raw bytes.
func (w *Writer) String(s string) {
	w.VarInt(int32(len(s)))
	w.buf = append(w.buf, s...)
}

// Identifier writes namespace:path as a prefixed string.
func (w *Writer) Identifier(namespace, path string) {
	w.String(namespace + ":" + path)
}

func (w *Writer) Raw(p []byte) {
	w.buf = append(w.buf, p...)
}

func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

// EncodeFrame wraps a packet body in the wire frame layout:
// VarInt(len(id)+len(body)) ++ VarInt(id) ++ body.
func EncodeFrame(id int32, body []byte) []byte {
	inner := int32(VarIntSize(id) + len(body))
	out := make([]byte, 0, VarIntSize(inner)+int(inner))
	out = AppendVarInt(out, inner)
	out = AppendVarInt(out, id)
	return append(out, body...)
}
