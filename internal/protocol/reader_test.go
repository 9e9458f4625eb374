package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.String("minecraft:overworld")
	r := NewReader(w.Bytes())
	got, err := r.String()
	if err != nil {
		t.Fatalf("read string: %v", err)
	}
	if got != "minecraft:overworld" {
		t.Fatalf("unexpected string: %q", got)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected empty reader, %d bytes left", r.Remaining())
	}
}

func TestReaderStringUnderrunConsumesNothing(t *testing.T) {
	// Declares 16 bytes but carries only 3.
	payload := append(AppendVarInt(nil, 16), 'a', 'b', 'c')
	r := NewReader(payload)
	if _, err := r.String(); !errors.Is(err, ErrBufferUnderrun) {
		t.Fatalf("expected ErrBufferUnderrun, got %v", err)
	}
	if r.Remaining() != len(payload) {
		t.Fatalf("reader consumed bytes on failure: %d left of %d", r.Remaining(), len(payload))
	}
}

func TestReaderStringRejectsInvalidUTF8(t *testing.T) {
	payload := append(AppendVarInt(nil, 2), 0xFF, 0xFE)
	r := NewReader(payload)
	if _, err := r.String(); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestReaderIdentifier(t *testing.T) {
	w := NewWriter()
	w.Identifier("minecraft", "worldgen/biome")
	r := NewReader(w.Bytes())
	id, err := r.Identifier()
	if err != nil {
		t.Fatalf("read identifier: %v", err)
	}
	if id.Namespace != "minecraft" || id.Path != "worldgen/biome" {
		t.Fatalf("unexpected identifier: %+v", id)
	}
	if id.String() != "minecraft:worldgen/biome" {
		t.Fatalf("unexpected formatting: %q", id.String())
	}
}

func TestReaderIdentifierMissingSeparator(t *testing.T) {
	w := NewWriter()
	w.String("overworld")
	r := NewReader(w.Bytes())
	if _, err := r.Identifier(); !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestReaderFixedWidthFields(t *testing.T) {
	w := NewWriter()
	w.Byte(-5)
	w.UnsignedByte(0x7F)
	w.Boolean(true)
	w.UnsignedShort(25565)
	w.Long(0x1234)

	r := NewReader(w.Bytes())
	if v, err := r.Byte(); err != nil || v != -5 {
		t.Fatalf("byte: got=(%d, %v)", v, err)
	}
	if v, err := r.UnsignedByte(); err != nil || v != 0x7F {
		t.Fatalf("unsigned byte: got=(%d, %v)", v, err)
	}
	if v, err := r.Boolean(); err != nil || !v {
		t.Fatalf("boolean: got=(%v, %v)", v, err)
	}
	if v, err := r.UnsignedShort(); err != nil || v != 25565 {
		t.Fatalf("unsigned short: got=(%d, %v)", v, err)
	}
	if v, err := r.Long(); err != nil || v != 0x1234 {
		t.Fatalf("long: got=(%d, %v)", v, err)
	}
}

func TestReaderFixedWidthUnderrun(t *testing.T) {
	r := NewReader([]byte{0x00})
	if _, err := r.UnsignedShort(); !errors.Is(err, ErrBufferUnderrun) {
		t.Fatalf("expected ErrBufferUnderrun, got %v", err)
	}
	if r.Remaining() != 1 {
		t.Fatalf("reader consumed bytes on failure")
	}
	if _, err := r.Long(); !errors.Is(err, ErrBufferUnderrun) {
		t.Fatalf("expected ErrBufferUnderrun, got %v", err)
	}
}

func TestReaderRest(t *testing.T) {
	w := NewWriter()
	w.String("minecraft:brand")
	w.Raw([]byte{1, 2, 3})
	r := NewReader(w.Bytes())
	if _, err := r.String(); err != nil {
		t.Fatalf("read channel: %v", err)
	}
	rest := r.Rest()
	if !bytes.Equal(rest, []byte{1, 2, 3}) {
		t.Fatalf("unexpected rest: %v", rest)
	}
	if r.Remaining() != 0 {
		t.Fatalf("rest did not drain reader")
	}
}

func TestEncodeFrameLayout(t *testing.T) {
	body := []byte{0xAA, 0xBB}
	frame := EncodeFrame(0x07, body)
	want := []byte{0x03, 0x07, 0xAA, 0xBB}
	if !bytes.Equal(frame, want) {
		t.Fatalf("frame mismatch: got=%x want=%x", frame, want)
	}
}
