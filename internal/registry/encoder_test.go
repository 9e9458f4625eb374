package registry

import (
	"bytes"
	"testing"

	"github.com/danmuck/craftctl/internal/protocol"
)

func TestEncodeRegistryFrameExactBytes(t *testing.T) {
	want := []byte("\x74\x07\x18minecraft:dimension_type\x04" +
		"\x13minecraft:overworld\x00" +
		"\x19minecraft:overworld_caves\x00" +
		"\x14minecraft:the_nether\x00" +
		"\x11minecraft:the_end\x00")

	keys := []string{"overworld", "overworld_caves", "the_nether", "the_end"}
	got := EncodeRegistryFrame("dimension_type", keys)
	if !bytes.Equal(got, want) {
		t.Fatalf("frame mismatch:\n got=%x\nwant=%x", got, want)
	}
}

func TestEncodeRegistryFrameKeepsExistingNamespace(t *testing.T) {
	frame := EncodeRegistryFrame("wolf_variant", []string{"modpack:shadow"})

	var f protocol.Framer
	f.Push(frame)
	fr, ok, err := f.Next()
	if err != nil || !ok {
		t.Fatalf("reparse frame: ok=%v err=%v", ok, err)
	}
	r := protocol.NewReader(fr.Payload)
	if _, err := r.Identifier(); err != nil {
		t.Fatalf("registry name: %v", err)
	}
	if n, err := r.VarInt(); err != nil || n != 1 {
		t.Fatalf("entry count: got=(%d, %v)", n, err)
	}
	id, err := r.Identifier()
	if err != nil {
		t.Fatalf("entry name: %v", err)
	}
	if id.Namespace != "modpack" || id.Path != "shadow" {
		t.Fatalf("namespace not preserved: %+v", id)
	}
}

func TestCatalogFramesOrderAndShape(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	frames := c.Frames()
	if len(frames) != 11 {
		t.Fatalf("expected 11 registry frames, got %d", len(frames))
	}

	wantOrder := []string{
		"worldgen/biome", "chat_type", "trim_pattern", "trim_material",
		"wolf_variant", "painting_variant", "dimension_type", "damage_type",
		"banner_pattern", "enchantment", "jukebox_song",
	}
	for i, raw := range frames {
		var f protocol.Framer
		f.Push(raw)
		fr, ok, err := f.Next()
		if err != nil || !ok {
			t.Fatalf("frame %d: reparse: ok=%v err=%v", i, ok, err)
		}
		if fr.ID != RegistryDataPacketID {
			t.Fatalf("frame %d: packet id %#x", i, fr.ID)
		}
		r := protocol.NewReader(fr.Payload)
		id, err := r.Identifier()
		if err != nil {
			t.Fatalf("frame %d: registry name: %v", i, err)
		}
		if id.Namespace != "minecraft" || id.Path != wantOrder[i] {
			t.Fatalf("frame %d: registry %q, want minecraft:%s", i, id.String(), wantOrder[i])
		}
		count, err := r.VarInt()
		if err != nil {
			t.Fatalf("frame %d: entry count: %v", i, err)
		}
		for e := int32(0); e < count; e++ {
			if _, err := r.Identifier(); err != nil {
				t.Fatalf("frame %d entry %d: %v", i, e, err)
			}
			flag, err := r.UnsignedByte()
			if err != nil || flag != 0 {
				t.Fatalf("frame %d entry %d: has-data flag=(%d, %v)", i, e, flag, err)
			}
		}
		if r.Remaining() != 0 {
			t.Fatalf("frame %d: %d trailing bytes", i, r.Remaining())
		}
	}
}

func TestTagFrameOmitsEmptyRegistries(t *testing.T) {
	tags, err := LoadTags()
	if err != nil {
		t.Fatalf("load tags: %v", err)
	}
	raw := tags.Frame()

	var f protocol.Framer
	f.Push(raw)
	fr, ok, err := f.Next()
	if err != nil || !ok {
		t.Fatalf("reparse frame: ok=%v err=%v", ok, err)
	}
	if fr.ID != UpdateTagsPacketID {
		t.Fatalf("packet id %#x", fr.ID)
	}

	var wantCount int32
	nonEmpty := map[string]bool{}
	for _, s := range tags.Sections() {
		if len(s.Groups) > 0 {
			wantCount++
			nonEmpty[s.Name] = true
		}
	}

	r := protocol.NewReader(fr.Payload)
	count, err := r.VarInt()
	if err != nil {
		t.Fatalf("registry count: %v", err)
	}
	if count != wantCount {
		t.Fatalf("registry count=%d, want %d", count, wantCount)
	}
	for i := int32(0); i < count; i++ {
		regID, err := r.Identifier()
		if err != nil {
			t.Fatalf("registry %d name: %v", i, err)
		}
		if !nonEmpty[regID.Path] {
			t.Fatalf("empty registry %q appeared on the wire", regID.Path)
		}
		groupCount, err := r.VarInt()
		if err != nil || groupCount == 0 {
			t.Fatalf("registry %q group count=(%d, %v)", regID.Path, groupCount, err)
		}
		for g := int32(0); g < groupCount; g++ {
			if _, err := r.Identifier(); err != nil {
				t.Fatalf("registry %q group %d name: %v", regID.Path, g, err)
			}
			entryCount, err := r.VarInt()
			if err != nil {
				t.Fatalf("registry %q group %d entry count: %v", regID.Path, g, err)
			}
			for e := int32(0); e < entryCount; e++ {
				if _, err := r.VarInt(); err != nil {
					t.Fatalf("registry %q group %d entry %d: %v", regID.Path, g, e, err)
				}
			}
		}
	}
	if r.Remaining() != 0 {
		t.Fatalf("%d trailing bytes", r.Remaining())
	}
}

func TestTagEntryIDsReferenceDefinitionOrder(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	tags, err := LoadTags()
	if err != nil {
		t.Fatalf("load tags: %v", err)
	}
	lens := map[string]int{}
	for _, s := range c.Sections() {
		lens[s.Name] = len(s.Keys)
	}
	for _, ts := range tags.Sections() {
		max, known := lens[ts.Name]
		for _, g := range ts.Groups {
			for _, id := range g.Entries {
				if id < 0 {
					t.Fatalf("%s/%s: negative entry id %d", ts.Name, g.TagName.Name, id)
				}
				if known && int(id) >= max {
					t.Fatalf("%s/%s: entry id %d out of range (registry has %d entries)",
						ts.Name, g.TagName.Name, id, max)
				}
			}
		}
	}
}
