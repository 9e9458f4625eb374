package registry

import (
	"strings"

	"github.com/danmuck/craftctl/internal/protocol"
)

// Clientbound configuration-phase packet IDs for catalog advertisement.
const (
	RegistryDataPacketID int32 = 0x07
	UpdateTagsPacketID   int32 = 0x0D
)

// EncodeRegistryFrame serializes one registry as a complete wire frame:
//
//	VarInt  frame length
//	VarInt  packet ID (0x07)
//	String  registry name as minecraft:<name>
//	VarInt  entry count
//	per entry: String identifier, 0x00 has-data flag
//
// Entries never carry inline data; the simplified catalog advertises
// names only.
func EncodeRegistryFrame(name string, keys []string) []byte {
	w := protocol.NewWriter()
	w.Identifier("minecraft", name)
	w.VarInt(int32(len(keys)))
	for _, key := range keys {
		namespace, path, ok := strings.Cut(key, ":")
		if !ok {
			namespace, path = "minecraft", key
		}
		w.Identifier(namespace, path)
		w.UnsignedByte(0)
	}
	return protocol.EncodeFrame(RegistryDataPacketID, w.Bytes())
}

// Frames returns one registry-data frame per catalog section, in
// advertisement order.
func (c *Catalog) Frames() [][]byte {
	sections := c.Sections()
	out := make([][]byte, 0, len(sections))
	for _, s := range sections {
		out = append(out, EncodeRegistryFrame(s.Name, s.Keys))
	}
	return out
}

// Frame aggregates every non-empty tag section into the single update-tags
// frame. Registry types without tag groups are omitted and do not count
// toward the leading registry count.
func (t *TagTable) Frame() []byte {
	sections := t.Sections()
	var count int32
	for _, s := range sections {
		if len(s.Groups) > 0 {
			count++
		}
	}

	w := protocol.NewWriter()
	w.VarInt(count)
	for _, s := range sections {
		writeTagGroups(w, s.Name, s.Groups)
	}
	return protocol.EncodeFrame(UpdateTagsPacketID, w.Bytes())
}

func writeTagGroups(w *protocol.Writer, name string, groups []TagGroup) {
	if len(groups) == 0 {
		return
	}
	w.Identifier("minecraft", name)
	w.VarInt(int32(len(groups)))
	for _, g := range groups {
		w.Identifier(g.TagName.Namespace, g.TagName.Name)
		w.VarInt(int32(len(g.Entries)))
		for _, id := range g.Entries {
			w.VarInt(id)
		}
	}
}
