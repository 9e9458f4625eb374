package registry

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/default_registry.json
var defaultRegistryJSON []byte

//go:embed data/default_tags.json
var defaultTagsJSON []byte

// Entries is an ordered registry section: a mapping from namespaced key
// to record that remembers document definition order. Tag entry IDs index
// into this order, so it must survive the JSON round trip.
type Entries[T any] struct {
	keys    []string
	records map[string]T
}

// Keys returns the entry names in definition order.
func (e *Entries[T]) Keys() []string {
	return e.keys
}

func (e *Entries[T]) Len() int {
	return len(e.keys)
}

func (e *Entries[T]) Get(key string) (T, bool) {
	rec, ok := e.records[key]
	return rec, ok
}

// UnmarshalJSON walks the object token by token instead of decoding into
// a map, because encoding/json maps lose key order.
func (e *Entries[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry: expected object, got %v", tok)
	}

	e.keys = nil
	e.records = make(map[string]T)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("registry: expected string key, got %v", keyTok)
		}
		var rec T
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("registry: entry %q: %w", key, err)
		}
		if _, dup := e.records[key]; dup {
			return fmt.Errorf("registry: duplicate entry %q", key)
		}
		e.keys = append(e.keys, key)
		e.records[key] = rec
	}
	_, err = dec.Token() // closing brace
	return err
}

// Catalog is the process-lifetime snapshot of every registry the server
// advertises. Loaded once at startup and shared read-only across
// connections.
type Catalog struct {
	Biomes           Entries[Biome]           `json:"minecraft:worldgen/biome"`
	ChatTypes        Entries[ChatType]        `json:"minecraft:chat_type"`
	DamageTypes      Entries[DamageType]      `json:"minecraft:damage_type"`
	DimensionTypes   Entries[DimensionType]   `json:"minecraft:dimension_type"`
	TrimMaterials    Entries[TrimMaterial]    `json:"minecraft:trim_material"`
	TrimPatterns     Entries[TrimPattern]     `json:"minecraft:trim_pattern"`
	WolfVariants     Entries[WolfVariant]     `json:"minecraft:wolf_variant"`
	PaintingVariants Entries[PaintingVariant] `json:"minecraft:painting_variant"`
	BannerPatterns   Entries[BannerPattern]   `json:"minecraft:banner_pattern"`
	Enchantments     Entries[Enchantment]     `json:"minecraft:enchantment"`
	JukeboxSongs     Entries[JukeboxSong]     `json:"minecraft:jukebox_song"`
}

// Section pairs a registry-type name with its ordered entry keys for
// encoding. The slice order is the order frames go out on the wire.
type Section struct {
	Name string
	Keys []string
}

// Sections returns every registry in advertisement order.
func (c *Catalog) Sections() []Section {
	return []Section{
		{Name: "worldgen/biome", Keys: c.Biomes.Keys()},
		{Name: "chat_type", Keys: c.ChatTypes.Keys()},
		{Name: "trim_pattern", Keys: c.TrimPatterns.Keys()},
		{Name: "trim_material", Keys: c.TrimMaterials.Keys()},
		{Name: "wolf_variant", Keys: c.WolfVariants.Keys()},
		{Name: "painting_variant", Keys: c.PaintingVariants.Keys()},
		{Name: "dimension_type", Keys: c.DimensionTypes.Keys()},
		{Name: "damage_type", Keys: c.DamageTypes.Keys()},
		{Name: "banner_pattern", Keys: c.BannerPatterns.Keys()},
		{Name: "enchantment", Keys: c.Enchantments.Keys()},
		{Name: "jukebox_song", Keys: c.JukeboxSongs.Keys()},
	}
}

// LoadCatalog parses the bundled registry document. A parse failure here
// is a startup error, never a per-connection protocol error.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(defaultRegistryJSON, &c); err != nil {
		return nil, fmt.Errorf("registry: parse default registry data: %w", err)
	}
	return &c, nil
}

// LoadTags parses the bundled tag document.
func LoadTags() (*TagTable, error) {
	var t TagTable
	if err := json.Unmarshal(defaultTagsJSON, &t); err != nil {
		return nil, fmt.Errorf("registry: parse default tag data: %w", err)
	}
	return &t, nil
}
