package registry

// TagName is the namespaced name of one tag group.
type TagName struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// TagGroup references registry entries by definition-order index.
type TagGroup struct {
	Entries []int32 `json:"entries"`
	TagName TagName `json:"tag_name"`
}

// TagTable is the process-lifetime snapshot of every tag grouping the
// server advertises, keyed by registry type.
type TagTable struct {
	BannerPatterns       []TagGroup `json:"minecraft:banner_pattern"`
	Blocks               []TagGroup `json:"minecraft:block"`
	CatVariants          []TagGroup `json:"minecraft:cat_variant"`
	DamageTypes          []TagGroup `json:"minecraft:damage_type"`
	Enchantments         []TagGroup `json:"minecraft:enchantment"`
	EntityTypes          []TagGroup `json:"minecraft:entity_type"`
	Fluids               []TagGroup `json:"minecraft:fluid"`
	GameEvents           []TagGroup `json:"minecraft:game_event"`
	Instruments          []TagGroup `json:"minecraft:instrument"`
	Items                []TagGroup `json:"minecraft:item"`
	PaintingVariants     []TagGroup `json:"minecraft:painting_variant"`
	PointOfInterestTypes []TagGroup `json:"minecraft:point_of_interest_type"`
	WorldgenBiomes       []TagGroup `json:"minecraft:worldgen/biome"`
}

// TagSection pairs a registry-type name with its tag groups for encoding.
type TagSection struct {
	Name   string
	Groups []TagGroup
}

// Sections returns every tag registry type in advertisement order,
// including empty ones; the encoder skips those on the wire.
func (t *TagTable) Sections() []TagSection {
	return []TagSection{
		{Name: "banner_pattern", Groups: t.BannerPatterns},
		{Name: "block", Groups: t.Blocks},
		{Name: "cat_variant", Groups: t.CatVariants},
		{Name: "damage_type", Groups: t.DamageTypes},
		{Name: "enchantment", Groups: t.Enchantments},
		{Name: "entity_type", Groups: t.EntityTypes},
		{Name: "fluid", Groups: t.Fluids},
		{Name: "game_event", Groups: t.GameEvents},
		{Name: "instrument", Groups: t.Instruments},
		{Name: "item", Groups: t.Items},
		{Name: "painting_variant", Groups: t.PaintingVariants},
		{Name: "point_of_interest_type", Groups: t.PointOfInterestTypes},
		{Name: "worldgen/biome", Groups: t.WorldgenBiomes},
	}
}
