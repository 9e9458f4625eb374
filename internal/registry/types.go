package registry

// Record types mirror the game-data documents bundled with the server.
// Bed/ceiling style flags are bytes on the wire and in the documents, not
// booleans.

type BannerPattern struct {
	AssetID        string `json:"asset_id"`
	TranslationKey string `json:"translation_key"`
}

type ChatType struct {
	Chat      ChatParameters `json:"chat"`
	Narration ChatParameters `json:"narration"`
}

type ChatParameters struct {
	Parameters     []string `json:"parameters"`
	TranslationKey string   `json:"translation_key"`
}

type DamageType struct {
	MessageID  string  `json:"message_id"`
	Exhaustion float32 `json:"exhaustion"`
	Scaling    string  `json:"scaling"`
}

type DimensionType struct {
	AmbientLight                float32                `json:"ambient_light"`
	BedWorks                    int8                   `json:"bed_works"`
	CoordinateScale             float64                `json:"coordinate_scale"`
	Effects                     string                 `json:"effects"`
	HasCeiling                  int8                   `json:"has_ceiling"`
	HasRaids                    int8                   `json:"has_raids"`
	HasSkylight                 int8                   `json:"has_skylight"`
	Height                      int32                  `json:"height"`
	Infiniburn                  string                 `json:"infiniburn"`
	LogicalHeight               int32                  `json:"logical_height"`
	MinY                        int32                  `json:"min_y"`
	MonsterSpawnBlockLightLimit int32                  `json:"monster_spawn_block_light_limit"`
	MonsterSpawnLightLevel      MonsterSpawnLightLevel `json:"monster_spawn_light_level"`
	Natural                     int8                   `json:"natural"`
	PiglinSafe                  int8                   `json:"piglin_safe"`
	RespawnAnchorWorks          int8                   `json:"respawn_anchor_works"`
	Ultrawarm                   int8                   `json:"ultrawarm"`
}

type MonsterSpawnLightLevel struct {
	MaxInclusive int32  `json:"max_inclusive"`
	MinInclusive int32  `json:"min_inclusive"`
	Type         string `json:"type"`
}

type PaintingVariant struct {
	AssetID string `json:"asset_id"`
	Height  int32  `json:"height"`
	Width   int32  `json:"width"`
}

type TrimMaterial struct {
	AssetName      string                  `json:"asset_name"`
	Description    TrimMaterialDescription `json:"description"`
	Ingredient     string                  `json:"ingredient"`
	ItemModelIndex float32                 `json:"item_model_index"`
}

type TrimMaterialDescription struct {
	Color     string `json:"color"`
	Translate string `json:"translate"`
}

type TrimPattern struct {
	AssetID      string                 `json:"asset_id"`
	Description  TrimPatternDescription `json:"description"`
	TemplateItem string                 `json:"template_item"`
}

type TrimPatternDescription struct {
	Translate string `json:"translate"`
}

type WolfVariant struct {
	AngryTexture string `json:"angry_texture"`
	Biomes       string `json:"biomes"`
	TameTexture  string `json:"tame_texture"`
	WildTexture  string `json:"wild_texture"`
}

type Biome struct {
	Downfall         float32      `json:"downfall"`
	Effects          BiomeEffects `json:"effects"`
	HasPrecipitation bool         `json:"has_precipitation"`
	Temperature      float32      `json:"temperature"`
}

type BiomeEffects struct {
	FogColor      int32     `json:"fog_color"`
	FoliageColor  *int32    `json:"foliage_color,omitempty"`
	GrassColor    *int32    `json:"grass_color,omitempty"`
	MoodSound     MoodSound `json:"mood_sound"`
	Music         *Music    `json:"music,omitempty"`
	SkyColor      int32     `json:"sky_color"`
	WaterColor    int32     `json:"water_color"`
	WaterFogColor int32     `json:"water_fog_color"`
	Particle      *Particle `json:"particle,omitempty"`
	AmbientSound  *string   `json:"ambient_sound,omitempty"`
}

type MoodSound struct {
	BlockSearchExtent int32   `json:"block_search_extent"`
	Offset            float64 `json:"offset"`
	Sound             string  `json:"sound"`
	TickDelay         int32   `json:"tick_delay"`
}

type Music struct {
	MaxDelay            int32  `json:"max_delay"`
	MinDelay            int32  `json:"min_delay"`
	ReplaceCurrentMusic bool   `json:"replace_current_music"`
	Sound               string `json:"sound"`
}

type Particle struct {
	Options     ParticleOptions `json:"options"`
	Probability float32         `json:"probability"`
}

type ParticleOptions struct {
	Type string `json:"type"`
}

// Enchantment and JukeboxSong entries are advertised by name only; the
// bundled documents carry no attributes for them yet.
type Enchantment struct{}

type JukeboxSong struct{}
