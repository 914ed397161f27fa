// Package defs holds the data-driven content definitions: bullet
// archetypes, enemies, bosses and their phase lists, paths, and character
// presets. Definitions are plain yaml-tagged structs; the content package
// loads them and binds them into registries at startup.
package defs

// BulletArchetype is the default shape of a fired bullet. Scripts reference
// archetypes by key and may override nothing; the key is resolved at fire
// time through the archetype registry.
type BulletArchetype struct {
	Damage         int     `yaml:"damage"`
	Radius         float64 `yaml:"radius"`
	Sprite         string  `yaml:"sprite"`
	LifetimeFrames int     `yaml:"lifetime_frames"`
}

// DropsDef is what an enemy scatters on death.
type DropsDef struct {
	Power   int     `yaml:"power"`
	Point   int     `yaml:"point"`
	Scatter float64 `yaml:"scatter"`
}

// EnemyDef describes a spawnable enemy kind.
type EnemyDef struct {
	HP       int      `yaml:"hp"`
	Radius   float64  `yaml:"radius"`
	Sprite   string   `yaml:"sprite"`
	Score    int64    `yaml:"score"`
	Drops    DropsDef `yaml:"drops"`
	Behavior string   `yaml:"behavior"`
}

// BombPolicyDef is a phase's bomb-resistance policy: "lethal", "capped"
// (with cap_per_frame), or "immune".
type BombPolicyDef struct {
	Policy      string `yaml:"policy"`
	CapPerFrame int    `yaml:"cap_per_frame"`
}

// PhaseDef is one boss phase. Type is "nonspell", "spellcard", or
// "survival". HP and duration_frames may both be set; the phase ends on
// whichever is reached first.
type PhaseDef struct {
	Type           string        `yaml:"type"`
	Name           string        `yaml:"name"`
	HP             int           `yaml:"hp"`
	DurationFrames int           `yaml:"duration_frames"`
	Reward         int64         `yaml:"reward"`
	Behavior       string        `yaml:"behavior"`
	Bomb           BombPolicyDef `yaml:"bomb"`
}

// BossDef is a boss entity plus its ordered phase list.
type BossDef struct {
	Name   string     `yaml:"name"`
	Radius float64    `yaml:"radius"`
	Sprite string     `yaml:"sprite"`
	Score  int64      `yaml:"score"`
	Phases []PhaseDef `yaml:"phases"`
}

// PathPoint is one waypoint: move to (X, Y) over Frames ticks.
type PathPoint struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Frames int     `yaml:"frames"`
}

// PathDef is a named polyline an entity can follow.
type PathDef struct {
	Points []PathPoint `yaml:"points"`
}

// ShotDef is a character's base shot: fired angles depend on focus state.
// Angles are degrees in the playfield convention (up is -90).
type ShotDef struct {
	Type           string    `yaml:"type"`
	Damage         int       `yaml:"damage"`
	CooldownFrames int       `yaml:"cooldown_frames"`
	BulletSpeed    float64   `yaml:"bullet_speed"`
	SpreadAngles   []float64 `yaml:"spread_angles"`
	FocusAngles    []float64 `yaml:"focus_angles"`
}

// OffsetDef is a position relative to the player.
type OffsetDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// OptionDef adds satellite shot sources beside the main shot, firing on
// the main shot's cooldown. Mode "fixed" fires straight up from each
// offset; "homing" fires seekers with a per-tick turn rate. Zero damage
// and speed inherit the main shot's.
type OptionDef struct {
	Mode        string      `yaml:"mode"`
	Damage      int         `yaml:"damage"`
	BulletSpeed float64     `yaml:"bullet_speed"`
	TurnRate    float64     `yaml:"turn_rate"`
	Offsets     []OffsetDef `yaml:"offsets"`
}

// EnhancedShotDef modifies the base shot while the graze-energy meter is
// burning.
type EnhancedShotDef struct {
	DamageMult   float64   `yaml:"damage_mult"`
	SpeedMult    float64   `yaml:"speed_mult"`
	SpreadAngles []float64 `yaml:"spread_angles"`
	FocusAngles  []float64 `yaml:"focus_angles"`
}

// CharacterDef is a playable character preset.
type CharacterDef struct {
	Name       string          `yaml:"name"`
	Speed      float64         `yaml:"speed"`
	FocusSpeed float64         `yaml:"focus_speed"`
	Radius     float64         `yaml:"radius"`
	GrazeRange float64         `yaml:"graze_range"`
	Lives      int             `yaml:"lives"`
	Bombs      int             `yaml:"bombs"`
	BombDamage int             `yaml:"bomb_damage"`
	BombRadius float64         `yaml:"bomb_radius"`
	BombFrames int             `yaml:"bomb_frames"`
	Shot       ShotDef         `yaml:"shot"`
	Options    OptionDef       `yaml:"options"`
	Enhanced   EnhancedShotDef `yaml:"enhanced"`
}
