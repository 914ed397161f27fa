package component

// PlayerTag marks the player entity.
type PlayerTag struct{}

// InputState is the decoded per-tick input written into the world by the
// frontend. The collaborator owns device polling and key mapping.
type InputState struct {
	MoveX       float64
	MoveY       float64
	Focus       bool
	Shoot       bool
	BombPressed bool
}

// PlayerStats is the player's run state: resources, score counters, and the
// timers behind invulnerability and the death-bomb grace window.
type PlayerStats struct {
	Lives int
	Bombs int
	Power int
	Score int64
	Graze int

	// Graze energy meter. Full energy switches the shot to its enhanced
	// form, which drains the meter while active.
	Energy     float64
	MaxEnergy  float64
	Enhanced   bool
	DecayDelay int

	InvulnFrames int
	// GraceFrames counts down the death-bomb window after a lethal hit. A
	// bomb press while it is positive cancels the death.
	GraceFrames  int
	ShotCooldown int
	BombFrames   int

	Character string
	GameOver  bool
}

var (
	PlayerTagKind   = NewKind[PlayerTag]()
	InputStateKind  = NewKind[InputState]()
	PlayerStatsKind = NewKind[PlayerStats]()
)
