package component

// PhaseType classifies a boss phase.
type PhaseType uint8

const (
	PhaseNonSpell PhaseType = iota
	PhaseSpellCard
	PhaseSurvival
)

// BombPolicyKind is how a phase treats bomb damage.
type BombPolicyKind uint8

const (
	// BombLethal applies bomb damage in full.
	BombLethal BombPolicyKind = iota
	// BombCapped limits total bomb damage per frame to CapPerFrame.
	BombCapped
	// BombImmune ignores bomb damage entirely.
	BombImmune
)

// BombPolicy is a phase's bomb-resistance policy. The clamp is recomputed
// every tick a bomb-field overlap exists, never cached.
type BombPolicy struct {
	Kind        BombPolicyKind
	CapPerFrame int
}

// Phase is one entry in a boss's phase list. HP and DurationFrames may both
// be set; the phase ends on whichever is reached first. Survival phases
// ignore HP (the boss is invulnerable) and end purely on the timer.
type Phase struct {
	Type           PhaseType
	Name           string
	HP             int
	DurationFrames int
	Policy         BombPolicy
	Reward         int64
	Behavior       string
}

// BossPhaseState is the boss state machine's position.
type BossPhaseState uint8

const (
	BossActive BossPhaseState = iota
	BossTransitioning
	BossDefeated
)

// BossState sequences an ordered phase list. Index is monotonic. Eligible
// starts true each phase and is cleared irrevocably by a player hit or a
// bomb use during the phase; a SpellCard reward pays out only while it still
// holds.
type BossState struct {
	Phases         []Phase
	Index          int
	State          BossPhaseState
	ElapsedFrames  int
	TransitionLeft int
	Eligible       bool
	Initialized    bool
}

// Current returns the active phase. Phase lists are validated non-empty at
// content load.
func (b *BossState) Current() *Phase {
	return &b.Phases[b.Index]
}

var BossStateKind = NewKind[BossState]()
