package component

// Health is an integer hit-point pool. For bosses it is the phase-local
// pool, reset at every phase entry.
type Health struct {
	Current int
	Max     int
}

// Damage subtracts amount, clamping at zero, and reports whether the pool
// just reached zero.
func (h *Health) Damage(amount int) bool {
	if h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

// Dying marks an entity whose death was detected this tick. The entity
// lingers for FramesLeft more ticks so dependent systems (drops, effects)
// can observe the terminal state before removal.
type Dying struct {
	FramesLeft    int
	ByPlayer      bool
	DropsResolved bool
}

var (
	HealthKind = NewKind[Health]()
	DyingKind  = NewKind[Dying]()
)
