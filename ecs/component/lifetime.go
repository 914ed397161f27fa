package component

// Lifetime removes an entity after Frames ticks.
type Lifetime struct {
	Frames int
}

var LifetimeKind = NewKind[Lifetime]()
