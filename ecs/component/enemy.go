package component

// EnemyTag marks a hostile entity, bosses included.
type EnemyTag struct {
	Kind   string
	Sprite string
	Score  int64
}

// DropConfig is what an enemy scatters on death.
type DropConfig struct {
	Power   int
	Point   int
	Scatter float64
}

var (
	EnemyTagKind   = NewKind[EnemyTag]()
	DropConfigKind = NewKind[DropConfig]()
)
