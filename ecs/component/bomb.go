package component

// BombField is the player's active bomb: a large collider that damages
// enemies (subject to the boss phase's bomb policy) and clears enemy
// bullets while it lasts.
type BombField struct {
	Damage     int
	FramesLeft int
}

var BombFieldKind = NewKind[BombField]()
