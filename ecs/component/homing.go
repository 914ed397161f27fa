package component

// Homing steers a bullet toward its quarry every tick, turning at most
// TurnRate degrees per tick while holding Speed. Player-side bullets seek
// the nearest enemy, enemy-side bullets seek the player. With no target on
// the field the bullet flies straight.
type Homing struct {
	TurnRate float64
	Speed    float64
}

var HomingKind = NewKind[Homing]()
