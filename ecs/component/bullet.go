package component

// Side tags which side owns a bullet. The two are mutually exclusive.
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

// Bullet is projectile data. Grazed is set once when the bullet first enters
// the player's graze radius and is never cleared, so a bullet grazes at most
// once over its lifetime.
type Bullet struct {
	Damage int
	Side   Side
	Grazed bool
	Sprite string
}

var BulletKind = NewKind[Bullet]()
