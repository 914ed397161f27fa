package component

// Layer is a collision category bit. Every collidable entity IS exactly one
// layer and MAY collide against the layers in its mask. Self-layer
// collisions are excluded by convention.
type Layer uint8

const (
	LayerPlayer Layer = 1 << iota
	LayerPlayerBullet
	LayerEnemy
	LayerEnemyBullet
	LayerItem
	LayerBombField
)

// Has reports whether the mask includes layer l.
func (m Layer) Has(l Layer) bool {
	return m&l != 0
}

// Collider is a circle hitbox on a layer. GrazeRadius extends the circle
// for graze detection only, and is meaningful on the player.
type Collider struct {
	Radius      float64
	Layer       Layer
	Mask        Layer
	GrazeRadius float64
}

var ColliderKind = NewKind[Collider]()
