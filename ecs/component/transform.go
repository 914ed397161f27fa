package component

// Transform is the spatial position of an entity, in playfield pixels.
// Always present for any entity with spatial behavior.
type Transform struct {
	X float64
	Y float64
}

// Velocity in px/s. The movement system integrates it into Transform once
// per tick.
type Velocity struct {
	VX float64
	VY float64
}

var (
	TransformKind = NewKind[Transform]()
	VelocityKind  = NewKind[Velocity]()
)
