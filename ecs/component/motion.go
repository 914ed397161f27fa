package component

// MotionOp is a motion-program instruction opcode.
type MotionOp uint8

const (
	// MotionWait holds the current velocity for Frames ticks.
	MotionWait MotionOp = iota
	// MotionSetSpeed sets speed immediately, keeping the angle.
	MotionSetSpeed
	// MotionSetAngle sets the angle immediately, keeping the speed.
	MotionSetAngle
	// MotionAccelerateTo changes speed linearly to Speed over Frames ticks.
	MotionAccelerateTo
	// MotionTurnTo rotates along the shortest arc to Angle over Frames ticks.
	MotionTurnTo
	// MotionAimPlayer snaps the angle toward the player's current position.
	MotionAimPlayer
	// MotionClampSpeed caps speed at Speed from here on.
	MotionClampSpeed
)

// MotionInstr is one instruction. Field use depends on Op; DeltaSpeed and
// DeltaAngle are per-frame increments precomputed when a timed instruction
// starts.
type MotionInstr struct {
	Op     MotionOp
	Frames int
	Speed  float64
	Angle  float64

	DeltaSpeed float64
	DeltaAngle float64
}

// MotionProgram is a per-bullet instruction list with its interpreter state:
// program counter, frame counter, and the current polar motion (speed in
// px/s, angle in degrees). All state lives here, never in call-stack locals,
// so interpretation is resumable across ticks and entity orderings. A bullet
// without a program flies at constant velocity.
type MotionProgram struct {
	Instrs       []MotionInstr
	PC           int
	FrameCounter int
	Speed        float64
	Angle        float64
	SpeedCap     float64
	Finished     bool
}

var MotionProgramKind = NewKind[MotionProgram]()

// MotionBuilder builds motion programs fluently:
//
//	p := component.NewMotion(100, 90).Wait(30).AccelerateTo(200, 60).Build()
type MotionBuilder struct {
	speed  float64
	angle  float64
	instrs []MotionInstr
}

// NewMotion starts a builder with the bullet's initial speed and angle.
func NewMotion(speed, angle float64) *MotionBuilder {
	return &MotionBuilder{speed: speed, angle: angle}
}

func (b *MotionBuilder) Wait(frames int) *MotionBuilder {
	b.instrs = append(b.instrs, MotionInstr{Op: MotionWait, Frames: frames})
	return b
}

func (b *MotionBuilder) SetSpeed(speed float64) *MotionBuilder {
	b.instrs = append(b.instrs, MotionInstr{Op: MotionSetSpeed, Speed: speed})
	return b
}

func (b *MotionBuilder) SetAngle(angle float64) *MotionBuilder {
	b.instrs = append(b.instrs, MotionInstr{Op: MotionSetAngle, Angle: angle})
	return b
}

func (b *MotionBuilder) AccelerateTo(speed float64, frames int) *MotionBuilder {
	b.instrs = append(b.instrs, MotionInstr{Op: MotionAccelerateTo, Speed: speed, Frames: frames})
	return b
}

func (b *MotionBuilder) TurnTo(angle float64, frames int) *MotionBuilder {
	b.instrs = append(b.instrs, MotionInstr{Op: MotionTurnTo, Angle: angle, Frames: frames})
	return b
}

func (b *MotionBuilder) AimPlayer() *MotionBuilder {
	b.instrs = append(b.instrs, MotionInstr{Op: MotionAimPlayer})
	return b
}

func (b *MotionBuilder) ClampSpeed(speed float64) *MotionBuilder {
	b.instrs = append(b.instrs, MotionInstr{Op: MotionClampSpeed, Speed: speed})
	return b
}

func (b *MotionBuilder) Build() *MotionProgram {
	instrs := make([]MotionInstr, len(b.instrs))
	copy(instrs, b.instrs)
	return &MotionProgram{Instrs: instrs, Speed: b.speed, Angle: b.angle}
}
