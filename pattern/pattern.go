// Package pattern turns a pattern kind plus parameters into the concrete
// velocity vectors for a volley of bullets.
//
// Coordinate convention: 0° points right (+X), 90° points down (+Y, the
// screen Y axis grows downward), angles increase clockwise and are measured
// in degrees. Angles normalize to [-180, 180).
package pattern

import "math"

const degToRad = math.Pi / 180.0

// Vec is a 2D velocity in px/s.
type Vec struct {
	X float64
	Y float64
}

// FromAngle converts polar (degrees, px/s) to a velocity vector.
func FromAngle(deg, speed float64) Vec {
	rad := deg * degToRad
	return Vec{X: math.Cos(rad) * speed, Y: math.Sin(rad) * speed}
}

// Angle returns the direction of v in degrees, normalized to [-180, 180).
func Angle(v Vec) float64 {
	return math.Atan2(v.Y, v.X) / degToRad
}

// Speed returns the magnitude of v.
func Speed(v Vec) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize maps deg into [-180, 180).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 180 {
		deg -= 360
	}
	return deg
}

// ShortestArc returns the signed smallest rotation from one angle to
// another, in [-180, 180). Positive means clockwise.
func ShortestArc(from, to float64) float64 {
	return Normalize(to - from)
}

// AngleTo returns the angle in degrees from (x, y) toward (tx, ty).
func AngleTo(x, y, tx, ty float64) float64 {
	return math.Atan2(ty-y, tx-x) / degToRad
}

// Aimed returns a single vector from (x, y) toward (tx, ty). The direction
// is locked at spawn time; it is never re-aimed.
func Aimed(x, y, tx, ty, speed float64) Vec {
	return FromAngle(AngleTo(x, y, tx, ty), speed)
}

// StraightDown returns the fixed downward vector (0, +speed).
func StraightDown(speed float64) Vec {
	return Vec{X: 0, Y: speed}
}

// NWay returns count vectors evenly spaced across spread degrees, centered
// on center. With count > 1 the spacing is spread/(count-1), so symmetric
// pairs straddle the center for even counts and the middle shot of an odd
// count lies exactly on it. count == 1 fires straight along center.
func NWay(count int, spread, center, speed float64) []Vec {
	if count < 1 {
		return nil
	}
	if count == 1 {
		return []Vec{FromAngle(center, speed)}
	}
	out := make([]Vec, 0, count)
	start := center - spread/2
	step := spread / float64(count-1)
	for i := 0; i < count; i++ {
		out = append(out, FromAngle(start+float64(i)*step, speed))
	}
	return out
}

// Ring returns count vectors uniformly spaced around the full circle,
// beginning at start degrees.
func Ring(count int, start, speed float64) []Vec {
	if count < 1 {
		return nil
	}
	out := make([]Vec, 0, count)
	step := 360.0 / float64(count)
	for i := 0; i < count; i++ {
		out = append(out, FromAngle(start+float64(i)*step, speed))
	}
	return out
}

// SpiralEmitter drives a spiral pattern: each call emits a ring whose start
// angle has advanced by Step since the previous call. The emitter is owned
// by the spawning component or script, so concurrent spirals never share
// state.
type SpiralEmitter struct {
	Angle float64
	Step  float64
}

// Next emits the current ring and advances the start angle.
func (s *SpiralEmitter) Next(count int, speed float64) []Vec {
	out := Ring(count, s.Angle, speed)
	s.Angle = Normalize(s.Angle + s.Step)
	return out
}
