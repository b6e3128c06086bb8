package gamemath

import "math"

// normalizeEpsilon is the magnitude below which a vector normalizes to zero.
const normalizeEpsilon = 1e-5

// Vec2 is a 2D vector on the arena floor. Y grows downward, matching screen space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector in v's direction, or the zero vector when v
// is too short to have a meaningful direction.
func (v Vec2) Normalized() Vec2 {
	m := v.Magnitude()
	if m < normalizeEpsilon {
		return Vec2{}
	}
	return Vec2{X: v.X / m, Y: v.Y / m}
}

// ClampMagnitude shortens v to max if it is longer.
func (v Vec2) ClampMagnitude(max float64) Vec2 {
	m := v.Magnitude()
	if m <= max || m == 0 {
		return v
	}
	return v.Scale(max / m)
}

func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Lerp moves from a toward b by t (0..1).
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func Distance(a, b Vec2) float64 {
	return b.Sub(a).Magnitude()
}
