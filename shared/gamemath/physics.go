package gamemath

// ApplyFriction reduces a velocity's magnitude by friction, stopping it at zero.
func ApplyFriction(v Vec2, friction float64) Vec2 {
	m := v.Magnitude()
	if m <= friction {
		return Vec2{}
	}
	return v.Scale((m - friction) / m)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Reflect bounces v off a surface with the given unit normal, scaling the
// reflected component by restitution.
func Reflect(v, normal Vec2, restitution float64) Vec2 {
	d := v.Dot(normal)
	if d >= 0 {
		return v
	}
	return v.Sub(normal.Scale(d * (1 + restitution)))
}
