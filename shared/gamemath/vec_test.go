package gamemath

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", Vec2{1, 0}, Vec2{1, 0}},
		{"scaled", Vec2{3, 4}, Vec2{.6, .8}},
		{"zero", Vec2{}, Vec2{}},
		{"tiny", Vec2{1e-7, 0}, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Normalized(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyFriction(t *testing.T) {
	got := ApplyFriction(Vec2{3, 4}, 1)
	if !almostEqual(got.Magnitude(), 4) {
		t.Errorf("magnitude after friction = %f, want 4", got.Magnitude())
	}
	if got := ApplyFriction(Vec2{.5, 0}, 1); !got.IsZero() {
		t.Errorf("friction larger than speed should stop, got %v", got)
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(Vec2{2, 0}, Vec2{-1, 0}, .5)
	if !almostEqual(got.X, -1) || !almostEqual(got.Y, 0) {
		t.Errorf("Reflect = %v, want {-1 0}", got)
	}

	// Moving away from the surface is left alone.
	away := Vec2{-2, 1}
	if got := Reflect(away, Vec2{-1, 0}, .5); got != away {
		t.Errorf("Reflect(away) = %v, want %v", got, away)
	}
}

func TestClampMagnitude(t *testing.T) {
	got := Vec2{6, 8}.ClampMagnitude(5)
	if !almostEqual(got.Magnitude(), 5) {
		t.Errorf("ClampMagnitude magnitude = %f, want 5", got.Magnitude())
	}
	short := Vec2{1, 1}
	if got := short.ClampMagnitude(5); got != short {
		t.Errorf("ClampMagnitude(short) = %v, want unchanged", got)
	}
}
