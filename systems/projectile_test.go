package systems

import (
	"math"
	"testing"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
)

func TestSteer(t *testing.T) {
	tests := []struct {
		name      string
		vel       gamemath.Vec2
		desired   gamemath.Vec2
		maxTurn   float64
		wantAngle float64
	}{
		{"limited turn", gamemath.Vec2{X: 100}, gamemath.Vec2{Y: 1}, 0.1, 0.1},
		{"limited turn the other way", gamemath.Vec2{X: 100}, gamemath.Vec2{Y: -1}, 0.1, -0.1},
		{"reaches target", gamemath.Vec2{X: 100}, gamemath.FromAngle(0.05), 0.1, 0.05},
		{"wraps across pi", gamemath.FromAngle(3).Scale(50), gamemath.FromAngle(-3), 1, 3 + (2*math.Pi - 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := steer(tt.vel, tt.desired, tt.maxTurn)
			if !near(got.Magnitude(), tt.vel.Magnitude()) {
				t.Errorf("speed = %v, want %v", got.Magnitude(), tt.vel.Magnitude())
			}
			want := gamemath.FromAngle(tt.wantAngle)
			if math.Abs(got.Normalized().X-want.X) > 1e-6 || math.Abs(got.Normalized().Y-want.Y) > 1e-6 {
				t.Errorf("direction = %v, want %v", got.Normalized(), want)
			}
		})
	}
}

func TestSteerStationary(t *testing.T) {
	if got := steer(gamemath.Vec2{}, gamemath.Vec2{X: 1}, 1); !got.IsZero() {
		t.Errorf("steer(zero) = %v, want zero", got)
	}
}

func TestStepProjectileLifetime(t *testing.T) {
	p := &components.ProjectileData{Type: loadout.DroneRocket, Velocity: gamemath.Vec2{X: 1}, Lifetime: 2 * tick}

	if stepProjectile(p, gamemath.Vec2{}, nil, tick) {
		t.Fatal("expired one step early")
	}
	if !stepProjectile(p, gamemath.Vec2{}, nil, tick) {
		t.Error("did not expire when lifetime ran out")
	}
}

func TestStepProjectileMortarLands(t *testing.T) {
	p := &components.ProjectileData{
		Type:          loadout.DroneMortar,
		Altitude:      10,
		VerticalSpeed: cfg.Projectile.Mortar.LaunchSpeedZ,
		Lifetime:      cfg.Projectile.Mortar.Lifetime,
	}

	peak := 0.0
	landed := false
	for i := 0; i < int(cfg.Projectile.Mortar.Lifetime/tick); i++ {
		if stepProjectile(p, gamemath.Vec2{}, nil, tick) {
			landed = true
			break
		}
		peak = math.Max(peak, p.Altitude)
	}
	if !landed {
		t.Fatal("mortar never came down")
	}
	if p.Altitude != 0 {
		t.Errorf("landed altitude = %v, want 0", p.Altitude)
	}
	if peak <= 10 {
		t.Errorf("peak altitude = %v, want an arc above the launch height", peak)
	}
}

func TestStepProjectileSeekerHomes(t *testing.T) {
	p := &components.ProjectileData{
		Type:     loadout.DroneSeeker,
		Velocity: gamemath.Vec2{X: cfg.Projectile.Seeker.Speed},
		Lifetime: cfg.Projectile.Seeker.Lifetime,
	}
	target := gamemath.Vec2{Y: 500}

	stepProjectile(p, gamemath.Vec2{}, &target, tick)

	if p.Velocity.Y <= 0 {
		t.Errorf("velocity %v did not turn toward the target", p.Velocity)
	}
	if !near(p.Velocity.Magnitude(), cfg.Projectile.Seeker.Speed) {
		t.Errorf("speed = %v, want %v", p.Velocity.Magnitude(), cfg.Projectile.Seeker.Speed)
	}
}

func TestStepProjectileRocketIgnoresTarget(t *testing.T) {
	p := &components.ProjectileData{
		Type:     loadout.DroneRocket,
		Velocity: gamemath.Vec2{X: 100},
		Lifetime: 1,
	}
	target := gamemath.Vec2{Y: 500}

	stepProjectile(p, gamemath.Vec2{}, &target, tick)

	if p.Velocity != (gamemath.Vec2{X: 100}) {
		t.Errorf("rocket velocity changed to %v", p.Velocity)
	}
}
