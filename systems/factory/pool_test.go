package factory

import (
	"testing"

	"github.com/automoto/marbledrones/components"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 320, 240, 16, 16)
	return e
}

func TestPoolRecyclesPickups(t *testing.T) {
	e := newTestECS()
	pool := NewPool(e)

	first := SpawnPickup(pool, loadout.DroneRocket, gamemath.Vec2{X: 50, Y: 50}, 80, 90)
	p := components.Pickup.Get(first)
	p.Falling = false
	p.Altitude = 0
	p.VerticalSpeed = -12

	pool.Despawn(first)
	if !IsPooled(first) {
		t.Fatal("despawned pickup is not pooled")
	}
	if pool.Free(KindPickup) != 1 {
		t.Fatalf("free pickups = %d, want 1", pool.Free(KindPickup))
	}
	if components.Object.Get(first).Object.Space != nil {
		t.Error("pooled pickup is still in the collision space")
	}

	second := SpawnPickup(pool, loadout.DroneSeeker, gamemath.Vec2{X: 100, Y: 20}, 30, 10)
	if second != first {
		t.Fatal("pool created a new pickup instead of reusing the free one")
	}
	if IsPooled(second) || pool.Free(KindPickup) != 0 {
		t.Error("reused pickup still marked as pooled")
	}

	p = components.Pickup.Get(second)
	want := components.PickupData{Type: loadout.DroneSeeker, Falling: true, Altitude: 30, Rotation: 10}
	if p.Type != want.Type || p.Falling != want.Falling || p.Altitude != want.Altitude ||
		p.Rotation != want.Rotation || p.VerticalSpeed != 0 {
		t.Errorf("recycled pickup = %+v, want fresh %+v", *p, want)
	}
	if p.Glow == nil {
		t.Error("recycled pickup lost its glow tween")
	}
	obj := components.Object.Get(second).Object
	if obj.Space == nil {
		t.Error("recycled pickup not back in the collision space")
	}
	if cx := obj.X + obj.W/2; cx != 100 {
		t.Errorf("recycled pickup centre x = %v, want 100", cx)
	}
}

func TestPoolRecyclesDrones(t *testing.T) {
	e := newTestECS()
	pool := NewPool(e)

	d := SpawnDrone(pool, nil, loadout.Award{Type: loadout.DroneRocket, Ammo: 3, Anchor: 2}, gamemath.Vec2{}, 0, 0)
	components.Drone.Get(d).Ammo = 0
	pool.Despawn(d)

	again := SpawnDrone(pool, nil, loadout.Award{Type: loadout.DroneMortar, Ammo: 2, Anchor: 0}, gamemath.Vec2{X: 4}, 5, 6)
	if again != d {
		t.Fatal("drone was not reused")
	}
	got := components.Drone.Get(again)
	if got.Type != loadout.DroneMortar || got.Ammo != 2 || got.Anchor != 0 || got.Altitude != 5 || got.Rotation != 6 {
		t.Errorf("recycled drone = %+v", *got)
	}
}

func TestPoolDespawnIsIdempotent(t *testing.T) {
	e := newTestECS()
	pool := NewPool(e)

	p := SpawnProjectile(pool, nil, loadout.DroneRocket, gamemath.Vec2{X: 10, Y: 10}, gamemath.Vec2{X: 1}, 0, nil)
	pool.Despawn(p)
	pool.Despawn(p)
	pool.Despawn(nil)

	if got := pool.Free(KindProjectile); got != 1 {
		t.Errorf("free projectiles = %d, want 1", got)
	}
}

func TestPoolKeepsKindsApart(t *testing.T) {
	e := newTestECS()
	pool := NewPool(e)

	pickup := SpawnPickup(pool, loadout.DroneRocket, gamemath.Vec2{X: 10, Y: 10}, 0, 0)
	pool.Despawn(pickup)

	proj := SpawnProjectile(pool, nil, loadout.DroneRocket, gamemath.Vec2{X: 10, Y: 10}, gamemath.Vec2{X: 1}, 0, nil)
	if proj == pickup {
		t.Fatal("a pooled pickup was handed out as a projectile")
	}
	if pool.Free(KindPickup) != 1 {
		t.Errorf("free pickups = %d, want 1", pool.Free(KindPickup))
	}
}
