package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/leveldata"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCollectPickupAddsDroneToRack(t *testing.T) {
	e := newTestECS()
	pool := factory.NewPool(e)
	at := gamemath.Vec2{X: 100, Y: 100}

	player := spawnTestPlayer(e, 0, at)
	giveDrones(pool, player, loadout.DroneRocket, loadout.DroneRocket)
	pickup := factory.SpawnPickup(pool, loadout.DroneMortar, at, 0, 45)

	if !CollectPickup(pool, pickup, player) {
		t.Fatal("CollectPickup() = false, want true")
	}

	p := components.Player.Get(player)
	if len(p.Drones) != 3 {
		t.Fatalf("drones = %d, want 3", len(p.Drones))
	}
	d := components.Drone.Get(p.Drones[2])
	if d.Type != loadout.DroneMortar || d.Ammo != 2 || d.Anchor != 2 {
		t.Errorf("new drone = %v ammo %d anchor %d, want Mortar ammo 2 anchor 2", d.Type, d.Ammo, d.Anchor)
	}
	if d.Rotation != 45 {
		t.Errorf("drone rotation = %v, want the pickup's 45", d.Rotation)
	}
	if d.Owner != player {
		t.Error("drone owner is not the collecting player")
	}
	if !factory.IsPooled(pickup) {
		t.Error("pickup still live after collection")
	}
	if got := pool.Free(factory.KindPickup); got != 1 {
		t.Errorf("free pickups = %d, want 1", got)
	}
}

func TestCollectPickupLeavesPickupWhenRackFull(t *testing.T) {
	e := newTestECS()
	pool := factory.NewPool(e)
	at := gamemath.Vec2{X: 100, Y: 100}

	player := spawnTestPlayer(e, 0, at)
	giveDrones(pool, player, loadout.DroneRocket, loadout.DroneMortar, loadout.DroneSeeker)
	pickup := factory.SpawnPickup(pool, loadout.DroneRocket, at, 0, 0)

	if CollectPickup(pool, pickup, player) {
		t.Fatal("CollectPickup() = true with a full rack")
	}
	if got := len(components.Player.Get(player).Drones); got != 3 {
		t.Errorf("drones = %d, want 3", got)
	}
	if factory.IsPooled(pickup) {
		t.Error("pickup was consumed with a full rack")
	}
}

func TestCollectPickupTwiceIsIgnored(t *testing.T) {
	e := newTestECS()
	pool := factory.NewPool(e)
	at := gamemath.Vec2{X: 50, Y: 50}

	a := spawnTestPlayer(e, 0, at)
	b := spawnTestPlayer(e, 1, at)
	pickup := factory.SpawnPickup(pool, loadout.DroneSeeker, at, 0, 0)

	if !CollectPickup(pool, pickup, a) {
		t.Fatal("first collection failed")
	}
	if CollectPickup(pool, pickup, b) {
		t.Error("a pooled pickup was collected a second time")
	}
	if got := len(components.Player.Get(b).Drones); got != 0 {
		t.Errorf("second player drones = %d, want 0", got)
	}
}

func TestStepPickupFallsAndLands(t *testing.T) {
	p := &components.PickupData{Falling: true, Altitude: 40}

	for i := 0; i < 600 && p.Falling; i++ {
		stepPickup(p, tick)
	}
	if p.Falling {
		t.Fatal("pickup never landed")
	}
	if p.Altitude != 0 || p.VerticalSpeed != 0 {
		t.Errorf("landed pickup altitude %v speed %v, want 0 and 0", p.Altitude, p.VerticalSpeed)
	}
}

func TestStepPickupRotationWraps(t *testing.T) {
	p := &components.PickupData{Rotation: 359.9}
	for i := 0; i < 120; i++ {
		stepPickup(p, tick)
	}
	if p.Rotation < 0 || p.Rotation >= 360 {
		t.Errorf("rotation = %v, want within [0, 360)", p.Rotation)
	}
}

func TestUpdatePickupsContact(t *testing.T) {
	tests := []struct {
		name       string
		rack       []loadout.DroneType
		altitude   float64
		wantDrones int
		wantPooled bool
	}{
		{"grounded pickup is collected", nil, 0, 1, true},
		{"pickup within reach is collected", []loadout.DroneType{loadout.DroneRocket}, cfg.Pickup.ContactAltitude / 2, 2, true},
		{"pickup above reach is ignored", nil, cfg.Pickup.ContactAltitude + 50, 0, false},
		{"full rack leaves pickup live", []loadout.DroneType{loadout.DroneRocket, loadout.DroneMortar, loadout.DroneSeeker}, 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			pool := factory.NewPool(e)
			at := gamemath.Vec2{X: 120, Y: 120}

			player := spawnTestPlayer(e, 0, at)
			giveDrones(pool, player, tt.rack...)
			pickup := factory.SpawnPickup(pool, loadout.DroneSeeker, at, tt.altitude, 0)

			NewUpdatePickups(pool)(e)

			if got := len(components.Player.Get(player).Drones); got != tt.wantDrones {
				t.Errorf("drones = %d, want %d", got, tt.wantDrones)
			}
			if got := factory.IsPooled(pickup); got != tt.wantPooled {
				t.Errorf("pickup pooled = %v, want %v", got, tt.wantPooled)
			}
		})
	}
}

// newRespawnArena builds a world with an arena whose pickup zone is far from
// the marble at (100, 100).
func newRespawnArena(respawnSeconds float64) (*ecs.ECS, *factory.Pool, leveldata.SolidRect) {
	zone := leveldata.SolidRect{X: 400, Y: 300, W: 100, H: 100}
	arena := &leveldata.ArenaData{
		Name:       "respawn",
		MapWidth:   640,
		MapHeight:  480,
		PickupZone: zone,
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, arena, rand.New(rand.NewSource(3)), 1, respawnSeconds)
	return e, factory.NewPool(e), zone
}

func TestUpdatePickupsRespawnsAfterDelay(t *testing.T) {
	e, pool, zone := newRespawnArena(1)
	at := gamemath.Vec2{X: 100, Y: 100}
	spawnTestPlayer(e, 0, at)
	factory.SpawnPickup(pool, loadout.DroneRocket, at, 0, 0)

	update := NewUpdatePickups(pool)
	update(e)
	if got := pickupQuery.Count(e.World); got != 0 {
		t.Fatalf("live pickups after collection = %d, want 0", got)
	}

	for i := 0; i < 30; i++ {
		update(e)
	}
	if got := pickupQuery.Count(e.World); got != 0 {
		t.Fatalf("live pickups after half the delay = %d, want 0", got)
	}

	for i := 0; i < 31; i++ {
		update(e)
	}
	if got := pickupQuery.Count(e.World); got != 1 {
		t.Fatalf("live pickups after the delay = %d, want 1", got)
	}

	respawned, _ := pickupQuery.First(e.World)
	if got := components.Pickup.Get(respawned).Type; got != loadout.DroneRocket {
		t.Errorf("respawned type = %v, want Rocket", got)
	}
	c := objectCenter(components.Object.Get(respawned).Object)
	if c.X < zone.X || c.X > zone.X+zone.W || c.Y < zone.Y || c.Y > zone.Y+zone.H {
		t.Errorf("respawned at %v, outside the pickup zone", c)
	}
}

func TestUpdatePickupsNoRespawnWhenDisabled(t *testing.T) {
	e, pool, _ := newRespawnArena(0)
	at := gamemath.Vec2{X: 100, Y: 100}
	spawnTestPlayer(e, 0, at)
	factory.SpawnPickup(pool, loadout.DroneMortar, at, 0, 0)

	update := NewUpdatePickups(pool)
	for i := 0; i < 300; i++ {
		update(e)
	}
	if got := pickupQuery.Count(e.World); got != 0 {
		t.Errorf("live pickups = %d, want 0 with respawn disabled", got)
	}
}
