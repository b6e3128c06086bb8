package systems

import (
	"testing"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/systems/factory"
)

func TestFireSelectedSpendsAmmo(t *testing.T) {
	e := newTestECS()
	pool := factory.NewPool(e)
	player := spawnTestPlayer(e, 0, gamemath.Vec2{X: 100, Y: 100})
	giveDrones(pool, player, loadout.DroneRocket)

	projectile := FireSelected(pool, player)
	if projectile == nil {
		t.Fatal("FireSelected() = nil with a loaded drone")
	}

	p := components.Player.Get(player)
	if got := components.Drone.Get(p.Drones[0]).Ammo; got != 2 {
		t.Errorf("ammo = %d, want 2", got)
	}
	proj := components.Projectile.Get(projectile)
	if proj.Owner != player || proj.Type != loadout.DroneRocket {
		t.Errorf("projectile owner/type = %v/%v", proj.Owner, proj.Type)
	}
	// Default heading is down the screen
	want := gamemath.Vec2{Y: cfg.Projectile.Rocket.Speed}
	if !near(proj.Velocity.X, want.X) || !near(proj.Velocity.Y, want.Y) {
		t.Errorf("velocity = %v, want %v", proj.Velocity, want)
	}
}

func TestFireSelectedRetiresEmptyDrone(t *testing.T) {
	e := newTestECS()
	pool := factory.NewPool(e)
	player := spawnTestPlayer(e, 0, gamemath.Vec2{X: 100, Y: 100})
	giveDrones(pool, player, loadout.DroneRocket, loadout.DroneSeeker, loadout.DroneMortar)

	p := components.Player.Get(player)
	p.Selected = 1
	seeker := p.Drones[1]

	if FireSelected(pool, player) == nil {
		t.Fatal("seeker did not fire")
	}
	if !factory.IsPooled(seeker) {
		t.Error("empty seeker was not retired")
	}
	if len(p.Drones) != 2 {
		t.Fatalf("drones = %d, want 2", len(p.Drones))
	}
	for i, d := range p.Drones {
		if got := components.Drone.Get(d).Anchor; got != i {
			t.Errorf("drone %d anchor = %d, want %d", i, got, i)
		}
	}
	if components.Drone.Get(p.Drones[1]).Type != loadout.DroneMortar {
		t.Error("mortar did not close up behind the retired seeker")
	}
	if p.Selected < 0 || p.Selected >= len(p.Drones) {
		t.Errorf("selection %d out of range", p.Selected)
	}
}

func TestFireSelectedWithoutDrones(t *testing.T) {
	e := newTestECS()
	pool := factory.NewPool(e)
	player := spawnTestPlayer(e, 0, gamemath.Vec2{X: 100, Y: 100})

	if FireSelected(pool, player) != nil {
		t.Error("fired with an empty rack")
	}
}

func TestFireSelectedSeekerTargetsNearestRival(t *testing.T) {
	e := newTestECS()
	pool := factory.NewPool(e)
	player := spawnTestPlayer(e, 0, gamemath.Vec2{X: 100, Y: 100})
	far := spawnTestPlayer(e, 1, gamemath.Vec2{X: 500, Y: 400})
	nearby := spawnTestPlayer(e, 2, gamemath.Vec2{X: 150, Y: 100})
	giveDrones(pool, player, loadout.DroneSeeker)
	components.Drone.Get(components.Player.Get(player).Drones[0]).Position = gamemath.Vec2{X: 100, Y: 100}

	projectile := FireSelected(pool, player)
	if projectile == nil {
		t.Fatal("seeker did not fire")
	}
	if got := components.Projectile.Get(projectile).Target; got != nearby {
		t.Errorf("target = %v, want the closest rival (not %v)", got, far)
	}
}

func TestAimDirection(t *testing.T) {
	tests := []struct {
		name    string
		stick   gamemath.Vec2
		heading gamemath.Vec2
		want    gamemath.Vec2
	}{
		{"right stick wins", gamemath.Vec2{X: 0.8}, gamemath.Vec2{Y: 1}, gamemath.Vec2{X: 1}},
		{"stick in deadzone uses heading", gamemath.Vec2{X: 0.01}, gamemath.Vec2{X: -1}, gamemath.Vec2{X: -1}},
		{"no heading aims down", gamemath.Vec2{}, gamemath.Vec2{}, gamemath.Vec2{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.PlayerInputData{RightStick: tt.stick}
			m := &components.MarbleData{Heading: tt.heading}
			if got := aimDirection(input, m); got != tt.want {
				t.Errorf("aimDirection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCycleSelectionWithSwitchButtons(t *testing.T) {
	e := newTestECS()
	pool := factory.NewPool(e)
	player := spawnTestPlayer(e, 0, gamemath.Vec2{X: 100, Y: 100})
	giveDrones(pool, player, loadout.DroneRocket, loadout.DroneMortar)

	update := NewUpdateDrones(pool)
	input := components.PlayerInput.Get(player)

	press(input, cfg.ActionSwitchLeft)
	update(e)
	if got := components.Player.Get(player).Selected; got != 1 {
		t.Errorf("selection after switch left = %d, want 1 (wrapped)", got)
	}

	input.CurrentInput[cfg.ActionSwitchLeft] = false
	press(input, cfg.ActionSwitchRight)
	update(e)
	if got := components.Player.Get(player).Selected; got != 0 {
		t.Errorf("selection after switch right = %d, want 0", got)
	}
}
