package systems

import (
	"math"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/automoto/marbledrones/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var fireSounds = map[loadout.DroneType]cfg.SoundID{
	loadout.DroneRocket: cfg.SoundFireRocket,
	loadout.DroneMortar: cfg.SoundFireMortar,
	loadout.DroneSeeker: cfg.SoundFireSeeker,
}

// NewUpdateDrones returns the drone system: selection, firing and hovering.
func NewUpdateDrones(pool *factory.Pool) ecs.System {
	var firing []*donburi.Entry

	return func(ecs *ecs.ECS) {
		dt := cfg.C.DeltaTime()
		firing = firing[:0]

		tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
			player := components.Player.Get(entry)
			input := components.PlayerInput.Get(entry)
			pruneDrones(player)

			if GetPlayerAction(input, cfg.ActionSwitchLeft).JustPressed {
				player.Selected = loadout.CycleSelection(player.Selected, len(player.Drones), -1)
			}
			if GetPlayerAction(input, cfg.ActionSwitchRight).JustPressed {
				player.Selected = loadout.CycleSelection(player.Selected, len(player.Drones), 1)
			}
			if GetPlayerAction(input, cfg.ActionFire).JustPressed {
				firing = append(firing, entry)
			}
		})

		// Firing spawns projectiles and may retire drones, so it runs after the query.
		for _, entry := range firing {
			FireSelected(pool, entry)
		}

		droneQuery.Each(ecs.World, func(entry *donburi.Entry) {
			stepDrone(components.Drone.Get(entry), dt)
		})
	}
}

// pruneDrones drops handles to drones that have been retired elsewhere.
func pruneDrones(player *components.PlayerData) {
	kept := player.Drones[:0]
	for _, d := range player.Drones {
		if !factory.IsPooled(d) {
			kept = append(kept, d)
		}
	}
	player.Drones = kept
	reanchor(player)
}

// reanchor assigns anchor slots in rack order and keeps the selection in range.
func reanchor(player *components.PlayerData) {
	for i, d := range player.Drones {
		components.Drone.Get(d).Anchor = i
	}
	player.Selected = loadout.CycleSelection(player.Selected, len(player.Drones), 0)
}

// stepDrone moves a drone toward its anchor slot beside the owner's marble.
func stepDrone(d *components.DroneData, dt float64) {
	if d.Owner == nil || !d.Owner.Valid() || !d.Owner.HasComponent(components.Marble) {
		return
	}
	obj := components.Object.Get(d.Owner).Object
	if obj == nil {
		return
	}
	marble := components.Marble.Get(d.Owner)

	slot := gamemath.ClampInt(d.Anchor, 0, len(cfg.Drone.Anchors)-1)
	offset := gamemath.Vec2{X: cfg.Drone.Anchors[slot][0], Y: cfg.Drone.Anchors[slot][1]}
	target := objectCenter(obj).Add(offset)

	t := math.Min(1, cfg.Drone.FollowRate*dt)
	d.Position = gamemath.Lerp(d.Position, target, t)

	var bob float64
	if d.Bob != nil {
		v, done := d.Bob.Update(float32(dt))
		bob = float64(v)
		if done {
			// Swing back the other way
			d.Bob = gween.New(v, -v, float32(cfg.Drone.BobPeriod/2), ease.InOutSine)
		}
	}
	hover := marble.Altitude + cfg.Drone.HoverAltitude + bob
	d.Altitude += (hover - d.Altitude) * t

	d.Rotation = marble.Heading.Angle() * 180 / math.Pi
}

// FireSelected launches a projectile from the player's selected drone and
// returns it, or nil when the player has nothing to fire. A drone that runs out
// of ammo is retired and the rest of the rack closes up behind it.
func FireSelected(pool *factory.Pool, player *donburi.Entry) *donburi.Entry {
	p := components.Player.Get(player)
	if len(p.Drones) == 0 {
		return nil
	}
	p.Selected = loadout.CycleSelection(p.Selected, len(p.Drones), 0)

	droneEntry := p.Drones[p.Selected]
	drone := components.Drone.Get(droneEntry)
	if drone.Ammo <= 0 {
		retireDrone(pool, p, p.Selected)
		return nil
	}

	dir := aimDirection(components.PlayerInput.Get(player), components.Marble.Get(player))
	var target *donburi.Entry
	if drone.Type == loadout.DroneSeeker {
		target = nearestRival(pool.ECS().World, player, drone.Position)
	}

	projectile := factory.SpawnProjectile(pool, player, drone.Type, drone.Position, dir, drone.Altitude, target)
	PlaySFX(pool.ECS(), fireSounds[drone.Type])

	drone.Ammo--
	if drone.Ammo <= 0 {
		retireDrone(pool, p, p.Selected)
		PlaySFX(pool.ECS(), cfg.SoundDroneEmpty)
	}
	return projectile
}

func retireDrone(pool *factory.Pool, p *components.PlayerData, idx int) {
	pool.Despawn(p.Drones[idx])
	p.Drones = append(p.Drones[:idx], p.Drones[idx+1:]...)
	reanchor(p)
}

// aimDirection is the right stick when it is pushed past the deadzone,
// otherwise the marble's heading.
func aimDirection(input *components.PlayerInputData, m *components.MarbleData) gamemath.Vec2 {
	if input.RightStick.Magnitude() > cfg.Input.AnalogDeadzone {
		return input.RightStick.Normalized()
	}
	if m.Heading.IsZero() {
		return gamemath.Vec2{Y: 1}
	}
	return m.Heading
}

// nearestRival returns the closest marble that does not belong to owner.
func nearestRival(w donburi.World, owner *donburi.Entry, from gamemath.Vec2) *donburi.Entry {
	var best *donburi.Entry
	bestDist := math.Inf(1)

	tags.Player.Each(w, func(entry *donburi.Entry) {
		if entry == owner {
			return
		}
		obj := components.Object.Get(entry).Object
		if obj == nil {
			return
		}
		if d := gamemath.Distance(from, objectCenter(obj)); d < bestDist {
			best = entry
			bestDist = d
		}
	})
	return best
}
