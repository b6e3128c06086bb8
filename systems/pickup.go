package systems

import (
	"math"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/automoto/marbledrones/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type pickupContact struct {
	pickup *donburi.Entry
	player *donburi.Entry
}

// NewUpdatePickups returns the pickup system: falling, spinning, marble
// contact and respawn timers. Pickups and drones come from pool.
func NewUpdatePickups(pool *factory.Pool) ecs.System {
	var contacts []pickupContact

	return func(ecs *ecs.ECS) {
		dt := cfg.C.DeltaTime()
		contacts = contacts[:0]

		pickupQuery.Each(ecs.World, func(entry *donburi.Entry) {
			pickup := components.Pickup.Get(entry)
			stepPickup(pickup, dt)

			if player := touchingMarble(entry, pickup); player != nil {
				contacts = append(contacts, pickupContact{pickup: entry, player: player})
			}
		})

		// Conversions spawn and retire entries, so they run after the query.
		for _, c := range contacts {
			CollectPickup(pool, c.pickup, c.player)
		}

		updatePickupRespawns(ecs, pool, dt)
	}
}

// stepPickup spins the pickup, pulses its glow and lets it fall to the floor.
func stepPickup(p *components.PickupData, dt float64) {
	p.Rotation = math.Mod(p.Rotation+cfg.Pickup.RotatePerSecond*dt, 360)

	if p.Glow != nil {
		v, done := p.Glow.Update(float32(dt))
		p.GlowLevel = float64(v)
		if done {
			p.Glow.Reset()
		}
	}

	if !p.Falling {
		return
	}
	p.VerticalSpeed -= cfg.Pickup.Gravity * dt
	p.Altitude += p.VerticalSpeed * dt
	if p.Altitude <= 0 {
		p.Altitude = 0
		p.VerticalSpeed = 0
		p.Falling = false
	}
}

// touchingMarble returns the first player whose marble overlaps the pickup
// at a reachable altitude.
func touchingMarble(entry *donburi.Entry, p *components.PickupData) *donburi.Entry {
	obj := components.Object.Get(entry).Object
	if obj == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tags.ResolvMarble)
	if check == nil {
		return nil
	}

	for _, other := range check.ObjectsByTags(tags.ResolvMarble) {
		if !overlaps(obj, other) {
			continue
		}
		player, ok := other.Data.(*donburi.Entry)
		if !ok || !player.Valid() || !player.HasComponent(components.Marble) {
			continue
		}
		marble := components.Marble.Get(player)
		if math.Abs(marble.Altitude-p.Altitude) <= cfg.Pickup.ContactAltitude {
			return player
		}
	}
	return nil
}

// CollectPickup converts pickup into a drone for player. A player already
// holding the maximum number of drones leaves the pickup untouched and false
// is returned.
func CollectPickup(pool *factory.Pool, pickup, player *donburi.Entry) bool {
	if factory.IsPooled(pickup) || !player.HasComponent(components.Player) {
		return false
	}

	p := components.Pickup.Get(pickup)
	owner := components.Player.Get(player)

	award, ok := loadout.Convert(len(owner.Drones), p.Type)
	if !ok {
		return false
	}

	pos := objectCenter(components.Object.Get(pickup).Object)
	drone := factory.SpawnDrone(pool, player, award, pos, p.Altitude, p.Rotation)
	owner.Drones = append(owner.Drones, drone)

	queuePickupRespawn(pool.ECS().World, p.Type)
	pool.Despawn(pickup)

	PickupCollected.Publish(pool.ECS().World, PickupCollectedEvent{
		Player: player,
		Type:   award.Type,
	})
	return true
}

func queuePickupRespawn(w donburi.World, t loadout.DroneType) {
	entry, ok := components.PickupSpawner.First(w)
	if !ok {
		return
	}
	spawner := components.PickupSpawner.Get(entry)
	if spawner.RespawnSeconds <= 0 {
		return
	}
	spawner.Pending = append(spawner.Pending, components.PendingPickup{
		Type:  t,
		Timer: spawner.RespawnSeconds,
	})
}

func updatePickupRespawns(ecs *ecs.ECS, pool *factory.Pool, dt float64) {
	entry, ok := components.PickupSpawner.First(ecs.World)
	if !ok {
		return
	}
	spawner := components.PickupSpawner.Get(entry)

	remaining := spawner.Pending[:0]
	var due []loadout.DroneType
	for _, pending := range spawner.Pending {
		pending.Timer -= dt
		if pending.Timer <= 0 {
			due = append(due, pending.Type)
			continue
		}
		remaining = append(remaining, pending)
	}
	spawner.Pending = remaining

	for _, t := range due {
		SpawnRandomPickup(ecs, pool, t)
	}
}
