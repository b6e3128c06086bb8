package systems

import (
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// PickupCollectedEvent is published when a pickup turns into a drone.
type PickupCollectedEvent struct {
	Player *donburi.Entry
	Type   loadout.DroneType
}

// ProjectileHitEvent is published when a projectile strikes a marble.
type ProjectileHitEvent struct {
	Owner    *donburi.Entry
	Target   *donburi.Entry
	Type     loadout.DroneType
	Position gamemath.Vec2
}

var (
	PickupCollected = events.NewEventType[PickupCollectedEvent]()
	ProjectileHit   = events.NewEventType[ProjectileHitEvent]()
)

// RegisterEventHandlers subscribes the feedback handlers for a new world.
func RegisterEventHandlers(e *ecs.ECS) {
	PickupCollected.Subscribe(e.World, func(w donburi.World, ev PickupCollectedEvent) {
		queueSFX(w, cfg.SoundPickup)
	})
	ProjectileHit.Subscribe(e.World, func(w donburi.World, ev ProjectileHitEvent) {
		onProjectileHit(e, ev)
	})
}

// ProcessEvents delivers the events published during this tick.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

func onProjectileHit(e *ecs.ECS, ev ProjectileHitEvent) {
	queueSFX(e.World, cfg.SoundHit)
	factory.CreateImpact(e, ev.Position, cfg.Orange)

	if ev.Owner != nil && ev.Owner.Valid() && ev.Owner.HasComponent(components.Player) {
		components.Player.Get(ev.Owner).Hits++
	}
	if ev.Target == nil || !ev.Target.Valid() || !ev.Target.HasComponent(components.Player) {
		return
	}
	TriggerFlash(ev.Target, cfg.Projectile.HitFlash, 1, 0.5, 0.5)
	TriggerScreenShake(e.World, components.Player.Get(ev.Target).Index, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
}
