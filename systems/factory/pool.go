package factory

import (
	"github.com/automoto/marbledrones/archetypes"
	"github.com/automoto/marbledrones/components"
	"github.com/automoto/marbledrones/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Kind selects which pooled archetype an entry belongs to.
type Kind int

const (
	KindPickup Kind = iota
	KindDrone
	KindProjectile
	kindCount
)

// Pool recycles pickups, drones and projectiles. Retired entries stay in the
// world tagged Pooled and out of the collision space until spawned again.
type Pool struct {
	ecs  *ecs.ECS
	free [kindCount][]*donburi.Entry
}

// NewPool creates an empty pool for e. The scene owns it and hands it to the
// systems that spawn or retire entries.
func NewPool(e *ecs.ECS) *Pool {
	return &Pool{ecs: e}
}

// ECS returns the world the pool spawns into.
func (p *Pool) ECS() *ecs.ECS {
	return p.ecs
}

// Free returns how many retired entries of kind are waiting for reuse.
func (p *Pool) Free(kind Kind) int {
	return len(p.free[kind])
}

// acquire returns a recycled entry of kind, or a freshly created one.
func (p *Pool) acquire(kind Kind) *donburi.Entry {
	list := p.free[kind]
	if n := len(list); n > 0 {
		entry := list[n-1]
		p.free[kind] = list[:n-1]
		entry.RemoveComponent(tags.Pooled)
		return entry
	}

	switch kind {
	case KindPickup:
		return archetypes.Pickup.Spawn(p.ecs)
	case KindDrone:
		return archetypes.Drone.Spawn(p.ecs)
	default:
		return archetypes.Projectile.Spawn(p.ecs)
	}
}

// Despawn retires entry to the pool. Entries that are already pooled or not
// pooled archetypes are ignored.
func (p *Pool) Despawn(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() || entry.HasComponent(tags.Pooled) {
		return
	}

	kind, ok := kindOf(entry)
	if !ok {
		return
	}

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	entry.AddComponent(tags.Pooled)
	p.free[kind] = append(p.free[kind], entry)
}

// IsPooled reports whether entry is parked in a pool.
func IsPooled(entry *donburi.Entry) bool {
	return entry == nil || !entry.Valid() || entry.HasComponent(tags.Pooled)
}

func kindOf(entry *donburi.Entry) (Kind, bool) {
	switch {
	case entry.HasComponent(tags.Pickup):
		return KindPickup, true
	case entry.HasComponent(tags.Drone):
		return KindDrone, true
	case entry.HasComponent(tags.Projectile):
		return KindProjectile, true
	}
	return 0, false
}
