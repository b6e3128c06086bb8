package archetypes

import (
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Marble,
		components.Object,
		components.WheelParticles,
		components.Flash,
		components.SquashStretch,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Drone = newArchetype(
		tags.Drone,
		components.Drone,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Impact = newArchetype(
		components.Impact,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Arena = newArchetype(
		components.Arena,
		components.PickupSpawner,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Components returns the component set entries of this archetype carry.
func (a *archetype) Components() []donburi.IComponentType {
	return a.components
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
