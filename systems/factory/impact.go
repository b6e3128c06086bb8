package factory

import (
	"image/color"
	"math"

	"github.com/automoto/marbledrones/archetypes"
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// impactFrames keeps the entry alive until its burst particles have faded.
const impactFrames = 45

// CreateImpact spawns a one-shot particle burst at pos.
func CreateImpact(ecs *ecs.ECS, pos gamemath.Vec2, c color.RGBA) *donburi.Entry {
	impact := archetypes.Impact.Spawn(ecs)

	em := components.Emitter{
		BurstCount: cfg.Particle.BurstCount * 2,
		StartSize:  0.3,
		StartSpeed: 12,
		StartColor: c,
		Spread:     math.Pi,
		Lift:       4,
	}
	em.Burst()

	components.Impact.SetValue(impact, components.ImpactData{
		Position: pos,
		Emitter:  em,
	})
	components.AutoDestroy.SetValue(impact, components.AutoDestroyData{
		FramesRemaining: impactFrames,
	})
	return impact
}
