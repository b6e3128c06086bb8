package factory

import (
	"image/color"
	"math"

	"github.com/automoto/marbledrones/archetypes"
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/gesture"
	"github.com/automoto/marbledrones/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a marble centred on spawn with the given input binding.
func CreatePlayer(ecs *ecs.ECS, idx int, spawn gamemath.Vec2, binding components.DeviceBinding) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	r := cfg.Marble.Radius
	obj := resolv.NewObject(spawn.X-r, spawn.Y-r, r*2, r*2, tags.ResolvMarble)
	obj.SetShape(resolv.NewRectangle(0, 0, r*2, r*2))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Index: idx,
		Color: cfg.PlayerColors.Colors[idx%len(cfg.PlayerColors.Colors)],
		Layer: gamemath.OverlayLayer(idx),
		Spawn: spawn,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		PlayerIndex: idx,
		Binding:     binding,
		StickDash: gesture.NewStickDash(
			gesture.DefaultInnerZone,
			gesture.DefaultOuterZone,
			gesture.DefaultTimeout,
		),
	})
	components.Marble.SetValue(player, components.MarbleData{
		Heading:  gamemath.Vec2{X: 0, Y: 1},
		Grounded: true,
		MaxDash:  cfg.Marble.MaxDash,
		Radius:   r,
	})
	components.WheelParticles.SetValue(player, newWheelParticles(components.Player.Get(player).Color))

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(player, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:    1,
		ScaleY:    1,
		TargetX:   1,
		TargetY:   1,
		LerpSpeed: cfg.Marble.SquashLerpSpeed,
	})

	return player
}

func newWheelParticles(c color.RGBA) components.WheelParticlesData {
	burst := cfg.Particle.BurstCount
	return components.WheelParticlesData{
		Dust:      components.Emitter{Rate: cfg.Particle.JetRate, StartSize: 0.2, StartColor: cfg.DustColor, Spread: 0.6},
		Charge:    components.Emitter{StartSize: 0.15, StartSpeed: 2.5, StartColor: c, Spread: math.Pi},
		DashJets:  components.Emitter{StartSpeed: 7, StartColor: cfg.LightBlue, Spread: 0.3},
		JumpJets:  components.Emitter{Rate: cfg.Particle.JetRate, StartSize: 0.2, StartSpeed: 3, StartColor: cfg.Orange, Spread: math.Pi, Lift: -3},
		DropJets:  components.Emitter{Rate: cfg.Particle.JetRate, StartSize: 0.2, StartSpeed: 3, StartColor: cfg.Purple, Spread: math.Pi, Lift: 6},
		JumpBurst: components.Emitter{BurstCount: burst, StartSize: 0.25, StartSpeed: 9, StartColor: cfg.Yellow, Spread: math.Pi},
		DropBurst: components.Emitter{BurstCount: burst, StartSize: 0.25, StartSpeed: 11, StartColor: cfg.Magenta, Spread: math.Pi},
		DashBurst: components.Emitter{BurstCount: burst, StartSize: 0.25, StartSpeed: 14, StartColor: cfg.White, Spread: 0.5},
	}
}
