package systems

import (
	"math"

	"github.com/automoto/marbledrones/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, squash/stretch, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateSquashStretchEffects(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects counts hit flashes down and restores the untinted color
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration <= 0 {
			return
		}
		flash.Duration--
		if flash.Duration == 0 {
			flash.R, flash.G, flash.B = 1, 1, 1
		}
	})
}

// updateSquashStretchEffects lerps scale values back toward their target
func updateSquashStretchEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		// Snap once close enough
		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			ss.ScaleX = ss.TargetX
			ss.ScaleY = ss.TargetY
		}
	})
}

// updateAutoDestroy removes short-lived entities once their frames run out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		// Remove from physics space if it has an object
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}

// TriggerSquashStretch deforms a marble, which then eases back to its normal
// shape. Players carry SquashStretch from spawn.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TargetX = 1.0
	ss.TargetY = 1.0
}

// TriggerFlash tints entry for the given number of frames.
func TriggerFlash(entry *donburi.Entry, frames int, r, g, b float32) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = frames
	flash.R, flash.G, flash.B = r, g, b
}
