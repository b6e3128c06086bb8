package systems

import (
	"math"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCameras moves each split-screen camera toward its marble, leading by
// the marble's velocity and kept inside the arena.
func UpdateCameras(e *ecs.ECS) {
	arenaW, arenaH := arenaSize(e.World)

	var settled []*donburi.Entry

	components.Camera.Each(e.World, func(cameraEntry *donburi.Entry) {
		camera := components.Camera.Get(cameraEntry)
		var done bool
		camera.Offset, done = updateScreenShake(cameraEntry)
		if done {
			settled = append(settled, cameraEntry)
		}

		target := camera.Target
		if target == nil || !target.Valid() || !target.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(target).Object
		if obj == nil {
			return
		}
		marble := components.Marble.Get(target)

		// Lead the marble by where it will be shortly
		goal := objectCenter(obj).Add(marble.Velocity.Scale(cfg.Camera.LookAhead))

		// Keep the arena filling the viewport where it is big enough to
		view := camera.Viewport.Pixels(cfg.C.Width, cfg.C.Height)
		goal.X = clampAxis(goal.X, float64(view.Dx()), arenaW)
		goal.Y = clampAxis(goal.Y, float64(view.Dy()), arenaH)

		camera.Position = gamemath.Lerp(camera.Position, goal, cfg.Camera.FollowSmoothing)
	})

	for _, entry := range settled {
		entry.RemoveComponent(components.ScreenShake)
	}
}

// clampAxis keeps a camera centre within [view/2, arena-view/2], or centred
// when the arena is smaller than the view.
func clampAxis(v, view, arena float64) float64 {
	if arena <= 0 {
		return v
	}
	if arena <= view {
		return arena / 2
	}
	return math.Max(view/2, math.Min(arena-view/2, v))
}

func arenaSize(w donburi.World) (float64, float64) {
	entry, ok := components.Arena.First(w)
	if !ok {
		return 0, 0
	}
	arena := components.Arena.Get(entry)
	if arena.Data == nil {
		return 0, 0
	}
	return float64(arena.Data.MapWidth), float64(arena.Data.MapHeight)
}

// updateScreenShake returns this frame's shake offset for a camera and
// whether the shake has finished.
func updateScreenShake(cameraEntry *donburi.Entry) (gamemath.Vec2, bool) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return gamemath.Vec2{}, false
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := 0.0
	if shake.Duration > 0 {
		progress = math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	}
	intensity := shake.Intensity * progress

	offset := gamemath.Vec2{
		X: math.Sin(float64(shake.Elapsed)*1.1) * intensity,
		Y: math.Cos(float64(shake.Elapsed)*1.3) * intensity,
	}

	return offset, shake.Elapsed >= shake.Duration
}

// TriggerScreenShake shakes the camera of player idx. A weaker shake never
// replaces a stronger one that is still running.
func TriggerScreenShake(w donburi.World, playerIndex int, intensity float64, duration int) {
	var cameraEntry *donburi.Entry
	components.Camera.Each(w, func(entry *donburi.Entry) {
		if components.Camera.Get(entry).PlayerIndex == playerIndex {
			cameraEntry = entry
		}
	})
	if cameraEntry == nil {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
