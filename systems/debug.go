package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects in every viewport and prints each
// player's input and dash state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	components.Camera.Each(ecs.World, func(cameraEntry *donburi.Entry) {
		v := newView(screen, components.Camera.Get(cameraEntry))

		for _, obj := range space.Objects() {
			if !v.inView(objectCenter(obj)) {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvMarble):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvPickup):
				c = color.RGBA{0, 255, 0, 255}
			case obj.HasTags(tags.ResolvProjectile):
				c = color.RGBA{255, 0, 0, 255}
			}

			x, y := v.project(objectCenter(obj), 0)
			vector.StrokeRect(v.dst, x-float32(obj.W/2), y-float32(obj.H/2), float32(obj.W), float32(obj.H), 1, c, false)
		}
	})

	line := 0
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		marble := components.Marble.Get(entry)
		msg := fmt.Sprintf("P%d %s stick=(%.2f,%.2f) dash=%s meter=%.2f alt=%.0f",
			input.PlayerIndex+1, input.Binding.Kind,
			input.LeftStick.X, input.LeftStick.Y,
			input.StickDash.State(), marble.Dash, marble.Altitude)
		ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-14*(line+1))
		line++
	})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), screen.Bounds().Dx()-60, 2)
}
