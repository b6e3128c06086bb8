package systems

import (
	"fmt"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/fonts"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders each player's dash meter, drone rack and hit count in the
// top-left corner of their own viewport.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Camera.Each(ecs.World, func(cameraEntry *donburi.Entry) {
		camera := components.Camera.Get(cameraEntry)
		target := camera.Target
		if target == nil || !target.Valid() || !target.HasComponent(components.Player) {
			return
		}
		rect := camera.Viewport.Pixels(screen.Bounds().Dx(), screen.Bounds().Dy())
		dst := screen.SubImage(rect).(*ebiten.Image)

		x := float32(rect.Min.X) + float32(cfg.HUD.Margin)
		y := float32(rect.Min.Y) + float32(cfg.HUD.Margin)
		drawHUDFor(dst, target, x, y)
	})
}

func drawHUDFor(dst *ebiten.Image, entry *donburi.Entry, x, y float32) {
	player := components.Player.Get(entry)
	marble := components.Marble.Get(entry)

	// Dash meter fills as it drains back toward a ready dash
	barW := float32(cfg.HUD.DashBarWidth)
	barH := float32(cfg.HUD.DashBarHeight)
	vector.FillRect(dst, x, y, barW, barH, cfg.HUD.DashBarBgColor, false)
	ready := float32(1 - dashRatio(marble))
	vector.FillRect(dst, x, y, barW*ready, barH, cfg.HUD.DashBarColor, false)

	// Drone rack
	slot := float32(cfg.HUD.SlotSize)
	gap := float32(cfg.HUD.SlotGap)
	slotY := y + barH + gap
	for i := 0; i < loadout.MaxDrones; i++ {
		sx := x + float32(i)*(slot+gap)
		vector.FillRect(dst, sx, slotY, slot, slot, cfg.HUD.SlotColor, false)
		if i >= len(player.Drones) {
			continue
		}
		drone := components.Drone.Get(player.Drones[i])
		vector.FillRect(dst, sx+1, slotY+1, slot-2, slot-2, DroneColor(drone.Type), false)
		if i == player.Selected {
			vector.StrokeRect(dst, sx-1, slotY-1, slot+2, slot+2, 1, cfg.HUD.SelectedColor, false)
		}
		// Ammo pips under the slot
		for a := 0; a < drone.Ammo; a++ {
			vector.FillRect(dst, sx+float32(a)*3, slotY+slot+2, 2, 2, cfg.White, false)
		}
	}

	label := fmt.Sprintf("P%d  hits %d", player.Index+1, player.Hits)
	text.Draw(dst, label, fonts.Small.Get(), int(x+3*(slot+gap)+4), int(slotY+slot), player.Color)
}
