package systems

import (
	"fmt"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/fonts"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the match pause and drives the pause menu. It reads the
// merged menu input, so any device can pause. Runs after UpdateInput and
// before the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// The settings overlay owns menu input while it is open
	if IsSettingsOpen(ecs) {
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		togglePause(pause)
		return
	}
	if !pause.IsPaused {
		return
	}

	switch {
	case GetAction(input, cfg.ActionMenuUp).JustPressed:
		pause.SelectedOption = stepPauseSelection(pause.SelectedOption, -1)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	case GetAction(input, cfg.ActionMenuDown).JustPressed:
		pause.SelectedOption = stepPauseSelection(pause.SelectedOption, 1)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	case GetAction(input, cfg.ActionMenuBack).JustPressed:
		pause.IsPaused = false
	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		PlaySFX(ecs, cfg.SoundMenuSelect)
		if pause.SelectedOption == components.MenuSettings {
			OpenSettings(ecs)
			return
		}
		choosePauseOption(pause)
	}
}

// togglePause flips the pause state. Opening the menu always starts on Resume.
func togglePause(pause *components.PauseData) {
	pause.IsPaused = !pause.IsPaused
	if pause.IsPaused {
		pause.SelectedOption = components.MenuResume
	}
}

// stepPauseSelection moves the selection by dir, wrapping at both ends.
func stepPauseSelection(sel components.PauseMenuOption, dir int) components.PauseMenuOption {
	return components.PauseMenuOption(wrapIndex(int(sel)+dir, components.PauseOptionCount))
}

// choosePauseOption records the request for the selected entry. Settings is
// handled by the caller since it needs the world.
func choosePauseOption(pause *components.PauseData) {
	switch pause.SelectedOption {
	case components.MenuResume:
		pause.IsPaused = false
	case components.MenuRestart:
		pause.Restart = true
	case components.MenuLobby:
		pause.ExitToLobby = true
	case components.MenuExit:
		pause.Quit = true
	}
}

// pauseRoster describes every player for the pause screen, in player order.
func pauseRoster(w donburi.World) []string {
	var lines []string
	tags.Player.Each(w, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		input := components.PlayerInput.Get(entry)
		for len(lines) <= player.Index {
			lines = append(lines, "")
		}
		lines[player.Index] = fmt.Sprintf("P%d  %-16s drones %d/%d  hits %d",
			player.Index+1, input.Binding.Kind, len(player.Drones), loadout.MaxDrones, player.Hits)
	})
	return lines
}

// DrawPause renders the pause menu with the player roster beneath it.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused || IsSettingsOpen(ecs) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	title := "PAUSED"
	text.Draw(screen, title, fonts.Title.Get(), int(width/2)-len(title)*9, 48, cfg.Yellow)

	step := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	y := height/2 - float64(len(cfg.Pause.MenuOptions))*step/2
	menuFont := fonts.Bold.Get()
	for i, option := range cfg.Pause.MenuOptions {
		c := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			c = cfg.Pause.TextColorSelected
		}
		// Roughly 10px per glyph at 16pt
		x := int(width/2) - len(option)*5
		text.Draw(screen, option, menuFont, x, int(y+cfg.Pause.MenuItemHeight), c)
		y += step
	}

	smallFont := fonts.Small.Get()
	y += cfg.Pause.RosterLineHeight
	for _, line := range pauseRoster(ecs.World) {
		text.Draw(screen, line, smallFont, int(width/2)-len(line)*5/2, int(y), cfg.Pause.TextColorNormal)
		y += cfg.Pause.RosterLineHeight
	}

	hint := pauseHint(getOrCreateInput(ecs).LastInputMethod)
	text.Draw(screen, hint, smallFont, int(width/2)-len(hint)*5/2, int(height)-12, cfg.Pause.TextColorNormal)
}

func pauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Circle/Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   B/Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Backspace/P: Resume"
}

// WithGameplayChecks wraps a gameplay system so it only runs while the match
// is not paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the Pause singleton, creating it on first use.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
