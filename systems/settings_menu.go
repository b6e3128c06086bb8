package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}
	if settings.SkipFrame {
		settings.SkipFrame = false
		return
	}

	input := getOrCreateInput(e)

	if settings.ShowingControls {
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionMenuSelect).JustPressed {
			settings.ShowingControls = false
			PlaySFX(e, cfg.SoundMenuSelect)
		}
		return
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		stepSettingsSelection(settings, -1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		stepSettingsSelection(settings, 1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustSetting(e, settings, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustSetting(e, settings, 1)
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		selectSetting(e, settings)
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		closeSettings(e, settings)
	}
}

// stepSettingsSelection moves the selection with wrap-around, skipping hidden
// options.
func stepSettingsSelection(s *components.SettingsMenuData, dir int) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + dir + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			return
		}
	}
}

// isOptionHidden hides the resolution while fullscreen
func isOptionHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	return opt == components.SettingsOptResolution && s.Fullscreen
}

func adjustSetting(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
	switch s.SelectedOption {
	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, dir)
		if !s.Muted {
			SetSFXVolume(s.SFXVolume)
		}
		// Preview at the new level
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptResolution:
		cycleResolution(s, dir)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

// adjustVolumeStep moves to the neighbouring volume step, clamped at the ends
func adjustVolumeStep(current float64, dir int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	idx := closestStep(current, steps) + dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	return steps[idx]
}

func closestStep(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func toggleMute(s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		SetSFXVolume(0)
	} else {
		SetSFXVolume(s.SFXVolume)
	}
}

func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

func cycleResolution(s *components.SettingsMenuData, dir int) {
	n := len(cfg.SettingsMenu.Resolutions)
	if n == 0 {
		return
	}
	s.ResolutionIndex = (s.ResolutionIndex + dir + n) % n
	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

func selectSetting(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptControls:
		s.ShowingControls = true
		PlaySFX(e, cfg.SoundMenuSelect)
	case components.SettingsOptBack:
		closeSettings(e, s)
	}
}

// closeSettings hides the overlay and writes the values to disk
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// SaveCurrentSettings persists the overlay's values along with the current
// match choices.
func SaveCurrentSettings(s *components.SettingsMenuData) {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:       s.SFXVolume,
		Muted:           s.Muted,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		PlayerCount:     cfg.Match.LocalPlayerCount,
		PickupsPerType:  intPtr(cfg.Match.PickupsPerType),
		Arena:           cfg.Match.Arena,
	})
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	input := getOrCreateInput(e)
	if settings.ShowingControls {
		drawControlsScreen(screen, input.LastInputMethod, width, height)
		return
	}

	fontFace := fonts.Bold.Get()
	title := "SETTINGS"
	text.Draw(screen, title, fonts.Title.Get(), int(width/2)-len(title)*9, 32, cfg.Yellow)

	itemHeight := cfg.Pause.MenuItemHeight
	itemGap := cfg.Pause.MenuItemGap
	visible := 0
	for opt := components.SettingsOptSFXVolume; opt <= components.SettingsOptBack; opt++ {
		if !isOptionHidden(settings, opt) {
			visible++
		}
	}
	startY := (height-float64(visible)*(itemHeight+itemGap))/2 + 10

	row := 0
	for opt := components.SettingsOptSFXVolume; opt <= components.SettingsOptBack; opt++ {
		if isOptionHidden(settings, opt) {
			continue
		}
		y := int(startY+float64(row)*(itemHeight+itemGap)) + int(itemHeight)
		row++

		textColor := cfg.Pause.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		label, value := optionDisplay(settings, opt)
		text.Draw(screen, label, fontFace, int(width/2)-120, y, textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(width/2)+30, y, textColor)
		}
	}

	hint := settingsHint(input.LastInputMethod)
	text.Draw(screen, hint, fonts.Small.Get(), int(width/2)-len(hint)*5/2, int(height)-12, cfg.Pause.TextColorNormal)
}

func drawControlsScreen(screen *ebiten.Image, method components.InputMethod, width, height float64) {
	fontFace := fonts.Regular.Get()
	title := "CONTROLS"
	text.Draw(screen, title, fonts.Title.Get(), int(width/2)-len(title)*9, 32, cfg.Yellow)

	for i, m := range controlMappings(method) {
		y := 64 + i*16
		text.Draw(screen, m.Action, fontFace, int(width/2)-110, y, cfg.Pause.TextColorNormal)
		text.Draw(screen, m.Button, fontFace, int(width/2)+10, y, cfg.Pause.TextColorSelected)
	}

	hint := "Select or Back to return"
	text.Draw(screen, hint, fonts.Small.Get(), int(width/2)-len(hint)*5/2, int(height)-12, cfg.Pause.TextColorNormal)
}

type controlMapping struct {
	Action string
	Button string
}

func controlMappings(method components.InputMethod) []controlMapping {
	switch method {
	case components.InputXbox:
		return []controlMapping{
			{"Roll", "Left Stick"},
			{"Aim", "Right Stick / LT"},
			{"Jump", "LB"},
			{"Drop", "RB"},
			{"Fire", "RT"},
			{"Switch drone", "X / B"},
			{"Dash", "Flick left stick"},
			{"Pause", "Start"},
		}
	case components.InputPlayStation:
		return []controlMapping{
			{"Roll", "Left Stick"},
			{"Aim", "Right Stick / L2"},
			{"Jump", "Cross"},
			{"Drop", "Circle"},
			{"Fire", "R2"},
			{"Switch drone", "L1 / R1"},
			{"Dash", "Flick left stick"},
			{"Pause", "Options"},
		}
	}
	return []controlMapping{
		{"Roll", "WASD"},
		{"Aim", "Arrows / Q"},
		{"Jump", "Space"},
		{"Drop", "Ctrl"},
		{"Fire", "E / Left Mouse"},
		{"Switch drone", "Z / C"},
		{"Dash", "Left Shift"},
		{"Pause", "P"},
	}
}

func settingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Backspace: Back"
}

func optionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptSFXVolume:
		return "SFX Volume", formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptResolution:
		if s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			return "Resolution", cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
		}
		return "Resolution", "Unknown"
	case components.SettingsOptControls:
		return "Controls", ">"
	case components.SettingsOptBack:
		return "< Back", ""
	}
	return "", ""
}

func formatVolumeBar(volume float64) string {
	filled := int(volume*10 + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100+0.5))
}

func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		data := components.SettingsMenuData{
			SelectedOption:  components.SettingsOptSFXVolume,
			SFXVolume:       GetSFXVolume(),
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		}
		if saved := startupSettings; saved != nil {
			data.SFXVolume = saved.SFXVolume
			data.Muted = saved.Muted
			data.ResolutionIndex = saved.ResolutionIndex
		}
		components.SettingsMenu.SetValue(ent, data)
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings shows the settings overlay over the pause menu.
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.SkipFrame = true
	settings.ShowingControls = false
	settings.SelectedOption = components.SettingsOptSFXVolume
	settings.Fullscreen = ebiten.IsFullscreen()
	if !settings.Muted {
		settings.SFXVolume = GetSFXVolume()
	}
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		return false
	}
	return GetOrCreateSettingsMenu(e).IsOpen
}
