package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptSFXVolume SettingsMenuOption = iota
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptResolution
	SettingsOptControls
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings overlay
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	ShowingControls bool
	// The press that opened the menu is ignored
	SkipFrame bool

	SFXVolume       float64
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
