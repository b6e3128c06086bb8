package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/marbledrones/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`

	// Last lobby choices. PickupsPerType is nil when never chosen, since 0 is
	// a valid choice.
	PlayerCount    int    `json:"playerCount"`
	PickupsPerType *int   `json:"pickupsPerType,omitempty"`
	Arena          string `json:"arena"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// startupSettings is what ApplySavedSettingsGlobal loaded, used to seed the
// settings overlay.
var startupSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "marbledrones",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveMatchChoices stores the lobby's match setup next to the other settings.
func SaveMatchChoices(match cfg.MatchConfig) {
	saved, _ := LoadSettings()
	if saved == nil {
		saved = &SavedSettings{
			SFXVolume:       GetSFXVolume(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		}
	}
	saved.PlayerCount = match.LocalPlayerCount
	saved.PickupsPerType = intPtr(match.PickupsPerType)
	saved.Arena = match.Arena
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings during startup, before any scene
// exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	startupSettings = saved

	globalSFXVolume = saved.SFXVolume
	if saved.Muted {
		globalSFXVolume = 0
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	applySavedMatch(&cfg.Match, saved)
}

// applySavedMatch overlays the saved lobby choices onto m. Unset fields keep
// the current value.
func applySavedMatch(m *cfg.MatchConfig, saved *SavedSettings) {
	if saved.PlayerCount > 0 {
		m.LocalPlayerCount = cfg.ClampPlayerCount(saved.PlayerCount)
	}
	if saved.PickupsPerType != nil && *saved.PickupsPerType >= 0 {
		m.PickupsPerType = *saved.PickupsPerType
	}
	if saved.Arena != "" {
		m.Arena = saved.Arena
	}
}

func intPtr(v int) *int {
	return &v
}
