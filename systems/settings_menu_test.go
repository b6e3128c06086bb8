package systems

import (
	"testing"

	"github.com/automoto/marbledrones/components"
)

func TestAdjustVolumeStep(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		dir     int
		want    float64
	}{
		{"up one step", 0.5, 1, 0.75},
		{"down one step", 0.5, -1, 0.25},
		{"clamped at top", 1, 1, 1},
		{"clamped at bottom", 0, -1, 0},
		{"snaps off-step values", 0.6, 1, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adjustVolumeStep(tt.current, tt.dir); got != tt.want {
				t.Errorf("adjustVolumeStep(%v, %d) = %v, want %v", tt.current, tt.dir, got, tt.want)
			}
		})
	}
}

func TestSettingsSelectionSkipsResolutionInFullscreen(t *testing.T) {
	s := &components.SettingsMenuData{SelectedOption: components.SettingsOptFullscreen, Fullscreen: true}

	stepSettingsSelection(s, 1)
	if s.SelectedOption != components.SettingsOptControls {
		t.Errorf("down from fullscreen = %v, want controls", s.SelectedOption)
	}
	stepSettingsSelection(s, -1)
	if s.SelectedOption != components.SettingsOptFullscreen {
		t.Errorf("up from controls = %v, want fullscreen", s.SelectedOption)
	}
}

func TestSettingsSelectionWraps(t *testing.T) {
	s := &components.SettingsMenuData{SelectedOption: components.SettingsOptSFXVolume}

	stepSettingsSelection(s, -1)
	if s.SelectedOption != components.SettingsOptBack {
		t.Errorf("up from the top = %v, want back", s.SelectedOption)
	}
}

func TestFormatVolumeBar(t *testing.T) {
	tests := map[float64]string{
		0:    "[..........] 0%",
		0.5:  "[|||||.....] 50%",
		0.75: "[||||||||..] 75%",
		1:    "[||||||||||] 100%",
	}
	for v, want := range tests {
		if got := formatVolumeBar(v); got != want {
			t.Errorf("formatVolumeBar(%v) = %q, want %q", v, got, want)
		}
	}
}
