package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxLocalPlayers is the number of split-screen slots.
const MaxLocalPlayers = 4

// MatchFile is the optional YAML match override. Omitted fields keep the
// current value.
type MatchFile struct {
	Players              *int     `yaml:"players"`
	PickupsPerType       *int     `yaml:"pickups_per_type"`
	PickupRespawnSeconds *float64 `yaml:"pickup_respawn_seconds"`
	Arena                string   `yaml:"arena"`
}

// ClampPlayerCount limits a requested local player count to 1..4.
func ClampPlayerCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxLocalPlayers {
		return MaxLocalPlayers
	}
	return n
}

// LoadMatchFile reads a YAML match override from path.
func LoadMatchFile(path string) (*MatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &MatchFile{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse match file %s: %w", path, err)
	}
	return f, nil
}

// Apply overlays the file's set fields onto m. The player count is clamped and
// negative pickup values are ignored.
func (m *MatchConfig) Apply(f *MatchFile) {
	if f == nil {
		return
	}
	if f.Players != nil {
		m.LocalPlayerCount = ClampPlayerCount(*f.Players)
	}
	if f.PickupsPerType != nil && *f.PickupsPerType >= 0 {
		m.PickupsPerType = *f.PickupsPerType
	}
	if f.PickupRespawnSeconds != nil && *f.PickupRespawnSeconds >= 0 {
		m.PickupRespawnSeconds = *f.PickupRespawnSeconds
	}
	if f.Arena != "" {
		m.Arena = f.Arena
	}
}
