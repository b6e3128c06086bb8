package systems

import (
	"encoding/json"
	"testing"

	cfg "github.com/automoto/marbledrones/config"
)

func TestApplySavedMatch(t *testing.T) {
	base := cfg.MatchConfig{LocalPlayerCount: 2, PickupsPerType: 5, Arena: "crater"}

	tests := []struct {
		name  string
		saved string
		want  cfg.MatchConfig
	}{
		{"nothing saved keeps defaults", `{}`, base},
		{"zero pickups is kept", `{"pickupsPerType":0}`, cfg.MatchConfig{LocalPlayerCount: 2, PickupsPerType: 0, Arena: "crater"}},
		{"negative pickups ignored", `{"pickupsPerType":-1}`, base},
		{"player count clamped", `{"playerCount":7}`, cfg.MatchConfig{LocalPlayerCount: 4, PickupsPerType: 5, Arena: "crater"}},
		{"all fields", `{"playerCount":3,"pickupsPerType":2,"arena":"gauntlet"}`, cfg.MatchConfig{LocalPlayerCount: 3, PickupsPerType: 2, Arena: "gauntlet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved SavedSettings
			if err := json.Unmarshal([]byte(tt.saved), &saved); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got := base
			applySavedMatch(&got, &saved)
			if got != tt.want {
				t.Errorf("applySavedMatch() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSavedSettingsKeepsZeroPickups(t *testing.T) {
	data, err := json.Marshal(SavedSettings{PickupsPerType: intPtr(0)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back SavedSettings
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.PickupsPerType == nil || *back.PickupsPerType != 0 {
		t.Errorf("PickupsPerType = %v, want a stored 0", back.PickupsPerType)
	}
}
