package systems

import (
	"testing"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestCyclePlayerCountWraps(t *testing.T) {
	lobby := &components.LobbyData{PlayerCount: 4}

	CyclePlayerCount(lobby, 1)
	if lobby.PlayerCount != 1 {
		t.Errorf("4 + 1 = %d, want 1", lobby.PlayerCount)
	}
	CyclePlayerCount(lobby, -1)
	if lobby.PlayerCount != 4 {
		t.Errorf("1 - 1 = %d, want 4", lobby.PlayerCount)
	}
}

func TestCyclePickupsWraps(t *testing.T) {
	lobby := &components.LobbyData{PickupsPerType: MaxPickupsPerType}

	CyclePickups(lobby, 1)
	if lobby.PickupsPerType != 0 {
		t.Errorf("pickups = %d, want 0", lobby.PickupsPerType)
	}
	CyclePickups(lobby, -1)
	if lobby.PickupsPerType != MaxPickupsPerType {
		t.Errorf("pickups = %d, want %d", lobby.PickupsPerType, MaxPickupsPerType)
	}
}

func TestLobbyMatchConfig(t *testing.T) {
	lobby := &components.LobbyData{
		PlayerCount:    3,
		PickupsPerType: 2,
		ArenaNames:     []string{"crater", "rink"},
	}
	CycleArena(lobby, 1)

	base := cfg.MatchConfig{LocalPlayerCount: 1, PickupsPerType: 5, PickupRespawnSeconds: 8, Arena: "crater"}
	got := LobbyMatchConfig(lobby, base)

	want := cfg.MatchConfig{LocalPlayerCount: 3, PickupsPerType: 2, PickupRespawnSeconds: 8, Arena: "rink"}
	if got != want {
		t.Errorf("LobbyMatchConfig() = %+v, want %+v", got, want)
	}
}

func TestRefreshLobbyDevices(t *testing.T) {
	lobby := &components.LobbyData{PlayerCount: 3}
	pads := []PadInfo{{ID: ebiten.GamepadID(0), Name: "Xbox 360 Controller", Standard: true}}

	RefreshLobbyDevices(lobby, pads)

	want := []components.DeviceKind{
		components.DeviceXboxPad,
		components.DeviceKeyboard,
		components.DeviceNone,
		components.DeviceNone,
	}
	for i, kind := range want {
		if lobby.Devices[i].Kind != kind {
			t.Errorf("slot %d device = %v, want %v", i, lobby.Devices[i].Kind, kind)
		}
	}
	if len(lobby.DetectedGamepads) != 1 {
		t.Errorf("detected pads = %d, want 1", len(lobby.DetectedGamepads))
	}
}
