package systems

import (
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
)

// MaxPickupsPerType is the highest per-type pickup count the lobby offers.
const MaxPickupsPerType = 6

// InitLobby fills a lobby from the current match config and the given arena
// names.
func InitLobby(lobby *components.LobbyData, match cfg.MatchConfig, arenaNames []string) {
	lobby.PlayerCount = cfg.ClampPlayerCount(match.LocalPlayerCount)
	lobby.PickupsPerType = match.PickupsPerType
	lobby.ArenaNames = arenaNames
	lobby.ArenaIndex = 0
	for i, name := range arenaNames {
		if name == match.Arena {
			lobby.ArenaIndex = i
			break
		}
	}
	RefreshLobbyDevices(lobby, ConnectedPads())
}

// RefreshLobbyDevices previews which device each player slot would be bound
// to with the given pads.
func RefreshLobbyDevices(lobby *components.LobbyData, pads []PadInfo) {
	lobby.DetectedGamepads = lobby.DetectedGamepads[:0]
	for _, pad := range pads {
		lobby.DetectedGamepads = append(lobby.DetectedGamepads, pad.ID)
	}
	for i := range lobby.Devices {
		if i >= lobby.PlayerCount {
			lobby.Devices[i] = components.DeviceBinding{Kind: components.DeviceNone}
			continue
		}
		lobby.Devices[i] = previewDevice(i, pads)
	}
}

// previewDevice is BindDevice without the warning log, since the lobby
// re-runs it every frame.
func previewDevice(idx int, pads []PadInfo) components.DeviceBinding {
	if idx > len(pads) {
		return components.DeviceBinding{Kind: components.DeviceNone}
	}
	binding, _ := BindDevice(idx, pads)
	return binding
}

// CyclePlayerCount steps through the configured player counts, wrapping.
func CyclePlayerCount(lobby *components.LobbyData, dir int) {
	counts := cfg.SettingsMenu.PlayerCounts
	if len(counts) == 0 {
		return
	}
	idx := 0
	for i, c := range counts {
		if c == lobby.PlayerCount {
			idx = i
			break
		}
	}
	idx = wrapIndex(idx+dir, len(counts))
	lobby.PlayerCount = counts[idx]
}

// CycleArena steps through the loaded arenas, wrapping.
func CycleArena(lobby *components.LobbyData, dir int) {
	if len(lobby.ArenaNames) == 0 {
		return
	}
	lobby.ArenaIndex = wrapIndex(lobby.ArenaIndex+dir, len(lobby.ArenaNames))
}

// CyclePickups steps the per-type pickup count through 0..MaxPickupsPerType.
func CyclePickups(lobby *components.LobbyData, dir int) {
	lobby.PickupsPerType = wrapIndex(lobby.PickupsPerType+dir, MaxPickupsPerType+1)
}

// ArenaName returns the selected arena's name, or "" when none are loaded.
func ArenaName(lobby *components.LobbyData) string {
	if lobby.ArenaIndex < 0 || lobby.ArenaIndex >= len(lobby.ArenaNames) {
		return ""
	}
	return lobby.ArenaNames[lobby.ArenaIndex]
}

// LobbyMatchConfig builds the match config a lobby would start, keeping the
// fields the lobby does not edit from base.
func LobbyMatchConfig(lobby *components.LobbyData, base cfg.MatchConfig) cfg.MatchConfig {
	base.LocalPlayerCount = cfg.ClampPlayerCount(lobby.PlayerCount)
	base.PickupsPerType = lobby.PickupsPerType
	if name := ArenaName(lobby); name != "" {
		base.Arena = name
	}
	return base
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
