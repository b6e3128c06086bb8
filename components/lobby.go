package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LobbyData stores the local match setup chosen before the arena starts
type LobbyData struct {
	PlayerCount    int
	PickupsPerType int
	ArenaIndex     int
	ArenaNames     []string

	// Detected gamepads and the device each player will get
	DetectedGamepads []ebiten.GamepadID
	Devices          [4]DeviceBinding
}

var Lobby = donburi.NewComponentType[LobbyData]()
