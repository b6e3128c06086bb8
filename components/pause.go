package components

import "github.com/yohamta/donburi"

// PauseMenuOption is an entry of the in-match pause menu.
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRestart
	MenuSettings
	MenuLobby
	MenuExit
	pauseOptionCount
)

// PauseOptionCount is the number of pause menu entries.
const PauseOptionCount = int(pauseOptionCount)

// PauseData is the match's pause state (singleton). Restart, ExitToLobby and
// Quit are requests for the scene to act on after the frame.
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	Restart        bool
	ExitToLobby    bool
	Quit           bool
}

var Pause = donburi.NewComponentType[PauseData]()
