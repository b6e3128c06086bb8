package components

import (
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// Used for global/menu input where all devices are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// DeviceKind identifies how a player's input is read
type DeviceKind int

const (
	DeviceNone DeviceKind = iota
	DeviceKeyboard
	DeviceStandardPad
	DeviceXboxPad
	DeviceRawPad
)

func (k DeviceKind) String() string {
	switch k {
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceStandardPad:
		return "Gamepad"
	case DeviceXboxPad:
		return "Xbox Controller"
	case DeviceRawPad:
		return "Gamepad (raw)"
	}
	return "None"
}

// DeviceBinding is the device a player was bound to at spawn
type DeviceBinding struct {
	Kind      DeviceKind
	GamepadID ebiten.GamepadID // valid for pad kinds
	Name      string
}

// PlayerInputData stores per-player input state.
type PlayerInputData struct {
	PlayerIndex   int
	Binding       DeviceBinding
	LeftStick     gamemath.Vec2 // movement, y down
	RightStick    gamemath.Vec2 // aim, y down
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool

	// Dash is true for the single tick a dash gesture completes.
	Dash       bool
	DashVector gamemath.Vec2

	StickDash gesture.StickDash
	KeyDash   gesture.KeyDash
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
