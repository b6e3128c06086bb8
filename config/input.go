package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionDrop
	ActionAim
	ActionFire
	ActionSwitchLeft
	ActionSwitchRight
	ActionDash
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionMenuLeft
	ActionMenuRight
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// PadMapping maps per-player actions to gamepad buttons. Trigger actions are
// read as analog values and count as pressed at TriggerThreshold.
type PadMapping struct {
	Buttons  map[ActionID][]ebiten.StandardGamepadButton
	Triggers map[ActionID]ebiten.StandardGamepadButton
}

// KeyboardMapping maps per-player actions to keys and mouse buttons
type KeyboardMapping struct {
	Keys         map[ActionID][]ebiten.Key
	MouseButtons map[ActionID][]ebiten.MouseButton

	MoveUp, MoveDown, MoveLeft, MoveRight []ebiten.Key
	AimUp, AimDown, AimLeft, AimRight     []ebiten.Key
}

// RawPadMapping reads pads that have no standard layout by raw button and
// axis index.
type RawPadMapping struct {
	Buttons map[ActionID][]ebiten.GamepadButton

	LeftStickX, LeftStickY   int
	RightStickX, RightStickY int
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Bindings are the merged menu/pause bindings polled from every device.
	Bindings map[ActionID]InputBinding

	Keyboard    KeyboardMapping
	StandardPad PadMapping
	XboxPad     PadMapping
	RawPad      RawPadMapping

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone   float64
	TriggerThreshold float64

	// Lowercase substrings identifying Xbox 360 / XInput pads
	XboxNames []string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:   0.25,
		TriggerThreshold: 0.25,
		XboxNames:        []string{"xbox 360", "x360", "xinput"},
		Bindings: map[ActionID]InputBinding{
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionMenuLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMenuRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
		},
		Keyboard: KeyboardMapping{
			Keys: map[ActionID][]ebiten.Key{
				ActionJump:        {ebiten.KeySpace},
				ActionDrop:        {ebiten.KeyControlLeft, ebiten.KeyControlRight},
				ActionAim:         {ebiten.KeyQ},
				ActionFire:        {ebiten.KeyE},
				ActionSwitchLeft:  {ebiten.KeyZ},
				ActionSwitchRight: {ebiten.KeyC},
				ActionDash:        {ebiten.KeyShiftLeft},
			},
			MouseButtons: map[ActionID][]ebiten.MouseButton{
				ActionFire: {ebiten.MouseButtonLeft},
			},
			MoveUp:    []ebiten.Key{ebiten.KeyW},
			MoveDown:  []ebiten.Key{ebiten.KeyS},
			MoveLeft:  []ebiten.Key{ebiten.KeyA},
			MoveRight: []ebiten.Key{ebiten.KeyD},
			AimUp:     []ebiten.Key{ebiten.KeyUp},
			AimDown:   []ebiten.Key{ebiten.KeyDown},
			AimLeft:   []ebiten.Key{ebiten.KeyLeft},
			AimRight:  []ebiten.Key{ebiten.KeyRight},
		},
		StandardPad: PadMapping{
			Buttons: map[ActionID][]ebiten.StandardGamepadButton{
				// A / Cross
				ActionJump: {ebiten.StandardGamepadButtonRightBottom},
				// B / Circle
				ActionDrop:        {ebiten.StandardGamepadButtonRightRight},
				ActionSwitchLeft:  {ebiten.StandardGamepadButtonFrontTopLeft},
				ActionSwitchRight: {ebiten.StandardGamepadButtonFrontTopRight},
			},
			Triggers: map[ActionID]ebiten.StandardGamepadButton{
				ActionAim:  ebiten.StandardGamepadButtonFrontBottomLeft,
				ActionFire: ebiten.StandardGamepadButtonFrontBottomRight,
			},
		},
		XboxPad: PadMapping{
			Buttons: map[ActionID][]ebiten.StandardGamepadButton{
				// LB / RB
				ActionJump: {ebiten.StandardGamepadButtonFrontTopLeft},
				ActionDrop: {ebiten.StandardGamepadButtonFrontTopRight},
				// X / B
				ActionSwitchLeft:  {ebiten.StandardGamepadButtonRightLeft},
				ActionSwitchRight: {ebiten.StandardGamepadButtonRightRight},
			},
			Triggers: map[ActionID]ebiten.StandardGamepadButton{
				ActionAim:  ebiten.StandardGamepadButtonFrontBottomLeft,
				ActionFire: ebiten.StandardGamepadButtonFrontBottomRight,
			},
		},
		// Common DirectInput numbering
		RawPad: RawPadMapping{
			Buttons: map[ActionID][]ebiten.GamepadButton{
				ActionJump:        {ebiten.GamepadButton0},
				ActionDrop:        {ebiten.GamepadButton1},
				ActionSwitchLeft:  {ebiten.GamepadButton4},
				ActionSwitchRight: {ebiten.GamepadButton5},
				ActionAim:         {ebiten.GamepadButton6},
				ActionFire:        {ebiten.GamepadButton7},
			},
			LeftStickX:  0,
			LeftStickY:  1,
			RightStickX: 2,
			RightStickY: 3,
		},
	}
}
