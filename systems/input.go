package systems

import (
	"strings"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls menu/pause input merged across every device.
// Must run BEFORE UpdatePause in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdatePlayerInput polls each player's bound device and runs dash detection.
// Devices are still polled while paused so button edges stay current, but no
// dash can fire until play resumes.
func UpdatePlayerInput(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()
	paused := GetOrCreatePause(ecs).IsPaused

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		pollPlayerDevice(input)
		stepPlayerDash(input, dt, paused)
	})
}

// stepPlayerDash runs dash detection, discarding any gesture made while paused.
func stepPlayerDash(input *components.PlayerInputData, dt float64, paused bool) {
	stepDash(input, dt)
	if paused {
		input.Dash = false
		input.StickDash.Reset()
	}
}

// pollPlayerDevice reads the bound device into PlayerInputData.
func pollPlayerDevice(input *components.PlayerInputData) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}
	input.LeftStick = gamemath.Vec2{}
	input.RightStick = gamemath.Vec2{}

	switch input.Binding.Kind {
	case components.DeviceKeyboard:
		pollKeyboard(input)
	case components.DeviceStandardPad:
		pollPad(input, input.Binding.GamepadID, cfg.Input.StandardPad)
	case components.DeviceXboxPad:
		pollPad(input, input.Binding.GamepadID, cfg.Input.XboxPad)
	case components.DeviceRawPad:
		pollRawPad(input, input.Binding.GamepadID, cfg.Input.RawPad)
	}
}

func pollKeyboard(input *components.PlayerInputData) {
	km := cfg.Input.Keyboard
	for actionID, keys := range km.Keys {
		if anyKeyPressed(keys) {
			input.CurrentInput[actionID] = true
		}
	}
	for actionID, buttons := range km.MouseButtons {
		for _, b := range buttons {
			if ebiten.IsMouseButtonPressed(b) {
				input.CurrentInput[actionID] = true
			}
		}
	}

	input.LeftStick = keyAxis(km.MoveLeft, km.MoveRight, km.MoveUp, km.MoveDown)
	input.RightStick = keyAxis(km.AimLeft, km.AimRight, km.AimUp, km.AimDown)
}

// keyAxis turns four key groups into a stick vector of at most unit length.
func keyAxis(left, right, up, down []ebiten.Key) gamemath.Vec2 {
	var v gamemath.Vec2
	if anyKeyPressed(left) {
		v.X--
	}
	if anyKeyPressed(right) {
		v.X++
	}
	if anyKeyPressed(up) {
		v.Y--
	}
	if anyKeyPressed(down) {
		v.Y++
	}
	return v.ClampMagnitude(1)
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func pollPad(input *components.PlayerInputData, gpID ebiten.GamepadID, mapping cfg.PadMapping) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		// The mapping can go away mid-match; keep the pad usable
		pollRawPad(input, gpID, cfg.Input.RawPad)
		return
	}

	for actionID, buttons := range mapping.Buttons {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
			}
		}
	}
	for actionID, trigger := range mapping.Triggers {
		if ebiten.StandardGamepadButtonValue(gpID, trigger) >= cfg.Input.TriggerThreshold {
			input.CurrentInput[actionID] = true
		}
	}

	input.LeftStick = gamemath.Vec2{
		X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
		Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
	}.ClampMagnitude(1)
	input.RightStick = gamemath.Vec2{
		X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
		Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
	}.ClampMagnitude(1)
}

// pollRawPad reads a pad without a standard layout by button and axis index.
func pollRawPad(input *components.PlayerInputData, gpID ebiten.GamepadID, mapping cfg.RawPadMapping) {
	for actionID, buttons := range mapping.Buttons {
		for _, btn := range buttons {
			if ebiten.IsGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
			}
		}
	}

	input.LeftStick = gamemath.Vec2{
		X: ebiten.GamepadAxisValue(gpID, mapping.LeftStickX),
		Y: ebiten.GamepadAxisValue(gpID, mapping.LeftStickY),
	}.ClampMagnitude(1)
	input.RightStick = gamemath.Vec2{
		X: ebiten.GamepadAxisValue(gpID, mapping.RightStickX),
		Y: ebiten.GamepadAxisValue(gpID, mapping.RightStickY),
	}.ClampMagnitude(1)
}

// stepDash runs the dash detector that matches the player's device. Pads use
// the stick flick gesture; the keyboard uses the dash key's rising edge.
func stepDash(input *components.PlayerInputData, dt float64) {
	input.Dash = false

	switch input.Binding.Kind {
	case components.DeviceKeyboard:
		if input.KeyDash.Step(input.CurrentInput[cfg.ActionDash], input.LeftStick) {
			input.Dash = true
			input.DashVector = input.KeyDash.Vector()
		}
	case components.DeviceStandardPad, components.DeviceXboxPad, components.DeviceRawPad:
		if input.StickDash.Step(input.LeftStick, dt) {
			input.Dash = true
			input.DashVector = input.StickDash.Vector()
		}
	}
}

// GetPlayerAction returns the full ActionState for an action ID from PlayerInputData.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.CurrentInput[id]
	prev := input.PreviousInput[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
