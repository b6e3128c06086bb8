package systems

import (
	"log"
	"strings"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// PadInfo describes a connected gamepad. Standard is false for pads without
// a standard layout mapping; those are read by raw index.
type PadInfo struct {
	ID       ebiten.GamepadID
	Name     string
	Standard bool
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ConnectedPads lists connected gamepads in ID order.
func ConnectedPads() []PadInfo {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pads := make([]PadInfo, 0, len(gamepadIDs))
	for _, id := range gamepadIDs {
		pads = append(pads, PadInfo{
			ID:       id,
			Name:     ebiten.GamepadName(id),
			Standard: ebiten.IsStandardGamepadLayoutAvailable(id),
		})
	}
	return pads
}

// IsXboxPad reports whether a gamepad name identifies an Xbox 360 / XInput pad.
func IsXboxPad(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range cfg.Input.XboxNames {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// BindDevice picks the input device for local player idx. Pads are handed out
// in order; the first player without a pad gets the keyboard, and anyone after
// that gets nothing. A pad without a standard layout is bound for raw reads.
func BindDevice(idx int, pads []PadInfo) (components.DeviceBinding, bool) {
	switch {
	case len(pads) > idx:
		pad := pads[idx]
		kind := components.DeviceStandardPad
		switch {
		case !pad.Standard:
			kind = components.DeviceRawPad
		case IsXboxPad(pad.Name):
			kind = components.DeviceXboxPad
		}
		return components.DeviceBinding{Kind: kind, GamepadID: pad.ID, Name: pad.Name}, true
	case len(pads) == idx:
		return components.DeviceBinding{Kind: components.DeviceKeyboard, Name: "Keyboard"}, true
	}

	log.Printf("Warning: input #%d unable to bind a device", idx)
	return components.DeviceBinding{Kind: components.DeviceNone}, false
}
