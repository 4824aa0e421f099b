package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRestart
	ActionNextLevel
	ActionResetZoom
	ActionFreeLook
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Wheel notches below this are treated as scroll noise
	WheelDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		WheelDeadzone: 0.01,
		Bindings: map[ActionID]InputBinding{
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Back / Select button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyN},
			},
			ActionResetZoom: {
				Keys:         []ebiten.Key{ebiten.Key0},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonMiddle},
			},
			ActionFreeLook: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
	}
}
