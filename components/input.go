package components

import (
	cfg "github.com/automoto/rubberball/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerData is the mouse state of one frame in screen pixels.
type PointerData struct {
	X, Y         float64
	Wheel        float64 // vertical notches, positive away from the user
	Pressed      bool    // left button
	JustPressed  bool
	JustReleased bool
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Pointer  PointerData
}

var Input = donburi.NewComponentType[InputData]()
