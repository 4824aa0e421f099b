package config

// BallState is the phase of a single shot.
type BallState int

const (
	// Positioning: the ball follows the cursor inside the spawn area until
	// the player clicks to commit the start.
	Positioning BallState = iota
	// Ready: the ball rests and can be grabbed.
	Ready
	// Aiming: the band is being pulled.
	Aiming
	// Flying: the ball is simulated until it comes to rest.
	Flying
	// Finished: the ball came to rest in the finish area.
	Finished
)

var ballStateNames = map[BallState]string{
	Positioning: "positioning",
	Ready:       "ready",
	Aiming:      "aiming",
	Flying:      "flying",
	Finished:    "finished",
}

func (s BallState) String() string {
	if name, ok := ballStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// FreeLook reports whether the camera scrolls with the cursor in this state.
func (s BallState) FreeLook() bool {
	return s == Positioning || s == Ready
}
