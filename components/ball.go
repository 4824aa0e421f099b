package components

import (
	"github.com/automoto/rubberball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type BallData struct {
	State config.BallState
	// Start is the last committed resting position; shots that end badly
	// return here.
	Start math.Vec2
	Shots int

	// FinishedTicks counts ticks spent in the Finished state.
	FinishedTicks int
}

var Ball = donburi.NewComponentType[BallData]()
