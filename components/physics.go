package components

import (
	"github.com/automoto/rubberball/physics"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	World *physics.World
}

var Physics = donburi.NewComponentType[PhysicsData]()
