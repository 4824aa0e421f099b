package systems

import (
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/physics"
	"github.com/automoto/rubberball/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the ball simulation one tick while it flies.
func UpdatePhysics(ecs *ecs.ECS) {
	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok || components.Ball.Get(ballEntry).State != cfg.Flying {
		return
	}
	if world := GetPhysicsWorld(ecs); world != nil {
		world.Step(1 / float64(cfg.C.TPS))
	}
}

// GetPhysicsWorld returns the physics world of the running level, or nil.
func GetPhysicsWorld(ecs *ecs.ECS) *physics.World {
	entry, ok := components.Physics.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Physics.Get(entry).World
}
