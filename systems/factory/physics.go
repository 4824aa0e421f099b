package factory

import (
	"github.com/automoto/rubberball/archetypes"
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/physics"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysics builds the chipmunk world for reg.
func CreatePhysics(ecs *ecs.ECS, reg *leveldata.Registry) *physics.World {
	entry := archetypes.Physics.Spawn(ecs)
	world := physics.NewWorld(reg, cfg.Physics)
	components.Physics.SetValue(entry, components.PhysicsData{World: world})
	return world
}
