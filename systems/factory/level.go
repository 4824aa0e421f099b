package factory

import (
	"io/fs"

	"github.com/automoto/rubberball/archetypes"
	"github.com/automoto/rubberball/components"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity with level index loaded through
// cache. Nothing is spawned when the level fails to load.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, cache *leveldata.Cache, index int) (*donburi.Entry, error) {
	reg, err := cache.Get(index)
	if err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		FS:        fsys,
		Cache:     cache,
		Current:   reg,
		Index:     index,
		Requested: -1,
	})
	return level, nil
}

// PopulateLevel creates the level scoped entities of reg: the sensor
// space, one sensor per area, the physics world and the ball.
func PopulateLevel(ecs *ecs.ECS, reg *leveldata.Registry) *donburi.Entry {
	CreateSpace(ecs, int(reg.PixelWidth()), int(reg.PixelHeight()), reg.TileWidth(), reg.TileHeight())

	CreateArea(ecs, reg.SpawnArea())
	CreateArea(ecs, reg.FinishArea())
	for _, group := range [][]leveldata.Area{
		reg.SafeAreas(),
		reg.TriggerAreas(),
		reg.TransitionAreas(),
		reg.ResponsiveAreas(),
		reg.GraphicAreas(),
	} {
		for _, a := range group {
			CreateArea(ecs, a)
		}
	}
	for _, g := range reg.GravityAreas() {
		CreateGravityArea(ecs, g)
	}

	world := CreatePhysics(ecs, reg)
	p := world.BallPosition()
	return CreateBall(ecs, p.X, p.Y, world.BallRadius())
}
