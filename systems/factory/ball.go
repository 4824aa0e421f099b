package factory

import (
	"github.com/automoto/rubberball/archetypes"
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateBall spawns the ball centred on (x, y) in the Positioning state.
// Its resolv object is the sensor box used against areas.
func CreateBall(ecs *ecs.ECS, x, y, radius float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	obj := resolv.NewObject(x-radius, y-radius, radius*2, radius*2, tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, radius*2, radius*2))
	obj.Data = ball
	components.Object.SetValue(ball, components.ObjectData{Object: obj})

	components.Ball.SetValue(ball, components.BallData{
		State: cfg.Positioning,
		Start: math.NewVec2(x, y),
	})
	components.Band.SetValue(ball, components.BandData{})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return ball
}
