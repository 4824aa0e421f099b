package systems

import (
	"math"

	"github.com/automoto/rubberball/components"
	"github.com/automoto/rubberball/shared/gamemath"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/automoto/rubberball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// padTolerance is how far above a collision object's top edge the bottom of
// a resting ball may be and still count as standing on it.
const padTolerance = 2.0

// UpdateAreas moves the ball sensor to the simulated ball and flags every
// area the ball overlaps.
func UpdateAreas(ecs *ecs.ECS) {
	tags.Area.Each(ecs.World, func(entry *donburi.Entry) {
		components.Area.Get(entry).Occupied = false
	})

	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	world := GetPhysicsWorld(ecs)
	if world == nil {
		return
	}

	p := world.BallPosition()
	syncSensor(ballEntry, p, world.BallRadius())

	for _, area := range overlappingAreas(ballEntry, tags.ResolvArea) {
		if !area.Occupied && area.Area.Kind() == leveldata.AreaResponsive {
			logger.Debug("responsive area hit", "area", area.Area.Name(), "props", area.Area.Properties())
		}
		area.Occupied = true
	}
}

func syncSensor(ballEntry *donburi.Entry, center gamemath.Vec, radius float64) {
	obj := components.Object.Get(ballEntry)
	obj.X = center.X - radius
	obj.Y = center.Y - radius
	obj.Update()
}

// overlappingAreas returns the areas carrying tag whose bounds the ball
// circle touches. The resolv space narrows the candidates to areas sharing
// a cell with the ball.
func overlappingAreas(ballEntry *donburi.Entry, tag string) []*components.AreaData {
	obj := components.Object.Get(ballEntry)
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	r := obj.W / 2
	cx, cy := obj.X+r, obj.Y+r

	var out []*components.AreaData
	for _, o := range check.ObjectsByTags(tag) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.HasComponent(components.Area) {
			continue
		}
		area := components.Area.Get(entry)
		if circleTouchesRect(cx, cy, r, area.Area.Bounds()) {
			out = append(out, area)
		}
	}
	return out
}

// touchingArea returns the first area of kind that the ball touches.
func touchingArea(ballEntry *donburi.Entry, kind leveldata.AreaKind) (leveldata.Area, bool) {
	if hits := overlappingAreas(ballEntry, kind.String()); len(hits) > 0 {
		return hits[0].Area, true
	}
	return leveldata.Area{}, false
}

// restingArea returns the first area of kind that fully contains the ball.
// A ball standing on a landing pad counts as resting in the area above it.
func restingArea(ballEntry *donburi.Entry, reg *leveldata.Registry, kind leveldata.AreaKind) (leveldata.Area, bool) {
	obj := components.Object.Get(ballEntry)
	r := obj.W / 2
	cx, cy := obj.X+r, obj.Y+r

	for _, a := range overlappingAreas(ballEntry, kind.String()) {
		if a.Area.ContainsBall(cx, cy, r) {
			return a.Area, true
		}
	}
	if above, ok := padUnder(reg, cx, cy, r); ok && above.Kind() == kind {
		return above, true
	}
	return leveldata.Area{}, false
}

// padUnder returns the area above the landing pad the ball stands on.
func padUnder(reg *leveldata.Registry, cx, cy, r float64) (leveldata.Area, bool) {
	bottom := cy + r
	for _, pad := range reg.LandingPads() {
		b := pad.Collision.Bounds()
		if cx < b.X || cx > b.Right() {
			continue
		}
		if math.Abs(bottom-b.Y) <= padTolerance {
			return pad.Above, true
		}
	}
	return leveldata.Area{}, false
}

func circleTouchesRect(cx, cy, r float64, rect gamemath.Rect) bool {
	if !rect.Intersects(gamemath.NewRect(cx-r, cy-r, 2*r, 2*r)) {
		return false
	}
	nx := gamemath.Clamp(cx, rect.X, rect.Right())
	ny := gamemath.Clamp(cy, rect.Y, rect.Bottom())
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}
