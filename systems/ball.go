package systems

import (
	"strconv"

	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/physics"
	"github.com/automoto/rubberball/shared/gamemath"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/automoto/rubberball/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateBall runs the shot state machine:
// Positioning -> Ready -> Aiming -> Flying -> Ready or Finished.
func UpdateBall(ecs *ecs.ECS) {
	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	world := GetPhysicsWorld(ecs)
	if level == nil || level.Current == nil || world == nil {
		return
	}

	ball := components.Ball.Get(ballEntry)
	band := components.Band.Get(ballEntry)
	input := GetInput(ecs)
	cursor := cursorWorld(ecs, input.Pointer)

	switch ball.State {
	case cfg.Positioning:
		positionBall(ball, world, level.Current, cursor, input.Pointer)
	case cfg.Ready:
		grabBall(ball, band, world, cursor, input.Pointer)
	case cfg.Aiming:
		aimBall(ball, band, world, cursor, input.Pointer)
	case cfg.Flying:
		settleBall(ecs, ballEntry, ball, world, level)
	case cfg.Finished:
		holdFinished(ecs, ball, level)
	}

	updateSnapBack(band)
}

// positionBall keeps the ball under the cursor, inside the spawn area, until
// a click commits the start.
func positionBall(ball *components.BallData, world *physics.World, reg *leveldata.Registry, cursor gamemath.Vec, p components.PointerData) {
	b := reg.SpawnArea().Bounds()
	r := world.BallRadius()
	x := clampInside(cursor.X, b.X+r, b.Right()-r)
	y := clampInside(cursor.Y, b.Y+r, b.Bottom()-r)
	world.PlaceBall(x, y)

	if p.JustPressed {
		ball.Start = math.NewVec2(x, y)
		setState(ball, cfg.Ready)
	}
}

func grabBall(ball *components.BallData, band *components.BandData, world *physics.World, cursor gamemath.Vec, p components.PointerData) {
	if !p.JustPressed {
		return
	}
	center := world.BallPosition()
	if cursor.Sub(center).Len() > cfg.Launch.GrabRadius {
		return
	}
	band.Anchor = math.NewVec2(center.X, center.Y)
	band.Pull = band.Anchor
	band.Active = true
	band.SnapBack = nil
	setState(ball, cfg.Aiming)
}

func aimBall(ball *components.BallData, band *components.BandData, world *physics.World, cursor gamemath.Vec, p components.PointerData) {
	anchor := gamemath.Vec{X: band.Anchor.X, Y: band.Anchor.Y}
	pull := gamemath.ClampPull(anchor, cursor, cfg.Launch.MaxPull)
	band.Pull = math.NewVec2(pull.X, pull.Y)

	if p.Pressed {
		return
	}

	band.Active = false
	force := gamemath.LaunchForce(anchor, pull)
	if force.Magnitude < 1 {
		// Released on the ball: no shot.
		setState(ball, cfg.Ready)
		return
	}

	world.Launch(force, cfg.Launch.ForceScale)
	ball.Shots++
	band.Stretch = 1
	band.SnapBack = gween.New(1, 0, cfg.Launch.SnapBackMillis/1000, ease.OutElastic)
	logger.Debug("ball launched", "force", force.Magnitude, "angle", force.Angle, "shots", ball.Shots)
	setState(ball, cfg.Flying)
}

// settleBall decides where a flying ball ends up: triggers and transitions
// act on contact, everything else once the ball is at rest.
func settleBall(ecs *ecs.ECS, ballEntry *donburi.Entry, ball *components.BallData, world *physics.World, level *components.LevelData) {
	if a, ok := touchingArea(ballEntry, leveldata.AreaTrigger); ok {
		logger.Debug("trigger hit, resetting ball", "area", a.Name())
		resetBall(ball, world)
		return
	}
	if a, ok := touchingArea(ballEntry, leveldata.AreaTransition); ok {
		if target, err := strconv.Atoi(propertyOr(a, "target", "")); err == nil {
			logger.Info("transition", "area", a.Name(), "target", target)
			RequestLevel(ecs, target)
			resetBall(ball, world)
			return
		}
	}
	if !world.AtRest() {
		return
	}

	reg := level.Current
	p := world.BallPosition()
	if _, ok := restingArea(ballEntry, reg, leveldata.AreaFinish); ok {
		world.PlaceBall(p.X, p.Y)
		ball.FinishedTicks = 0
		setState(ball, cfg.Finished)
		logger.Info("level finished", "index", level.Index, "shots", ball.Shots)
		return
	}
	_, safe := restingArea(ballEntry, reg, leveldata.AreaSafe)
	_, spawn := restingArea(ballEntry, reg, leveldata.AreaSpawn)
	if safe || spawn {
		world.PlaceBall(p.X, p.Y)
		ball.Start = math.NewVec2(p.X, p.Y)
		setState(ball, cfg.Ready)
		return
	}
	resetBall(ball, world)
}

// holdFinished keeps the level complete overlay up for HoldTicks, then asks
// for the next level once.
func holdFinished(ecs *ecs.ECS, ball *components.BallData, level *components.LevelData) {
	ball.FinishedTicks++
	if ball.FinishedTicks == max(cfg.LevelComplete.HoldTicks, 1) {
		RequestLevel(ecs, level.Index+1)
	}
}

// resetBall returns the ball to its last committed start.
func resetBall(ball *components.BallData, world *physics.World) {
	world.PlaceBall(ball.Start.X, ball.Start.Y)
	setState(ball, cfg.Ready)
}

func setState(ball *components.BallData, s cfg.BallState) {
	if ball.State != s {
		logger.Debug("ball state", "from", ball.State, "to", s)
	}
	ball.State = s
}

func updateSnapBack(band *components.BandData) {
	if band.SnapBack == nil {
		return
	}
	stretch, done := band.SnapBack.Update(1 / float32(cfg.C.TPS))
	band.Stretch = stretch
	if done {
		band.SnapBack = nil
		band.Stretch = 0
	}
}

// cursorWorld converts the pointer to world coordinates through the camera.
func cursorWorld(ecs *ecs.ECS, p components.PointerData) gamemath.Vec {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return gamemath.Vec{X: p.X, Y: p.Y}
	}
	v := components.Camera.Get(entry).Viewport
	x, y := v.ScreenToWorld(p.X, p.Y, float64(cfg.C.Width), float64(cfg.C.Height))
	return gamemath.Vec{X: x, Y: y}
}

func clampInside(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return gamemath.Clamp(v, lo, hi)
}

func propertyOr(a leveldata.Area, key, fallback string) string {
	if v, ok := a.Property(key); ok {
		return v
	}
	return fallback
}
