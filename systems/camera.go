package systems

import (
	"github.com/automoto/rubberball/camera"
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera runs the camera controller for this frame and then keeps
// the viewport inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)

	level := GetLevel(e)
	if level == nil || level.Current == nil {
		return
	}

	input := GetInput(e)
	frame := camera.Frame{
		Delta:     1000 / float64(cfg.C.TPS),
		ScreenW:   float64(cfg.C.Width),
		ScreenH:   float64(cfg.C.Height),
		CursorX:   input.Pointer.X,
		CursorY:   input.Pointer.Y,
		Wheel:     input.Pointer.Wheel,
		ResetZoom: GetAction(input, cfg.ActionResetZoom).JustPressed,
		FreeLook:  GetAction(input, cfg.ActionFreeLook).Pressed,
		TargetX:   cam.Viewport.X(),
		TargetY:   cam.Viewport.Y(),
	}

	// Chase the ball while it is being aimed or flies; otherwise look around.
	if ballEntry, ok := tags.Ball.First(e.World); ok {
		ball := components.Ball.Get(ballEntry)
		frame.FreeLook = frame.FreeLook || ball.State.FreeLook()
		if world := GetPhysicsWorld(e); world != nil {
			p := world.BallPosition()
			frame.TargetX, frame.TargetY = p.X, p.Y
		}
	} else {
		frame.FreeLook = true
	}

	cam.Controller.Update(cam.Viewport, frame)
	camera.Limit(cam.Viewport, levelBounds(level.Current))
}
