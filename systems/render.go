package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rubberball/camera"
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/fonts"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/automoto/rubberball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ballColor = color.RGBA{R: 230, G: 70, B: 60, A: 255}
	bandColor = color.RGBA{R: 250, G: 220, B: 120, A: 255}
)

// view pairs the viewport with the screen size for world to screen
// conversion.
type view struct {
	v    *camera.Viewport
	w, h float64
}

func getView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	return view{
		v: components.Camera.Get(cameraEntry).Viewport,
		w: float64(screen.Bounds().Dx()),
		h: float64(screen.Bounds().Dy()),
	}, true
}

func (vw view) point(x, y float64) (float32, float32) {
	sx, sy := vw.v.WorldToScreen(x, y, vw.w, vw.h)
	return float32(sx), float32(sy)
}

func (vw view) length(l float64) float32 { return float32(l * vw.v.Scale()) }

// DrawAreas draws a translucent box for every area except graphic ones,
// which only draw their text.
func DrawAreas(ecs *ecs.ECS, screen *ebiten.Image) {
	vw, ok := getView(ecs, screen)
	if !ok {
		return
	}

	tags.Area.Each(ecs.World, func(e *donburi.Entry) {
		area := components.Area.Get(e)
		b := area.Area.Bounds()
		x, y := vw.point(b.X, b.Y)
		w, h := vw.length(b.W), vw.length(b.H)

		if area.Area.Kind() == leveldata.AreaGraphic {
			if label, ok := area.Area.Property("text"); ok {
				face := fonts.Regular.Get()
				text.Draw(screen, label, face, int(x), int(y)+face.Metrics().Ascent.Ceil(), cfg.White)
			}
			return
		}

		fill := area.Color
		if area.Area.Kind() != leveldata.AreaGravity {
			fill.A = 48
		}
		if area.Occupied && area.Area.Kind() == leveldata.AreaResponsive {
			fill.A = 160
		}
		vector.FillRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, area.Color, false)
	})
}

// DrawBall draws the ball and, while aiming or snapping back, the band.
func DrawBall(ecs *ecs.ECS, screen *ebiten.Image) {
	vw, ok := getView(ecs, screen)
	if !ok {
		return
	}
	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	world := GetPhysicsWorld(ecs)
	if world == nil {
		return
	}

	band := components.Band.Get(ballEntry)
	ax, ay := vw.point(band.Anchor.X, band.Anchor.Y)
	switch {
	case band.Active:
		px, py := vw.point(band.Pull.X, band.Pull.Y)
		vector.StrokeLine(screen, ax, ay, px, py, 3, bandColor, true)
	case band.SnapBack != nil:
		s := float64(band.Stretch)
		px, py := vw.point(
			band.Anchor.X+(band.Pull.X-band.Anchor.X)*s,
			band.Anchor.Y+(band.Pull.Y-band.Anchor.Y)*s,
		)
		vector.StrokeLine(screen, ax, ay, px, py, 2, bandColor, true)
	}

	p := world.BallPosition()
	cx, cy := vw.point(p.X, p.Y)
	r := vw.length(world.BallRadius())
	vector.FillCircle(screen, cx, cy, r, ballColor, true)
	vector.StrokeCircle(screen, cx, cy, r, 1, cfg.White, true)
}

// DrawHUD prints the level and shot state.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	msg := fmt.Sprintf("level %d", level.Index)
	if ballEntry, ok := tags.Ball.First(ecs.World); ok {
		ball := components.Ball.Get(ballEntry)
		msg += fmt.Sprintf("  shots %d  %s", ball.Shots, ball.State)
	}
	text.Draw(screen, msg, fonts.Small.Get(), 8, 16, cfg.White)
}
