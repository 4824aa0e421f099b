package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/shared/gamemath"
	"github.com/automoto/rubberball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(GetInput(ecs), cfg.ActionDebug).JustPressed {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	vw, ok := getView(ecs, screen)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	if level == nil || level.Current == nil {
		return
	}
	reg := level.Current

	// Collision tiles and objects
	tw, th := float64(reg.TileWidth()), float64(reg.TileHeight())
	for _, tile := range reg.CollidableTiles() {
		pts := tile.Shape.Vertices(float64(tile.TileX)*tw, float64(tile.TileY)*th, tw, th)
		strokePolygon(screen, vw, pts, color.RGBA{100, 100, 100, 255})
	}
	for _, obj := range reg.CollisionObjects() {
		if pts, err := obj.Polygon(); err == nil {
			strokePolygon(screen, vw, pts, cfg.Yellow)
			continue
		}
		b := obj.Bounds()
		x, y := vw.point(b.X, b.Y)
		vector.StrokeRect(screen, x, y, vw.length(b.W), vw.length(b.H), 1, cfg.Yellow, false)
	}
	for _, pad := range reg.LandingPads() {
		b := pad.Collision.Bounds()
		x0, y0 := vw.point(b.X, b.Y)
		x1, _ := vw.point(b.Right(), b.Y)
		vector.StrokeLine(screen, x0, y0, x1, y0, 3, cfg.Green, false)
	}

	// Sensor objects in the space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvBall) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}
			x, y := vw.point(obj.X, obj.Y)
			vector.StrokeRect(screen, x, y, vw.length(obj.W), vw.length(obj.H), 1, c, false)
		}
	}

	cameraEntry, _ := components.Camera.First(ecs.World)
	cam := components.Camera.Get(cameraEntry)
	t := cam.Controller.Tuning()
	msg := fmt.Sprintf("\ncam %.0f,%.0f x%.2f (target x%.2f) vel %.2f,%.2f",
		cam.Viewport.X(), cam.Viewport.Y(), cam.Viewport.Scale(), t.TargetScale, t.VelX, t.VelY)
	if world := GetPhysicsWorld(ecs); world != nil {
		v := world.BallVelocity()
		g := world.Gravity()
		msg += fmt.Sprintf("\nball v %.0f,%.0f g %.0f,%.0f", v.X, v.Y, g.X, g.Y)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func strokePolygon(screen *ebiten.Image, vw view, pts []gamemath.Vec, c color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		x0, y0 := vw.point(a.X, a.Y)
		x1, y1 := vw.point(b.X, b.Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
	}
}
