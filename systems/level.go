package systems

import (
	"fmt"
	"path"

	"github.com/automoto/rubberball/assets"
	"github.com/automoto/rubberball/camera"
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/automoto/rubberball/systems/factory"
	"github.com/automoto/rubberball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RequestLevel schedules a switch to level index on the next UpdateLevel.
func RequestLevel(e *ecs.ECS, index int) {
	if level := GetLevel(e); level != nil {
		level.Requested = index
	}
}

// UpdateLevel handles restart and skip input and performs requested level
// changes.
func UpdateLevel(e *ecs.ECS) {
	level := GetLevel(e)
	if level == nil {
		return
	}

	input := GetInput(e)
	switch {
	case GetAction(input, cfg.ActionRestart).JustPressed:
		level.Requested = level.Index
	case GetAction(input, cfg.ActionNextLevel).JustPressed:
		level.Requested = level.Index + 1
	}

	if level.Requested < 0 {
		return
	}
	index := level.Requested
	level.Requested = -1
	// The error is logged; the current level keeps running.
	_ = ChangeLevel(e, index)
}

// ChangeLevel replaces the running level with level index. On failure the
// running level is left untouched and the error is returned.
func ChangeLevel(e *ecs.ECS, index int) error {
	level := GetLevel(e)
	if level == nil {
		return fmt.Errorf("change level %d: no level entity", index)
	}

	reg, err := level.Cache.Get(index)
	if err != nil {
		logger.Error("level change failed, keeping current level",
			"from", level.Index, "to", index, "err", err)
		return err
	}

	clearLevel(e)
	level.Current = reg
	level.Index = index
	StartLevel(e)
	logger.Info("level started", "index", index)
	return nil
}

// StartLevel builds the entities of the current level and recentres the
// camera on it.
func StartLevel(e *ecs.ECS) {
	level := GetLevel(e)
	if level == nil || level.Current == nil {
		return
	}
	reg := level.Current

	renderLayers(level)
	factory.PopulateLevel(e, reg)

	if entry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(entry)
		cam.Viewport.Reset(reg.PixelWidth()/2, reg.PixelHeight()/2)
		cam.Controller.Reset()
		camera.Limit(cam.Viewport, levelBounds(reg))
	}
}

// clearLevel removes every level scoped entity.
func clearLevel(e *ecs.ECS) {
	var entries []*donburi.Entry
	tags.LevelScoped.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	for _, entry := range entries {
		e.World.Remove(entry.Entity())
	}
}

func renderLayers(level *components.LevelData) {
	for _, img := range []*ebiten.Image{level.Background, level.Foreground} {
		if img != nil {
			img.Deallocate()
		}
	}
	level.Background, level.Foreground = nil, nil
	if level.FS == nil {
		return
	}

	file := path.Join(cfg.Level.Dir, fmt.Sprintf(cfg.Level.Pattern, level.Index))
	var err error
	if level.Background, err = assets.RenderLayers(level.FS, file, level.Current.BackgroundLayer()); err != nil {
		logger.Warn("background not rendered", "file", file, "err", err)
	}
	if level.Foreground, err = assets.RenderLayers(level.FS, file, level.Current.ForegroundLayer()); err != nil {
		logger.Warn("foreground not rendered", "file", file, "err", err)
	}
}

// GetLevel returns the level component, or nil before the level exists.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func levelBounds(reg *leveldata.Registry) camera.Bounds {
	return camera.Bounds{
		LevelW:  reg.PixelWidth(),
		LevelH:  reg.PixelHeight(),
		ScreenW: float64(cfg.C.Width),
		ScreenH: float64(cfg.C.Height),
	}
}

// DrawLevel draws the background tile layers.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	if level := GetLevel(ecs); level != nil {
		drawLayer(ecs, screen, level.Background)
	}
}

// DrawForeground draws the foreground tile layers over the ball.
func DrawForeground(ecs *ecs.ECS, screen *ebiten.Image) {
	if level := GetLevel(ecs); level != nil {
		drawLayer(ecs, screen, level.Foreground)
	}
}

func drawLayer(ecs *ecs.ECS, screen *ebiten.Image, img *ebiten.Image) {
	if img == nil {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	v := components.Camera.Get(cameraEntry).Viewport
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	opts := &ebiten.DrawImageOptions{}
	// Apply camera transform with zoom:
	// 1. Translate to camera-relative position
	// 2. Scale by zoom
	// 3. Center on screen
	opts.GeoM.Translate(-v.X(), -v.Y())
	opts.GeoM.Scale(v.Scale(), v.Scale())
	opts.GeoM.Translate(float64(width)/2, float64(height)/2)
	screen.DrawImage(img, opts)
}
