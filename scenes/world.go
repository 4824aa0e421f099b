package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"sync"

	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/automoto/rubberball/systems"
	"github.com/automoto/rubberball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays levels from a level cache, starting at one index.
type WorldScene struct {
	ecs   *ecs.ECS
	fsys  fs.FS
	cache *leveldata.Cache
	start int
	once  sync.Once
	err   error
}

// NewWorldScene creates the scene. The ECS is built on the first Update.
func NewWorldScene(fsys fs.FS, cache *leveldata.Cache, start int) *WorldScene {
	return &WorldScene{fsys: fsys, cache: cache, start: start}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateAreas)
	ecs.AddSystem(systems.UpdateBall)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawAreas)
	ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ecs.AddRenderer(cfg.Default, systems.DrawForeground)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ws.ecs = ecs

	factory.CreateCamera(ws.ecs)
	if _, err := factory.CreateLevel(ws.ecs, ws.fsys, ws.cache, ws.start); err != nil {
		ws.err = fmt.Errorf("start level %d: %w", ws.start, err)
		return
	}
	systems.StartLevel(ws.ecs)
}
