package components

import (
	"io/fs"

	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	FS      fs.FS // TMX files, for rendering tile layers
	Cache   *leveldata.Cache
	Current *leveldata.Registry
	Index   int

	// Rendered tile layers of Current; nil when the level has no such layer.
	Background *ebiten.Image
	Foreground *ebiten.Image

	// Requested is the level index to switch to on the next update, or -1.
	Requested int
}

var Level = donburi.NewComponentType[LevelData]()
