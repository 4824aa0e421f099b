package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS returns the embedded asset tree. Levels live under "levels/".
func FS() fs.FS { return assetFS }

// RenderLayers draws the tile layers at the given indices of the TMX file at
// path into one image. Negative indices are skipped; nil is returned when no
// layer was drawn.
func RenderLayers(fsys fs.FS, path string, layers ...int) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", path, err)
	}

	var out *ebiten.Image
	for _, i := range layers {
		if i < 0 || i >= len(levelMap.Layers) {
			continue
		}
		layer := levelMap.Layers[i]
		// Skip fully transparent layers
		if layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %q of %s: %w", layer.Name, path, err)
		}

		if out == nil {
			out = ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		out.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return out, nil
}
