package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/automoto/rubberball/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// RawObject is an object of a level object group as authored.
type RawObject struct {
	Name       string
	Type       string
	X, Y       float64
	W, H       float64
	Properties map[string]string
	// Polygon holds points relative to X, Y. Empty for rectangles.
	Polygon []gamemath.Vec
}

// Source is the read-only level collaborator a Registry is built from.
type Source interface {
	// Dimensions returns the map size in tiles and the tile size in pixels.
	Dimensions() (widthTiles, heightTiles, tileWidth, tileHeight int)
	// ObjectGroup returns the objects of the named group.
	ObjectGroup(name string) ([]RawObject, bool)
	// TileProperty looks up a property of the tile at (x, y) in the named layer.
	TileProperty(x, y int, layer, key string) (string, bool)
	// LayerIndex returns the render index of a tile layer, or -1.
	LayerIndex(name string) int
}

// TMXSource reads a Tiled TMX map through go-tiled.
type TMXSource struct {
	path   string
	m      *tiled.Map
	layers map[string]*tiled.Layer
}

// NewTMXSource parses the TMX file at path inside fsys. The error is returned
// as-is; callers wrap it into a MapLoadError.
func NewTMXSource(fsys fs.FS, path string) (*TMXSource, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	return newTMXSource(path, m), nil
}

func newTMXSource(path string, m *tiled.Map) *TMXSource {
	s := &TMXSource{path: path, m: m, layers: make(map[string]*tiled.Layer, len(m.Layers))}
	for _, l := range m.Layers {
		if _, dup := s.layers[l.Name]; !dup {
			s.layers[l.Name] = l
		}
	}
	return s
}

// Path returns the file the source was read from.
func (s *TMXSource) Path() string { return s.path }

func (s *TMXSource) Dimensions() (int, int, int, int) {
	return s.m.Width, s.m.Height, s.m.TileWidth, s.m.TileHeight
}

func (s *TMXSource) ObjectGroup(name string) ([]RawObject, bool) {
	for _, og := range s.m.ObjectGroups {
		if og.Name != name {
			continue
		}
		objs := make([]RawObject, 0, len(og.Objects))
		for _, o := range og.Objects {
			objs = append(objs, rawObject(o))
		}
		return objs, true
	}
	return nil, false
}

func rawObject(o *tiled.Object) RawObject {
	typ := o.Class
	if typ == "" {
		typ = o.Type //nolint:staticcheck // TMX uses type= attribute
	}

	raw := RawObject{
		Name:       o.Name,
		Type:       typ,
		X:          o.X,
		Y:          o.Y,
		W:          o.Width,
		H:          o.Height,
		Properties: make(map[string]string, len(o.Properties)),
	}
	for _, p := range o.Properties {
		raw.Properties[p.Name] = p.Value
	}
	if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
		for _, pt := range *o.Polygons[0].Points {
			raw.Polygon = append(raw.Polygon, gamemath.Vec{X: pt.X, Y: pt.Y})
		}
	}
	return raw
}

func (s *TMXSource) TileProperty(x, y int, layer, key string) (string, bool) {
	l, ok := s.layers[layer]
	if !ok || x < 0 || y < 0 || x >= s.m.Width || y >= s.m.Height {
		return "", false
	}
	idx := y*s.m.Width + x
	if idx >= len(l.Tiles) {
		return "", false
	}
	tile := l.Tiles[idx]
	if tile == nil || tile.IsNil() || tile.Tileset == nil {
		return "", false
	}
	tt, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return "", false
	}
	for _, p := range tt.Properties {
		if p.Name == key {
			return p.Value, true
		}
	}
	return "", false
}

func (s *TMXSource) LayerIndex(name string) int {
	for i, l := range s.m.Layers {
		if l.Name == name {
			return i
		}
	}
	return -1
}
