package leveldata

import (
	"fmt"

	"github.com/automoto/rubberball/shared/gamemath"
)

// TileShape is the collision shape of a single tile.
type TileShape int

const (
	shapeNone TileShape = iota
	ShapeRectangle
	ShapeTriangleTopLeft
	ShapeTriangleBottomLeft
	ShapeTriangleBottomRight
	ShapeTriangleTopRight
)

// Tile tags as authored in the meta layer. Matching is case-sensitive.
const (
	TagAll         = "all"
	TagTopLeft     = "top-left"
	TagBottomLeft  = "bottom-left"
	TagBottomRight = "bottom-right"
	TagTopRight    = "top-right"
)

var shapeTags = map[string]TileShape{
	TagAll:         ShapeRectangle,
	TagTopLeft:     ShapeTriangleTopLeft,
	TagBottomLeft:  ShapeTriangleBottomLeft,
	TagBottomRight: ShapeTriangleBottomRight,
	TagTopRight:    ShapeTriangleTopRight,
}

// Classify maps a raw tile attribute value to its collision shape.
func Classify(tag string) (TileShape, error) {
	if s, ok := shapeTags[tag]; ok {
		return s, nil
	}
	return shapeNone, fmt.Errorf("%w: %q", ErrUnknownShapeTag, tag)
}

func (s TileShape) String() string {
	switch s {
	case ShapeRectangle:
		return TagAll
	case ShapeTriangleTopLeft:
		return TagTopLeft
	case ShapeTriangleBottomLeft:
		return TagBottomLeft
	case ShapeTriangleBottomRight:
		return TagBottomRight
	case ShapeTriangleTopRight:
		return TagTopRight
	}
	return "none"
}

// Vertices returns the outline of the shape for a tile whose top-left corner
// is at (x, y) and whose size is w by h. A triangle is named after the corner
// holding its right angle.
func (s TileShape) Vertices(x, y, w, h float64) []gamemath.Vec {
	tl := gamemath.Vec{X: x, Y: y}
	tr := gamemath.Vec{X: x + w, Y: y}
	br := gamemath.Vec{X: x + w, Y: y + h}
	bl := gamemath.Vec{X: x, Y: y + h}

	switch s {
	case ShapeRectangle:
		return []gamemath.Vec{tl, tr, br, bl}
	case ShapeTriangleTopLeft:
		return []gamemath.Vec{tl, tr, bl}
	case ShapeTriangleBottomLeft:
		return []gamemath.Vec{tl, br, bl}
	case ShapeTriangleBottomRight:
		return []gamemath.Vec{tr, br, bl}
	case ShapeTriangleTopRight:
		return []gamemath.Vec{tl, tr, br}
	}
	return nil
}

// CollidableTile is a tile of the meta layer that carries a collision shape.
type CollidableTile struct {
	TileX, TileY int
	Shape        TileShape
}
