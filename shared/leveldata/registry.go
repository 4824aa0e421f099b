package leveldata

import (
	"github.com/automoto/rubberball/shared/gamemath"
)

// Options names the parts of a level source the registry reads.
type Options struct {
	AreasGroup      string
	CollisionsGroup string
	MetaLayer       string
	CollisionKey    string
	BackgroundLayer string
	ForegroundLayer string
}

// DefaultOptions returns the names used by the shipped levels.
func DefaultOptions() Options {
	return Options{
		AreasGroup:      "areas",
		CollisionsGroup: "collisions",
		MetaLayer:       "meta",
		CollisionKey:    "collision",
		BackgroundLayer: "background",
		ForegroundLayer: "foreground",
	}
}

// collisionPolygonTag marks collision objects that must be polygons.
const collisionPolygonTag = "polygon"

// LandingPad pairs a rectangular collision object with the area resting
// flush on top of it.
type LandingPad struct {
	Collision Area
	Above     Area
}

// Registry is the validated domain model of one level. It is immutable once
// NewRegistry returns.
type Registry struct {
	index int

	spawn      Area
	finish     Area
	safe       []Area
	trigger    []Area
	gravity    []GravityArea
	transition []Area
	responsive []Area
	graphic    []Area
	collisions []Area
	pads       []LandingPad

	widthTiles, heightTiles int
	tileWidth, tileHeight   int
	background, foreground  int

	// grid holds one shape per tile, row-major; shapeNone marks open tiles.
	grid []TileShape
}

// NewRegistry validates src and builds the registry for level index. Either
// a complete registry or an error is returned, never a partial model.
func NewRegistry(index int, src Source, opts Options) (*Registry, error) {
	areaObjs, ok := src.ObjectGroup(opts.AreasGroup)
	if !ok {
		return nil, invalid(index, nil, "missing object group %q", opts.AreasGroup)
	}
	collisionObjs, ok := src.ObjectGroup(opts.CollisionsGroup)
	if !ok {
		return nil, invalid(index, nil, "missing object group %q", opts.CollisionsGroup)
	}

	r := &Registry{index: index}
	r.widthTiles, r.heightTiles, r.tileWidth, r.tileHeight = src.Dimensions()
	if r.widthTiles <= 0 || r.heightTiles <= 0 || r.tileWidth <= 0 || r.tileHeight <= 0 {
		return nil, invalid(index, nil, "map is %dx%d tiles of %dx%d px, all must be positive",
			r.widthTiles, r.heightTiles, r.tileWidth, r.tileHeight)
	}
	r.background = src.LayerIndex(opts.BackgroundLayer)
	r.foreground = src.LayerIndex(opts.ForegroundLayer)

	var spawns, finishes []Area
	for _, o := range areaObjs {
		kind, ok := ParseAreaKind(o.Type)
		if !ok {
			return nil, invalid(index, nil, "area %q has unknown type %q", o.Name, o.Type)
		}
		a := NewArea(o.Name, kind, gamemath.NewRect(o.X, o.Y, o.W, o.H), o.Properties)

		switch kind {
		case AreaSpawn:
			spawns = append(spawns, a)
		case AreaFinish:
			finishes = append(finishes, a)
		case AreaSafe:
			r.safe = append(r.safe, a)
		case AreaTrigger:
			r.trigger = append(r.trigger, a)
		case AreaTransition:
			r.transition = append(r.transition, a)
		case AreaResponsive:
			r.responsive = append(r.responsive, a)
		case AreaGraphic:
			r.graphic = append(r.graphic, a)
		case AreaGravity:
			g, err := NewGravityArea(a)
			if err != nil {
				return nil, invalid(index, err, "gravity area %q", o.Name)
			}
			r.gravity = append(r.gravity, g)
		case AreaEmpty:
		}
	}

	if len(spawns) != 1 {
		return nil, invalid(index, nil, "expected exactly one spawn area, found %d", len(spawns))
	}
	if len(finishes) != 1 {
		return nil, invalid(index, nil, "expected exactly one finish area, found %d", len(finishes))
	}
	r.spawn, r.finish = spawns[0], finishes[0]

	for _, o := range collisionObjs {
		a, err := collisionArea(o)
		if err != nil {
			return nil, invalid(index, err, "collision object %q", o.Name)
		}
		r.collisions = append(r.collisions, a)
	}

	r.buildGrid(src, opts)
	r.buildPads()

	logger.Info("level loaded",
		"index", index,
		"tiles", [2]int{r.widthTiles, r.heightTiles},
		"safe", len(r.safe),
		"trigger", len(r.trigger),
		"gravity", len(r.gravity),
		"collisions", len(r.collisions),
	)
	return r, nil
}

// collisionArea converts a collision object. Objects tagged "polygon" must
// carry points.
func collisionArea(o RawObject) (Area, error) {
	if len(o.Polygon) == 0 {
		a := NewArea(o.Name, AreaEmpty, gamemath.NewRect(o.X, o.Y, o.W, o.H), o.Properties)
		if o.Type == collisionPolygonTag {
			_, err := a.Polygon()
			return Area{}, err
		}
		return a, nil
	}

	points := make([]gamemath.Vec, len(o.Polygon))
	for i, p := range o.Polygon {
		points[i] = gamemath.Vec{X: o.X + p.X, Y: o.Y + p.Y}
	}
	return newPolygonArea(o.Name, AreaEmpty, points, o.Properties), nil
}

func (r *Registry) buildGrid(src Source, opts Options) {
	r.grid = make([]TileShape, r.widthTiles*r.heightTiles)
	if src.LayerIndex(opts.MetaLayer) < 0 {
		logger.Debug("level has no meta layer", "index", r.index, "layer", opts.MetaLayer)
		return
	}
	for y := 0; y < r.heightTiles; y++ {
		for x := 0; x < r.widthTiles; x++ {
			tag, ok := src.TileProperty(x, y, opts.MetaLayer, opts.CollisionKey)
			if !ok || tag == "" {
				continue
			}
			shape, err := Classify(tag)
			if err != nil {
				logger.Warn("ignoring collision tile", "index", r.index, "x", x, "y", y, "err", err)
				continue
			}
			r.grid[y*r.widthTiles+x] = shape
		}
	}
}

func (r *Registry) buildPads() {
	for _, c := range r.collisions {
		if above, ok := r.FindAreaAbove(c); ok {
			r.pads = append(r.pads, LandingPad{Collision: c, Above: above})
		}
	}
}

// Index returns the level index the registry was built for.
func (r *Registry) Index() int { return r.index }

func (r *Registry) SpawnArea() Area  { return r.spawn }
func (r *Registry) FinishArea() Area { return r.finish }

// SafeAreas returns a copy of the safe areas.
func (r *Registry) SafeAreas() []Area { return cloneAreas(r.safe) }

// TriggerAreas returns a copy of the trigger areas.
func (r *Registry) TriggerAreas() []Area { return cloneAreas(r.trigger) }

// GravityAreas returns a copy of the gravity areas.
func (r *Registry) GravityAreas() []GravityArea {
	return append([]GravityArea(nil), r.gravity...)
}

func (r *Registry) TransitionAreas() []Area { return cloneAreas(r.transition) }
func (r *Registry) ResponsiveAreas() []Area { return cloneAreas(r.responsive) }
func (r *Registry) GraphicAreas() []Area    { return cloneAreas(r.graphic) }

// CollisionObjects returns the raw collision objects.
func (r *Registry) CollisionObjects() []Area { return cloneAreas(r.collisions) }

// LandingPads returns the collision objects that have an area flush on top.
func (r *Registry) LandingPads() []LandingPad {
	return append([]LandingPad(nil), r.pads...)
}

func (r *Registry) WidthInTiles() int  { return r.widthTiles }
func (r *Registry) HeightInTiles() int { return r.heightTiles }
func (r *Registry) TileWidth() int     { return r.tileWidth }
func (r *Registry) TileHeight() int    { return r.tileHeight }

// PixelWidth returns the level width in world units.
func (r *Registry) PixelWidth() float64 { return float64(r.widthTiles * r.tileWidth) }

// PixelHeight returns the level height in world units.
func (r *Registry) PixelHeight() float64 { return float64(r.heightTiles * r.tileHeight) }

// BackgroundLayer and ForegroundLayer are render layer indices, -1 if absent.
func (r *Registry) BackgroundLayer() int { return r.background }
func (r *Registry) ForegroundLayer() int { return r.foreground }

// CollidableTileAt returns the collision tile at a tile coordinate.
func (r *Registry) CollidableTileAt(tileX, tileY int) (CollidableTile, bool) {
	if tileX < 0 || tileY < 0 || tileX >= r.widthTiles || tileY >= r.heightTiles {
		return CollidableTile{}, false
	}
	shape := r.grid[tileY*r.widthTiles+tileX]
	if shape == shapeNone {
		return CollidableTile{}, false
	}
	return CollidableTile{TileX: tileX, TileY: tileY, Shape: shape}, true
}

// CollidableTiles returns every collision tile in row-major order.
func (r *Registry) CollidableTiles() []CollidableTile {
	var tiles []CollidableTile
	for i, shape := range r.grid {
		if shape == shapeNone {
			continue
		}
		tiles = append(tiles, CollidableTile{TileX: i % r.widthTiles, TileY: i / r.widthTiles, Shape: shape})
	}
	return tiles
}

// FindAreaAbove returns the area whose bottom edge is flush with the top of
// a and whose horizontal span overlaps a's. Safe areas win over triggers,
// triggers over the spawn, the spawn over the finish. Polygons have no area
// above them.
func (r *Registry) FindAreaAbove(a Area) (Area, bool) {
	if a.IsPolygon() {
		return Area{}, false
	}
	for _, group := range [][]Area{r.safe, r.trigger, {r.spawn}, {r.finish}} {
		for _, other := range group {
			if isBelow(a, other) {
				return other, true
			}
		}
	}
	return Area{}, false
}

// isBelow reports whether a sits directly under other.
func isBelow(a, other Area) bool {
	ab, ob := a.Bounds(), other.Bounds()
	if !gamemath.SpansOverlap(ab.X, ab.Right(), ob.X, ob.Right()) {
		return false
	}
	return ab.Y == ob.Bottom()
}

// GravityAt returns the gravity of the first gravity area containing (x, y).
func (r *Registry) GravityAt(x, y float64) (gx, gy float64, ok bool) {
	for _, g := range r.gravity {
		if g.ContainsPoint(x, y) {
			gx, gy = g.Gravity()
			return gx, gy, true
		}
	}
	return 0, 0, false
}

func cloneAreas(in []Area) []Area {
	return append([]Area(nil), in...)
}
