package leveldata

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/automoto/rubberball/shared/gamemath"
	"github.com/lucasb-eyer/go-colorful"
)

// AreaKind classifies an area object of the "areas" group.
type AreaKind int

const (
	AreaEmpty AreaKind = iota
	AreaSpawn
	AreaFinish
	AreaSafe
	AreaTrigger
	AreaTransition
	AreaResponsive
	AreaGraphic
	AreaGravity
)

var areaKindTags = map[string]AreaKind{
	"empty":      AreaEmpty,
	"spawn":      AreaSpawn,
	"finish":     AreaFinish,
	"safe":       AreaSafe,
	"trigger":    AreaTrigger,
	"transition": AreaTransition,
	"responsive": AreaResponsive,
	"graphic":    AreaGraphic,
	"gravity":    AreaGravity,
}

// ParseAreaKind maps an object type tag to its kind. Matching is case-sensitive.
func ParseAreaKind(tag string) (AreaKind, bool) {
	k, ok := areaKindTags[tag]
	return k, ok
}

func (k AreaKind) String() string {
	for tag, kind := range areaKindTags {
		if kind == k {
			return tag
		}
	}
	return "AreaKind(" + strconv.Itoa(int(k)) + ")"
}

// Area is an immutable axis-aligned region parsed from a level object.
type Area struct {
	name    string
	kind    AreaKind
	bounds  gamemath.Rect
	props   map[string]string
	polygon []gamemath.Vec
}

// NewArea builds an area. The property map is copied.
func NewArea(name string, kind AreaKind, bounds gamemath.Rect, props map[string]string) Area {
	cp := make(map[string]string, len(props))
	for k, v := range props {
		cp[k] = v
	}
	return Area{name: name, kind: kind, bounds: bounds, props: cp}
}

// newPolygonArea builds an area from absolute polygon points. Its bounds are
// the bounding box of the points.
func newPolygonArea(name string, kind AreaKind, points []gamemath.Vec, props map[string]string) Area {
	a := NewArea(name, kind, boundingBox(points), props)
	a.polygon = append([]gamemath.Vec(nil), points...)
	return a
}

func (a Area) Name() string                    { return a.name }
func (a Area) Kind() AreaKind                  { return a.kind }
func (a Area) Bounds() gamemath.Rect           { return a.bounds }
func (a Area) IsPolygon() bool                 { return len(a.polygon) > 0 }
func (a Area) ContainsPoint(x, y float64) bool { return a.bounds.ContainsPoint(x, y) }

// Property returns a raw property value.
func (a Area) Property(key string) (string, bool) {
	v, ok := a.props[key]
	return v, ok
}

// Properties returns a copy of the property bag.
func (a Area) Properties() map[string]string {
	out := make(map[string]string, len(a.props))
	for k, v := range a.props {
		out[k] = v
	}
	return out
}

// Polygon returns the absolute outline of a polygon object.
func (a Area) Polygon() ([]gamemath.Vec, error) {
	if !a.IsPolygon() {
		return nil, fmt.Errorf("%w: %q", ErrNotPolygon, a.name)
	}
	return append([]gamemath.Vec(nil), a.polygon...), nil
}

// ContainsBall reports whether a circular body is fully inside the area.
func (a Area) ContainsBall(cx, cy, radius float64) bool {
	return gamemath.CircleInsideRect(cx, cy, radius, a.bounds)
}

func boundingBox(points []gamemath.Vec) gamemath.Rect {
	if len(points) == 0 {
		return gamemath.Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return gamemath.NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Gravity property keys.
const (
	PropGravityX = "gravityX"
	PropGravityY = "gravityY"
)

// maxGravityForColor is the magnitude shown at full brightness.
const maxGravityForColor = 2000.0

// GravityArea is an area that overrides the gravity applied to the ball.
type GravityArea struct {
	Area
	gx, gy float64
	color  color.RGBA
}

// NewGravityArea reads both gravity components from the area's properties.
func NewGravityArea(a Area) (GravityArea, error) {
	gx, err := floatProperty(a, PropGravityX)
	if err != nil {
		return GravityArea{}, err
	}
	gy, err := floatProperty(a, PropGravityY)
	if err != nil {
		return GravityArea{}, err
	}
	return GravityArea{Area: a, gx: gx, gy: gy, color: gravityColor(gx, gy)}, nil
}

// Gravity returns the gravity vector of the area.
func (g GravityArea) Gravity() (x, y float64) { return g.gx, g.gy }

// Color returns the display colour derived from the gravity vector.
func (g GravityArea) Color() color.RGBA { return g.color }

func floatProperty(a Area, key string) (float64, error) {
	raw, ok := a.Property(key)
	if !ok {
		return 0, fmt.Errorf("area %q: missing property %s", a.Name(), key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("area %q: property %s: %w", a.Name(), key, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("area %q: property %s: %q is not a finite number", a.Name(), key, raw)
	}
	return v, nil
}

// gravityColor maps direction to hue and magnitude to brightness.
func gravityColor(gx, gy float64) color.RGBA {
	hue := math.Atan2(gy, gx) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	mag := math.Hypot(gx, gy)
	value := gamemath.Clamp(mag/maxGravityForColor, 0.35, 1)
	r, g, b := colorful.Hsv(hue, 0.75, value).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 96}
}
