package leveldata

import (
	"errors"
	"testing"

	"github.com/automoto/rubberball/shared/gamemath"
)

type fakeSource struct {
	w, h, tile int
	groups     map[string][]RawObject
	tiles      map[[2]int]string
	layers     []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		w: 10, h: 10, tile: 32,
		groups: map[string][]RawObject{
			"areas": {
				{Name: "start", Type: "spawn", X: 0, Y: 0, W: 64, H: 64},
				{Name: "goal", Type: "finish", X: 256, Y: 256, W: 64, H: 64},
			},
			"collisions": {},
		},
		tiles:  map[[2]int]string{},
		layers: []string{"background", "meta", "foreground"},
	}
}

func (f *fakeSource) Dimensions() (int, int, int, int) { return f.w, f.h, f.tile, f.tile }

func (f *fakeSource) ObjectGroup(name string) ([]RawObject, bool) {
	objs, ok := f.groups[name]
	return objs, ok
}

func (f *fakeSource) TileProperty(x, y int, layer, key string) (string, bool) {
	if layer != "meta" || key != "collision" {
		return "", false
	}
	v, ok := f.tiles[[2]int{x, y}]
	return v, ok
}

func (f *fakeSource) LayerIndex(name string) int {
	for i, l := range f.layers {
		if l == name {
			return i
		}
	}
	return -1
}

func (f *fakeSource) addArea(o RawObject) {
	f.groups["areas"] = append(f.groups["areas"], o)
}

func mustRegistry(t *testing.T, src Source) *Registry {
	t.Helper()
	r, err := NewRegistry(0, src, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func expectInvalid(t *testing.T, src Source) *InvalidLevelError {
	t.Helper()
	r, err := NewRegistry(3, src, DefaultOptions())
	if r != nil {
		t.Errorf("expected no registry on failure, got %+v", r)
	}
	var inv *InvalidLevelError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidLevelError, got %v", err)
	}
	if inv.Index != 3 {
		t.Errorf("expected index 3 in error, got %d", inv.Index)
	}
	return inv
}

func TestNewRegistryAccessors(t *testing.T) {
	src := newFakeSource()
	src.addArea(RawObject{Name: "pad", Type: "safe", X: 128, Y: 0, W: 32, H: 32})
	src.addArea(RawObject{Name: "pit", Type: "trigger", X: 0, Y: 288, W: 320, H: 32})
	src.addArea(RawObject{Name: "door", Type: "transition", X: 160, Y: 160, W: 32, H: 32})
	src.addArea(RawObject{Name: "lamp", Type: "graphic", X: 192, Y: 0, W: 32, H: 32})
	src.addArea(RawObject{Name: "flip", Type: "responsive", X: 224, Y: 0, W: 32, H: 32})
	src.addArea(RawObject{Name: "nothing", Type: "empty", X: 0, Y: 0, W: 1, H: 1})
	src.addArea(RawObject{Name: "well", Type: "gravity", X: 64, Y: 64, W: 96, H: 96,
		Properties: map[string]string{"gravityX": "0", "gravityY": "-400"}})

	r := mustRegistry(t, src)

	if r.SpawnArea().Name() != "start" || r.SpawnArea().Kind() != AreaSpawn {
		t.Errorf("unexpected spawn area %+v", r.SpawnArea())
	}
	if r.FinishArea().Name() != "goal" {
		t.Errorf("unexpected finish area %+v", r.FinishArea())
	}
	if len(r.SafeAreas()) != 1 || len(r.TriggerAreas()) != 1 || len(r.GravityAreas()) != 1 {
		t.Errorf("expected 1 safe, 1 trigger, 1 gravity area, got %d, %d, %d",
			len(r.SafeAreas()), len(r.TriggerAreas()), len(r.GravityAreas()))
	}
	if len(r.TransitionAreas()) != 1 || len(r.GraphicAreas()) != 1 || len(r.ResponsiveAreas()) != 1 {
		t.Error("expected one transition, graphic and responsive area")
	}
	if r.WidthInTiles() != 10 || r.HeightInTiles() != 10 {
		t.Errorf("expected 10x10 tiles, got %dx%d", r.WidthInTiles(), r.HeightInTiles())
	}
	if r.PixelWidth() != 320 || r.PixelHeight() != 320 {
		t.Errorf("expected 320x320 pixels, got %vx%v", r.PixelWidth(), r.PixelHeight())
	}
	if r.BackgroundLayer() != 0 || r.ForegroundLayer() != 2 {
		t.Errorf("expected layers 0 and 2, got %d and %d", r.BackgroundLayer(), r.ForegroundLayer())
	}

	gx, gy := r.GravityAreas()[0].Gravity()
	if gx != 0 || gy != -400 {
		t.Errorf("expected gravity (0, -400), got (%v, %v)", gx, gy)
	}
	if gx, gy, ok := r.GravityAt(100, 100); !ok || gy != -400 || gx != 0 {
		t.Errorf("expected gravity area at (100, 100), got (%v, %v, %v)", gx, gy, ok)
	}
	if _, _, ok := r.GravityAt(10, 10); ok {
		t.Error("expected no gravity area at (10, 10)")
	}
}

func TestRegistryViewsAreCopies(t *testing.T) {
	src := newFakeSource()
	src.addArea(RawObject{Name: "pad", Type: "safe", X: 128, Y: 0, W: 32, H: 32,
		Properties: map[string]string{"k": "v"}})
	r := mustRegistry(t, src)

	safe := r.SafeAreas()
	safe[0] = Area{}
	if r.SafeAreas()[0].Name() != "pad" {
		t.Error("mutating the returned slice changed the registry")
	}

	props := r.SafeAreas()[0].Properties()
	props["k"] = "changed"
	if v, _ := r.SafeAreas()[0].Property("k"); v != "v" {
		t.Errorf("mutating returned properties changed the area, got %q", v)
	}
}

func TestSpawnFinishCardinality(t *testing.T) {
	tests := []struct {
		name  string
		areas []RawObject
	}{
		{"no spawn", []RawObject{{Name: "goal", Type: "finish", W: 1, H: 1}}},
		{"no finish", []RawObject{{Name: "start", Type: "spawn", W: 1, H: 1}}},
		{"two spawns", []RawObject{
			{Name: "a", Type: "spawn", W: 1, H: 1},
			{Name: "b", Type: "spawn", W: 1, H: 1},
			{Name: "goal", Type: "finish", W: 1, H: 1},
		}},
		{"two finishes", []RawObject{
			{Name: "start", Type: "spawn", W: 1, H: 1},
			{Name: "a", Type: "finish", W: 1, H: 1},
			{Name: "b", Type: "finish", W: 1, H: 1},
		}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.groups["areas"] = tt.areas
			expectInvalid(t, src)
		})
	}
}

func TestMissingObjectGroups(t *testing.T) {
	for _, group := range []string{"areas", "collisions"} {
		t.Run(group, func(t *testing.T) {
			src := newFakeSource()
			delete(src.groups, group)
			expectInvalid(t, src)
		})
	}
}

func TestNonPositiveDimensions(t *testing.T) {
	tests := []struct {
		name       string
		w, h, tile int
	}{
		{"negative width", -1, 10, 32},
		{"zero height", 10, 0, 32},
		{"zero tile size", 10, 10, 0},
		{"negative tile size", 10, 10, -32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.w, src.h, src.tile = tt.w, tt.h, tt.tile
			expectInvalid(t, src)
		})
	}
}

func TestUnknownAreaType(t *testing.T) {
	src := newFakeSource()
	src.addArea(RawObject{Name: "x", Type: "Safe", W: 1, H: 1})
	expectInvalid(t, src)
}

func TestGravityAreaValidation(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]string
	}{
		{"missing both", nil},
		{"missing y", map[string]string{"gravityX": "1"}},
		{"unparsable", map[string]string{"gravityX": "1", "gravityY": "down"}},
		{"nan", map[string]string{"gravityX": "NaN", "gravityY": "0"}},
		{"inf", map[string]string{"gravityX": "0", "gravityY": "Inf"}},
		{"negative inf", map[string]string{"gravityX": "-inf", "gravityY": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.addArea(RawObject{Name: "g", Type: "gravity", W: 32, H: 32, Properties: tt.props})
			expectInvalid(t, src)
		})
	}
}

func TestGravityColorDeterministic(t *testing.T) {
	a := NewArea("g", AreaGravity, gamemath.NewRect(0, 0, 1, 1), map[string]string{"gravityX": "300", "gravityY": "0"})
	b := NewArea("h", AreaGravity, gamemath.NewRect(5, 5, 1, 1), map[string]string{"gravityX": "0", "gravityY": "300"})

	ga, err := NewGravityArea(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, _ := NewGravityArea(a)
	gb, _ := NewGravityArea(b)

	if ga.Color() != again.Color() {
		t.Errorf("expected identical colours, got %v and %v", ga.Color(), again.Color())
	}
	if ga.Color() == gb.Color() {
		t.Errorf("expected different directions to produce different colours, both %v", ga.Color())
	}
}

func TestCollisionObjects(t *testing.T) {
	src := newFakeSource()
	src.groups["collisions"] = []RawObject{
		{Name: "floor", X: 0, Y: 64, W: 64, H: 32},
		{Name: "ramp", X: 100, Y: 100, Polygon: []gamemath.Vec{{X: 0, Y: 0}, {X: 32, Y: 0}, {X: 0, Y: 32}}},
	}
	r := mustRegistry(t, src)

	objs := r.CollisionObjects()
	if len(objs) != 2 {
		t.Fatalf("expected 2 collision objects, got %d", len(objs))
	}
	if _, err := objs[0].Polygon(); !errors.Is(err, ErrNotPolygon) {
		t.Errorf("expected ErrNotPolygon for rectangle, got %v", err)
	}
	pts, err := objs[1].Polygon()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pts[1].X != 132 || pts[1].Y != 100 {
		t.Errorf("expected absolute point (132, 100), got %+v", pts[1])
	}
	if b := objs[1].Bounds(); b != gamemath.NewRect(100, 100, 32, 32) {
		t.Errorf("expected polygon bounds (100,100,32,32), got %+v", b)
	}

	// The floor sits directly under the spawn pad.
	pads := r.LandingPads()
	if len(pads) != 1 || pads[0].Collision.Name() != "floor" || pads[0].Above.Kind() != AreaSpawn {
		t.Errorf("expected floor under spawn as landing pad, got %+v", pads)
	}
}

func TestPolygonTagRequiresPoints(t *testing.T) {
	src := newFakeSource()
	src.groups["collisions"] = []RawObject{{Name: "bad", Type: "polygon", X: 0, Y: 0, W: 32, H: 32}}
	inv := expectInvalid(t, src)
	if !errors.Is(inv, ErrNotPolygon) {
		t.Errorf("expected wrapped ErrNotPolygon, got %v", inv)
	}
}

func TestCollidableTileAt(t *testing.T) {
	src := newFakeSource()
	src.tiles[[2]int{0, 9}] = "all"
	src.tiles[[2]int{1, 9}] = "top-left"
	src.tiles[[2]int{2, 9}] = "bottom-right"
	src.tiles[[2]int{3, 9}] = "zigzag"
	r := mustRegistry(t, src)

	tile, ok := r.CollidableTileAt(0, 9)
	if !ok || tile.Shape != ShapeRectangle || tile.TileX != 0 || tile.TileY != 9 {
		t.Errorf("expected rectangle at (0, 9), got %+v, %v", tile, ok)
	}
	if tile, ok := r.CollidableTileAt(1, 9); !ok || tile.Shape != ShapeTriangleTopLeft {
		t.Errorf("expected top-left triangle at (1, 9), got %+v", tile)
	}
	if _, ok := r.CollidableTileAt(3, 9); ok {
		t.Error("expected unknown tag to be treated as non-collidable")
	}
	if _, ok := r.CollidableTileAt(5, 5); ok {
		t.Error("expected untagged tile to be non-collidable")
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if _, ok := r.CollidableTileAt(c[0], c[1]); ok {
			t.Errorf("expected no tile outside the map at %v", c)
		}
	}
	if n := len(r.CollidableTiles()); n != 3 {
		t.Errorf("expected 3 collidable tiles, got %d", n)
	}
}

func TestMissingMetaLayerMeansNoTiles(t *testing.T) {
	src := newFakeSource()
	src.layers = []string{"background"}
	src.tiles[[2]int{0, 0}] = "all"
	r := mustRegistry(t, src)
	if _, ok := r.CollidableTileAt(0, 0); ok {
		t.Error("expected no collision tiles without a meta layer")
	}
}

func TestFindAreaAbove(t *testing.T) {
	object := NewArea("block", AreaEmpty, gamemath.NewRect(0, 96, 32, 32), nil)

	tests := []struct {
		name     string
		areas    []RawObject
		expected string
	}{
		{
			name: "flush trigger",
			areas: []RawObject{
				{Name: "pad", Type: "safe", X: 0, Y: 96, W: 32, H: 32},
				{Name: "trap", Type: "trigger", X: 0, Y: 64, W: 32, H: 32},
			},
			expected: "trap",
		},
		{
			name: "trigger shifted one unit still overlaps",
			areas: []RawObject{
				{Name: "trap", Type: "trigger", X: 1, Y: 64, W: 32, H: 32},
			},
			expected: "trap",
		},
		{
			name: "trigger shifted off the span",
			areas: []RawObject{
				{Name: "trap", Type: "trigger", X: 32, Y: 64, W: 32, H: 32},
			},
		},
		{
			name: "trigger one unit too high",
			areas: []RawObject{
				{Name: "trap", Type: "trigger", X: 0, Y: 63, W: 32, H: 32},
			},
		},
		{
			name: "diagonal neighbour",
			areas: []RawObject{
				{Name: "trap", Type: "trigger", X: -32, Y: 64, W: 32, H: 32},
			},
		},
		{
			name: "safe wins over trigger",
			areas: []RawObject{
				{Name: "trap", Type: "trigger", X: 0, Y: 64, W: 16, H: 32},
				{Name: "pad", Type: "safe", X: 16, Y: 64, W: 16, H: 32},
			},
			expected: "pad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.groups["areas"] = append(src.groups["areas"], tt.areas...)
			r := mustRegistry(t, src)

			got, ok := r.FindAreaAbove(object)
			if tt.expected == "" {
				if ok {
					t.Errorf("expected no area above, got %q", got.Name())
				}
				return
			}
			if !ok || got.Name() != tt.expected {
				t.Errorf("expected %q above, got %q (found=%v)", tt.expected, got.Name(), ok)
			}
		})
	}
}

func TestFindAreaAboveSpawnBeforeFinish(t *testing.T) {
	src := newFakeSource()
	src.groups["areas"] = []RawObject{
		{Name: "goal", Type: "finish", X: 32, Y: 0, W: 32, H: 64},
		{Name: "start", Type: "spawn", X: 0, Y: 0, W: 32, H: 64},
	}
	r := mustRegistry(t, src)

	floor := NewArea("floor", AreaEmpty, gamemath.NewRect(0, 64, 64, 32), nil)
	got, ok := r.FindAreaAbove(floor)
	if !ok || got.Kind() != AreaSpawn {
		t.Errorf("expected spawn to win over finish, got %v", got.Kind())
	}
}

func TestFindAreaAboveIgnoresPolygons(t *testing.T) {
	r := mustRegistry(t, newFakeSource())
	poly := newPolygonArea("ramp", AreaEmpty, []gamemath.Vec{{X: 0, Y: 64}, {X: 64, Y: 64}, {X: 0, Y: 96}}, nil)
	if _, ok := r.FindAreaAbove(poly); ok {
		t.Error("expected polygons to have no area above")
	}
}

func TestContainsBall(t *testing.T) {
	r := mustRegistry(t, newFakeSource())
	spawn := r.SpawnArea()

	if !spawn.ContainsBall(32, 32, 16) {
		t.Error("expected ball centred on the pad to be inside")
	}
	if spawn.ContainsBall(60, 32, 16) {
		t.Error("expected ball hanging off the pad to be outside")
	}
	if !spawn.ContainsPoint(0, 0) || spawn.ContainsPoint(64, 0) {
		t.Error("expected half-open containment on the spawn pad")
	}
}
