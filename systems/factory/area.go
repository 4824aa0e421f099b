package factory

import (
	"image/color"

	"github.com/automoto/rubberball/archetypes"
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/automoto/rubberball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var areaColors = map[leveldata.AreaKind]color.RGBA{
	leveldata.AreaSpawn:      cfg.LightBlue,
	leveldata.AreaFinish:     cfg.LightGreen,
	leveldata.AreaSafe:       cfg.Green,
	leveldata.AreaTrigger:    cfg.Red,
	leveldata.AreaTransition: cfg.Magenta,
	leveldata.AreaResponsive: cfg.Orange,
	leveldata.AreaGraphic:    cfg.White,
}

// CreateArea creates a sensor for a level area. The resolv object carries
// the area kind as a tag so systems can filter checks by kind.
func CreateArea(ecs *ecs.ECS, area leveldata.Area) *donburi.Entry {
	return createArea(ecs, area, areaColors[area.Kind()])
}

// CreateGravityArea is CreateArea for gravity areas, tinted by their pull.
func CreateGravityArea(ecs *ecs.ECS, g leveldata.GravityArea) *donburi.Entry {
	return createArea(ecs, g.Area, g.Color())
}

func createArea(ecs *ecs.ECS, area leveldata.Area, c color.RGBA) *donburi.Entry {
	entry := archetypes.Area.Spawn(ecs)

	b := area.Bounds()
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvArea, area.Kind().String())
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Area.SetValue(entry, components.AreaData{Area: area, Color: c})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
