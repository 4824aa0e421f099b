package components

import (
	"image/color"

	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/yohamta/donburi"
)

// AreaData links a level area to its sensor object.
type AreaData struct {
	Area  leveldata.Area
	Color color.RGBA
	// Occupied is set while the ball overlaps the area.
	Occupied bool
}

var Area = donburi.NewComponentType[AreaData]()
