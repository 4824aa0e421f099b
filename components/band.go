package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BandData is the rubber band drawn between the ball and the pull point.
type BandData struct {
	Anchor math.Vec2 // ball centre when the pull started
	Pull   math.Vec2 // current (clamped) pull point
	Active bool

	// SnapBack shrinks the band from 1 to 0 after release.
	SnapBack *gween.Tween
	Stretch  float32
}

var Band = donburi.NewComponentType[BandData]()
