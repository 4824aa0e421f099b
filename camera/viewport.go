// Package camera holds the view transform of the running game and the
// per-frame policy that moves it.
//
// The camera position is the world point shown at the centre of the screen.
// Scale is the number of screen pixels per world unit and never drops
// below 1.
package camera

import "math"

// MinScale is the lowest scale a Viewport accepts.
const MinScale = 1.0

// Viewport is the camera of one running game. It is owned by the game loop
// and passed explicitly to whatever reads or moves it.
type Viewport struct {
	x, y  float64
	scale float64
}

// NewViewport returns a viewport at the origin with scale 1.
func NewViewport() *Viewport {
	return &Viewport{scale: MinScale}
}

// Translate moves the camera by (dx, dy) world units.
func (v *Viewport) Translate(dx, dy float64) {
	v.x += dx
	v.y += dy
}

// SetPosition moves the camera to (x, y).
func (v *Viewport) SetPosition(x, y float64) {
	v.x, v.y = x, y
}

// SetScale sets the scale, raising anything below MinScale to MinScale.
func (v *Viewport) SetScale(s float64) {
	if math.IsNaN(s) {
		s = MinScale
	}
	v.scale = math.Max(s, MinScale)
}

// Reset centres the camera on (x, y) at native scale.
func (v *Viewport) Reset(x, y float64) {
	v.SetPosition(x, y)
	v.SetScale(MinScale)
}

func (v *Viewport) X() float64     { return v.x }
func (v *Viewport) Y() float64     { return v.y }
func (v *Viewport) Scale() float64 { return v.scale }

// ScreenToWorld converts a screen pixel to world coordinates for a screen of
// the given size.
func (v *Viewport) ScreenToWorld(sx, sy, screenW, screenH float64) (wx, wy float64) {
	wx = v.x + (sx-screenW/2)/v.scale
	wy = v.y + (sy-screenH/2)/v.scale
	return wx, wy
}

// WorldToScreen converts world coordinates to a screen pixel.
func (v *Viewport) WorldToScreen(wx, wy, screenW, screenH float64) (sx, sy float64) {
	sx = (wx-v.x)*v.scale + screenW/2
	sy = (wy-v.y)*v.scale + screenH/2
	return sx, sy
}
