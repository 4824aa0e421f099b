package camera

// Bounds describes the level and screen the viewport is limited to, in
// world units and screen pixels respectively.
type Bounds struct {
	LevelW, LevelH   float64
	ScreenW, ScreenH float64
}

// Limit keeps the viewport inside the level. If the level is smaller than
// the screen along an axis at the current scale, the scale is raised until
// that axis fits exactly. The position is then clamped so nothing outside
// [0, LevelW] x [0, LevelH] is shown; an axis that exactly fits is centred.
// Limit is idempotent.
func Limit(v *Viewport, b Bounds) {
	if b.LevelW <= 0 || b.LevelH <= 0 || b.ScreenW <= 0 || b.ScreenH <= 0 {
		return
	}

	halfW, halfH := halfView(v, b)
	if halfW > b.LevelW/2 {
		v.SetScale(b.ScreenW / b.LevelW)
		halfW, halfH = halfView(v, b)
	}
	if halfH > b.LevelH/2 {
		v.SetScale(b.ScreenH / b.LevelH)
		halfW, halfH = halfView(v, b)
	}

	v.SetPosition(clampAxis(v.X(), halfW, b.LevelW), clampAxis(v.Y(), halfH, b.LevelH))
}

func halfView(v *Viewport, b Bounds) (float64, float64) {
	return b.ScreenW / 2 / v.Scale(), b.ScreenH / 2 / v.Scale()
}

func clampAxis(pos, half, size float64) float64 {
	lo, hi := half, size-half
	if lo >= hi {
		return size / 2
	}
	if pos < lo {
		return lo
	}
	if pos > hi {
		return hi
	}
	return pos
}
