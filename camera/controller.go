package camera

import (
	"math"

	"github.com/automoto/rubberball/shared/gamemath"
)

// Config tunes the camera controller.
type Config struct {
	BorderBand      float64 `yaml:"border_band"`       // screen px from an edge where free look scrolls
	MinEdgeDistance float64 `yaml:"min_edge_distance"` // distances below this scroll at full speed
	MaxScrollSpeed  float64 `yaml:"max_scroll_speed"`  // screen px per ms at the edge
	SmoothingSteps  float64 `yaml:"smoothing_steps"`   // N in old + (target-old)/N
	ScaleStep       float64 `yaml:"scale_step"`        // relative change per wheel notch
	MinScale        float64 `yaml:"min_scale"`
	MaxScale        float64 `yaml:"max_scale"`
	SnapEpsilon     float64 `yaml:"snap_epsilon"` // target scales this close to 1 snap to 1
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		BorderBand:      48,
		MinEdgeDistance: 4,
		MaxScrollSpeed:  0.6,
		SmoothingSteps:  20,
		ScaleStep:       0.05,
		MinScale:        1,
		MaxScale:        4,
		SnapEpsilon:     0.02,
	}
}

// Frame is the input the controller reads on one tick.
type Frame struct {
	Delta            float64 // elapsed ms
	ScreenW, ScreenH float64
	CursorX, CursorY float64
	Wheel            float64 // notches, positive zooms in
	ResetZoom        bool
	// FreeLook is set while the ball waits for a launch or has not been
	// placed yet; otherwise the camera chases Target.
	FreeLook         bool
	TargetX, TargetY float64
}

// Tuning is the controller state that survives between frames.
type Tuning struct {
	TargetScale float64
	VelX, VelY  float64 // smoothed edge-scroll velocity, screen px per ms
}

// Controller moves a Viewport once per frame.
type Controller struct {
	cfg    Config
	tuning Tuning
}

// NewController returns a controller in its reset state.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	c.Reset()
	return c
}

// Reset drops the target scale back to 1 and stops any scrolling.
func (c *Controller) Reset() {
	c.tuning = Tuning{TargetScale: MinScale}
}

// Tuning returns the current controller state.
func (c *Controller) Tuning() Tuning { return c.tuning }

// Update applies one frame of camera policy to v. Callers run Limit
// afterwards.
func (c *Controller) Update(v *Viewport, f Frame) {
	c.updateTargetScale(f)

	n := c.cfg.SmoothingSteps
	vx, vy := c.EdgeVelocity(f)
	if !f.FreeLook {
		vx, vy = 0, 0
	}
	c.tuning.VelX = gamemath.Smooth(c.tuning.VelX, vx, n)
	c.tuning.VelY = gamemath.Smooth(c.tuning.VelY, vy, n)

	if f.FreeLook {
		s := v.Scale()
		v.Translate(c.tuning.VelX*f.Delta/s, c.tuning.VelY*f.Delta/s)
	} else {
		v.SetPosition(gamemath.Smooth(v.X(), f.TargetX, n), gamemath.Smooth(v.Y(), f.TargetY, n))
	}

	scale := gamemath.Smooth(v.Scale(), c.tuning.TargetScale, n)
	if math.Abs(scale-c.tuning.TargetScale) < 1e-3 {
		scale = c.tuning.TargetScale
	}
	v.SetScale(scale)
}

func (c *Controller) updateTargetScale(f Frame) {
	if f.ResetZoom {
		c.tuning.TargetScale = MinScale
		return
	}
	if f.Wheel == 0 {
		return
	}
	// Each notch changes the scale by ScaleStep of its current value, in
	// either direction.
	target := c.tuning.TargetScale * math.Max(1+c.cfg.ScaleStep*f.Wheel, 0)
	target = gamemath.Clamp(target, math.Max(c.cfg.MinScale, MinScale), math.Max(c.cfg.MaxScale, MinScale))
	if math.Abs(target-1) < c.cfg.SnapEpsilon {
		target = 1
	}
	c.tuning.TargetScale = target
}

// EdgeVelocity returns the free-look scroll velocity for the cursor
// position, in screen px per ms. Inside the border band the speed grows as
// the cursor nears the edge, topping out at MaxScrollSpeed once it is within
// MinEdgeDistance.
func (c *Controller) EdgeVelocity(f Frame) (vx, vy float64) {
	vx = c.edgeSpeed(f.CursorX, f.ScreenW)
	vy = c.edgeSpeed(f.CursorY, f.ScreenH)
	return vx, vy
}

func (c *Controller) edgeSpeed(pos, size float64) float64 {
	band := c.cfg.BorderBand
	if band <= 0 || size <= 0 {
		return 0
	}
	minDist := math.Max(c.cfg.MinEdgeDistance, 1)

	if pos < band {
		return -c.cfg.MaxScrollSpeed * minDist / math.Max(pos, minDist)
	}
	if far := size - pos; far < band {
		return c.cfg.MaxScrollSpeed * minDist / math.Max(far, minDist)
	}
	return 0
}
