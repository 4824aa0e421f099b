package camera

import (
	"math"
	"testing"
)

func baseFrame() Frame {
	return Frame{
		Delta:   16,
		ScreenW: 800,
		ScreenH: 600,
		CursorX: 400,
		CursorY: 300,
	}
}

func TestEdgeVelocity(t *testing.T) {
	c := NewController(DefaultConfig())
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		x, y       float64
		wantVX     float64
		wantVYSign int
	}{
		{"centre", 400, 300, 0, 0},
		{"at left edge", 0, 300, -cfg.MaxScrollSpeed, 0},
		{"inside min distance", 2, 300, -cfg.MaxScrollSpeed, 0},
		{"outside band", 48, 300, 0, 0},
		{"right edge band", 800 - 8, 300, cfg.MaxScrollSpeed / 2, 0},
		{"bottom edge", 400, 599, 0, 1},
		{"top band", 400, 10, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := baseFrame()
			f.CursorX, f.CursorY = tt.x, tt.y
			vx, vy := c.EdgeVelocity(f)
			if math.Abs(vx-tt.wantVX) > 1e-9 {
				t.Errorf("expected vx %f, got %f", tt.wantVX, vx)
			}
			switch {
			case tt.wantVYSign == 0 && vy != 0:
				t.Errorf("expected no vertical scroll, got %f", vy)
			case tt.wantVYSign > 0 && vy <= 0:
				t.Errorf("expected downward scroll, got %f", vy)
			case tt.wantVYSign < 0 && vy >= 0:
				t.Errorf("expected upward scroll, got %f", vy)
			}
			if math.Abs(vx) > cfg.MaxScrollSpeed+1e-9 || math.Abs(vy) > cfg.MaxScrollSpeed+1e-9 {
				t.Errorf("velocity (%f, %f) exceeds max speed", vx, vy)
			}
		})
	}
}

func TestEdgeSpeedGrowsTowardEdge(t *testing.T) {
	c := NewController(DefaultConfig())
	prev := 0.0
	for d := 47.0; d >= 0; d-- {
		f := baseFrame()
		f.CursorX = d
		vx, _ := c.EdgeVelocity(f)
		if math.Abs(vx) < prev {
			t.Fatalf("speed decreased approaching the edge at distance %f", d)
		}
		prev = math.Abs(vx)
	}
}

func TestFreeLookScrolls(t *testing.T) {
	c := NewController(DefaultConfig())
	v := NewViewport()
	v.SetPosition(1000, 1000)

	f := baseFrame()
	f.FreeLook = true
	f.CursorX = 0
	for i := 0; i < 30; i++ {
		c.Update(v, f)
	}
	if v.X() >= 1000 {
		t.Errorf("expected camera to scroll left, got x=%f", v.X())
	}
	if v.Y() != 1000 {
		t.Errorf("expected no vertical scroll, got y=%f", v.Y())
	}
}

func TestFollowUsesFirstOrderSmoothing(t *testing.T) {
	c := NewController(DefaultConfig())
	v := NewViewport()

	f := baseFrame()
	f.CursorX = 0 // edge scroll is ignored while following
	f.TargetX, f.TargetY = 200, 400

	c.Update(v, f)
	if v.X() != 10 || v.Y() != 20 {
		t.Errorf("expected one twentieth of the way, (10, 20), got (%f, %f)", v.X(), v.Y())
	}

	for i := 0; i < 1000; i++ {
		c.Update(v, f)
	}
	if math.Abs(v.X()-200) > 1e-6 || math.Abs(v.Y()-400) > 1e-6 {
		t.Errorf("expected convergence on target, got (%f, %f)", v.X(), v.Y())
	}
}

func TestWheelChangesTargetScale(t *testing.T) {
	c := NewController(DefaultConfig())
	v := NewViewport()
	f := baseFrame()

	f.Wheel = 1
	c.Update(v, f)
	if got := c.Tuning().TargetScale; math.Abs(got-1.05) > 1e-9 {
		t.Errorf("expected target 1.05, got %f", got)
	}
	if v.Scale() <= 1 || v.Scale() >= 1.05 {
		t.Errorf("expected scale to move part way toward target, got %f", v.Scale())
	}

	// Zooming back out lands within the snap band and snaps to exactly 1.
	f.Wheel = -1
	c.Update(v, f)
	if got := c.Tuning().TargetScale; got != 1 {
		t.Errorf("expected target to snap to 1, got %f", got)
	}

	f.Wheel = 100
	c.Update(v, f)
	if got := c.Tuning().TargetScale; got != DefaultConfig().MaxScale {
		t.Errorf("expected target clamped to max, got %f", got)
	}

	f.Wheel = -100
	c.Update(v, f)
	if got := c.Tuning().TargetScale; got != 1 {
		t.Errorf("expected target clamped to min, got %f", got)
	}
}

func TestWheelStepIsSymmetric(t *testing.T) {
	c := NewController(DefaultConfig())
	v := NewViewport()
	f := baseFrame()

	f.Wheel = 20
	c.Update(v, f)
	if got := c.Tuning().TargetScale; math.Abs(got-2) > 1e-9 {
		t.Fatalf("expected target 2, got %f", got)
	}

	f.Wheel = -1
	c.Update(v, f)
	if got := c.Tuning().TargetScale; math.Abs(got-1.9) > 1e-9 {
		t.Errorf("expected one notch out to give 1.9, got %f", got)
	}

	f.Wheel = 1
	c.Update(v, f)
	if got := c.Tuning().TargetScale; math.Abs(got-1.995) > 1e-9 {
		t.Errorf("expected one notch in to give 1.995, got %f", got)
	}
}

func TestResetZoomAndReset(t *testing.T) {
	c := NewController(DefaultConfig())
	v := NewViewport()
	f := baseFrame()

	f.Wheel = 10
	c.Update(v, f)
	if c.Tuning().TargetScale <= 1 {
		t.Fatalf("expected zoomed target, got %f", c.Tuning().TargetScale)
	}

	f.Wheel = 0
	f.ResetZoom = true
	c.Update(v, f)
	if c.Tuning().TargetScale != 1 {
		t.Errorf("expected middle click to reset target to 1, got %f", c.Tuning().TargetScale)
	}

	f.ResetZoom = false
	f.FreeLook = true
	f.CursorX = 0
	c.Update(v, f)
	c.Reset()
	if tu := c.Tuning(); tu.TargetScale != 1 || tu.VelX != 0 || tu.VelY != 0 {
		t.Errorf("expected reset tuning, got %+v", tu)
	}
}

func TestControllerThenLimitKeepsScaleInvariant(t *testing.T) {
	c := NewController(DefaultConfig())
	v := NewViewport()
	b := Bounds{LevelW: 320, LevelH: 320, ScreenW: 800, ScreenH: 600}

	f := baseFrame()
	for i := 0; i < 200; i++ {
		f.Wheel = float64(i%7 - 3)
		f.FreeLook = i%2 == 0
		f.TargetX, f.TargetY = float64(i*13%320), float64(i*7%320)
		c.Update(v, f)
		Limit(v, b)
		if v.Scale() < 2.5 {
			t.Fatalf("frame %d: scale %f below what the level requires", i, v.Scale())
		}
		x, y, s := v.X(), v.Y(), v.Scale()
		Limit(v, b)
		if v.X() != x || v.Y() != y || v.Scale() != s {
			t.Fatalf("frame %d: limiter not idempotent", i)
		}
	}
}
