package gamemath

import (
	"math"
	"testing"
)

func TestLaunchForceOpposesPull(t *testing.T) {
	center := Vec{X: 100, Y: 100}
	release := Vec{X: 60, Y: 140}

	f := LaunchForce(center, release)

	if math.Abs(f.Magnitude-56.5685) > 0.001 {
		t.Errorf("expected magnitude ~56.57, got %f", f.Magnitude)
	}
	if f.X != 40 || f.Y != -40 {
		t.Errorf("expected force (40, -40), got (%f, %f)", f.X, f.Y)
	}

	pull := release.Sub(center)
	dot := pull.X*f.X + pull.Y*f.Y
	if math.Abs(dot+pull.Len()*f.Magnitude) > 1e-9 {
		t.Errorf("expected force antiparallel to pull, dot=%f", dot)
	}

	if math.Abs(f.Angle-(-math.Pi/4)) > 1e-9 {
		t.Errorf("expected angle -pi/4, got %f", f.Angle)
	}
}

func TestLaunchForceZeroPull(t *testing.T) {
	p := Vec{X: 5, Y: 5}
	f := LaunchForce(p, p)
	if f.Magnitude != 0 || f.X != 0 || f.Y != 0 {
		t.Errorf("expected zero force, got %+v", f)
	}
}

func TestClampPull(t *testing.T) {
	center := Vec{X: 0, Y: 0}

	got := ClampPull(center, Vec{X: 300, Y: 400}, 50)
	if math.Abs(got.X-30) > 1e-9 || math.Abs(got.Y-40) > 1e-9 {
		t.Errorf("expected (30, 40), got (%f, %f)", got.X, got.Y)
	}

	short := Vec{X: 3, Y: 4}
	if got := ClampPull(center, short, 50); got != short {
		t.Errorf("expected short pull unchanged, got %+v", got)
	}
	if got := ClampPull(center, Vec{X: 300, Y: 400}, 0); got.X != 300 {
		t.Errorf("expected unlimited pull when maxLen is 0, got %+v", got)
	}
}

func TestSmoothConverges(t *testing.T) {
	v := 0.0
	v = Smooth(v, 100, 20)
	if v != 5 {
		t.Errorf("expected first step of 5, got %f", v)
	}
	for i := 0; i < 500; i++ {
		v = Smooth(v, 100, 20)
	}
	if math.Abs(v-100) > 1e-6 {
		t.Errorf("expected convergence to 100, got %f", v)
	}
	if got := Smooth(3, 7, 1); got != 7 {
		t.Errorf("expected snap with n=1, got %f", got)
	}
}
