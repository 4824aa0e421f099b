// Package physics is the rigid-body collaborator for the ball. It builds a
// chipmunk space from a level registry and exposes the few operations the
// game needs: place, hold, launch, step and read back position/velocity.
package physics

import (
	"github.com/automoto/rubberball/shared/gamemath"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/jakecoffman/cp"
)

// Config holds physical constants.
type Config struct {
	Gravity        float64 `yaml:"gravity"` // default downward gravity, px/s^2
	BallRadius     float64 `yaml:"ball_radius"`
	BallMass       float64 `yaml:"ball_mass"`
	BallElasticity float64 `yaml:"ball_elasticity"`
	BallFriction   float64 `yaml:"ball_friction"`
	WallElasticity float64 `yaml:"wall_elasticity"`
	WallFriction   float64 `yaml:"wall_friction"`
	MaxSpeed       float64 `yaml:"max_speed"`  // per axis cap on the ball velocity, px/s
	RestSpeed      float64 `yaml:"rest_speed"` // px/s below which the ball counts as still
	RestTicks      int     `yaml:"rest_ticks"` // consecutive still steps before AtRest
}

// DefaultConfig returns the constants the game ships with.
func DefaultConfig() Config {
	return Config{
		Gravity:        900,
		BallRadius:     12,
		BallMass:       1,
		BallElasticity: 0.45,
		BallFriction:   0.8,
		WallElasticity: 0.6,
		WallFriction:   0.9,
		MaxSpeed:       2400,
		RestSpeed:      6,
		RestTicks:      20,
	}
}

// World is the chipmunk space of one level.
type World struct {
	cfg   Config
	reg   *leveldata.Registry
	space *cp.Space

	ball      *cp.Body
	ballShape *cp.Shape

	gravity   cp.Vector
	held      bool
	restTicks int
}

// NewWorld builds static geometry for every collidable tile and collision
// object of reg, plus the level border, and places the ball at the centre
// of the spawn area, held in place.
func NewWorld(reg *leveldata.Registry, cfg Config) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	w := &World{
		cfg:     cfg,
		reg:     reg,
		space:   space,
		gravity: cp.Vector{X: 0, Y: cfg.Gravity},
	}
	w.addTiles()
	w.addCollisionObjects()
	w.addBounds()
	w.addBall()

	c := reg.SpawnArea().Bounds().Center()
	w.PlaceBall(c.X, c.Y)
	return w
}

func (w *World) addTiles() {
	tw, th := float64(w.reg.TileWidth()), float64(w.reg.TileHeight())
	for _, tile := range w.reg.CollidableTiles() {
		verts := tile.Shape.Vertices(float64(tile.TileX)*tw, float64(tile.TileY)*th, tw, th)
		w.addStatic(cp.NewPolyShapeRaw(w.space.StaticBody, len(verts), toCCW(verts), 0))
	}
}

// addCollisionObjects outlines every collision object with segments so
// concave polygons collide correctly.
func (w *World) addCollisionObjects() {
	for _, obj := range w.reg.CollisionObjects() {
		points, err := obj.Polygon()
		if err != nil {
			b := obj.Bounds()
			points = []gamemath.Vec{{X: b.X, Y: b.Y}, {X: b.Right(), Y: b.Y}, {X: b.Right(), Y: b.Bottom()}, {X: b.X, Y: b.Bottom()}}
		}
		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			w.addStatic(cp.NewSegment(w.space.StaticBody, vec(a), vec(b), 0.5))
		}
	}
}

func (w *World) addBounds() {
	lw, lh := w.reg.PixelWidth(), w.reg.PixelHeight()
	corners := []cp.Vector{{X: 0, Y: 0}, {X: lw, Y: 0}, {X: lw, Y: lh}, {X: 0, Y: lh}}
	for i := range corners {
		w.addStatic(cp.NewSegment(w.space.StaticBody, corners[i], corners[(i+1)%len(corners)], 1))
	}
}

func (w *World) addStatic(shape *cp.Shape) {
	shape.SetElasticity(w.cfg.WallElasticity)
	shape.SetFriction(w.cfg.WallFriction)
	w.space.AddShape(shape)
}

func (w *World) addBall() {
	mass := w.cfg.BallMass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, w.cfg.BallRadius, cp.Vector{}))
	body.SetVelocityUpdateFunc(w.updateBallVelocity)
	w.space.AddBody(body)

	shape := cp.NewCircle(body, w.cfg.BallRadius, cp.Vector{})
	shape.SetElasticity(w.cfg.BallElasticity)
	shape.SetFriction(w.cfg.BallFriction)
	w.space.AddShape(shape)

	w.ball, w.ballShape = body, shape
}

// updateBallVelocity replaces the space gravity with the ball's own and
// pins a held ball in place.
func (w *World) updateBallVelocity(body *cp.Body, _ cp.Vector, damping, dt float64) {
	if w.held {
		body.SetVelocity(0, 0)
		body.SetAngularVelocity(0)
		return
	}
	cp.BodyUpdateVelocity(body, w.gravity, damping, dt)
	if w.cfg.MaxSpeed > 0 {
		v := body.Velocity()
		body.SetVelocity(gamemath.ClampSpeed(v.X, w.cfg.MaxSpeed), gamemath.ClampSpeed(v.Y, w.cfg.MaxSpeed))
	}
}

// PlaceBall moves the ball to (x, y), stops it and holds it there.
func (w *World) PlaceBall(x, y float64) {
	w.ball.SetPosition(cp.Vector{X: x, Y: y})
	w.ball.SetVelocity(0, 0)
	w.ball.SetAngularVelocity(0)
	w.held = true
	w.restTicks = 0
}

// Launch releases the ball with an impulse of f scaled by scale.
func (w *World) Launch(f gamemath.Force, scale float64) {
	w.held = false
	w.restTicks = 0
	w.ball.ApplyImpulseAtWorldPoint(vec(f.Vec().Scale(scale)), w.ball.Position())
}

// Held reports whether the ball is pinned.
func (w *World) Held() bool { return w.held }

// Step advances the simulation by dt seconds. The ball's gravity comes from
// the gravity area containing its centre, or the default otherwise.
func (w *World) Step(dt float64) {
	p := w.ball.Position()
	if gx, gy, ok := w.reg.GravityAt(p.X, p.Y); ok {
		w.gravity = cp.Vector{X: gx, Y: gy}
	} else {
		w.gravity = cp.Vector{X: 0, Y: w.cfg.Gravity}
	}

	w.space.Step(dt)

	if !w.held && w.ball.Velocity().Length() < w.cfg.RestSpeed {
		w.restTicks++
	} else {
		w.restTicks = 0
	}
}

// AtRest reports whether a released ball has been still long enough.
func (w *World) AtRest() bool {
	return !w.held && w.restTicks >= w.cfg.RestTicks
}

// BallPosition returns the centre of the ball.
func (w *World) BallPosition() gamemath.Vec {
	p := w.ball.Position()
	return gamemath.Vec{X: p.X, Y: p.Y}
}

// BallVelocity returns the ball velocity in px/s.
func (w *World) BallVelocity() gamemath.Vec {
	v := w.ball.Velocity()
	return gamemath.Vec{X: v.X, Y: v.Y}
}

// BallAngle returns the ball rotation in radians.
func (w *World) BallAngle() float64 { return w.ball.Angle() }

// BallRadius returns the ball radius.
func (w *World) BallRadius() float64 { return w.cfg.BallRadius }

// Gravity returns the gravity applied to the ball on the last step.
func (w *World) Gravity() gamemath.Vec { return gamemath.Vec{X: w.gravity.X, Y: w.gravity.Y} }

func vec(v gamemath.Vec) cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

// toCCW returns the points with positive winding, as chipmunk expects.
func toCCW(points []gamemath.Vec) []cp.Vector {
	var area float64
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		area += a.X*b.Y - b.X*a.Y
	}
	out := make([]cp.Vector, len(points))
	for i, p := range points {
		if area < 0 {
			p = points[len(points)-1-i]
		}
		out[i] = vec(p)
	}
	return out
}
