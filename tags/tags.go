package tags

import "github.com/yohamta/donburi"

var (
	Ball = donburi.NewTag().SetName("Ball")
	Area = donburi.NewTag().SetName("Area")
	// LevelScoped marks entities that are rebuilt on every level change.
	LevelScoped = donburi.NewTag().SetName("LevelScoped")
)

// Resolv tags for the sensor space. Areas are also tagged with their
// kind name ("spawn", "safe", ...).
const (
	ResolvBall = "ball"
	ResolvArea = "area"
)
