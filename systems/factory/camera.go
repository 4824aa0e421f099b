package factory

import (
	"github.com/automoto/rubberball/archetypes"
	"github.com/automoto/rubberball/camera"
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(entry, &components.CameraData{
		Viewport:   camera.NewViewport(),
		Controller: camera.NewController(cfg.Camera),
	})
	return entry
}
