package components

import (
	"github.com/automoto/rubberball/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Viewport   *camera.Viewport
	Controller *camera.Controller
}

var Camera = donburi.NewComponentType[CameraData]()
