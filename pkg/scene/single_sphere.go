package scene

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

// NewSingleSphereScene creates one grey diffuse sphere straight ahead of the camera
func NewSingleSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, DefaultSamplingConfig())
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuse(core.NewColor(0.5, 0.5, 0.5))))
	return s
}
