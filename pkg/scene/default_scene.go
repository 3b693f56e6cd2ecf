package scene

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

// NewDefaultScene creates two spheres resting on a ground plane with a small glass ball between them
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, DefaultSamplingConfig())

	// Create materials
	matteRed := material.NewDiffuse(core.NewColor(0.7, 0.3, 0.3))
	brushedGold := material.NewReflective(core.NewColor(0.8, 0.6, 0.2), 0.3)
	ground := material.NewDiffuse(core.NewColor(0.5, 0.5, 0.5))
	glass := material.NewDielectric(1.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(-0.4, 0, -1), 0.3, matteRed),
		geometry.NewSphere(core.NewVec3(0.4, 0, -1), 0.3, brushedGold),
		geometry.NewSphere(core.NewVec3(0, -0.2, -0.7), 0.1, glass),
		geometry.NewPlane(core.UnitY, core.NewVec3(0, -0.3, 0), ground),
	)

	return s
}
