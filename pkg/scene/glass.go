package scene

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

// NewGlassScene creates a large glass sphere flanked by a matte and a mirror sphere
func NewGlassScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	cameraConfig.Center = core.NewVec3(0, 0.1, 0.5)
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	sampling := DefaultSamplingConfig()
	sampling.MaxDepth = 30

	s := NewScene(cameraConfig, sampling)

	glass := &material.Dielectric{
		Absorb:          core.NewColor(0.95, 0.95, 0.95),
		RefractiveIndex: 1.5,
		Fresnel:         true,
	}
	matteBlue := material.NewDiffuse(core.NewColor(0.1, 0.2, 0.5))
	silver := material.NewReflective(core.NewColor(0.8, 0.8, 0.8), 0.0)
	ground := material.NewDiffuse(core.NewColor(0.8, 0.8, 0.0))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1.05, 0, -1), 0.5, matteBlue),
		geometry.NewSphere(core.NewVec3(1.05, 0, -1), 0.5, silver),
		geometry.NewPlane(core.UnitY, core.NewVec3(0, -0.5, 0), ground),
	)

	return s
}
