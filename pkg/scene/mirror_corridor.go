package scene

import (
	"github.com/df07/go-sky-pathtracer/pkg/core"
	"github.com/df07/go-sky-pathtracer/pkg/geometry"
	"github.com/df07/go-sky-pathtracer/pkg/material"
)

// NewMirrorCorridorScene creates two facing mirrors with a sphere between them.
// Rays bounce back and forth until the depth limit or the weight cutoff stops them.
func NewMirrorCorridorScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, DefaultSamplingConfig())

	mirror := material.NewReflective(core.NewColor(0.95, 0.95, 0.95), 0.0)
	matteGreen := material.NewDiffuse(core.NewColor(0.2, 0.7, 0.3))
	ground := material.NewDiffuse(core.NewColor(0.4, 0.4, 0.4))

	s.Add(
		geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), mirror),
		geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), mirror),
		geometry.NewSphere(core.NewVec3(0, 0, -1.5), 0.4, matteGreen),
		geometry.NewPlane(core.UnitY, core.NewVec3(0, -0.4, 0), ground),
	)

	return s
}
