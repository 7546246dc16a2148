package scene

import (
	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
	"github.com/GabrielDertoni/go-pathtracer/pkg/geometry"
	"github.com/GabrielDertoni/go-pathtracer/pkg/material"
)

// NewDefaultScene builds the four-sphere demo scene: a large diffuse ground
// sphere, a matte center sphere, and two metal spheres of differing fuzz,
// viewed from the origin looking down -z.
func NewDefaultScene(aspectRatio float64) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	left := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)

	return NewBuilder(aspectRatio).
		Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100.0, ground)).
		Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center)).
		Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left)).
		Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right)).
		Build()
}

// NewGlassScene is the default scene with the left sphere swapped for glass,
// plus a hollow-sphere shell inside it (negative radius flips the normals)
func NewGlassScene(aspectRatio float64) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	return NewBuilder(aspectRatio).
		Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100.0, ground)).
		Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center)).
		Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass)).
		Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass)).
		Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right)).
		Build()
}
