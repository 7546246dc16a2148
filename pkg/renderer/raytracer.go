package renderer

import (
	"fmt"
	"math/rand"

	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
	"github.com/GabrielDertoni/go-pathtracer/pkg/integrator"
)

// Scene is the renderer's view of a scene. An interface here avoids a
// circular import with pkg/scene.
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Hittable
}

// Raytracer renders a scene single-threaded in raster order. Given a fixed
// seed its output is bit-reproducible, which makes it the reference
// implementation the parallel renderer is checked against.
type Raytracer struct {
	scene      Scene
	config     RenderConfig
	integrator *integrator.PathTracer
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig) *Raytracer {
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracer(config.MaxBounces),
	}
}

// RenderPass renders the whole image with a single sampler derived from seed
func (rt *Raytracer) RenderPass(seed int64) (*Framebuffer, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("while validating render config: %w", err)
	}

	fb, err := NewFramebuffer(rt.config.Width, rt.config.Height)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("while allocating framebuffer: %w", err)
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
	for y := 0; y < rt.config.Height; y++ {
		rt.renderRow(fb, y, sampler)
	}

	return fb, newRenderStats(rt.config), nil
}

// renderRow renders one scanline into the framebuffer. Image row 0 is the
// top of the picture while the camera's v axis grows upward from the bottom
// of the viewport, so the row index is flipped before mapping to v. Each
// pixel averages SamplesPerPixel independently jittered rays (box filter),
// then is gamma-corrected and quantized.
func (rt *Raytracer) renderRow(fb *Framebuffer, y int, sampler core.Sampler) {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	flippedY := float64(rt.config.Height - 1 - y)
	invSamples := 1.0 / float64(rt.config.SamplesPerPixel)

	for x := 0; x < rt.config.Width; x++ {
		accum := core.Vec3{}

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			u := (float64(x) + sampler.Get1D()) / float64(rt.config.Width-1)
			v := (flippedY + sampler.Get1D()) / float64(rt.config.Height-1)

			ray := camera.GetRay(u, v, sampler)
			accum = accum.Add(rt.integrator.RayColor(ray, world, sampler))
		}

		r, g, b := vec3ToRGB8(accum.Multiply(invSamples))
		fb.SetRGB(x, y, r, g, b)
	}
}
