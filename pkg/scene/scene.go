package scene

import (
	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
	"github.com/GabrielDertoni/go-pathtracer/pkg/geometry"
	"github.com/GabrielDertoni/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is built once
// before rendering begins and treated as read-only by every worker.
type Scene struct {
	Camera *renderer.Camera
	World  *geometry.HittableList
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// Builder accumulates primitives and camera settings for a scene
type Builder struct {
	objects      []core.Hittable
	cameraConfig renderer.CameraConfig
}

// NewBuilder creates a builder with the default camera for the given aspect ratio
func NewBuilder(aspectRatio float64) *Builder {
	return &Builder{cameraConfig: renderer.DefaultCameraConfig(aspectRatio)}
}

// Add appends a primitive to the scene under construction
func (b *Builder) Add(object core.Hittable) *Builder {
	b.objects = append(b.objects, object)
	return b
}

// WithCamera replaces the camera configuration
func (b *Builder) WithCamera(config renderer.CameraConfig) *Builder {
	b.cameraConfig = config
	return b
}

// Build assembles the immutable scene
func (b *Builder) Build() *Scene {
	return &Scene{
		Camera: renderer.NewCamera(b.cameraConfig),
		World:  geometry.NewHittableList(b.objects...),
	}
}
