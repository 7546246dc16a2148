package material

import (
	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse (matte) material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The new direction is the surface normal plus a random unit vector, which
// yields the cosine-weighted distribution around the normal. Diffuse
// surfaces never absorb in this model, so the second return is always true.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.SampleOnUnitSphere(sampler.Get2D()))

	// If the random vector nearly cancels the normal the scatter direction
	// degenerates to zero length; fall back to the normal itself
	if scatterDirection.LengthSquared() < 1e-8 {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   core.NewRay(hit.Point, scatterDirection),
	}, true
}
