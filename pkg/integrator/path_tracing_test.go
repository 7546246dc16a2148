package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
	"github.com/GabrielDertoni/go-pathtracer/pkg/geometry"
	"github.com/GabrielDertoni/go-pathtracer/pkg/material"
)

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestBackgroundGradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1.0, 1.0, 1.0)},
		{"horizontal is the midpoint", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := BackgroundGradient(ray)

			tolerance := 1e-9
			if math.Abs(got.X-tt.expected.X) > tolerance ||
				math.Abs(got.Y-tt.expected.Y) > tolerance ||
				math.Abs(got.Z-tt.expected.Z) > tolerance {
				t.Errorf("Expected background %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRayColor_ZeroBouncesIsBlack(t *testing.T) {
	// With no bounce budget the path contributes nothing, even though the
	// ray would hit the sphere
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	world := geometry.NewHittableList(sphere)

	pt := NewPathTracer(0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := pt.RayColor(ray, world, newTestSampler(42))
	if got != (core.Vec3{}) {
		t.Errorf("Expected black with zero bounces, got %v", got)
	}
}

func TestRayColor_EscapeReturnsBackground(t *testing.T) {
	world := geometry.NewHittableList()
	pt := NewPathTracer(10)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	got := pt.RayColor(ray, world, newTestSampler(42))

	expected := core.NewVec3(0.5, 0.7, 1.0)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected sky color %v for escaping ray, got %v", expected, got)
	}
}

// absorbingMaterial never scatters
type absorbingMaterial struct{}

func (m *absorbingMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func TestRayColor_AbsorptionIsBlack(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, &absorbingMaterial{})
	world := geometry.NewHittableList(sphere)

	pt := NewPathTracer(10)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := pt.RayColor(ray, world, newTestSampler(42))
	if got != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed path, got %v", got)
	}
}

// trappingMaterial always scatters back through the sphere center, so the
// path can never escape
type trappingMaterial struct {
	center      core.Vec3
	attenuation core.Vec3
}

func (m *trappingMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: m.attenuation,
		Scattered:   core.NewRay(hit.Point, m.center.Subtract(hit.Point)),
	}, true
}

func TestRayColor_ExhaustedBudgetIsBlack(t *testing.T) {
	center := core.NewVec3(0, 0, -2)
	trap := &trappingMaterial{center: center, attenuation: core.NewVec3(0.9, 0.9, 0.9)}
	world := geometry.NewHittableList(geometry.NewSphere(center, 0.5, trap))

	pt := NewPathTracer(8)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := pt.RayColor(ray, world, newTestSampler(42))
	if got != (core.Vec3{}) {
		t.Errorf("Expected black for a path that exhausts its bounce budget, got %v", got)
	}
}

func TestRayColor_SingleBounceFoldsAttenuation(t *testing.T) {
	// A metal floor mirror pointing the ray straight up: the result must be
	// albedo × sky color exactly (fuzz 0 makes the bounce deterministic)
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	mirror := geometry.NewSphere(core.NewVec3(0, -100, 0), 99.0, material.NewMetal(albedo, 0.0))
	world := geometry.NewHittableList(mirror)

	pt := NewPathTracer(5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	got := pt.RayColor(ray, world, newTestSampler(42))
	expected := albedo.MultiplyVec(core.NewVec3(0.5, 0.7, 1.0))

	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected attenuated sky %v, got %v", expected, got)
	}
}

func TestRayColor_EndToEndCenterAndCorner(t *testing.T) {
	// One gray sphere in front of an origin camera looking down -z: the
	// center ray must hit, a far-corner ray must return the background
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	world := geometry.NewHittableList(sphere)

	centerRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := world.Hit(centerRay, 0.001, math.Inf(1)); !isHit {
		t.Fatal("Center ray should hit the sphere")
	}

	cornerDir := core.NewVec3(1.77, 1.0, -1.0) // Toward a far image corner
	cornerRay := core.NewRay(core.NewVec3(0, 0, 0), cornerDir)
	if _, isHit := world.Hit(cornerRay, 0.001, math.Inf(1)); isHit {
		t.Fatal("Corner ray should miss the sphere")
	}

	pt := NewPathTracer(10)
	got := pt.RayColor(cornerRay, world, newTestSampler(42))
	if got.Subtract(BackgroundGradient(cornerRay)).Length() > 1e-9 {
		t.Errorf("Expected background color for corner ray, got %v", got)
	}
}
