package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomSampler_Ranges(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		if v := sampler.Get1D(); v < 0 || v >= 1 {
			t.Fatalf("Get1D out of [0, 1): %f", v)
		}
		if v := sampler.Get2D(); v.X < 0 || v.X >= 1 || v.Y < 0 || v.Y >= 1 {
			t.Fatalf("Get2D out of [0, 1): %v", v)
		}
		if v := sampler.Get3D(); v.X < 0 || v.X >= 1 || v.Y < 0 || v.Y >= 1 || v.Z < 0 || v.Z >= 1 {
			t.Fatalf("Get3D out of [0, 1): %v", v)
		}
	}
}

func TestRandomSampler_SeededStreamsMatch(t *testing.T) {
	first := NewRandomSampler(rand.New(rand.NewSource(7)))
	second := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		if a, b := first.Get1D(), second.Get1D(); a != b {
			t.Fatalf("Same seed diverged at draw %d: %f vs %f", i, a, b)
		}
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %v not on the unit sphere, length %f", v, v.Length())
		}
	}
}

func TestSampleOnUnitSphere_Poles(t *testing.T) {
	tests := []struct {
		name     string
		sample   Vec2
		expected Vec3
	}{
		{"u=0 maps to +z", NewVec2(0, 0), NewVec3(0, 0, 1)},
		{"u=1 maps to -z", NewVec2(1, 0.25), NewVec3(0, 0, -1)},
		{"u=0.5 lies on the equator", NewVec2(0.5, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleOnUnitSphere(tt.sample)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Disk sample %v has non-zero z", p)
		}
		if p.Length() > 1.0+1e-9 {
			t.Fatalf("Sample %v outside the unit disk, radius %f", p, p.Length())
		}
	}

	// The square center maps to the disk center
	if got := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); got != (Vec3{}) {
		t.Errorf("Expected the center sample to map to the origin, got %v", got)
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1.0+1e-9 {
			t.Fatalf("Sample %v outside the unit sphere, radius %f", p, p.Length())
		}
	}
}
