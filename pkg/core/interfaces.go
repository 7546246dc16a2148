package core

// Material decides whether an incident ray is absorbed or re-emitted.
// The boolean return is false when the ray is absorbed; a false result means
// the path terminates with a black contribution from this bounce onward.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation Vec3 // Color multiplier, each channel in [0, 1]
	Scattered   Ray  // The re-emitted ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, always facing against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front (outside) face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always opposes the incoming ray; FrontFace records
// whether the outward normal had to be flipped, which is what lets a
// dielectric tell entering from exiting without extra state.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is the hit-test contract shared by primitives and aggregates
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Logger interface for renderer status output
type Logger interface {
	Printf(format string, args ...interface{})
}
