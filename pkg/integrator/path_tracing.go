package integrator

import (
	"math"

	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
)

// tMinEpsilon is the lower intersection bound for every scene query. A
// scattered ray originates exactly on a surface, and with a zero lower bound
// floating-point error makes it re-hit that same surface ("shadow acne").
const tMinEpsilon = 0.001

// Default background gradient colors: white at the horizon fading to sky
// blue straight up
var (
	backgroundBottom = core.NewVec3(1.0, 1.0, 1.0)
	backgroundTop    = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracer computes the color carried by a single camera ray by repeatedly
// intersecting, scattering, and folding attenuations into a running product.
type PathTracer struct {
	MaxBounces int // Bounce budget; every path terminates within this many scatters
}

// NewPathTracer creates a path tracer with the given bounce limit
func NewPathTracer(maxBounces int) *PathTracer {
	return &PathTracer{MaxBounces: maxBounces}
}

// RayColor computes the color for a ray by walking the scatter chain
// iteratively, so stack usage is constant regardless of the bounce limit.
// The loop is equivalent to the tail-recursive formulation that multiplies
// attenuations outward from the deepest bounce.
//
// Termination cases:
//   - escape: the running attenuation times the background gradient
//   - absorption (material declines to scatter): black
//   - bounce budget exhausted: black, a deliberate energy bias standing in
//     for the unmodeled infinite-bounce tail
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1.0, 1.0, 1.0)
	current := ray

	for bounce := 0; bounce < pt.MaxBounces; bounce++ {
		hit, isHit := world.Hit(current, tMinEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(BackgroundGradient(current))
		}

		scatter, didScatter := hit.Material.Scatter(current, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		current = scatter.Scattered
	}

	return core.Vec3{}
}

// BackgroundGradient returns the sky color for a ray that escapes the scene:
// a vertical blend from white at t=0 to sky blue at t=1, with
// t = unit(direction).y/2 + 0.5
func BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	t := unitDirection.Y/2.0 + 0.5
	return backgroundBottom.Lerp(backgroundTop, t)
}
