package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
)

// ParallelRenderer renders scanlines concurrently. Rows are embarrassingly
// parallel: workers share only the read-only scene, camera, and config, and
// each row writes a disjoint slice of the framebuffer. Every row gets its
// own random source derived from the base seed, so no generator is shared
// across workers and each row's sample stream is statistically independent.
type ParallelRenderer struct {
	raytracer *Raytracer
	config    RenderConfig
	workers   int
	logger    core.Logger
}

// NewParallelRenderer creates a parallel renderer. workers <= 0 selects the
// CPU count. A nil logger disables progress reporting.
func NewParallelRenderer(scene Scene, config RenderConfig, workers int, logger core.Logger) *ParallelRenderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelRenderer{
		raytracer: NewRaytracer(scene, config),
		config:    config,
		workers:   workers,
		logger:    logger,
	}
}

// Render renders the full image, fanning rows out across the worker limit.
// Row y renders with a sampler seeded seed+y, so a fixed seed reproduces the
// parallel image exactly; it matches the single-threaded RenderPass output
// only in statistical distribution, not bit for bit.
func (pr *ParallelRenderer) Render(ctx context.Context, seed int64) (*Framebuffer, RenderStats, error) {
	if err := pr.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("while validating render config: %w", err)
	}

	fb, err := NewFramebuffer(pr.config.Width, pr.config.Height)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("while allocating framebuffer: %w", err)
	}

	// errgroup plus a weighted semaphore bounds in-flight rows to the
	// worker count
	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(pr.workers))

	// Best-effort progress counter; its ordering has no effect on the image
	var rowsDone atomic.Int64
	progressEvery := int64(max(1, pr.config.Height/10))

	for y := 0; y < pr.config.Height; y++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, RenderStats{}, fmt.Errorf("while acquiring render semaphore: %w", err)
		}

		y := y
		eg.Go(func() error {
			defer sem.Release(1)

			sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(y))))
			pr.raytracer.renderRow(fb, y, sampler)

			if done := rowsDone.Add(1); pr.logger != nil && done%progressEvery == 0 {
				percent := float64(done) * 100.0 / float64(pr.config.Height)
				pr.logger.Printf("[%3.0f%%] rendered %d/%d rows", percent, done, pr.config.Height)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("while waiting for render workers: %w", err)
	}

	return fb, newRenderStats(pr.config), nil
}
