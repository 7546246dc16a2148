package renderer

import "fmt"

// RenderConfig contains the per-render parameters. Immutable for the
// duration of a render.
type RenderConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of jittered rays averaged per pixel
	MaxBounces      int // Bounce budget handed to the integrator
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxBounces:      50,
	}
}

// Validate reports the first invalid parameter, if any
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxBounces < 0 {
		return fmt.Errorf("max bounces must be non-negative, got %d", c.MaxBounces)
	}
	return nil
}
