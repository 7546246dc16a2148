package renderer

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of camera rays fired
	AverageSamples float64 // Samples per pixel (uniform in this renderer)
}

func newRenderStats(config RenderConfig) RenderStats {
	pixels := config.Width * config.Height
	return RenderStats{
		TotalPixels:    pixels,
		TotalSamples:   pixels * config.SamplesPerPixel,
		AverageSamples: float64(config.SamplesPerPixel),
	}
}
