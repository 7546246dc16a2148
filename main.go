package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"

	"github.com/GabrielDertoni/go-pathtracer/pkg/renderer"
	"github.com/GabrielDertoni/go-pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'glass'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	maxBounces := flag.Int("max-bounces", 50, "Maximum ray bounce depth")
	seed := flag.Int64("seed", 42, "Base random seed")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("o", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	flag.Parse()

	config := renderer.RenderConfig{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxBounces:      *maxBounces,
	}
	if err := config.Validate(); err != nil {
		glog.Fatalf("Invalid render config: %v", err)
	}

	aspectRatio := float64(config.Width) / float64(config.Height)
	selectedScene, err := createScene(*sceneType, aspectRatio)
	if err != nil {
		glog.Fatalf("Could not create scene: %v", err)
	}

	outputPath := *output
	if outputPath == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			glog.Fatalf("Error creating output directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	glog.Infof("Rendering %s scene at %dx%d, %d spp, %d bounces",
		*sceneType, config.Width, config.Height, config.SamplesPerPixel, config.MaxBounces)

	parallel := renderer.NewParallelRenderer(selectedScene, config, *workers, renderer.GlogLogger{})

	startTime := time.Now()
	fb, stats, err := parallel.Render(context.Background(), *seed)
	if err != nil {
		glog.Fatalf("Render failed: %v", err)
	}
	glog.Infof("Render completed in %v (%d samples over %d pixels)",
		time.Since(startTime), stats.TotalSamples, stats.TotalPixels)

	if err := savePNG(outputPath, fb); err != nil {
		glog.Fatalf("Could not save render: %v", err)
	}
	glog.Infof("Render saved as %s", outputPath)
	glog.Flush()
}

// createScene maps a scene name to its builder
func createScene(sceneType string, aspectRatio float64) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(aspectRatio), nil
	case "glass":
		return scene.NewGlassScene(aspectRatio), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// savePNG encodes the framebuffer to a PNG file
func savePNG(path string, fb *renderer.Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("while creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		return fmt.Errorf("while encoding PNG: %w", err)
	}
	return nil
}
