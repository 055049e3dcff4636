package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderConfig contains settings that affect how, but not what, is rendered
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers (0 = one per logical CPU)
	Seed       int64 // Base seed; row j samples with Seed+j
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		Seed:       42,
	}
}

// Raytracer renders a scene through its camera
type Raytracer struct {
	world      geometry.Shape
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
	progress   core.ProgressReporter
}

// NewRaytracer validates the scene's camera configuration and derives the camera from it.
// A changed configuration needs a new Raytracer.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := validateCameraConfig(s.CameraConfig); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		world:      s.World,
		camera:     s.Camera(),
		integrator: integrator.NewPathTracingIntegrator(s.CameraConfig.MaxDepth),
		config:     config,
		logger:     logger,
	}, nil
}

func validateCameraConfig(config geometry.CameraConfig) error {
	if config.Width < 1 {
		return fmt.Errorf("image width must be positive, got %d", config.Width)
	}
	if config.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", config.MaxDepth)
	}
	return nil
}

// SetProgress replaces the default percentage logger with reporter
func (rt *Raytracer) SetProgress(reporter core.ProgressReporter) {
	rt.progress = reporter
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// workerCount resolves NumWorkers, asking the host for its logical CPU count when unset
func (rt *Raytracer) workerCount() int {
	if rt.config.NumWorkers > 0 {
		return rt.config.NumWorkers
	}
	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		return counts
	}
	return runtime.NumCPU()
}

// renderRow traces every sample of row j into pixels and returns the number of samples taken
func (rt *Raytracer) renderRow(j int, pixels []core.Color, sampler core.Sampler, progress core.ProgressReporter) int {
	width := rt.camera.Width()
	samplesPerPixel := rt.camera.Config().SamplesPerPixel

	for i := 0; i < width; i++ {
		colorAccum := core.Black()
		for sample := 0; sample < samplesPerPixel; sample++ {
			ray := rt.camera.GetRay(i, j, sampler)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, sampler))
		}

		pixels[j*width+i] = colorAccum.Multiply(rt.camera.SampleScale())
		progress.PixelDone()
	}

	return width * samplesPerPixel
}

// Render traces the whole image in parallel and returns it with gamma applied.
// When ctx is cancelled the remaining rows are dropped and ctx.Err() is returned
// unless every row had already finished.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	numWorkers := rt.workerCount()

	progress := rt.progress
	if progress == nil {
		progress = NewProgress(width*height, rt.logger)
	}

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel (using %d workers)...\n",
		width, height, rt.camera.Config().SamplesPerPixel, numWorkers)

	pixels := make([]core.Color, width*height)
	pool := NewWorkerPool(rt, pixels, progress, height, numWorkers)
	pool.Start(ctx)
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}
	pool.Stop()

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.camera.Config().SamplesPerPixel,
		Workers:         numWorkers,
	}
	skipped := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Skipped {
			skipped++
			continue
		}
		stats.TotalPixels += width
		stats.TotalSamples += result.Samples
	}

	if skipped > 0 {
		err := ctx.Err()
		rt.logger.Printf("Rendering cancelled after %d of %d pixels\n", stats.TotalPixels, width*height)
		return nil, RenderStats{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			img.SetRGBA(i, j, core.ToRGBA(pixels[j*width+i]))
		}
	}

	stats.Elapsed = time.Since(start)
	rt.logger.Printf("Render complete: %s\n", stats)

	return img, stats, nil
}

// RenderTo renders the image and hands it to sink
func (rt *Raytracer) RenderTo(ctx context.Context, sink output.Sink) (RenderStats, error) {
	img, stats, err := rt.Render(ctx)
	if err != nil {
		return stats, err
	}
	if err := sink.WriteImage(img); err != nil {
		return stats, fmt.Errorf("failed to write image: %w", err)
	}
	return stats, nil
}
