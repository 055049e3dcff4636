package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Config holds everything the command line and environment can set
type Config struct {
	Scene  string
	Output string
	Camera geometry.CameraOverride // Only flags given on the command line are set
	Render renderer.RenderConfig
	Upload bool
	S3     output.S3Config
	Help   bool
}

// loadEnv reads a .env file if one exists; a missing file is not an error
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, value)
	}
	return parsed, nil
}

// parseConfig builds the configuration from the environment, overridden by args.
// The first positional argument names the output file.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	defaults := renderer.DefaultRenderConfig()

	workers, err := getEnvInt("RAYTRACER_WORKERS", defaults.NumWorkers)
	if err != nil {
		return Config{}, err
	}
	seed, err := getEnvInt("RAYTRACER_SEED", int(defaults.Seed))
	if err != nil {
		return Config{}, err
	}

	config := Config{
		S3: output.S3Config{
			AccessKey: getEnv("RAYTRACER_S3_ACCESS_KEY", ""),
			SecretKey: getEnv("RAYTRACER_S3_SECRET_KEY", ""),
			Endpoint:  getEnv("RAYTRACER_S3_ENDPOINT", ""),
			Region:    getEnv("RAYTRACER_S3_REGION", "us-east-1"),
			Bucket:    getEnv("RAYTRACER_S3_BUCKET", ""),
		},
	}

	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&config.Scene, "scene", getEnv("RAYTRACER_SCENE", "final"), "Scene to render (see -help)")
	width := flags.Int("width", 0, "Image width in pixels (default: scene setting)")
	samplesPerPixel := flags.Int("spp", 0, "Samples per pixel (default: scene setting)")
	maxDepth := flags.Int("depth", 0, "Maximum bounces per path, 0 renders black (default: scene setting)")
	defocusAngle := flags.Float64("defocus", 0, "Defocus angle in degrees, 0 for a pinhole camera (default: scene setting)")
	flags.IntVar(&config.Render.NumWorkers, "workers", workers, "Parallel workers (0 = one per logical CPU)")
	seedFlag := flags.Int64("seed", int64(seed), "Random seed for scene generation and sampling")
	flags.BoolVar(&config.Upload, "s3", false, "Upload the image to the configured S3 bucket instead of writing a file")
	flags.BoolVar(&config.Help, "help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	config.Render.Seed = *seedFlag

	// Camera flags override the scene only when given, so 0 is a usable value
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			config.Camera.Width = width
		case "spp":
			config.Camera.SamplesPerPixel = samplesPerPixel
		case "depth":
			config.Camera.MaxDepth = maxDepth
		case "defocus":
			angle := float32(*defocusAngle)
			config.Camera.DefocusAngle = &angle
		}
	})

	config.Output = "image.ppm"
	if flags.NArg() > 0 {
		config.Output = flags.Arg(0)
	}

	if config.Upload && config.S3.Bucket == "" {
		return Config{}, fmt.Errorf("-s3 requires RAYTRACER_S3_BUCKET")
	}

	return config, nil
}
