package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	if err := loadEnv(".env"); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	if config.Help {
		printHelp(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options] [output file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The output format follows the file extension (.ppm or .png); default image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options are listed with -h")
}

// createScene builds the configured scene with command line overrides applied
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.Create(config.Scene, config.Render.Seed)
	if err != nil {
		return nil, err
	}
	s.ApplyOverride(config.Camera)
	return s, nil
}

// createSink picks where the finished image goes
func createSink(ctx context.Context, config Config) (output.Sink, error) {
	if !config.Upload {
		return output.NewFileSink(config.Output)
	}

	client, err := output.NewS3Client(config.S3)
	if err != nil {
		return nil, err
	}
	return output.NewS3Sink(ctx, client, config.S3.Bucket, config.Output)
}

func run(ctx context.Context, config Config) error {
	selectedScene, err := createScene(config)
	if err != nil {
		return err
	}

	sink, err := createSink(ctx, config)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, config.Render, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	fmt.Printf("Rendering scene %s (%d primitives)\n", config.Scene, selectedScene.GetPrimitiveCount())
	fmt.Printf("Writing to %s\n", config.Output)

	stats, err := raytracer.RenderTo(ctx, sink)
	if err != nil {
		return err
	}

	fmt.Printf("Done: %s\n", stats)
	return nil
}
