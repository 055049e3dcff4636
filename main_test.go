package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/output"
)

func intPtr(v int) *int { return &v }

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"final scene", "final", false},
		{"basic scene", "basic", false},
		{"materials scene", "materials", false},
		{"sphere grid scene", "sphere-grid", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(Config{Scene: tt.sceneType, Camera: geometry.CameraOverride{Width: intPtr(20)}})
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene %q", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene %q: %v", tt.sceneType, err)
			}
			if scene.CameraConfig.Width != 20 {
				t.Errorf("Expected width override 20, got %d", scene.CameraConfig.Width)
			}
		})
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	t.Setenv("RAYTRACER_WORKERS", "")
	t.Setenv("RAYTRACER_SEED", "")
	os.Unsetenv("RAYTRACER_SCENE")

	config, err := parseConfig(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	if config.Output != "image.ppm" {
		t.Errorf("Expected default output image.ppm, got %s", config.Output)
	}
	if config.Scene != "final" {
		t.Errorf("Expected default scene final, got %s", config.Scene)
	}
	if config.Render.Seed != 42 || config.Render.NumWorkers != 0 {
		t.Errorf("Unexpected render config %+v", config.Render)
	}
}

func TestParseConfig_FlagsAndOutput(t *testing.T) {
	config, err := parseConfig([]string{"-scene", "basic", "-width", "64", "-spp", "3", "-depth", "7", "-workers", "2", "-seed", "9", "out.png"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	if config.Scene != "basic" {
		t.Errorf("Expected scene basic, got %s", config.Scene)
	}
	camera := config.Camera
	if camera.Width == nil || *camera.Width != 64 ||
		camera.SamplesPerPixel == nil || *camera.SamplesPerPixel != 3 ||
		camera.MaxDepth == nil || *camera.MaxDepth != 7 {
		t.Errorf("Unexpected camera override %+v", camera)
	}
	if camera.DefocusAngle != nil {
		t.Errorf("Expected defocus to keep the scene setting, got %f", *camera.DefocusAngle)
	}
	if config.Render.NumWorkers != 2 || config.Render.Seed != 9 {
		t.Errorf("Unexpected render config %+v", config.Render)
	}
	if config.Output != "out.png" {
		t.Errorf("Expected output out.png, got %s", config.Output)
	}
}

func TestParseConfig_ZeroCameraFlags(t *testing.T) {
	config, err := parseConfig([]string{"-scene", "final", "-depth", "0", "-defocus", "0"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if config.Camera.MaxDepth == nil || *config.Camera.MaxDepth != 0 {
		t.Fatalf("Expected explicit depth 0, got %+v", config.Camera)
	}
	if config.Camera.DefocusAngle == nil || *config.Camera.DefocusAngle != 0 {
		t.Fatalf("Expected explicit defocus 0, got %+v", config.Camera)
	}
	if config.Camera.Width != nil {
		t.Errorf("Expected width to keep the scene setting, got %d", *config.Camera.Width)
	}

	s, err := createScene(config)
	if err != nil {
		t.Fatal(err)
	}
	if s.CameraConfig.MaxDepth != 0 || s.CameraConfig.DefocusAngle != 0 {
		t.Errorf("Expected depth 0 and defocus 0, got depth %d defocus %f",
			s.CameraConfig.MaxDepth, s.CameraConfig.DefocusAngle)
	}
	if s.CameraConfig.Width != 1200 {
		t.Errorf("Expected final scene width 1200, got %d", s.CameraConfig.Width)
	}
}

func TestParseConfig_Environment(t *testing.T) {
	t.Setenv("RAYTRACER_WORKERS", "5")
	t.Setenv("RAYTRACER_SEED", "1234")
	t.Setenv("RAYTRACER_S3_BUCKET", "renders")
	t.Setenv("RAYTRACER_S3_REGION", "eu-west-1")

	config, err := parseConfig([]string{"-s3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	if config.Render.NumWorkers != 5 || config.Render.Seed != 1234 {
		t.Errorf("Expected environment render config, got %+v", config.Render)
	}
	if !config.Upload || config.S3.Bucket != "renders" || config.S3.Region != "eu-west-1" {
		t.Errorf("Unexpected S3 config %+v", config.S3)
	}

	// Flags win over the environment
	config, err = parseConfig([]string{"-workers", "1"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if config.Render.NumWorkers != 1 {
		t.Errorf("Expected flag to override environment, got %d workers", config.Render.NumWorkers)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	t.Setenv("RAYTRACER_S3_BUCKET", "")
	if _, err := parseConfig([]string{"-s3"}, io.Discard); err == nil {
		t.Error("Expected error for -s3 without a bucket")
	}

	t.Setenv("RAYTRACER_WORKERS", "many")
	if _, err := parseConfig(nil, io.Discard); err == nil {
		t.Error("Expected error for non-numeric RAYTRACER_WORKERS")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("RAYTRACER_TEST_VALUE", "set")
	if got := getEnv("RAYTRACER_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("Expected set, got %s", got)
	}
	if got := getEnv("RAYTRACER_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %s", got)
	}
}

func TestLoadEnv(t *testing.T) {
	if err := loadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Missing .env should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("RAYTRACER_TEST_FROM_FILE=loaded\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("RAYTRACER_TEST_FROM_FILE") })

	if err := loadEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("RAYTRACER_TEST_FROM_FILE"); got != "loaded" {
		t.Errorf("Expected value from .env, got %q", got)
	}
}

func TestRun_WritesPPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.ppm")
	config := Config{Scene: "basic", Camera: geometry.CameraOverride{Width: intPtr(20)}, Output: path}
	config.Render.NumWorkers = 2

	if err := run(context.Background(), config); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n20 11\n255\n") {
		t.Errorf("Unexpected PPM header %q", string(data[:16]))
	}
}

func TestRun_RejectsUnknownExtension(t *testing.T) {
	config := Config{Scene: "basic", Camera: geometry.CameraOverride{Width: intPtr(8)}, Output: filepath.Join(t.TempDir(), "image.bmp")}
	if err := run(context.Background(), config); err == nil {
		t.Error("Expected error for unsupported output format")
	}
}

func TestCreateSink(t *testing.T) {
	sink, err := createSink(context.Background(), Config{Output: "render.png"})
	if err != nil {
		t.Fatal(err)
	}
	if fileSink, ok := sink.(*output.FileSink); !ok || fileSink.Format != output.FormatPNG {
		t.Errorf("Expected PNG file sink, got %#v", sink)
	}
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf)
	for _, id := range []string{"final", "basic", "materials", "sphere-grid"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("Expected help to list scene %s", id)
		}
	}
}
