package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Server handles web requests for the path tracer
type Server struct {
	port     int
	echo     *echo.Echo
	console  *Console
	renderID atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{
		port:    port,
		console: NewConsole(200),
	}
	s.echo = s.routes()
	return s
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string                  `json:"scene"`   // Scene name (e.g., "final")
	Camera  geometry.CameraOverride `json:"camera"`  // Only parameters present in the query are set
	Seed    int64                   `json:"seed"`    // Base render seed
	Format  output.Format           `json:"format"`  // ppm or png
	Preview int                     `json:"preview"` // Thumbnail width, 0 for full size
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.echo.Logger.Infof("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(corsMiddleware)

	e.Static("/", "static")
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/scene-config", s.handleSceneConfig)
	e.GET("/api/render", s.handleRender)
	e.GET("/api/inspect", s.handleInspect)
	e.GET("/api/console", s.handleConsole)
	e.GET("/api/system", s.handleSystem)
	return e
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the default camera configuration for a scene
func (s *Server) handleSceneConfig(c echo.Context) error {
	sceneObj, err := scene.Create(c.QueryParam("scene"), 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	config := sceneObj.CameraConfig
	camera := sceneObj.Camera()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"width":           config.Width,
		"height":          camera.Height(),
		"aspectRatio":     config.AspectRatio,
		"samplesPerPixel": config.SamplesPerPixel,
		"maxDepth":        config.MaxDepth,
		"vfov":            config.VFov,
		"defocusAngle":    config.DefocusAngle,
		"focusDistance":   config.FocusDistance,
		"primitives":      sceneObj.GetPrimitiveCount(),
	})
}

// handleRender renders a scene synchronously and returns the encoded image
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
	}

	sceneObj, err := req.createScene()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	renderID := fmt.Sprintf("render-%d", s.renderID.Add(1))
	rt, err := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{Seed: req.Seed}, s.console.Logger(renderID))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	img, stats, err := rt.Render(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, output.Preview(img, req.Preview), req.Format); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	header := c.Response().Header()
	header.Set("X-Render-Id", renderID)
	header.Set("X-Render-Time", stats.Elapsed.Round(time.Millisecond).String())
	header.Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	header.Set("X-Average-Luminance", strconv.FormatFloat(renderer.CalculateAverageLuminance(img), 'f', 4, 64))
	return c.Blob(http.StatusOK, req.Format.ContentType(), buf.Bytes())
}

// handleConsole returns recent render log messages
func (s *Server) handleConsole(c echo.Context) error {
	return c.JSON(http.StatusOK, s.console.Recent())
}

// parseRenderRequest parses and validates render parameters from the query string
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "basic"
	}

	var err error
	if req.Camera.Width, err = optionalIntParam(values, "width", 1, 2000); err != nil {
		return nil, err
	}
	if req.Camera.SamplesPerPixel, err = optionalIntParam(values, "spp", 1, 10000); err != nil {
		return nil, err
	}
	if req.Camera.MaxDepth, err = optionalIntParam(values, "depth", 0, 200); err != nil {
		return nil, err
	}
	if req.Camera.DefocusAngle, err = optionalFloatParam(values, "defocus", 0, 90); err != nil {
		return nil, err
	}
	if req.Preview, err = parseIntParam(values, "preview", 0, 0, 2000); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(values, "seed", 42, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	req.Format = output.FormatPNG
	if format := values.Get("format"); format != "" {
		if req.Format, err = output.ParseFormat(format); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// createScene builds the requested scene with the request's overrides applied
func (req *RenderRequest) createScene() (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene, req.Seed)
	if err != nil {
		return nil, err
	}
	sceneObj.ApplyOverride(req.Camera)
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// optionalIntParam is parseIntParam for settings where zero is meaningful:
// it returns nil when key is absent from the query
func optionalIntParam(values url.Values, key string, min, max int) (*int, error) {
	if values.Get(key) == "" {
		return nil, nil
	}
	parsed, err := parseIntParam(values, key, 0, min, max)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// optionalFloatParam returns nil when key is absent from the query
func optionalFloatParam(values url.Values, key string, min, max float64) (*float32, error) {
	if values.Get(key) == "" {
		return nil, nil
	}
	parsed, err := parseFloatParam(values, key, 0, min, max)
	if err != nil {
		return nil, err
	}
	value := float32(parsed)
	return &value, nil
}
