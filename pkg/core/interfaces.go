package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// ProgressReporter receives one signal per completed pixel.
// Implementations must tolerate concurrent calls and must not affect rendered values.
type ProgressReporter interface {
	PixelDone()
}
