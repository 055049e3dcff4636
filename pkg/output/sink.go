package output

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sink accepts a finished image
type Sink interface {
	WriteImage(img image.Image) error
}

// Format names an image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat accepts a format name with or without a leading dot
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(name, "."))) {
	case FormatPPM:
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", name)
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/x-portable-pixmap"
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPPM:
		return EncodePPM(w, img)
	case FormatPNG:
		return EncodePNG(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// FileSink writes the image to a local file
type FileSink struct {
	Path   string
	Format Format
}

// NewFileSink creates a file sink whose format follows the path's extension
func NewFileSink(path string) (*FileSink, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("cannot choose format for %s: %w", path, err)
	}
	return &FileSink{Path: path, Format: format}, nil
}

// WriteImage implements Sink
func (f *FileSink) WriteImage(img image.Image) error {
	if f.Format == FormatPNG {
		if err := SavePNG(f.Path, img); err != nil {
			return fmt.Errorf("failed to save %s: %w", f.Path, err)
		}
		return nil
	}

	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", f.Path, err)
	}

	w := bufio.NewWriter(file)
	if err := Encode(w, img, f.Format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", f.Path, err)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return file.Close()
}

// WriterSink encodes the image onto an arbitrary writer
type WriterSink struct {
	W      io.Writer
	Format Format
}

// WriteImage implements Sink
func (s *WriterSink) WriteImage(img image.Image) error {
	return Encode(s.W, img, s.Format)
}
