package core

import (
	"testing"
)

func TestQuantizeChannel_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected uint8
	}{
		{"zero maps to zero", 0, 0},
		{"negative clamps to zero", -0.5, 0},
		{"at clamp limit", 0.999 * 0.999, 255},
		{"one clamps to 255", 1, 255},
		{"large clamps to 255", 50, 255},
		{"quarter gamma corrects to half", 0.25, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeChannel(tt.input); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestQuantizeChannel_Monotonic(t *testing.T) {
	var previous uint8
	for i := 0; i <= 2000; i++ {
		x := float32(i) / 1000
		got := QuantizeChannel(x)
		if got < previous {
			t.Fatalf("Quantization decreased at %f: %d < %d", x, got, previous)
		}
		previous = got
	}
}

func TestToRGBA(t *testing.T) {
	c := ToRGBA(NewColor(0, 0.25, 4))
	if c.R != 0 || c.G != 128 || c.B != 255 || c.A != 255 {
		t.Errorf("Unexpected RGBA %v", c)
	}
}

func TestLinearToGamma(t *testing.T) {
	if LinearToGamma(-1) != 0 {
		t.Error("Negative components should map to 0")
	}
	if LinearToGamma(0.25) != 0.5 {
		t.Errorf("Expected 0.5, got %f", LinearToGamma(0.25))
	}
}
