package core

import "github.com/chewxy/math32"

// Interval is a closed range of float values. Min <= Max is the caller's responsibility.
type Interval struct {
	Min, Max float32
}

// NewInterval creates a new interval
func NewInterval(minVal, maxVal float32) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}
	// UniverseInterval contains every value
	UniverseInterval = Interval{Min: math32.Inf(-1), Max: math32.Inf(1)}
)

// Size returns the length of the interval
func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the interval, bounds included
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

// Clamp saturates x into [Min, Max]
func (i Interval) Clamp(x float32) float32 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand pads the interval by delta/2 on each side
func (i Interval) Expand(delta float32) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}
