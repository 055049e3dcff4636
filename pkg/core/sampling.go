package core

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Sampler provides random sampling for rendering algorithms.
// Each execution context owns its own Sampler; implementations are not safe for concurrent use.
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded from seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float32(), r.random.Float32())
}

// RandomRange returns a random float32 in [min, max)
func RandomRange(sampler Sampler, minVal, maxVal float32) float32 {
	return minVal + (maxVal-minVal)*sampler.Get1D()
}

// RandomVec3 returns a vector with every component in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return NewVec3(sampler.Get1D(), sampler.Get1D(), sampler.Get1D())
}

// RandomVec3In returns a vector with every component in [min, max)
func RandomVec3In(sampler Sampler, minVal, maxVal float32) Vec3 {
	return NewVec3(
		RandomRange(sampler, minVal, maxVal),
		RandomRange(sampler, minVal, maxVal),
		RandomRange(sampler, minVal, maxVal),
	)
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere.
// Points are drawn from the [-1,1]³ cube until one lands inside the unit ball.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3In(sampler, -1, 1)
		lensq := p.LengthSquared()
		// rejects points too close to the origin to normalize in float32
		if 1e-30 < lensq && lensq <= 1 {
			return p.Divide(math32.Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk in the XY plane (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(RandomRange(sampler, -1, 1), RandomRange(sampler, -1, 1), 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
