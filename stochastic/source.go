// Package stochastic provides the seeded random variate stream that drives a
// simulation run.
package stochastic

import (
	"math"
	"math/rand"
)

// Source draws every random variate of a simulation run from one seeded
// stream. Two runs that use the same seed and make the same draws in the same
// order produce identical results.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Reseed rewinds the stream to the beginning of the sequence for seed.
func (s *Source) Reseed(seed int64) {
	s.rng.Seed(seed)
}

// Float64 returns a uniform draw from [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a uniform draw from [low, high).
func (s *Source) Uniform(low, high float64) float64 {
	return low + (high-low)*s.rng.Float64()
}

// Triangular returns a draw from the triangular distribution with the given
// lower bound, mode and upper bound. Draws stay within [low, high].
func (s *Source) Triangular(low, mode, high float64) float64 {
	u := s.rng.Float64()
	c := (mode - low) / (high - low)
	if u < c {
		return low + math.Sqrt(u*(high-low)*(mode-low))
	}
	return high - math.Sqrt((1-u)*(high-low)*(high-mode))
}

// LogNormal returns a draw whose logarithm is normally distributed with the
// given location and scale parameters.
func (s *Source) LogNormal(mu, sigma float64) float64 {
	return math.Exp(mu + sigma*s.rng.NormFloat64())
}

// Exponential returns an exponentially distributed draw with the given mean.
func (s *Source) Exponential(mean float64) float64 {
	return s.rng.ExpFloat64() * mean
}

// Poisson returns a draw from the Poisson distribution with the given mean.
// It uses the multiplicative rejection method: multiply uniform draws until
// the product falls below e^-lambda. A non-positive mean yields 0.
func (s *Source) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for p > l {
		k++
		p *= s.rng.Float64()
	}

	return k - 1
}

// LogNormalMuForMean returns the location parameter for which a lognormal
// distribution with scale sigma has the requested mean.
func LogNormalMuForMean(mean, sigma float64) float64 {
	return math.Log(mean) - 0.5*sigma*sigma
}
