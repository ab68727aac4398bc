// Package keywords provides weighted, context-aware lexical substitution that localizes prose to an industry.
package keywords

import (
	"math/rand/v2"
	"strings"
)

// Intensity controls how likely each mapping is to be applied
type Intensity string

// Supported intensities
const (
	IntensityLight      Intensity = "light"
	IntensityModerate   Intensity = "moderate"
	IntensityAggressive Intensity = "aggressive"
)

// preserveChance is the probability an eligible occurrence is left as written
// when Config.PreserveOriginal is set.
const preserveChance = 0.3

// contextWindow is the number of characters searched on each side of a match for context words
const contextWindow = 50

// Probability returns the chance a mapping passes the intensity gate.
// Unknown intensities behave like moderate.
func (i Intensity) Probability() float64 {
	switch i {
	case IntensityLight:
		return 0.3
	case IntensityAggressive:
		return 0.9
	default:
		return 0.6
	}
}

// ParseIntensity parses an intensity name case-insensitively.
// It returns moderate and false for unknown names.
func ParseIntensity(name string) (Intensity, bool) {
	switch Intensity(strings.ToLower(strings.TrimSpace(name))) {
	case IntensityLight:
		return IntensityLight, true
	case IntensityModerate:
		return IntensityModerate, true
	case IntensityAggressive:
		return IntensityAggressive, true
	default:
		return IntensityModerate, false
	}
}

// Config controls a single adaptation call
type Config struct {
	Intensity        Intensity
	ContextAware     bool // require a context word near at least one match
	PreserveOriginal bool // randomly keep some occurrences unchanged
	MaxReplacements  int  // 0 means unlimited; skipped occurrences do not count
}

// DefaultConfig returns the configuration used for resume summaries
func DefaultConfig() Config {
	return Config{
		Intensity:        IntensityModerate,
		ContextAware:     true,
		PreserveOriginal: true,
	}
}

// RandomSource supplies the randomness behind intensity gates, occurrence
// skipping and keyword shuffling. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRandomSource returns a deterministic source seeded with seed
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
