package stitch

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"strings"
)

// Deterministic pseudo-randomness for reproducible stitch jitter.
//
// There is deliberately no generator object here. Every draw is a pure
// function of (seed, discriminators, index), hashed with SHA-256, so the same
// design reopened on any platform regenerates bit-identical jitter, and
// concurrent callers share nothing. Discriminators separate independent
// random streams derived from one user-facing seed (e.g. the "phase" stream
// vs. the default stream in SplitRandomPhase).

// UniformAt returns the index-th uniform float in [0, 1) of the stream named
// by seed and discriminators.
func UniformAt(index int, seed string, discriminators ...string) float64 {
	parts := make([]string, 0, len(discriminators)+2)
	parts = append(parts, seed)
	parts = append(parts, discriminators...)
	parts = append(parts, strconv.Itoa(index))
	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))

	// Use the top 53 bits so the value is an exact double in [0, 1).
	return float64(binary.BigEndian.Uint64(sum[:8])>>11) / (1 << 53)
}

// Uniform returns the first float of the stream.
func Uniform(seed string, discriminators ...string) float64 {
	return UniformAt(0, seed, discriminators...)
}

// UniformFloats returns the first n floats of the stream.
func UniformFloats(n int, seed string, discriminators ...string) []float64 {
	floats := make([]float64, n)
	for i := range floats {
		floats[i] = UniformAt(i, seed, discriminators...)
	}
	return floats
}
