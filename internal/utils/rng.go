package utils

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RNG is the single source of non-determinism in the engine. Simulation
// components take it as a dependency so tests can inject a fixed-seed or
// scripted source.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

type pcgRNG struct {
	r *rand.Rand
}

func (p *pcgRNG) Float64() float64 { return p.r.Float64() }
func (p *pcgRNG) IntN(n int) int   { return p.r.IntN(n) }

// NewSeededRNG returns a deterministic PRNG for the given seed. The same
// seed always replays the same session.
func NewSeededRNG(seed int64) RNG {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return &pcgRNG{r: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))}
}

// NewRNG returns a PRNG seeded from the runtime's global source.
func NewRNG() RNG {
	return &pcgRNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Choose returns a uniformly random element of list.
func Choose[T any](rng RNG, list []T) T {
	return list[rng.IntN(len(list))]
}

// FloatBetween returns a uniform value in [min, max).
func FloatBetween(rng RNG, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
