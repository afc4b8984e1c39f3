package gen

import (
	"math"
	"math/rand"
	"time"
)

// Random helpers on an explicit *rand.Rand so every generation call is
// reproducible from the configured seed. Non-crypto, fine for test data.

func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// intBetween returns a random int in [min, max] inclusive.
func intBetween(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + rng.Intn(max-min+1)
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func gauss(rng *rand.Rand, mean, sigma float64) float64 {
	return rng.NormFloat64()*sigma + mean
}

func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// weightedIndex picks an index with probability proportional to its
// weight. Weights need not sum to 1.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

func weightedPick[T any](rng *rand.Rand, pool []T, weights []float64) T {
	return pool[weightedIndex(rng, weights)]
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// halfStep rounds to the nearest 0.5, the platform's rating increment.
func halfStep(x float64) float64 {
	return math.Round(x*2) / 2
}

// clampedHalfStep applies the standard rating transform: clamp to [1,5]
// after rounding to the nearest half step.
func clampedHalfStep(x float64) float64 {
	return clamp(halfStep(x), 1, 5)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// dateBetween returns a random calendar date in [start, end].
func dateBetween(rng *rand.Rand, start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, rng.Intn(days+1))
}

// sampleWithout draws up to n distinct elements from pool, skipping any
// for which excluded returns true. Order of draws follows the rng.
func sampleWithout[T any](rng *rand.Rand, pool []T, n int, excluded func(T) bool) []T {
	idx := rng.Perm(len(pool))
	out := make([]T, 0, n)
	for _, i := range idx {
		if len(out) == n {
			break
		}
		if excluded != nil && excluded(pool[i]) {
			continue
		}
		out = append(out, pool[i])
	}
	return out
}
