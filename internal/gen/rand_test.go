package gen

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestIntBetween(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		min, max int
	}{
		{"narrow", 1, 3},
		{"wide", 20, 50},
		{"single", 7, 7},
		{"negative", -3, 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				got := intBetween(rng, tc.min, tc.max)
				if got < tc.min || got > tc.max {
					t.Fatalf("intBetween(%d, %d) = %d, out of range", tc.min, tc.max, got)
				}
			}
		})
	}
}

func TestClampedHalfStep(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.1, 1.0},
		{1.0, 1.0},
		{3.24, 3.0},
		{3.26, 3.5},
		{4.74, 4.5},
		{4.76, 5.0},
		{5.7, 5.0},
		{-2.0, 1.0},
	}

	for _, tc := range tests {
		if got := clampedHalfStep(tc.in); got != tc.want {
			t.Errorf("clampedHalfStep(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	weights := []float64{0, 1, 0}

	for i := 0; i < 500; i++ {
		if got := weightedIndex(rng, weights); got != 1 {
			t.Fatalf("weightedIndex picked zero-weight index %d", got)
		}
	}
}

func TestSampleWithout(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := sampleWithout(rng, pool, 4, func(v int) bool { return v%2 == 0 })
	if len(got) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(got))
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if v%2 == 0 {
			t.Errorf("excluded value %d was sampled", v)
		}
		if seen[v] {
			t.Errorf("value %d sampled twice", v)
		}
		seen[v] = true
	}

	// Asking for more than the pool holds returns what is available.
	if got := sampleWithout(rng, pool, 20, nil); len(got) != len(pool) {
		t.Errorf("expected %d samples, got %d", len(pool), len(got))
	}
}

func TestDateBetween(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		got := dateBetween(rng, start, end)
		if got.Before(start) || got.After(end) {
			t.Fatalf("dateBetween returned %v, outside [%v, %v]", got, start, end)
		}
	}

	if got := dateBetween(rng, end, start); !got.Equal(end) {
		t.Errorf("inverted range should return start, got %v", got)
	}
}

func TestRound2(t *testing.T) {
	if got := round2(12.345); got != 12.35 {
		t.Errorf("round2(12.345) = %v, want 12.35", got)
	}
	if got := round2(12.344); got != 12.34 {
		t.Errorf("round2(12.344) = %v, want 12.34", got)
	}
}

func TestRecordID(t *testing.T) {
	tests := []struct {
		prefix string
		width  int
		n      int
		want   string
	}{
		{"CITY", 3, 1, "CITY_001"},
		{"USR", 5, 9000, "USR_09000"},
		{"RAT", 6, 123456, "RAT_123456"},
		{"EVT", 5, 123456, "EVT_123456"},
	}

	for _, tc := range tests {
		if got := recordID(tc.prefix, tc.width, tc.n); got != tc.want {
			t.Errorf("recordID(%q, %d, %d) = %q, want %q", tc.prefix, tc.width, tc.n, got, tc.want)
		}
	}
}

func TestHalfStepRoundsHalfAwayFromZero(t *testing.T) {
	// 2.25 sits exactly between steps; the platform rounds up.
	if got := halfStep(2.25); got != 2.5 {
		t.Errorf("halfStep(2.25) = %v, want 2.5", got)
	}
}

func TestWeightedIndexCoversAllPositiveWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	weights := []float64{0.2, 0.6, 0.2}
	counts := make([]int, len(weights))

	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[weightedIndex(rng, weights)]++
	}

	for i, c := range counts {
		share := float64(c) / draws
		if math.Abs(share-weights[i]) > 0.05 {
			t.Errorf("index %d drawn with share %.3f, want ~%.1f", i, share, weights[i])
		}
	}
}
