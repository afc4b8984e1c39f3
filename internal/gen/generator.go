// Package gen builds a complete Soundcheck dataset in memory. All
// generation runs sequentially through a single Generator whose
// randomness comes from one seeded *rand.Rand, so identical
// configurations reproduce identical datasets.
package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

// Config controls dataset size and reproducibility. Now anchors every
// "today" comparison; leaving it zero uses wall-clock time, which makes
// runs non-reproducible across days.
type Config struct {
	Seed    int64
	Now     time.Time
	Users   int
	Artists int
	Venues  int
	Tours   int
	Events  int
}

// DefaultConfig mirrors the platform's standard dataset dimensions.
func DefaultConfig() Config {
	return Config{
		Seed:    42,
		Users:   10000,
		Artists: 2000,
		Venues:  500,
		Tours:   500,
		Events:  10000,
	}
}

// Generator owns all entity containers while a dataset is built.
// Containers are append-only; nothing mutates a record once appended.
type Generator struct {
	cfg   Config
	rng   *rand.Rand
	now   time.Time
	runID uuid.UUID
	log   zerolog.Logger

	data *dataset.Dataset

	// Relationship tracking during generation.
	artistIndex      map[string]*dataset.Artist
	venueIndex       map[string]*dataset.Venue
	nameVariations   map[string][]string
	artistCalendar   map[string]map[string]struct{}
	userRatingCounts map[string]int
	venueEventCounts map[string]int
}

// New prepares a Generator. The anchor date is truncated to midnight
// UTC so status derivation works on calendar dates.
func New(cfg Config, logger zerolog.Logger) *Generator {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = midnight(now.UTC())

	return &Generator{
		cfg:              cfg,
		rng:              rand.New(rand.NewSource(cfg.Seed)),
		now:              now,
		runID:            uuid.New(),
		log:              logger,
		data:             &dataset.Dataset{},
		artistIndex:      make(map[string]*dataset.Artist),
		venueIndex:       make(map[string]*dataset.Venue),
		nameVariations:   make(map[string][]string),
		artistCalendar:   make(map[string]map[string]struct{}),
		userRatingCounts: make(map[string]int),
		venueEventCounts: make(map[string]int),
	}
}

// RunID identifies this generation run in logs and the export manifest.
func (g *Generator) RunID() uuid.UUID { return g.runID }

// Now returns the anchor date used for status derivation.
func (g *Generator) Now() time.Time { return g.now }

// Dataset returns the containers built so far.
func (g *Generator) Dataset() *dataset.Dataset { return g.data }

// GenerateAll runs the full pipeline in dependency order and returns
// the finished dataset.
func (g *Generator) GenerateAll() (*dataset.Dataset, error) {
	g.log.Info().
		Stringer("run_id", g.runID).
		Int64("seed", g.cfg.Seed).
		Time("anchor", g.now).
		Msg("starting dataset generation")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"cities", g.generateCities},
		{"users", g.generateUsers},
		{"artists", g.generateArtists},
		{"venues", g.generateVenues},
		{"tours", g.generateTours},
		{"events", g.generateEvents},
		{"event ratings", g.generateEventRatings},
		{"venue reviews", g.generateVenueReviews},
		{"artist ratings", g.generateArtistRatings},
		{"ticket sales", g.generateTicketSales},
		{"user follows", g.generateFollows},
	}

	for _, step := range steps {
		g.log.Info().Msgf("generating %s", step.name)
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("generate %s: %w", step.name, err)
		}
	}

	g.log.Info().Msg("dataset generation complete")
	return g.data, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// recordID formats a table-prefixed sequential ID, e.g. EVT_00001.
func recordID(prefix string, width, n int) string {
	return fmt.Sprintf("%s_%0*d", prefix, width, n)
}
