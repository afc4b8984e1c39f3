package gen

import (
	"fmt"
	"time"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

var tourShowCounts = map[dataset.Tier][2]int{
	dataset.TierMegastar:    {20, 75},
	dataset.TierPopular:     {15, 35},
	dataset.TierRising:      {10, 25},
	dataset.TierEstablished: {5, 25},
}

// Summer and early fall carry most touring activity.
var tourStartMonthWeights = []float64{1, 1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 1}

func tierTours(t dataset.Tier) bool {
	_, ok := tourShowCounts[t]
	return ok
}

func (g *Generator) generateTours() error {
	var eligible []dataset.Artist
	for _, a := range g.data.Artists {
		if tierTours(a.PopularityTier) {
			eligible = append(eligible, a)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	n := g.cfg.Tours
	if n > len(eligible) {
		n = len(eligible)
	}

	for i := 0; i < n; i++ {
		artist := eligible[i%len(eligible)]

		counts := tourShowCounts[artist.PopularityTier]
		numShows := intBetween(g.rng, counts[0], counts[1])

		startMonth := weightedIndex(g.rng, tourStartMonthWeights) + 1
		startYear := g.now.Year() - 2 + g.rng.Intn(3)
		start := time.Date(startYear, time.Month(startMonth), intBetween(g.rng, 1, 28), 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, intBetween(g.rng, 60, 120))

		g.data.Tours = append(g.data.Tours, dataset.Tour{
			ID:              recordID("TOUR", 3, i+1),
			Name:            g.tourName(artist, start),
			ArtistID:        artist.ID,
			StartDate:       start,
			EndDate:         end,
			NumberOfShows:   numShows,
			Type:            pick(g.rng, tourTypes),
			Legs:            intBetween(g.rng, 1, 3),
			ProductionLevel: artist.PopularityTier,
		})
	}
	return nil
}

func (g *Generator) tourName(artist dataset.Artist, start time.Time) string {
	switch g.rng.Intn(4) {
	case 0:
		return fmt.Sprintf("%s World Tour %d", artist.Name, start.Year())
	case 1:
		return fmt.Sprintf("The %s Tour", titleWord(g.rng))
	case 2:
		return fmt.Sprintf("%s - %s %s Tour", artist.Name, titleWord(g.rng), titleWord(g.rng))
	default:
		season := pick(g.rng, []string{"Summer", "Fall", "Spring", "Winter"})
		return fmt.Sprintf("%s Tour %d", season, start.Year())
	}
}
