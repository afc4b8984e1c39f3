package gen

import (
	"strings"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

var artistTiers = []dataset.Tier{
	dataset.TierMegastar, dataset.TierPopular, dataset.TierRising,
	dataset.TierEstablished, dataset.TierEmerging, dataset.TierLocal,
}

// Power-law popularity: very few megastars, a long tail of local acts.
var artistTierWeights = []float64{0.01, 0.04, 0.10, 0.20, 0.35, 0.30}

type tierMetrics struct {
	listeners [2]int
	followers [2]int
	booking   [2]int
}

var tierMetricRanges = map[dataset.Tier]tierMetrics{
	dataset.TierMegastar:    {[2]int{5000000, 50000000}, [2]int{1000000, 10000000}, [2]int{100000, 1000000}},
	dataset.TierPopular:     {[2]int{1000000, 5000000}, [2]int{100000, 1000000}, [2]int{50000, 100000}},
	dataset.TierRising:      {[2]int{100000, 1000000}, [2]int{10000, 100000}, [2]int{10000, 50000}},
	dataset.TierEstablished: {[2]int{50000, 100000}, [2]int{5000, 10000}, [2]int{5000, 10000}},
	dataset.TierEmerging:    {[2]int{10000, 50000}, [2]int{1000, 5000}, [2]int{1000, 5000}},
	dataset.TierLocal:       {[2]int{100, 10000}, [2]int{100, 1000}, [2]int{500, 1000}},
}

func (g *Generator) generateArtists() error {
	for i := 0; i < g.cfg.Artists; i++ {
		tier := weightedPick(g.rng, artistTiers, artistTierWeights)
		metrics := tierMetricRanges[tier]

		primary := pick(g.rng, primaryGenres)
		secondary := primary
		if related, ok := relatedGenres[primary]; ok {
			secondary = pick(g.rng, related)
		}

		origin := pick(g.rng, g.data.Cities)

		artist := dataset.Artist{
			ID:                  recordID("ART", 4, i+1),
			Name:                randomArtistName(g.rng),
			FormedYear:          intBetween(g.rng, 1970, 2024),
			OriginCity:          origin.Name,
			OriginState:         origin.State,
			OriginCountry:       "USA",
			SpotifyListeners:    intBetween(g.rng, metrics.listeners[0], metrics.listeners[1]),
			InstagramFollowers:  intBetween(g.rng, metrics.followers[0], metrics.followers[1]),
			GenrePrimary:        primary,
			GenreSecondary:      secondary,
			BookingPriceMin:     metrics.booking[0],
			BookingPriceMax:     metrics.booking[1],
			PopularityTier:      tier,
			TourFrequency:       pick(g.rng, tourFrequencies),
			AvgShowDurationMins: intBetween(g.rng, 45, 180),
			HasLabel:            tier == dataset.TierMegastar || tier == dataset.TierPopular || tier == dataset.TierRising,
			Verified:            tier == dataset.TierMegastar || tier == dataset.TierPopular,
		}

		// 5% of artists get inconsistent display names, a deliberate
		// data-quality defect consumed by the event generator.
		if chance(g.rng, 0.05) {
			g.nameVariations[artist.ID] = []string{
				strings.ToUpper(artist.Name),
				strings.ToLower(artist.Name),
				strings.Replace(artist.Name, "The ", "", 1),
				artist.Name + " Band",
				strings.ReplaceAll(artist.Name, "and", "&"),
			}
		}

		g.data.Artists = append(g.data.Artists, artist)
	}

	for i := range g.data.Artists {
		g.artistIndex[g.data.Artists[i].ID] = &g.data.Artists[i]
	}
	return nil
}
