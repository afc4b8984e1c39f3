package gen

import "github.com/bpbull/soundcheck-analytics/internal/dataset"

// Standalone venue reviews and artist ratings, independent of events.

func (g *Generator) generateVenueReviews() error {
	counter := 1

	for _, venue := range g.data.Venues {
		var numReviews int
		switch venue.Type {
		case dataset.VenueArena, dataset.VenueStadium:
			numReviews = intBetween(g.rng, 50, 200)
		case dataset.VenueTheater, dataset.VenueAmphitheater:
			numReviews = intBetween(g.rng, 20, 100)
		default:
			numReviews = intBetween(g.rng, 5, 50)
		}

		for i := 0; i < numReviews; i++ {
			user := pick(g.rng, g.data.Users)

			base := 3.5
			if venue.ParkingAvailable {
				base += 0.2
			}
			if venue.FoodAvailable {
				base += 0.1
			}
			if venue.AccessibleADA {
				base += 0.2
			}
			switch venue.Type {
			case dataset.VenueTheater:
				base += 0.3
			case dataset.VenueStadium:
				base -= 0.3
			}

			overall := clampedHalfStep(base + gauss(g.rng, 0, 0.5))

			g.data.VenueReviews = append(g.data.VenueReviews, dataset.VenueReview{
				ID:            recordID("VREV", 5, counter),
				VenueID:       venue.ID,
				UserID:        user.ID,
				Date:          dateBetween(g.rng, g.now.AddDate(-2, 0, 0), g.now),
				OverallRating: overall,
				ReviewText:    venueReviewTextFor(g.rng, overall),
				Aspects:       g.venueAspects(overall, venue),
			})
			counter++
		}
	}
	return nil
}

func (g *Generator) venueAspects(overall float64, venue dataset.Venue) dataset.VenueAspects {
	aspects := dataset.VenueAspects{
		LocationConvenience:  clampedHalfStep(overall + gauss(g.rng, 0, 0.5)),
		SoundSystem:          clampedHalfStep(overall + gauss(g.rng, 0, 0.4)),
		Sightlines:           clampedHalfStep(overall + gauss(g.rng, 0, 0.4)),
		Cleanliness:          clampedHalfStep(overall + gauss(g.rng, -0.2, 0.3)),
		StaffFriendliness:    clampedHalfStep(overall + gauss(g.rng, 0, 0.5)),
		DrinkPrices:          clampedHalfStep(overall - 1 + gauss(g.rng, 0, 0.5)),
		BathroomAvailability: clampedHalfStep(overall - 0.3 + gauss(g.rng, 0, 0.4)),
	}

	if venue.FoodAvailable {
		// Concessions rate below the venue itself.
		food := clampedHalfStep(overall - 0.5 + gauss(g.rng, 0, 0.4))
		aspects.FoodQuality = &food
	}

	if venue.ParkingAvailable {
		aspects.Parking = clampedHalfStep(overall + gauss(g.rng, 0, 0.5))
	} else {
		aspects.Parking = clampedHalfStep(2 + gauss(g.rng, 0, 0.5))
	}

	return aspects
}

// Artist quality expectation by tier.
var tierBaseRatings = map[dataset.Tier]float64{
	dataset.TierMegastar:    4.3,
	dataset.TierPopular:     4.0,
	dataset.TierRising:      3.8,
	dataset.TierEstablished: 3.6,
	dataset.TierEmerging:    3.4,
	dataset.TierLocal:       3.2,
}

func (g *Generator) generateArtistRatings() error {
	counter := 1

	for _, artist := range g.data.Artists {
		var numRatings int
		switch artist.PopularityTier {
		case dataset.TierMegastar:
			numRatings = intBetween(g.rng, 500, 2000)
		case dataset.TierPopular:
			numRatings = intBetween(g.rng, 100, 500)
		case dataset.TierRising:
			numRatings = intBetween(g.rng, 50, 200)
		default:
			numRatings = intBetween(g.rng, 5, 50)
		}

		base := tierBaseRatings[artist.PopularityTier]

		for i := 0; i < numRatings; i++ {
			user := pick(g.rng, g.data.Users)
			overall := clampedHalfStep(base + gauss(g.rng, 0, 0.5))

			g.data.ArtistRatings = append(g.data.ArtistRatings, dataset.ArtistRating{
				ID:            recordID("ARAT", 5, counter),
				ArtistID:      artist.ID,
				UserID:        user.ID,
				Date:          dateBetween(g.rng, g.now.AddDate(-2, 0, 0), g.now),
				OverallRating: overall,
				Aspects: dataset.ArtistAspects{
					LivePerformance: clampedHalfStep(overall + gauss(g.rng, 0.1, 0.3)),
					StagePresence:   clampedHalfStep(overall + gauss(g.rng, 0, 0.4)),
					SoundQuality:    clampedHalfStep(overall + gauss(g.rng, 0, 0.3)),
					FanInteraction:  clampedHalfStep(overall + gauss(g.rng, 0, 0.5)),
					SetlistVariety:  clampedHalfStep(overall + gauss(g.rng, -0.2, 0.4)),
				},
			})
			counter++
		}
	}
	return nil
}
