package gen

import (
	"time"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

// Rating volume multiplier per headliner tier.
var tierRatingMultipliers = map[dataset.Tier]float64{
	dataset.TierMegastar:    10,
	dataset.TierPopular:     5,
	dataset.TierRising:      3,
	dataset.TierEstablished: 2,
	dataset.TierEmerging:    1.5,
	dataset.TierLocal:       1,
}

var venueScoreAdjustments = map[dataset.VenueType]float64{
	dataset.VenueClub:         0.2, // intimate
	dataset.VenueTheater:      0.3, // good acoustics
	dataset.VenueBar:          0.1,
	dataset.VenueArena:        -0.1,
	dataset.VenueStadium:      -0.3, // far from the stage
	dataset.VenueAmphitheater: 0.1,
	dataset.VenueFestival:     -0.1,
}

var weatherScoreAdjustments = map[string]float64{
	"clear":         0.2,
	"mild":          0.1,
	"partly cloudy": 0,
	"rain":          -0.4,
	"snow":          -0.5,
	"thunderstorm":  -0.6,
	"hot":           -0.2,
	"cold":          -0.3,
}

var soundQualityAdjustments = map[dataset.VenueType]float64{
	dataset.VenueTheater: 0.5,
	dataset.VenueClub:    0.2,
	dataset.VenueArena:   -0.3,
	dataset.VenueStadium: -0.5,
}

func (g *Generator) generateEventRatings() error {
	counter := 1

	var completed []dataset.Event
	for _, e := range g.data.Events {
		if e.Status == dataset.StatusCompleted {
			completed = append(completed, e)
		}
	}
	g.log.Info().Int("events", len(completed)).Msg("rating completed events")

	for _, event := range completed {
		artist := g.artistIndex[event.ArtistID]
		venue := g.venueIndex[event.VenueID]

		expected := 10 * tierRatingMultipliers[artist.PopularityTier]
		if venue.Capacity > 10000 {
			expected *= 2
		} else if venue.Capacity > 1000 {
			expected *= 1.5
		}

		numRatings := int(gauss(g.rng, expected, expected*0.3))
		if numRatings < 1 {
			numRatings = 1
		}

		baseScore := g.eventBaseScore(event, venue)

		for i := 0; i < numRatings; i++ {
			user := pick(g.rng, g.data.Users)
			score := g.individualScore(baseScore, user)

			// 2% of ratings land before the event: simulated
			// timezone confusion in client timestamps.
			var daysAfter int
			if chance(g.rng, 0.02) {
				daysAfter = -intBetween(g.rng, 1, 3)
			} else {
				daysAfter = g.daysAfterEvent()
			}
			ratingDate := event.Date.AddDate(0, 0, daysAfter)

			var title, text *string
			hasReview := chance(g.rng, 0.3)
			if hasReview {
				t, b := reviewTextFor(g.rng, score)
				title, text = &t, &b
			}

			helpful := 0
			if hasReview {
				helpful = intBetween(g.rng, 0, 20)
			}

			rating := dataset.EventRating{
				ID:                 recordID("RAT", 6, counter),
				EventID:            event.ID,
				UserID:             user.ID,
				Score:              score,
				Date:               ratingDate,
				DaysAfterEvent:     daysAfter,
				ReviewTitle:        title,
				ReviewText:         text,
				VerifiedAttendance: chance(g.rng, 0.7),
				HelpfulCount:       helpful,
				Reported:           chance(g.rng, 0.01),
				Aspects:            g.eventAspects(score, venue.Type),
			}

			g.data.EventRatings = append(g.data.EventRatings, rating)
			g.userRatingCounts[user.ID]++
			counter++
		}
	}

	g.log.Info().Int("ratings", len(g.data.EventRatings)).Msg("organic ratings generated")

	g.injectDuplicateRatings()
	g.injectBotAttacks(completed)
	return nil
}

// eventBaseScore derives the event-level score all individual ratings
// start from: day-of-week, venue type, weather, and the special-event
// bump, plus noise, clamped to the rating scale.
func (g *Generator) eventBaseScore(event dataset.Event, venue *dataset.Venue) float64 {
	score := 4.0

	switch event.Date.Weekday() {
	case time.Thursday:
		score += 0.3 // true-fan crowds
	case time.Saturday:
		score -= 0.1 // casual, packed
	}

	score += venueScoreAdjustments[venue.Type]

	if event.WeatherCondition != nil {
		score += weatherScoreAdjustments[*event.WeatherCondition]
	}

	if event.SpecialEvent {
		score += 0.4
	}

	score += gauss(g.rng, 0, 0.2)
	return clamp(score, 1, 5)
}

// individualScore applies the rater's segment bias on top of the event
// base score. Power users are critical but consistent; casual raters
// are generous and noisy.
func (g *Generator) individualScore(baseScore float64, user dataset.User) float64 {
	score := baseScore

	switch user.Segment {
	case dataset.SegmentPower:
		score += -0.2 + gauss(g.rng, 0, 0.3)
	case dataset.SegmentCasual:
		score += 0.1 + gauss(g.rng, 0, 0.5)
	default:
		score += gauss(g.rng, 0, 0.4)
	}

	if user.Type == "verified" {
		score -= 0.1
	}

	return clampedHalfStep(score)
}

// daysAfterEvent: 60% within 3 days, 30% within the week, 10% later.
func (g *Generator) daysAfterEvent() int {
	r := g.rng.Float64()
	switch {
	case r < 0.6:
		return intBetween(g.rng, 1, 3)
	case r < 0.9:
		return intBetween(g.rng, 4, 7)
	default:
		return intBetween(g.rng, 8, 30)
	}
}

func (g *Generator) eventAspects(overall float64, venueType dataset.VenueType) dataset.EventAspects {
	return dataset.EventAspects{
		SoundQuality:        clampedHalfStep(overall + soundQualityAdjustments[venueType] + gauss(g.rng, 0, 0.3)),
		VenueExperience:     clampedHalfStep(overall + gauss(g.rng, 0, 0.4)),
		PerformanceEnergy:   clampedHalfStep(overall + gauss(g.rng, 0.2, 0.3)),
		SetlistSatisfaction: clampedHalfStep(overall + gauss(g.rng, 0, 0.5)),
		CrowdVibe:           clampedHalfStep(overall + gauss(g.rng, 0, 0.4)),
		ValueForMoney:       clampedHalfStep(overall - 0.5 + gauss(g.rng, 0, 0.5)),
	}
}

// injectDuplicateRatings copies 15% of rating rows verbatim (same user,
// event, score, review) under fresh IDs. Downstream pipelines are
// expected to catch these.
func (g *Generator) injectDuplicateRatings() {
	organic := len(g.data.EventRatings)
	numDuplicates := organic * 15 / 100

	indices := g.rng.Perm(organic)[:numDuplicates]
	nextID := organic + 1
	for _, idx := range indices {
		dup := g.data.EventRatings[idx]
		dup.ID = recordID("RAT", 6, nextID)
		g.data.EventRatings = append(g.data.EventRatings, dup)
		nextID++
	}

	g.log.Info().Int("duplicates", numDuplicates).Msg("duplicate ratings injected")
}

// injectBotAttacks floods 1% of completed events with 20-50 extreme
// ratings inside a single simulated hour. Bot accounts live in the
// reserved USR_09000-09999 range; with the default user count those IDs
// collide with real users, a known limitation carried over on purpose.
func (g *Generator) injectBotAttacks(completed []dataset.Event) {
	numAttacked := len(g.data.Events) / 100
	if numAttacked > len(completed) {
		numAttacked = len(completed)
	}
	attacked := sampleWithout(g.rng, completed, numAttacked, nil)

	nextID := len(g.data.EventRatings) + 1
	botRatings := 0

	for _, event := range attacked {
		attackStart := event.Date.AddDate(0, 0, 1).Add(time.Duration(g.rng.Intn(24)) * time.Hour)
		numBots := intBetween(g.rng, 20, 50)

		for i := 0; i < numBots; i++ {
			score := 1.0
			if !chance(g.rng, 0.8) {
				score = 5.0
			}

			at := attackStart.Add(time.Duration(g.rng.Intn(60)) * time.Minute)

			g.data.EventRatings = append(g.data.EventRatings, dataset.EventRating{
				ID:                 recordID("RAT", 6, nextID),
				EventID:            event.ID,
				UserID:             recordID("USR", 5, intBetween(g.rng, 9000, 9999)),
				Score:              score,
				Date:               midnight(at),
				DaysAfterEvent:     1,
				VerifiedAttendance: false,
				HelpfulCount:       0,
				Reported:           chance(g.rng, 0.3),
				Aspects: dataset.EventAspects{
					SoundQuality:        1.0,
					VenueExperience:     1.0,
					PerformanceEnergy:   1.0,
					SetlistSatisfaction: 1.0,
					CrowdVibe:           1.0,
					ValueForMoney:       1.0,
				},
			})
			nextID++
			botRatings++
		}
	}

	g.log.Info().
		Int("events", len(attacked)).
		Int("ratings", botRatings).
		Msg("bot attack patterns injected")
}
