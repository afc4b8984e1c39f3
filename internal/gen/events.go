package gen

import (
	"fmt"
	"time"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

// Tier-indexed base ticket price ranges in dollars.
var tierPriceRanges = map[dataset.Tier][2]float64{
	dataset.TierMegastar:    {75, 250},
	dataset.TierPopular:     {50, 150},
	dataset.TierRising:      {35, 75},
	dataset.TierEstablished: {25, 60},
	dataset.TierEmerging:    {15, 40},
	dataset.TierLocal:       {10, 25},
}

// Completed-show fill fractions by headliner tier.
var tierFillRanges = map[dataset.Tier][2]float64{
	dataset.TierMegastar: {0.85, 1.0},
	dataset.TierPopular:  {0.70, 0.95},
}

var defaultFillRange = [2]float64{0.40, 0.85}

// Weekday mix for non-tour shows. Index 0 is Monday.
var eventDayWeights = []float64{0.08, 0.08, 0.10, 0.15, 0.24, 0.28, 0.07}

var ageRestrictions = []string{"All Ages", "18+", "21+"}

// generateEvents first walks every tour schedule, then fills the
// remaining target with one-off shows. An artist never plays twice on
// the same calendar date; collisions are simply resampled, which is
// fine for a generator but would starve a real scheduler once an
// artist's calendar saturates.
func (g *Generator) generateEvents() error {
	n := g.cfg.Events
	counter := 1

	rangeStart := g.now.AddDate(-2, 0, 0)
	rangeEnd := g.now.AddDate(1, 0, 0)

	for _, artist := range g.data.Artists {
		g.artistCalendar[artist.ID] = make(map[string]struct{})
	}

	for _, tour := range g.data.Tours {
		tourEvents := 0
		current := tour.StartDate

		// Consecutive shows sit 2-4 days apart. The date always
		// advances, even past a busy day, so an artist with
		// overlapping tours cannot wedge the walk.
		for tourEvents < tour.NumberOfShows && !current.After(tour.EndDate) && counter <= n {
			if _, busy := g.artistCalendar[tour.ArtistID][dayKey(current)]; !busy {
				venue := pick(g.rng, g.data.Venues)
				tourID := tour.ID
				g.appendEvent(recordID("EVT", 5, counter), tour.ArtistID, venue, current, &tourID)
				counter++
				tourEvents++
			}
			current = current.AddDate(0, 0, intBetween(g.rng, 2, 4))
		}
	}

	for counter <= n {
		artist := pick(g.rng, g.data.Artists)
		venue := pick(g.rng, g.data.Venues)
		date := g.eventDate(rangeStart, rangeEnd)

		if _, busy := g.artistCalendar[artist.ID][dayKey(date)]; busy {
			continue
		}
		g.appendEvent(recordID("EVT", 5, counter), artist.ID, venue, date, nil)
		counter++
	}
	return nil
}

// eventDate picks a random date in range, then shifts forward to a
// weekend-weighted target weekday.
func (g *Generator) eventDate(start, end time.Time) time.Time {
	date := dateBetween(g.rng, start, end)

	targetDay := weightedIndex(g.rng, eventDayWeights) // 0 = Monday
	currentDay := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, (targetDay-currentDay+7)%7)
}

func (g *Generator) appendEvent(eventID, artistID string, venue dataset.Venue, date time.Time, tourID *string) {
	artist := g.artistIndex[artistID]

	displayName := artist.Name
	if variations, ok := g.nameVariations[artistID]; ok && chance(g.rng, 0.1) {
		displayName = pick(g.rng, variations)
	}

	price := g.basePrice(artist.PopularityTier, venue.Type, date)

	var vipPrice *float64
	if chance(g.rng, 0.7) {
		p := round2(price * 2.5)
		vipPrice = &p
	}

	// Bigger acts announce much earlier.
	announceDays := intBetween(g.rng, 30, 90)
	if artist.PopularityTier == dataset.TierMegastar || artist.PopularityTier == dataset.TierPopular {
		announceDays = intBetween(g.rng, 90, 180)
	}
	announced := date.AddDate(0, 0, -announceDays)
	onSale := announced.AddDate(0, 0, intBetween(g.rng, 1, 7))

	var openingActs []string
	switch venue.Type {
	case dataset.VenueArena, dataset.VenueStadium, dataset.VenueAmphitheater:
		openers := sampleWithout(g.rng, g.data.Artists, intBetween(g.rng, 1, 2), func(a dataset.Artist) bool {
			return a.PopularityTier != dataset.TierEmerging && a.PopularityTier != dataset.TierLocal
		})
		for _, o := range openers {
			openingActs = append(openingActs, o.Name)
		}
	}

	status := dataset.StatusScheduled
	var cancellationReason *string
	if date.Before(g.now) {
		if chance(g.rng, 0.05) {
			status = dataset.StatusCancelled
			reason := pick(g.rng, cancellationReasons)
			cancellationReason = &reason
		} else {
			status = dataset.StatusCompleted
		}
	}

	var attendance *int
	if status == dataset.StatusCompleted {
		fillRange, ok := tierFillRanges[artist.PopularityTier]
		if !ok {
			fillRange = defaultFillRange
		}
		fill := uniform(g.rng, fillRange[0], fillRange[1])
		// Thursday crowds run deeper: the true fans show up.
		if date.Weekday() == time.Thursday {
			fill = min(1.0, fill*1.1)
		}
		est := int(float64(venue.Capacity) * fill)
		attendance = &est
	}

	var weather *string
	if venue.Type.Outdoor() {
		w := g.weatherFor(date)
		weather = &w
	}

	var ageRestriction *string
	if idx := g.rng.Intn(4); idx < 3 {
		ageRestriction = &ageRestrictions[idx]
	}

	event := dataset.Event{
		ID:                  eventID,
		Name:                fmt.Sprintf("%s at %s", displayName, venue.Name),
		ArtistID:            artistID,
		VenueID:             venue.ID,
		TourID:              tourID,
		Date:                date,
		DayOfWeek:           date.Weekday().String(),
		DoorsTime:           g.showTime(true),
		ShowTime:            g.showTime(false),
		AnnouncedDate:       announced,
		OnSaleDate:          onSale,
		BaseTicketPrice:     round2(price),
		VIPTicketPrice:      vipPrice,
		TicketVendor:        pick(g.rng, ticketVendors),
		AgeRestriction:      ageRestriction,
		OpeningActs:         openingActs,
		Status:              status,
		CancellationReason:  cancellationReason,
		EstimatedAttendance: attendance,
		WeatherCondition:    weather,
		SpecialEvent:        chance(g.rng, 0.05),
	}

	g.data.Events = append(g.data.Events, event)
	g.artistCalendar[artistID][dayKey(date)] = struct{}{}
	g.venueEventCounts[venue.ID]++
}

// basePrice layers the venue-type factor and the weekend premium onto a
// tier-indexed uniform draw.
func (g *Generator) basePrice(tier dataset.Tier, venueType dataset.VenueType, date time.Time) float64 {
	priceRange := tierPriceRanges[tier]
	price := uniform(g.rng, priceRange[0], priceRange[1])

	switch venueType {
	case dataset.VenueStadium:
		price *= 1.5
	case dataset.VenueArena:
		price *= 1.3
	case dataset.VenueClub:
		price *= 0.8
	}

	if date.Weekday() == time.Friday || date.Weekday() == time.Saturday {
		price *= 1.2
	}
	return price
}

func (g *Generator) showTime(doors bool) string {
	hours := []int{19, 20, 21}
	if doors {
		hours = []int{18, 19, 20}
	}
	hour := weightedPick(g.rng, hours, []float64{0.2, 0.6, 0.2})
	minute := pick(g.rng, []int{0, 30})
	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}

func (g *Generator) weatherFor(date time.Time) string {
	switch date.Month() {
	case time.December, time.January, time.February:
		return pick(g.rng, []string{"clear", "cold", "snow", "rain"})
	case time.March, time.April, time.May:
		return pick(g.rng, []string{"clear", "partly cloudy", "rain", "mild"})
	case time.June, time.July, time.August:
		return pick(g.rng, []string{"clear", "hot", "partly cloudy", "thunderstorm"})
	default:
		return pick(g.rng, []string{"clear", "cool", "partly cloudy", "rain"})
	}
}
