package gen

import (
	"fmt"
	"strings"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

var venueTypes = []dataset.VenueType{
	dataset.VenueClub, dataset.VenueBar, dataset.VenueTheater,
	dataset.VenueArena, dataset.VenueStadium, dataset.VenueAmphitheater,
	dataset.VenueFestival,
}

var venueTypeWeights = []float64{0.30, 0.25, 0.20, 0.10, 0.05, 0.05, 0.05}

var venueCapacityRanges = map[dataset.VenueType][2]int{
	dataset.VenueClub:         {100, 500},
	dataset.VenueBar:          {50, 200},
	dataset.VenueTheater:      {500, 3000},
	dataset.VenueArena:        {5000, 20000},
	dataset.VenueStadium:      {20000, 80000},
	dataset.VenueAmphitheater: {2000, 15000},
	dataset.VenueFestival:     {5000, 100000},
}

func (g *Generator) generateVenues() error {
	n := g.cfg.Venues
	counter := 1

	for _, city := range g.data.Cities {
		if counter > n {
			break
		}

		// Venue count scales with population and scene strength.
		numVenues := int(float64(n) * (float64(city.Population) / 25000000) * (city.MusicSceneScore / 10))
		if numVenues < 1 {
			numVenues = 1
		}

		for i := 0; i < numVenues && counter <= n; i++ {
			venueType := weightedPick(g.rng, venueTypes, venueTypeWeights)
			capRange := venueCapacityRanges[venueType]
			capacity := intBetween(g.rng, capRange[0], capRange[1])

			standingRoom := capacity
			switch venueType {
			case dataset.VenueClub, dataset.VenueBar, dataset.VenueTheater:
				standingRoom = capacity + int(float64(capacity)*uniform(g.rng, 0.2, 0.5))
			}

			openedYear := intBetween(g.rng, 1970, 2023)
			if chance(g.rng, 0.2) {
				openedYear = intBetween(g.rng, 1850, 1970)
			}

			name := g.venueName(venueType)

			var website *string
			if chance(g.rng, 0.7) {
				clean := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(name), " ", ""), "'", "")
				url := "www." + clean + ".com"
				website = &url
			}

			venue := dataset.Venue{
				ID:                   recordID("VEN", 4, counter),
				Name:                 name,
				Address:              randomStreetAddress(g.rng),
				City:                 city.Name,
				State:                city.State,
				ZipCode:              randomZip(g.rng),
				Latitude:             round2(uniform(g.rng, 25.0, 49.0)),
				Longitude:            round2(uniform(g.rng, -124.0, -67.0)),
				Type:                 venueType,
				Capacity:             capacity,
				StandingRoomCapacity: standingRoom,
				OpenedYear:           openedYear,
				ParkingAvailable:     chance(g.rng, 0.6),
				ValetParking:         (venueType == dataset.VenueTheater || venueType == dataset.VenueArena) && chance(g.rng, 0.3),
				FoodAvailable:        chance(g.rng, 0.7),
				FullBar:              venueType != dataset.VenueFestival,
				AccessibleADA:        chance(g.rng, 0.85),
				BoxOffice:            venueType == dataset.VenueTheater || venueType == dataset.VenueArena || venueType == dataset.VenueStadium || venueType == dataset.VenueAmphitheater,
				TypicalTicketFee:     round2(uniform(g.rng, 5, 25)),
				Website:              website,
				Phone:                randomPhone(g.rng),
				ValidatedCapacity:    chance(g.rng, 0.8),
			}

			g.data.Venues = append(g.data.Venues, venue)
			g.venueEventCounts[venue.ID] = 0
			counter++
		}
	}

	for i := range g.data.Venues {
		g.venueIndex[g.data.Venues[i].ID] = &g.data.Venues[i]
	}
	return nil
}

func (g *Generator) venueName(venueType dataset.VenueType) string {
	rng := g.rng
	switch venueType {
	case dataset.VenueClub:
		switch rng.Intn(3) {
		case 0:
			return "The " + pick(rng, []string{"Underground", "Basement", "Loft", "Cave", "Den"})
		case 1:
			return pick(rng, []string{"Club", "Night"}) + " " + pick(rng, lastNames)
		default:
			return "The " + titleWord(rng) + " Room"
		}
	case dataset.VenueBar:
		if rng.Intn(2) == 0 {
			return fmt.Sprintf("%s's %s", pick(rng, lastNames),
				pick(rng, []string{"Bar", "Pub", "Tavern", "Taproom"}))
		}
		return fmt.Sprintf("The %s %s",
			pick(rng, []string{"Crooked", "Broken", "Golden", "Silver"}),
			pick(rng, []string{"Crow", "Fox", "Lion", "Eagle"}))
	case dataset.VenueTheater:
		switch rng.Intn(3) {
		case 0:
			return "The " + pick(rng, lastNames) + " Theater"
		case 1:
			return pick(rng, []string{"Paramount", "Palace", "Royal", "Grand"}) + " Theater"
		default:
			return "The " + titleWord(rng) + " Playhouse"
		}
	case dataset.VenueArena, dataset.VenueStadium:
		label := venueTypeLabel(venueType)
		if rng.Intn(2) == 0 {
			return pick(rng, lastNames) + " " + label
		}
		return pick(g.rng, g.data.Cities).Name + " " + label
	default:
		label := venueTypeLabel(venueType)
		return titleWord(rng) + " " + label
	}
}

func venueTypeLabel(t dataset.VenueType) string {
	parts := strings.Split(string(t), "_")
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
