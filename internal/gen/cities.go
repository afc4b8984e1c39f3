package gen

import "github.com/bpbull/soundcheck-analytics/internal/dataset"

// The fixed set of music markets. Scene score and genre mix drive user
// and venue distributions downstream.
var citySeeds = []struct {
	name      string
	state     string
	pop       int
	scene     float64
	genres    []string
	avgTicket float64
}{
	{"Austin", "TX", 978908, 9.5, []string{"rock", "country", "indie"}, 48},
	{"Nashville", "TN", 689447, 9.8, []string{"country", "rock", "folk"}, 45},
	{"Los Angeles", "CA", 3967000, 9.0, []string{"pop", "hip-hop", "electronic"}, 65},
	{"New York", "NY", 8336000, 9.7, []string{"jazz", "hip-hop", "indie", "punk"}, 75},
	{"Seattle", "WA", 737015, 8.8, []string{"grunge", "indie", "electronic"}, 55},
	{"Portland", "OR", 652503, 8.5, []string{"indie", "folk", "punk"}, 45},
	{"Chicago", "IL", 2747000, 8.9, []string{"blues", "jazz", "hip-hop", "house"}, 50},
	{"San Francisco", "CA", 874784, 8.6, []string{"electronic", "indie", "jazz"}, 70},
	{"Denver", "CO", 715522, 8.3, []string{"jam", "folk", "electronic"}, 50},
	{"Atlanta", "GA", 498000, 8.7, []string{"hip-hop", "r&b", "trap"}, 55},
	{"Miami", "FL", 442241, 8.4, []string{"electronic", "latin", "hip-hop"}, 60},
	{"Boston", "MA", 694583, 8.2, []string{"punk", "indie", "folk"}, 55},
	{"Philadelphia", "PA", 1584000, 8.3, []string{"hip-hop", "punk", "indie"}, 48},
	{"Detroit", "MI", 674841, 8.5, []string{"techno", "rock", "hip-hop"}, 40},
	{"Minneapolis", "MN", 425403, 8.1, []string{"indie", "hip-hop", "folk"}, 45},
}

var stateTimezones = map[string]string{
	"CA": "America/Los_Angeles", "WA": "America/Los_Angeles", "OR": "America/Los_Angeles",
	"TX": "America/Chicago", "IL": "America/Chicago", "TN": "America/Chicago",
	"MN": "America/Chicago", "NY": "America/New_York", "MA": "America/New_York",
	"PA": "America/New_York", "GA": "America/New_York", "FL": "America/New_York",
	"MI": "America/Detroit", "CO": "America/Denver",
}

func (g *Generator) generateCities() error {
	for i, seed := range citySeeds {
		tz, ok := stateTimezones[seed.state]
		if !ok {
			tz = "America/New_York"
		}
		g.data.Cities = append(g.data.Cities, dataset.City{
			ID:              recordID("CITY", 3, i+1),
			Name:            seed.name,
			State:           seed.state,
			Population:      seed.pop,
			MusicSceneScore: seed.scene,
			PrimaryGenres:   seed.genres,
			AvgTicketPrice:  seed.avgTicket,
			TotalVenues:     intBetween(g.rng, 20, 200),
			Timezone:        tz,
		})
	}
	return nil
}
