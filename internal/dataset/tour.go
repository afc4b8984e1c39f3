package dataset

import "time"

// Tour is a multi-show run by a single artist. Only artists of tier
// megastar, popular, rising, or established go on tour.
type Tour struct {
	ID              string    `json:"tour_id"`
	Name            string    `json:"tour_name"`
	ArtistID        string    `json:"artist_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	NumberOfShows   int       `json:"number_of_shows"`
	Type            string    `json:"tour_type"`
	Legs            int       `json:"tour_legs"`
	ProductionLevel Tier      `json:"production_level"` // mirrors the artist tier
}
