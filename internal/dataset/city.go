package dataset

// City is static reference data describing a music market.
type City struct {
	ID              string   `json:"city_id"`
	Name            string   `json:"city"`
	State           string   `json:"state"`
	Population      int      `json:"population"`
	MusicSceneScore float64  `json:"music_scene_score"` // 1-10
	PrimaryGenres   []string `json:"primary_genres"`
	AvgTicketPrice  float64  `json:"avg_ticket_price"`
	TotalVenues     int      `json:"total_venues"`
	Timezone        string   `json:"timezone"`
}
