package dataset

import "time"

// VenueAspects are venue review sub-scores. FoodQuality is nil for
// venues without food service.
type VenueAspects struct {
	LocationConvenience  float64  `json:"location_convenience"`
	SoundSystem          float64  `json:"sound_system"`
	Sightlines           float64  `json:"sightlines"`
	Cleanliness          float64  `json:"cleanliness"`
	StaffFriendliness    float64  `json:"staff_friendliness"`
	FoodQuality          *float64 `json:"food_quality"`
	DrinkPrices          float64  `json:"drink_prices"`
	Parking              float64  `json:"parking"`
	BathroomAvailability float64  `json:"bathroom_availability"`
}

// VenueReview is a standalone venue review, independent of any event.
type VenueReview struct {
	ID            string       `json:"review_id"`
	VenueID       string       `json:"venue_id"`
	UserID        string       `json:"user_id"`
	Date          time.Time    `json:"review_date"`
	OverallRating float64      `json:"overall_rating"`
	ReviewText    string       `json:"review_text"`
	Aspects       VenueAspects `json:"aspects"`
}

// ArtistAspects are artist rating sub-scores.
type ArtistAspects struct {
	LivePerformance float64 `json:"live_performance"`
	StagePresence   float64 `json:"stage_presence"`
	SoundQuality    float64 `json:"sound_quality"`
	FanInteraction  float64 `json:"fan_interaction"`
	SetlistVariety  float64 `json:"setlist_variety"`
}

// ArtistRating is a standalone artist rating, independent of any event.
type ArtistRating struct {
	ID            string        `json:"artist_rating_id"`
	ArtistID      string        `json:"artist_id"`
	UserID        string        `json:"user_id"`
	Date          time.Time     `json:"rating_date"`
	OverallRating float64       `json:"overall_rating"`
	Aspects       ArtistAspects `json:"aspects"`
}
