package dataset

// Tier is the artist popularity classification that drives pricing,
// attendance, and rating volume downstream. Fixed at creation.
type Tier string

const (
	TierMegastar    Tier = "megastar"
	TierPopular     Tier = "popular"
	TierRising      Tier = "rising"
	TierEstablished Tier = "established"
	TierEmerging    Tier = "emerging"
	TierLocal       Tier = "local"
)

// Artist is a musical act.
type Artist struct {
	ID                  string `json:"artist_id"`
	Name                string `json:"artist_name"`
	FormedYear          int    `json:"formed_year"`
	OriginCity          string `json:"origin_city"`
	OriginState         string `json:"origin_state"`
	OriginCountry       string `json:"origin_country"`
	SpotifyListeners    int    `json:"spotify_monthly_listeners"`
	InstagramFollowers  int    `json:"instagram_followers"`
	GenrePrimary        string `json:"genre_primary"`
	GenreSecondary      string `json:"genre_secondary"`
	BookingPriceMin     int    `json:"booking_price_min"`
	BookingPriceMax     int    `json:"booking_price_max"`
	PopularityTier      Tier   `json:"popularity_tier"`
	TourFrequency       string `json:"tour_frequency"`
	AvgShowDurationMins int    `json:"average_show_duration_minutes"`
	HasLabel            bool   `json:"has_label"`
	Verified            bool   `json:"verified_artist"`
}
