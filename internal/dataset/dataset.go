// Package dataset defines the typed records that make up one generated
// Soundcheck dataset. Relationships between tables are foreign keys by
// value: a record points at another by its string ID, never by pointer.
package dataset

// Table names as used for CSV file names and Postgres tables.
const (
	TableCities       = "cities"
	TableUsers        = "users"
	TableArtists      = "artists"
	TableVenues       = "venues"
	TableTours        = "tours"
	TableEvents       = "events"
	TableEventRatings = "event_ratings"
	TableVenueReviews = "venue_reviews"
	TableArtistRating = "artist_ratings"
	TableTicketSales  = "ticket_sales"
	TableFollows      = "user_artist_follows"
)

// Dataset holds every generated table in memory until export. Containers
// are append-only and ordered by generation sequence.
type Dataset struct {
	Cities        []City
	Users         []User
	Artists       []Artist
	Venues        []Venue
	Tours         []Tour
	Events        []Event
	EventRatings  []EventRating
	VenueReviews  []VenueReview
	ArtistRatings []ArtistRating
	TicketSales   []TicketSale
	Follows       []Follow
}
