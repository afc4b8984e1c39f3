package dataset

import "time"

// Follow links a user to an artist they follow, biased toward genre
// overlap during generation.
type Follow struct {
	ID            string    `json:"follow_id"`
	UserID        string    `json:"user_id"`
	ArtistID      string    `json:"artist_id"`
	Date          time.Time `json:"follow_date"`
	Notifications bool      `json:"notifications_enabled"`
}
