package dataset

import "time"

// UserSegment classifies how actively a user rates events.
type UserSegment string

const (
	SegmentPower   UserSegment = "power_user"
	SegmentRegular UserSegment = "regular"
	SegmentCasual  UserSegment = "casual"
)

// User is a platform account that rates events and follows artists.
// The segment is set once at creation and never changes.
type User struct {
	ID                  string      `json:"user_id"`
	Username            string      `json:"username"`
	Email               string      `json:"email"`
	PasswordHash        string      `json:"password_hash"`
	Type                string      `json:"user_type"` // verified or regular
	Segment             UserSegment `json:"user_segment"`
	JoinDate            time.Time   `json:"join_date"`
	HomeCity            string      `json:"home_city"` // city name, matched by value
	HomeState           string      `json:"home_state"`
	AgeGroup            string      `json:"age_group"`
	PreferredGenres     []string    `json:"preferred_genres"`
	ProfileCompleteness float64     `json:"profile_completeness"`
	EmailVerified       bool        `json:"email_verified"`
	PushNotifications   bool        `json:"push_notifications_enabled"`
	LastActiveDate      time.Time   `json:"last_active_date"`
}
