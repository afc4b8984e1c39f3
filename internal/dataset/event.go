package dataset

import "time"

// EventStatus is derived from the event date relative to the generation
// anchor: future events are scheduled, past events complete or cancel.
type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// Event is a single concert. TourID is nil for one-off shows.
// EstimatedAttendance is only present for completed events and
// WeatherCondition only for outdoor venue types.
type Event struct {
	ID                  string      `json:"event_id"`
	Name                string      `json:"event_name"`
	ArtistID            string      `json:"artist_id"`
	VenueID             string      `json:"venue_id"`
	TourID              *string     `json:"tour_id,omitempty"`
	Date                time.Time   `json:"event_date"`
	DayOfWeek           string      `json:"event_day_of_week"`
	DoorsTime           string      `json:"doors_time"` // HH:MM:SS
	ShowTime            string      `json:"show_time"`
	AnnouncedDate       time.Time   `json:"announced_date"`
	OnSaleDate          time.Time   `json:"on_sale_date"`
	BaseTicketPrice     float64     `json:"base_ticket_price"`
	VIPTicketPrice      *float64    `json:"vip_ticket_price,omitempty"`
	TicketVendor        string      `json:"ticket_vendor"`
	AgeRestriction      *string     `json:"age_restriction,omitempty"`
	OpeningActs         []string    `json:"opening_acts,omitempty"`
	Status              EventStatus `json:"event_status"`
	CancellationReason  *string     `json:"cancellation_reason,omitempty"`
	EstimatedAttendance *int        `json:"estimated_attendance,omitempty"`
	WeatherCondition    *string     `json:"weather_condition,omitempty"`
	SpecialEvent        bool        `json:"special_event"`
}
