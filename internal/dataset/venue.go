package dataset

// VenueType determines capacity range, pricing factor, and whether
// events there are exposed to weather.
type VenueType string

const (
	VenueClub         VenueType = "club"
	VenueBar          VenueType = "bar"
	VenueTheater      VenueType = "theater"
	VenueArena        VenueType = "arena"
	VenueStadium      VenueType = "stadium"
	VenueAmphitheater VenueType = "amphitheater"
	VenueFestival     VenueType = "festival_grounds"
)

// Outdoor reports whether events at this venue type get a weather
// condition attached.
func (t VenueType) Outdoor() bool {
	return t == VenueAmphitheater || t == VenueFestival
}

// Venue is a concert location.
type Venue struct {
	ID                   string    `json:"venue_id"`
	Name                 string    `json:"venue_name"`
	Address              string    `json:"address"`
	City                 string    `json:"city"` // city name, matched by value
	State                string    `json:"state"`
	ZipCode              string    `json:"zip_code"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	Type                 VenueType `json:"venue_type"`
	Capacity             int       `json:"capacity"`
	StandingRoomCapacity int       `json:"standing_room_capacity"`
	OpenedYear           int       `json:"opened_year"`
	ParkingAvailable     bool      `json:"parking_available"`
	ValetParking         bool      `json:"valet_parking"`
	FoodAvailable        bool      `json:"food_available"`
	FullBar              bool      `json:"full_bar"`
	AccessibleADA        bool      `json:"accessible_ada"`
	BoxOffice            bool      `json:"box_office"`
	TypicalTicketFee     float64   `json:"typical_ticket_fee"`
	Website              *string   `json:"venue_website,omitempty"`
	Phone                string    `json:"phone"`
	ValidatedCapacity    bool      `json:"validated_capacity"`
}
