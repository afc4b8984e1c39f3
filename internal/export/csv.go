// Package export serializes a generated dataset to flat CSV files, one
// per table, plus a machine-readable run manifest and a human-readable
// data dictionary.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

const dateFormat = "2006-01-02"

// WriteCSV writes every table of the dataset into dir, creating it if
// needed. Rows follow generation order so a fixed seed reproduces
// byte-identical files. Returns the number of records written per table.
func WriteCSV(dir string, d *dataset.Dataset) (map[string]int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	tables := []struct {
		name   string
		header []string
		rows   func() [][]string
	}{
		{dataset.TableCities, cityHeader, func() [][]string { return cityRows(d.Cities) }},
		{dataset.TableUsers, userHeader, func() [][]string { return userRows(d.Users) }},
		{dataset.TableArtists, artistHeader, func() [][]string { return artistRows(d.Artists) }},
		{dataset.TableVenues, venueHeader, func() [][]string { return venueRows(d.Venues) }},
		{dataset.TableTours, tourHeader, func() [][]string { return tourRows(d.Tours) }},
		{dataset.TableEvents, eventHeader, func() [][]string { return eventRows(d.Events) }},
		{dataset.TableEventRatings, ratingHeader, func() [][]string { return ratingRows(d.EventRatings) }},
		{dataset.TableVenueReviews, venueReviewHeader, func() [][]string { return venueReviewRows(d.VenueReviews) }},
		{dataset.TableArtistRating, artistRatingHeader, func() [][]string { return artistRatingRows(d.ArtistRatings) }},
		{dataset.TableTicketSales, saleHeader, func() [][]string { return saleRows(d.TicketSales) }},
		{dataset.TableFollows, followHeader, func() [][]string { return followRows(d.Follows) }},
	}

	counts := make(map[string]int, len(tables))
	for _, t := range tables {
		rows := t.rows()
		if err := writeTable(filepath.Join(dir, t.name+".csv"), t.header, rows); err != nil {
			return nil, fmt.Errorf("write %s: %w", t.name, err)
		}
		counts[t.name] = len(rows)
	}
	return counts, nil
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// Value formatting.

func formatDate(t time.Time) string {
	return t.Format(dateFormat)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

// formatJSON embeds a nested value as JSON text in one CSV column.
func formatJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Only marshalable types reach here; a failure is a bug.
		panic(fmt.Sprintf("export: marshal embedded value: %v", err))
	}
	return string(b)
}

func orEmpty[T any](p *T, format func(T) string) string {
	if p == nil {
		return ""
	}
	return format(*p)
}

// Per-table encoders.

var cityHeader = []string{
	"city_id", "city", "state", "population", "music_scene_score",
	"primary_genres", "avg_ticket_price", "total_venues", "timezone",
}

func cityRows(cities []dataset.City) [][]string {
	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, []string{
			c.ID, c.Name, c.State, strconv.Itoa(c.Population),
			formatFloat(c.MusicSceneScore), formatJSON(c.PrimaryGenres),
			formatFloat(c.AvgTicketPrice), strconv.Itoa(c.TotalVenues), c.Timezone,
		})
	}
	return rows
}

var userHeader = []string{
	"user_id", "username", "email", "password_hash", "user_type", "user_segment",
	"join_date", "home_city", "home_state", "age_group", "preferred_genres",
	"profile_completeness", "email_verified", "push_notifications_enabled",
	"last_active_date",
}

func userRows(users []dataset.User) [][]string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.ID, u.Username, u.Email, u.PasswordHash, u.Type, string(u.Segment),
			formatDate(u.JoinDate), u.HomeCity, u.HomeState, u.AgeGroup,
			formatJSON(u.PreferredGenres), formatFloat(u.ProfileCompleteness),
			formatBool(u.EmailVerified), formatBool(u.PushNotifications),
			formatDate(u.LastActiveDate),
		})
	}
	return rows
}

var artistHeader = []string{
	"artist_id", "artist_name", "formed_year", "origin_city", "origin_state",
	"origin_country", "spotify_monthly_listeners", "instagram_followers",
	"genre_primary", "genre_secondary", "booking_price_min", "booking_price_max",
	"popularity_tier", "tour_frequency", "average_show_duration_minutes",
	"has_label", "verified_artist",
}

func artistRows(artists []dataset.Artist) [][]string {
	rows := make([][]string, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, []string{
			a.ID, a.Name, strconv.Itoa(a.FormedYear), a.OriginCity, a.OriginState,
			a.OriginCountry, strconv.Itoa(a.SpotifyListeners), strconv.Itoa(a.InstagramFollowers),
			a.GenrePrimary, a.GenreSecondary, strconv.Itoa(a.BookingPriceMin),
			strconv.Itoa(a.BookingPriceMax), string(a.PopularityTier), a.TourFrequency,
			strconv.Itoa(a.AvgShowDurationMins), formatBool(a.HasLabel), formatBool(a.Verified),
		})
	}
	return rows
}

var venueHeader = []string{
	"venue_id", "venue_name", "address", "city", "state", "zip_code",
	"latitude", "longitude", "venue_type", "capacity", "standing_room_capacity",
	"opened_year", "parking_available", "valet_parking", "food_available",
	"full_bar", "accessible_ada", "box_office", "typical_ticket_fee",
	"venue_website", "phone", "validated_capacity",
}

func venueRows(venues []dataset.Venue) [][]string {
	rows := make([][]string, 0, len(venues))
	for _, v := range venues {
		rows = append(rows, []string{
			v.ID, v.Name, v.Address, v.City, v.State, v.ZipCode,
			formatFloat(v.Latitude), formatFloat(v.Longitude), string(v.Type),
			strconv.Itoa(v.Capacity), strconv.Itoa(v.StandingRoomCapacity),
			strconv.Itoa(v.OpenedYear), formatBool(v.ParkingAvailable),
			formatBool(v.ValetParking), formatBool(v.FoodAvailable),
			formatBool(v.FullBar), formatBool(v.AccessibleADA), formatBool(v.BoxOffice),
			formatFloat(v.TypicalTicketFee),
			orEmpty(v.Website, func(s string) string { return s }),
			v.Phone, formatBool(v.ValidatedCapacity),
		})
	}
	return rows
}

var tourHeader = []string{
	"tour_id", "tour_name", "artist_id", "start_date", "end_date",
	"number_of_shows", "tour_type", "tour_legs", "production_level",
}

func tourRows(tours []dataset.Tour) [][]string {
	rows := make([][]string, 0, len(tours))
	for _, t := range tours {
		rows = append(rows, []string{
			t.ID, t.Name, t.ArtistID, formatDate(t.StartDate), formatDate(t.EndDate),
			strconv.Itoa(t.NumberOfShows), t.Type, strconv.Itoa(t.Legs),
			string(t.ProductionLevel),
		})
	}
	return rows
}

var eventHeader = []string{
	"event_id", "event_name", "artist_id", "venue_id", "tour_id", "event_date",
	"event_day_of_week", "doors_time", "show_time", "announced_date",
	"on_sale_date", "base_ticket_price", "vip_ticket_price", "ticket_vendor",
	"age_restriction", "opening_acts", "event_status", "cancellation_reason",
	"estimated_attendance", "weather_condition", "special_event",
}

func eventRows(events []dataset.Event) [][]string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		openingActs := ""
		if len(e.OpeningActs) > 0 {
			openingActs = formatJSON(e.OpeningActs)
		}
		rows = append(rows, []string{
			e.ID, e.Name, e.ArtistID, e.VenueID,
			orEmpty(e.TourID, func(s string) string { return s }),
			formatDate(e.Date), e.DayOfWeek, e.DoorsTime, e.ShowTime,
			formatDate(e.AnnouncedDate), formatDate(e.OnSaleDate),
			formatFloat(e.BaseTicketPrice), orEmpty(e.VIPTicketPrice, formatFloat),
			e.TicketVendor, orEmpty(e.AgeRestriction, func(s string) string { return s }),
			openingActs, string(e.Status),
			orEmpty(e.CancellationReason, func(s string) string { return s }),
			orEmpty(e.EstimatedAttendance, strconv.Itoa),
			orEmpty(e.WeatherCondition, func(s string) string { return s }),
			formatBool(e.SpecialEvent),
		})
	}
	return rows
}

var ratingHeader = []string{
	"rating_id", "event_id", "user_id", "rating_score", "rating_date",
	"days_after_event", "review_title", "review_text", "verified_attendance",
	"helpful_count", "reported", "aspects",
}

func ratingRows(ratings []dataset.EventRating) [][]string {
	rows := make([][]string, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, []string{
			r.ID, r.EventID, r.UserID, formatFloat(r.Score), formatDate(r.Date),
			strconv.Itoa(r.DaysAfterEvent),
			orEmpty(r.ReviewTitle, func(s string) string { return s }),
			orEmpty(r.ReviewText, func(s string) string { return s }),
			formatBool(r.VerifiedAttendance), strconv.Itoa(r.HelpfulCount),
			formatBool(r.Reported), formatJSON(r.Aspects),
		})
	}
	return rows
}

var venueReviewHeader = []string{
	"review_id", "venue_id", "user_id", "review_date", "overall_rating",
	"review_text", "aspects",
}

func venueReviewRows(reviews []dataset.VenueReview) [][]string {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			r.ID, r.VenueID, r.UserID, formatDate(r.Date),
			formatFloat(r.OverallRating), r.ReviewText, formatJSON(r.Aspects),
		})
	}
	return rows
}

var artistRatingHeader = []string{
	"artist_rating_id", "artist_id", "user_id", "rating_date",
	"overall_rating", "aspects",
}

func artistRatingRows(ratings []dataset.ArtistRating) [][]string {
	rows := make([][]string, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, []string{
			r.ID, r.ArtistID, r.UserID, formatDate(r.Date),
			formatFloat(r.OverallRating), formatJSON(r.Aspects),
		})
	}
	return rows
}

var saleHeader = []string{
	"sale_id", "event_id", "sale_date", "days_before_event", "quantity_sold",
	"ticket_type", "unit_price", "fees", "total_amount",
}

func saleRows(sales []dataset.TicketSale) [][]string {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			s.ID, s.EventID, formatDate(s.Date), strconv.Itoa(s.DaysBeforeEvent),
			strconv.Itoa(s.Quantity), s.TicketType, formatFloat(s.UnitPrice),
			formatFloat(s.Fees), formatFloat(s.TotalAmount),
		})
	}
	return rows
}

var followHeader = []string{
	"follow_id", "user_id", "artist_id", "follow_date", "notifications_enabled",
}

func followRows(follows []dataset.Follow) [][]string {
	rows := make([][]string, 0, len(follows))
	for _, f := range follows {
		rows = append(rows, []string{
			f.ID, f.UserID, f.ArtistID, formatDate(f.Date),
			formatBool(f.Notifications),
		})
	}
	return rows
}
