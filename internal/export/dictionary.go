package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

type column struct {
	name, typ, desc string
}

type tableDoc struct {
	name    string
	desc    string
	columns []column
}

var dictionary = []tableDoc{
	{
		name: dataset.TableCities,
		desc: "Metro areas the platform covers. Every user, artist, and venue is anchored to one of these.",
		columns: []column{
			{"city_id", "string", "Primary key, CITY_NNN."},
			{"city", "string", "City name."},
			{"state", "string", "Two-letter state code."},
			{"population", "int", "Metro population."},
			{"music_scene_score", "float", "Scene strength, 1-10."},
			{"primary_genres", "json array", "Dominant genres in the local scene."},
			{"avg_ticket_price", "float", "Typical ticket price in USD."},
			{"total_venues", "int", "Number of venues generated for the city."},
			{"timezone", "string", "IANA timezone name."},
		},
	},
	{
		name: dataset.TableUsers,
		desc: "Platform accounts. Segments drive activity volume: power users rate and follow far more than casual ones.",
		columns: []column{
			{"user_id", "string", "Primary key, USR_NNNNN."},
			{"username", "string", "Display handle."},
			{"email", "string", "Contact address."},
			{"password_hash", "string", "bcrypt hash. All demo accounts share one credential."},
			{"user_type", "string", "regular or verified."},
			{"user_segment", "string", "power, regular, or casual."},
			{"join_date", "date", "Account creation date."},
			{"home_city", "string", "Home city name."},
			{"home_state", "string", "Home state code."},
			{"age_group", "string", "Age bracket, e.g. 25-34."},
			{"preferred_genres", "json array", "Genres the user cares about."},
			{"profile_completeness", "float", "0-1 share of profile fields filled in."},
			{"email_verified", "bool", "Whether the address was confirmed."},
			{"push_notifications_enabled", "bool", "Push opt-in."},
			{"last_active_date", "date", "Most recent session."},
		},
	},
	{
		name: dataset.TableArtists,
		desc: "Performing acts. Popularity tier controls pricing, tour volume, and rating counts. About 5% of names have deliberate spelling variations across events.",
		columns: []column{
			{"artist_id", "string", "Primary key, ART_NNNN."},
			{"artist_name", "string", "Canonical act name."},
			{"formed_year", "int", "Year the act formed."},
			{"origin_city", "string", "Hometown."},
			{"origin_state", "string", "Home state code."},
			{"origin_country", "string", "Always USA in this dataset."},
			{"spotify_monthly_listeners", "int", "Streaming reach."},
			{"instagram_followers", "int", "Social reach."},
			{"genre_primary", "string", "Main genre."},
			{"genre_secondary", "string", "Related genre."},
			{"booking_price_min", "int", "Low end of the booking fee, USD."},
			{"booking_price_max", "int", "High end of the booking fee, USD."},
			{"popularity_tier", "string", "megastar, popular, rising, established, emerging, or local."},
			{"tour_frequency", "string", "How often the act tours."},
			{"average_show_duration_minutes", "int", "Typical set length."},
			{"has_label", "bool", "Signed to a label."},
			{"verified_artist", "bool", "Claimed profile."},
		},
	},
	{
		name: dataset.TableVenues,
		desc: "Physical venues. Capacity spans dive bars to stadiums. Roughly 20% of capacities are unvalidated, a known data-quality gap.",
		columns: []column{
			{"venue_id", "string", "Primary key, VEN_NNNN."},
			{"venue_name", "string", "Venue name."},
			{"address", "string", "Street address."},
			{"city", "string", "City name."},
			{"state", "string", "State code."},
			{"zip_code", "string", "Postal code."},
			{"latitude", "float", "Approximate latitude."},
			{"longitude", "float", "Approximate longitude."},
			{"venue_type", "string", "stadium, arena, amphitheater, theater, club, bar, or festival_grounds."},
			{"capacity", "int", "Seated capacity."},
			{"standing_room_capacity", "int", "Capacity including standing room."},
			{"opened_year", "int", "Year opened."},
			{"parking_available", "bool", "On-site parking."},
			{"valet_parking", "bool", "Valet service."},
			{"food_available", "bool", "Concessions."},
			{"full_bar", "bool", "Full bar service."},
			{"accessible_ada", "bool", "ADA accessible."},
			{"box_office", "bool", "Physical box office."},
			{"typical_ticket_fee", "float", "Per-ticket service fee, USD."},
			{"venue_website", "string", "Website URL, nullable."},
			{"phone", "string", "Contact number."},
			{"validated_capacity", "bool", "False means the capacity figure was never verified."},
		},
	},
	{
		name: dataset.TableTours,
		desc: "Multi-show runs for the top four artist tiers. Tour events respect the no-double-booking rule.",
		columns: []column{
			{"tour_id", "string", "Primary key, TOUR_NNN."},
			{"tour_name", "string", "Tour title."},
			{"artist_id", "string", "FK to artists."},
			{"start_date", "date", "First show window start."},
			{"end_date", "date", "Tour window end."},
			{"number_of_shows", "int", "Planned show count."},
			{"tour_type", "string", "headlining, co-headlining, supporting, or festival."},
			{"tour_legs", "int", "Number of legs."},
			{"production_level", "string", "Matches the artist tier."},
		},
	},
	{
		name: dataset.TableEvents,
		desc: "Individual shows, past and future relative to the generation anchor date. No artist plays two events on the same calendar day.",
		columns: []column{
			{"event_id", "string", "Primary key, EVT_NNNNN."},
			{"event_name", "string", "Display name. May carry a deliberate artist-name spelling variation."},
			{"artist_id", "string", "FK to artists."},
			{"venue_id", "string", "FK to venues."},
			{"tour_id", "string", "FK to tours, nullable for one-off shows."},
			{"event_date", "date", "Show date."},
			{"event_day_of_week", "string", "Weekday name."},
			{"doors_time", "string", "Doors, HH:MM:SS."},
			{"show_time", "string", "Showtime, HH:MM:SS."},
			{"announced_date", "date", "Announcement date."},
			{"on_sale_date", "date", "Tickets on sale date."},
			{"base_ticket_price", "float", "GA price, USD."},
			{"vip_ticket_price", "float", "VIP price, nullable. Missing for ~30% of events."},
			{"ticket_vendor", "string", "Primary ticketing outlet."},
			{"age_restriction", "string", "All Ages, 18+, or 21+, nullable."},
			{"opening_acts", "json array", "Supporting act IDs, empty for most shows."},
			{"event_status", "string", "completed, scheduled, or cancelled."},
			{"cancellation_reason", "string", "Set only for cancelled events."},
			{"estimated_attendance", "int", "Actual turnout, completed events only. Never exceeds capacity."},
			{"weather_condition", "string", "Outdoor venues only."},
			{"special_event", "bool", "Festival slot, album release show, or similar."},
		},
	},
	{
		name: dataset.TableEventRatings,
		desc: "Fan ratings for completed events. Contains deliberate defects: ~15% duplicates, ~1% of events bot-attacked from the USR_09000-09999 range, ~2% of ratings dated before the show.",
		columns: []column{
			{"rating_id", "string", "Primary key, RAT_NNNNNN. Duplicates get fresh IDs."},
			{"event_id", "string", "FK to events."},
			{"user_id", "string", "FK to users. Bot ratings reuse IDs from USR_09000-09999."},
			{"rating_score", "float", "1.0-5.0 in half-point steps."},
			{"rating_date", "date", "When the rating was posted."},
			{"days_after_event", "int", "Negative for the temporal-anomaly defect."},
			{"review_title", "string", "Nullable, present on ~30% of ratings."},
			{"review_text", "string", "Nullable, paired with the title."},
			{"verified_attendance", "bool", "Ticket-linked rating."},
			{"helpful_count", "int", "Upvotes on the review."},
			{"reported", "bool", "Flagged by moderation."},
			{"aspects", "json object", "Six sub-scores: sound, performance, venue experience, value, crowd, energy."},
		},
	},
	{
		name: dataset.TableVenueReviews,
		desc: "Standalone venue reviews, independent of any event.",
		columns: []column{
			{"review_id", "string", "Primary key, VREV_NNNNN."},
			{"venue_id", "string", "FK to venues."},
			{"user_id", "string", "FK to users."},
			{"review_date", "date", "Posted date, within the last two years."},
			{"overall_rating", "float", "1.0-5.0 in half-point steps."},
			{"review_text", "string", "Short free-text review."},
			{"aspects", "json object", "Sub-scores including sound system, sightlines, and prices. food_quality is null when the venue has no concessions."},
		},
	},
	{
		name: dataset.TableArtistRating,
		desc: "Overall artist ratings, independent of any single show.",
		columns: []column{
			{"artist_rating_id", "string", "Primary key, ARAT_NNNNN."},
			{"artist_id", "string", "FK to artists."},
			{"user_id", "string", "FK to users."},
			{"rating_date", "date", "Posted date."},
			{"overall_rating", "float", "1.0-5.0 in half-point steps."},
			{"aspects", "json object", "Five sub-scores: live performance, stage presence, sound, fan interaction, setlist variety."},
		},
	},
	{
		name: dataset.TableTicketSales,
		desc: "Purchase transactions for events with known attendance, averaging 2.5 tickets per sale. Demand clusters at on-sale and show week.",
		columns: []column{
			{"sale_id", "string", "Primary key, TKT_NNNNN."},
			{"event_id", "string", "FK to events."},
			{"sale_date", "date", "Transaction date."},
			{"days_before_event", "int", "Lead time."},
			{"quantity_sold", "int", "Tickets in the order, 1-6."},
			{"ticket_type", "string", "general or vip."},
			{"unit_price", "float", "Per-ticket price, USD."},
			{"fees", "float", "Venue service fees for the order."},
			{"total_amount", "float", "unit_price * quantity + fees."},
		},
	},
	{
		name: dataset.TableFollows,
		desc: "User-to-artist follows, 70% genre-matched and the rest discovery.",
		columns: []column{
			{"follow_id", "string", "Primary key, FOL_NNNNN."},
			{"user_id", "string", "FK to users."},
			{"artist_id", "string", "FK to artists."},
			{"follow_date", "date", "Between the user's join date and the anchor date."},
			{"notifications_enabled", "bool", "Show-alert opt-in."},
		},
	},
}

// WriteDictionary renders data_dictionary.md describing every table and
// column, including the intentional data-quality defects.
func WriteDictionary(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Soundcheck Analytics Data Dictionary\n\n")
	b.WriteString("Generated fake dataset for a live-music analytics platform. ")
	b.WriteString("The data carries deliberate quality defects (duplicates, bot attacks, ")
	b.WriteString("temporal anomalies, name inconsistencies) so downstream pipelines can be ")
	b.WriteString("exercised against realistic dirt.\n")

	for _, t := range dictionary {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n\n", t.name, t.desc)
		b.WriteString("| Column | Type | Description |\n|---|---|---|\n")
		for _, c := range t.columns {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", c.name, c.typ, c.desc)
		}
	}

	return os.WriteFile(filepath.Join(dir, "data_dictionary.md"), []byte(b.String()), 0o644)
}

// Manifest records the inputs that produced a dataset so a run can be
// reproduced or traced from its files alone.
type Manifest struct {
	RunID       uuid.UUID      `json:"run_id"`
	Seed        int64          `json:"seed"`
	AnchorDate  string         `json:"anchor_date"`
	GeneratedAt time.Time      `json:"generated_at"`
	Records     map[string]int `json:"records"`
}

// WriteManifest writes manifest.json alongside the CSV files.
func WriteManifest(dir string, m Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	b = append(b, '\n')
	return os.WriteFile(filepath.Join(dir, "manifest.json"), b, 0o644)
}
