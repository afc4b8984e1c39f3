// Package store loads a generated dataset into Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

// Store provides persistence backed by Postgres.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB, log zerolog.Logger) *Store {
	return &Store{db: db, log: log}
}

// EnsureSchema creates the analytics tables and indexes if needed.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	for _, stmt := range indexes {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// Load inserts the whole dataset in one transaction, parents before
// children. Re-running a load against populated tables fails on the
// primary keys rather than duplicating rows.
func (s *Store) Load(ctx context.Context, d *dataset.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	steps := []struct {
		table string
		load  func(context.Context, *sql.Tx) (int, error)
	}{
		{dataset.TableCities, s.loadCities(d.Cities)},
		{dataset.TableUsers, s.loadUsers(d.Users)},
		{dataset.TableArtists, s.loadArtists(d.Artists)},
		{dataset.TableVenues, s.loadVenues(d.Venues)},
		{dataset.TableTours, s.loadTours(d.Tours)},
		{dataset.TableEvents, s.loadEvents(d.Events)},
		{dataset.TableEventRatings, s.loadEventRatings(d.EventRatings)},
		{dataset.TableVenueReviews, s.loadVenueReviews(d.VenueReviews)},
		{dataset.TableArtistRating, s.loadArtistRatings(d.ArtistRatings)},
		{dataset.TableTicketSales, s.loadTicketSales(d.TicketSales)},
		{dataset.TableFollows, s.loadFollows(d.Follows)},
	}

	for _, step := range steps {
		n, err := step.load(ctx, tx)
		if err != nil {
			return fmt.Errorf("load %s: %w", step.table, err)
		}
		s.log.Info().Str("table", step.table).Int("rows", n).Msg("table loaded")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

func asJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal embedded value: %w", err)
	}
	return b, nil
}

func (s *Store) loadCities(cities []dataset.City) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO cities (
				city_id, city, state, population, music_scene_score,
				primary_genres, avg_ticket_price, total_venues, timezone
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, c := range cities {
			genres, err := asJSON(c.PrimaryGenres)
			if err != nil {
				return 0, err
			}
			if _, err := stmt.ExecContext(ctx,
				c.ID, c.Name, c.State, c.Population, c.MusicSceneScore,
				genres, c.AvgTicketPrice, c.TotalVenues, c.Timezone,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", c.ID, err)
			}
		}
		return len(cities), nil
	}
}

func (s *Store) loadUsers(users []dataset.User) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO users (
				user_id, username, email, password_hash, user_type, user_segment,
				join_date, home_city, home_state, age_group, preferred_genres,
				profile_completeness, email_verified, push_notifications_enabled,
				last_active_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, u := range users {
			genres, err := asJSON(u.PreferredGenres)
			if err != nil {
				return 0, err
			}
			if _, err := stmt.ExecContext(ctx,
				u.ID, u.Username, u.Email, u.PasswordHash, u.Type, string(u.Segment),
				u.JoinDate, u.HomeCity, u.HomeState, u.AgeGroup, genres,
				u.ProfileCompleteness, u.EmailVerified, u.PushNotifications,
				u.LastActiveDate,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", u.ID, err)
			}
		}
		return len(users), nil
	}
}

func (s *Store) loadArtists(artists []dataset.Artist) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO artists (
				artist_id, artist_name, formed_year, origin_city, origin_state,
				origin_country, spotify_monthly_listeners, instagram_followers,
				genre_primary, genre_secondary, booking_price_min, booking_price_max,
				popularity_tier, tour_frequency, average_show_duration_minutes,
				has_label, verified_artist
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, a := range artists {
			if _, err := stmt.ExecContext(ctx,
				a.ID, a.Name, a.FormedYear, a.OriginCity, a.OriginState,
				a.OriginCountry, a.SpotifyListeners, a.InstagramFollowers,
				a.GenrePrimary, a.GenreSecondary, a.BookingPriceMin, a.BookingPriceMax,
				string(a.PopularityTier), a.TourFrequency, a.AvgShowDurationMins,
				a.HasLabel, a.Verified,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", a.ID, err)
			}
		}
		return len(artists), nil
	}
}

func (s *Store) loadVenues(venues []dataset.Venue) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO venues (
				venue_id, venue_name, address, city, state, zip_code,
				latitude, longitude, venue_type, capacity, standing_room_capacity,
				opened_year, parking_available, valet_parking, food_available,
				full_bar, accessible_ada, box_office, typical_ticket_fee,
				venue_website, phone, validated_capacity
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
				$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, v := range venues {
			if _, err := stmt.ExecContext(ctx,
				v.ID, v.Name, v.Address, v.City, v.State, v.ZipCode,
				v.Latitude, v.Longitude, string(v.Type), v.Capacity, v.StandingRoomCapacity,
				v.OpenedYear, v.ParkingAvailable, v.ValetParking, v.FoodAvailable,
				v.FullBar, v.AccessibleADA, v.BoxOffice, v.TypicalTicketFee,
				v.Website, v.Phone, v.ValidatedCapacity,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", v.ID, err)
			}
		}
		return len(venues), nil
	}
}

func (s *Store) loadTours(tours []dataset.Tour) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO tours (
				tour_id, tour_name, artist_id, start_date, end_date,
				number_of_shows, tour_type, tour_legs, production_level
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, t := range tours {
			if _, err := stmt.ExecContext(ctx,
				t.ID, t.Name, t.ArtistID, t.StartDate, t.EndDate,
				t.NumberOfShows, t.Type, t.Legs, string(t.ProductionLevel),
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", t.ID, err)
			}
		}
		return len(tours), nil
	}
}

func (s *Store) loadEvents(events []dataset.Event) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO events (
				event_id, event_name, artist_id, venue_id, tour_id, event_date,
				event_day_of_week, doors_time, show_time, announced_date,
				on_sale_date, base_ticket_price, vip_ticket_price, ticket_vendor,
				age_restriction, opening_acts, event_status, cancellation_reason,
				estimated_attendance, weather_condition, special_event
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
				$12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, e := range events {
			var openers []byte
			if len(e.OpeningActs) > 0 {
				if openers, err = asJSON(e.OpeningActs); err != nil {
					return 0, err
				}
			}
			if _, err := stmt.ExecContext(ctx,
				e.ID, e.Name, e.ArtistID, e.VenueID, e.TourID, e.Date,
				e.DayOfWeek, e.DoorsTime, e.ShowTime, e.AnnouncedDate,
				e.OnSaleDate, e.BaseTicketPrice, e.VIPTicketPrice, e.TicketVendor,
				e.AgeRestriction, openers, string(e.Status), e.CancellationReason,
				e.EstimatedAttendance, e.WeatherCondition, e.SpecialEvent,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", e.ID, err)
			}
		}
		return len(events), nil
	}
}

func (s *Store) loadEventRatings(ratings []dataset.EventRating) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO event_ratings (
				rating_id, event_id, user_id, rating_score, rating_date,
				days_after_event, review_title, review_text, verified_attendance,
				helpful_count, reported, aspects
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, r := range ratings {
			aspects, err := asJSON(r.Aspects)
			if err != nil {
				return 0, err
			}
			if _, err := stmt.ExecContext(ctx,
				r.ID, r.EventID, r.UserID, r.Score, r.Date,
				r.DaysAfterEvent, r.ReviewTitle, r.ReviewText, r.VerifiedAttendance,
				r.HelpfulCount, r.Reported, aspects,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", r.ID, err)
			}
		}
		return len(ratings), nil
	}
}

func (s *Store) loadVenueReviews(reviews []dataset.VenueReview) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO venue_reviews (
				review_id, venue_id, user_id, review_date, overall_rating,
				review_text, aspects
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, r := range reviews {
			aspects, err := asJSON(r.Aspects)
			if err != nil {
				return 0, err
			}
			if _, err := stmt.ExecContext(ctx,
				r.ID, r.VenueID, r.UserID, r.Date, r.OverallRating,
				r.ReviewText, aspects,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", r.ID, err)
			}
		}
		return len(reviews), nil
	}
}

func (s *Store) loadArtistRatings(ratings []dataset.ArtistRating) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO artist_ratings (
				artist_rating_id, artist_id, user_id, rating_date,
				overall_rating, aspects
			) VALUES ($1, $2, $3, $4, $5, $6)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, r := range ratings {
			aspects, err := asJSON(r.Aspects)
			if err != nil {
				return 0, err
			}
			if _, err := stmt.ExecContext(ctx,
				r.ID, r.ArtistID, r.UserID, r.Date, r.OverallRating, aspects,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", r.ID, err)
			}
		}
		return len(ratings), nil
	}
}

func (s *Store) loadTicketSales(sales []dataset.TicketSale) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO ticket_sales (
				sale_id, event_id, sale_date, days_before_event, quantity_sold,
				ticket_type, unit_price, fees, total_amount
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, sale := range sales {
			if _, err := stmt.ExecContext(ctx,
				sale.ID, sale.EventID, sale.Date, sale.DaysBeforeEvent, sale.Quantity,
				sale.TicketType, sale.UnitPrice, sale.Fees, sale.TotalAmount,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", sale.ID, err)
			}
		}
		return len(sales), nil
	}
}

func (s *Store) loadFollows(follows []dataset.Follow) func(context.Context, *sql.Tx) (int, error) {
	return func(ctx context.Context, tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO user_artist_follows (
				follow_id, user_id, artist_id, follow_date, notifications_enabled
			) VALUES ($1, $2, $3, $4, $5)
		`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()

		for _, f := range follows {
			if _, err := stmt.ExecContext(ctx,
				f.ID, f.UserID, f.ArtistID, f.Date, f.Notifications,
			); err != nil {
				return 0, fmt.Errorf("insert %s: %w", f.ID, err)
			}
		}
		return len(follows), nil
	}
}
