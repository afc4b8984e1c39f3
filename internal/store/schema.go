package store

// DDL for the analytics tables, applied idempotently before a load.
// Foreign keys are deliberately absent: the dataset ships with broken
// references (bot user IDs) by design, and analytics workloads join by
// value anyway.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS cities (
		city_id TEXT PRIMARY KEY,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		population INTEGER NOT NULL,
		music_scene_score DOUBLE PRECISION NOT NULL,
		primary_genres JSONB NOT NULL,
		avg_ticket_price DOUBLE PRECISION NOT NULL,
		total_venues INTEGER NOT NULL,
		timezone TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		user_type TEXT NOT NULL,
		user_segment TEXT NOT NULL,
		join_date DATE NOT NULL,
		home_city TEXT NOT NULL,
		home_state TEXT NOT NULL,
		age_group TEXT NOT NULL,
		preferred_genres JSONB NOT NULL,
		profile_completeness DOUBLE PRECISION NOT NULL,
		email_verified BOOLEAN NOT NULL,
		push_notifications_enabled BOOLEAN NOT NULL,
		last_active_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		artist_id TEXT PRIMARY KEY,
		artist_name TEXT NOT NULL,
		formed_year INTEGER NOT NULL,
		origin_city TEXT NOT NULL,
		origin_state TEXT NOT NULL,
		origin_country TEXT NOT NULL,
		spotify_monthly_listeners INTEGER NOT NULL,
		instagram_followers INTEGER NOT NULL,
		genre_primary TEXT NOT NULL,
		genre_secondary TEXT NOT NULL,
		booking_price_min INTEGER NOT NULL,
		booking_price_max INTEGER NOT NULL,
		popularity_tier TEXT NOT NULL,
		tour_frequency TEXT NOT NULL,
		average_show_duration_minutes INTEGER NOT NULL,
		has_label BOOLEAN NOT NULL,
		verified_artist BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS venues (
		venue_id TEXT PRIMARY KEY,
		venue_name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zip_code TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		venue_type TEXT NOT NULL,
		capacity INTEGER NOT NULL,
		standing_room_capacity INTEGER NOT NULL,
		opened_year INTEGER NOT NULL,
		parking_available BOOLEAN NOT NULL,
		valet_parking BOOLEAN NOT NULL,
		food_available BOOLEAN NOT NULL,
		full_bar BOOLEAN NOT NULL,
		accessible_ada BOOLEAN NOT NULL,
		box_office BOOLEAN NOT NULL,
		typical_ticket_fee DOUBLE PRECISION NOT NULL,
		venue_website TEXT,
		phone TEXT NOT NULL,
		validated_capacity BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tours (
		tour_id TEXT PRIMARY KEY,
		tour_name TEXT NOT NULL,
		artist_id TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		number_of_shows INTEGER NOT NULL,
		tour_type TEXT NOT NULL,
		tour_legs INTEGER NOT NULL,
		production_level TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		event_id TEXT PRIMARY KEY,
		event_name TEXT NOT NULL,
		artist_id TEXT NOT NULL,
		venue_id TEXT NOT NULL,
		tour_id TEXT,
		event_date DATE NOT NULL,
		event_day_of_week TEXT NOT NULL,
		doors_time TEXT NOT NULL,
		show_time TEXT NOT NULL,
		announced_date DATE NOT NULL,
		on_sale_date DATE NOT NULL,
		base_ticket_price DOUBLE PRECISION NOT NULL,
		vip_ticket_price DOUBLE PRECISION,
		ticket_vendor TEXT NOT NULL,
		age_restriction TEXT,
		opening_acts JSONB,
		event_status TEXT NOT NULL,
		cancellation_reason TEXT,
		estimated_attendance INTEGER,
		weather_condition TEXT,
		special_event BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS event_ratings (
		rating_id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		rating_score DOUBLE PRECISION NOT NULL,
		rating_date DATE NOT NULL,
		days_after_event INTEGER NOT NULL,
		review_title TEXT,
		review_text TEXT,
		verified_attendance BOOLEAN NOT NULL,
		helpful_count INTEGER NOT NULL,
		reported BOOLEAN NOT NULL,
		aspects JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS venue_reviews (
		review_id TEXT PRIMARY KEY,
		venue_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		review_date DATE NOT NULL,
		overall_rating DOUBLE PRECISION NOT NULL,
		review_text TEXT NOT NULL,
		aspects JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS artist_ratings (
		artist_rating_id TEXT PRIMARY KEY,
		artist_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		rating_date DATE NOT NULL,
		overall_rating DOUBLE PRECISION NOT NULL,
		aspects JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ticket_sales (
		sale_id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		sale_date DATE NOT NULL,
		days_before_event INTEGER NOT NULL,
		quantity_sold INTEGER NOT NULL,
		ticket_type TEXT NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL,
		fees DOUBLE PRECISION NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_artist_follows (
		follow_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		artist_id TEXT NOT NULL,
		follow_date DATE NOT NULL,
		notifications_enabled BOOLEAN NOT NULL
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_events_artist ON events (artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_venue ON events (venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_date ON events (event_date)`,
	`CREATE INDEX IF NOT EXISTS idx_event_ratings_event ON event_ratings (event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_event_ratings_user ON event_ratings (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ticket_sales_event ON ticket_sales (event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_follows_user ON user_artist_follows (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_follows_artist ON user_artist_follows (artist_id)`,
}
