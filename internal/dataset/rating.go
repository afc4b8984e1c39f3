package dataset

import "time"

// EventAspects are the six sub-dimension scores attached to every event
// rating, each derived from the overall score with independent noise.
// Serialized as an embedded JSON object in a single CSV column.
type EventAspects struct {
	SoundQuality        float64 `json:"sound_quality"`
	VenueExperience     float64 `json:"venue_experience"`
	PerformanceEnergy   float64 `json:"performance_energy"`
	SetlistSatisfaction float64 `json:"setlist_satisfaction"`
	CrowdVibe           float64 `json:"crowd_vibe"`
	ValueForMoney       float64 `json:"value_for_money"`
}

// EventRating is one user's score for one event. Uniqueness over
// (user_id, event_id) is deliberately NOT enforced: duplicate rows and
// bot-injected rows are part of the dataset's design.
type EventRating struct {
	ID                 string       `json:"rating_id"`
	EventID            string       `json:"event_id"`
	UserID             string       `json:"user_id"`
	Score              float64      `json:"rating_score"` // 1-5 in 0.5 steps
	Date               time.Time    `json:"rating_date"`
	DaysAfterEvent     int          `json:"days_after_event"` // negative for timezone anomalies
	ReviewTitle        *string      `json:"review_title,omitempty"`
	ReviewText         *string      `json:"review_text,omitempty"`
	VerifiedAttendance bool         `json:"verified_attendance"`
	HelpfulCount       int          `json:"helpful_count"`
	Reported           bool         `json:"reported"`
	Aspects            EventAspects `json:"aspects"`
}
