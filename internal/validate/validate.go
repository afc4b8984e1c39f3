// Package validate checks referential integrity of a generated dataset.
// The intentional quality defects (duplicates, temporal anomalies, name
// variations) are data-level and pass validation; only broken foreign
// keys and impossible values are reported.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

// Bot-generated ratings reuse user IDs from this range. When the user
// table is too small to contain them, dangling bot references are
// reported under their own category instead of as plain FK breaks.
const (
	BotUserMin = 9000
	BotUserMax = 9999
)

// Issue is one validation finding.
type Issue struct {
	Table    string
	RecordID string
	Field    string
	Detail   string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s %s", i.Table, i.RecordID, i.Field, i.Detail)
}

// Report aggregates validation findings per table.
type Report struct {
	Issues       []Issue
	BotRangeRefs int // rating user IDs in the bot range with no matching user
}

// OK reports whether the dataset passed with no findings outside the
// declared bot range.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

func (r *Report) add(table, record, field, detail string) {
	r.Issues = append(r.Issues, Issue{Table: table, RecordID: record, Field: field, Detail: detail})
}

// Log writes a summary of the report, listing at most the first ten
// individual findings.
func (r *Report) Log(log zerolog.Logger) {
	if r.OK() {
		log.Info().
			Int("bot_range_refs", r.BotRangeRefs).
			Msg("referential integrity check passed")
		return
	}
	log.Warn().
		Int("issues", len(r.Issues)).
		Int("bot_range_refs", r.BotRangeRefs).
		Msg("referential integrity check failed")
	for i, issue := range r.Issues {
		if i == 10 {
			log.Warn().Int("omitted", len(r.Issues)-10).Msg("further issues omitted")
			break
		}
		log.Warn().
			Str("table", issue.Table).
			Str("record", issue.RecordID).
			Str("field", issue.Field).
			Msg(issue.Detail)
	}
}

// Check runs every integrity rule against the dataset.
func Check(d *dataset.Dataset) *Report {
	r := &Report{}

	users := make(map[string]struct{}, len(d.Users))
	for _, u := range d.Users {
		users[u.ID] = struct{}{}
	}
	artists := make(map[string]struct{}, len(d.Artists))
	for _, a := range d.Artists {
		artists[a.ID] = struct{}{}
	}
	venues := make(map[string]*dataset.Venue, len(d.Venues))
	for i := range d.Venues {
		venues[d.Venues[i].ID] = &d.Venues[i]
	}
	tours := make(map[string]struct{}, len(d.Tours))
	for _, t := range d.Tours {
		tours[t.ID] = struct{}{}
	}
	events := make(map[string]*dataset.Event, len(d.Events))
	for i := range d.Events {
		events[d.Events[i].ID] = &d.Events[i]
	}

	for _, t := range d.Tours {
		if _, ok := artists[t.ArtistID]; !ok {
			r.add(dataset.TableTours, t.ID, "artist_id", "references missing artist "+t.ArtistID)
		}
		if t.EndDate.Before(t.StartDate) {
			r.add(dataset.TableTours, t.ID, "end_date", "ends before it starts")
		}
	}

	artistDates := make(map[string]map[string]string, len(d.Artists))
	for _, e := range d.Events {
		if _, ok := artists[e.ArtistID]; !ok {
			r.add(dataset.TableEvents, e.ID, "artist_id", "references missing artist "+e.ArtistID)
		}
		venue, ok := venues[e.VenueID]
		if !ok {
			r.add(dataset.TableEvents, e.ID, "venue_id", "references missing venue "+e.VenueID)
		}
		if e.TourID != nil {
			if _, ok := tours[*e.TourID]; !ok {
				r.add(dataset.TableEvents, e.ID, "tour_id", "references missing tour "+*e.TourID)
			}
		}
		if e.EstimatedAttendance != nil && venue != nil {
			limit := venue.Capacity
			if venue.StandingRoomCapacity > limit {
				limit = venue.StandingRoomCapacity
			}
			if *e.EstimatedAttendance > limit {
				r.add(dataset.TableEvents, e.ID, "estimated_attendance",
					fmt.Sprintf("attendance %d exceeds venue capacity %d", *e.EstimatedAttendance, limit))
			}
		}
		if e.OnSaleDate.Before(e.AnnouncedDate) {
			r.add(dataset.TableEvents, e.ID, "on_sale_date", "on sale before announcement")
		}

		day := e.Date.Format("2006-01-02")
		if dates := artistDates[e.ArtistID]; dates == nil {
			artistDates[e.ArtistID] = map[string]string{day: e.ID}
		} else if other, booked := dates[day]; booked {
			r.add(dataset.TableEvents, e.ID, "event_date",
				"artist double-booked on "+day+" with "+other)
		} else {
			dates[day] = e.ID
		}
	}

	for _, rt := range d.EventRatings {
		if _, ok := events[rt.EventID]; !ok {
			r.add(dataset.TableEventRatings, rt.ID, "event_id", "references missing event "+rt.EventID)
		}
		if _, ok := users[rt.UserID]; !ok {
			if inBotRange(rt.UserID) {
				r.BotRangeRefs++
			} else {
				r.add(dataset.TableEventRatings, rt.ID, "user_id", "references missing user "+rt.UserID)
			}
		}
		if rt.Score < 1 || rt.Score > 5 {
			r.add(dataset.TableEventRatings, rt.ID, "rating_score",
				fmt.Sprintf("score %.2f outside [1,5]", rt.Score))
		}
	}

	for _, rv := range d.VenueReviews {
		if _, ok := venues[rv.VenueID]; !ok {
			r.add(dataset.TableVenueReviews, rv.ID, "venue_id", "references missing venue "+rv.VenueID)
		}
		if _, ok := users[rv.UserID]; !ok {
			r.add(dataset.TableVenueReviews, rv.ID, "user_id", "references missing user "+rv.UserID)
		}
	}

	for _, ar := range d.ArtistRatings {
		if _, ok := artists[ar.ArtistID]; !ok {
			r.add(dataset.TableArtistRating, ar.ID, "artist_id", "references missing artist "+ar.ArtistID)
		}
		if _, ok := users[ar.UserID]; !ok {
			r.add(dataset.TableArtistRating, ar.ID, "user_id", "references missing user "+ar.UserID)
		}
	}

	for _, s := range d.TicketSales {
		if _, ok := events[s.EventID]; !ok {
			r.add(dataset.TableTicketSales, s.ID, "event_id", "references missing event "+s.EventID)
		}
		if s.Quantity < 1 {
			r.add(dataset.TableTicketSales, s.ID, "quantity_sold", "non-positive quantity")
		}
	}

	for _, f := range d.Follows {
		if _, ok := users[f.UserID]; !ok {
			r.add(dataset.TableFollows, f.ID, "user_id", "references missing user "+f.UserID)
		}
		if _, ok := artists[f.ArtistID]; !ok {
			r.add(dataset.TableFollows, f.ID, "artist_id", "references missing artist "+f.ArtistID)
		}
	}

	return r
}

func inBotRange(userID string) bool {
	rest, ok := strings.CutPrefix(userID, "USR_")
	if !ok {
		return false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return false
	}
	return n >= BotUserMin && n <= BotUserMax
}
