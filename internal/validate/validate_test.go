package validate

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
	"github.com/bpbull/soundcheck-analytics/internal/gen"
)

func smallDataset() *dataset.Dataset {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	attendance := 400

	return &dataset.Dataset{
		Users:   []dataset.User{{ID: "USR_00001"}},
		Artists: []dataset.Artist{{ID: "ART_0001"}},
		Venues: []dataset.Venue{{
			ID:                   "VEN_0001",
			Capacity:             500,
			StandingRoomCapacity: 600,
		}},
		Tours: []dataset.Tour{{
			ID:        "TOUR_001",
			ArtistID:  "ART_0001",
			StartDate: date,
			EndDate:   date.AddDate(0, 2, 0),
		}},
		Events: []dataset.Event{{
			ID:                  "EVT_00001",
			ArtistID:            "ART_0001",
			VenueID:             "VEN_0001",
			Date:                date,
			AnnouncedDate:       date.AddDate(0, 0, -60),
			OnSaleDate:          date.AddDate(0, 0, -55),
			EstimatedAttendance: &attendance,
		}},
		EventRatings: []dataset.EventRating{{
			ID:      "RAT_000001",
			EventID: "EVT_00001",
			UserID:  "USR_00001",
			Score:   4.5,
		}},
		TicketSales: []dataset.TicketSale{{
			ID:       "TKT_00001",
			EventID:  "EVT_00001",
			Quantity: 2,
		}},
		Follows: []dataset.Follow{{
			ID:       "FOL_00001",
			UserID:   "USR_00001",
			ArtistID: "ART_0001",
		}},
	}
}

func TestCheckCleanDataset(t *testing.T) {
	report := Check(smallDataset())
	if !report.OK() {
		t.Fatalf("expected clean report, got %d issues: %v", len(report.Issues), report.Issues)
	}
	if report.BotRangeRefs != 0 {
		t.Errorf("expected no bot range refs, got %d", report.BotRangeRefs)
	}
}

func TestCheckFindsBrokenReferences(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dataset.Dataset)
		wantTable string
		wantField string
	}{
		{
			name: "event with missing artist",
			mutate: func(d *dataset.Dataset) {
				d.Events[0].ArtistID = "ART_9999"
			},
			wantTable: dataset.TableEvents,
			wantField: "artist_id",
		},
		{
			name: "event with missing venue",
			mutate: func(d *dataset.Dataset) {
				d.Events[0].VenueID = "VEN_9999"
			},
			wantTable: dataset.TableEvents,
			wantField: "venue_id",
		},
		{
			name: "attendance above standing room",
			mutate: func(d *dataset.Dataset) {
				over := 700
				d.Events[0].EstimatedAttendance = &over
			},
			wantTable: dataset.TableEvents,
			wantField: "estimated_attendance",
		},
		{
			name: "rating for missing event",
			mutate: func(d *dataset.Dataset) {
				d.EventRatings[0].EventID = "EVT_99999"
			},
			wantTable: dataset.TableEventRatings,
			wantField: "event_id",
		},
		{
			name: "rating score out of scale",
			mutate: func(d *dataset.Dataset) {
				d.EventRatings[0].Score = 5.5
			},
			wantTable: dataset.TableEventRatings,
			wantField: "rating_score",
		},
		{
			name: "tour for missing artist",
			mutate: func(d *dataset.Dataset) {
				d.Tours[0].ArtistID = "ART_9999"
			},
			wantTable: dataset.TableTours,
			wantField: "artist_id",
		},
		{
			name: "sale for missing event",
			mutate: func(d *dataset.Dataset) {
				d.TicketSales[0].EventID = "EVT_99999"
			},
			wantTable: dataset.TableTicketSales,
			wantField: "event_id",
		},
		{
			name: "follow for missing user",
			mutate: func(d *dataset.Dataset) {
				d.Follows[0].UserID = "USR_99999"
			},
			wantTable: dataset.TableFollows,
			wantField: "user_id",
		},
		{
			name: "on sale before announcement",
			mutate: func(d *dataset.Dataset) {
				d.Events[0].OnSaleDate = d.Events[0].AnnouncedDate.AddDate(0, 0, -1)
			},
			wantTable: dataset.TableEvents,
			wantField: "on_sale_date",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := smallDataset()
			tc.mutate(d)

			report := Check(d)
			if report.OK() {
				t.Fatal("expected issues, got clean report")
			}
			found := false
			for _, issue := range report.Issues {
				if issue.Table == tc.wantTable && issue.Field == tc.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no issue for %s.%s, got %v", tc.wantTable, tc.wantField, report.Issues)
			}
		})
	}
}

func TestCheckDetectsDoubleBooking(t *testing.T) {
	d := smallDataset()
	d.Events = append(d.Events, dataset.Event{
		ID:            "EVT_00002",
		ArtistID:      "ART_0001",
		VenueID:       "VEN_0001",
		Date:          d.Events[0].Date,
		AnnouncedDate: d.Events[0].AnnouncedDate,
		OnSaleDate:    d.Events[0].OnSaleDate,
	})

	report := Check(d)
	if report.OK() {
		t.Fatal("expected a double-booking issue")
	}
}

func TestCheckClassifiesBotRangeReferences(t *testing.T) {
	d := smallDataset()
	d.EventRatings = append(d.EventRatings,
		dataset.EventRating{ID: "RAT_000002", EventID: "EVT_00001", UserID: "USR_09123", Score: 1.0},
		dataset.EventRating{ID: "RAT_000003", EventID: "EVT_00001", UserID: "USR_00042", Score: 3.0},
	)

	report := Check(d)
	if report.BotRangeRefs != 1 {
		t.Errorf("expected 1 bot range ref, got %d", report.BotRangeRefs)
	}
	// The non-bot dangling user is a real issue.
	if report.OK() {
		t.Fatal("expected an issue for the dangling non-bot user")
	}
}

// A freshly generated dataset must pass validation apart from bot range
// references, whose target users only exist at full scale.
func TestGeneratedDatasetPassesCheck(t *testing.T) {
	cfg := gen.Config{
		Seed:    11,
		Now:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Users:   200,
		Artists: 40,
		Venues:  20,
		Tours:   10,
		Events:  200,
	}
	d, err := gen.New(cfg, zerolog.Nop()).GenerateAll()
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}

	report := Check(d)
	if !report.OK() {
		for i, issue := range report.Issues {
			if i == 10 {
				break
			}
			t.Logf("issue: %s", issue)
		}
		t.Fatalf("generated dataset failed validation with %d issues", len(report.Issues))
	}
}

func TestInBotRange(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"USR_09000", true},
		{"USR_09999", true},
		{"USR_08999", false},
		{"USR_10000", false},
		{"ART_09500", false},
		{"USR_0nine", false},
	}

	for _, tc := range tests {
		if got := inBotRange(tc.id); got != tc.want {
			t.Errorf("inBotRange(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
