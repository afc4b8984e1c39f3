package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
	"github.com/bpbull/soundcheck-analytics/internal/gen"
)

func smallGenConfig() gen.Config {
	return gen.Config{
		Seed:    3,
		Now:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Users:   100,
		Artists: 30,
		Venues:  15,
		Tours:   8,
		Events:  120,
	}
}

func generateSmall(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := gen.New(smallGenConfig(), zerolog.Nop()).GenerateAll()
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	return d
}

func TestWriteCSVCreatesAllTables(t *testing.T) {
	dir := t.TempDir()
	d := generateSmall(t)

	counts, err := WriteCSV(dir, d)
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	tables := []string{
		dataset.TableCities, dataset.TableUsers, dataset.TableArtists,
		dataset.TableVenues, dataset.TableTours, dataset.TableEvents,
		dataset.TableEventRatings, dataset.TableVenueReviews,
		dataset.TableArtistRating, dataset.TableTicketSales, dataset.TableFollows,
	}
	for _, table := range tables {
		path := filepath.Join(dir, table+".csv")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing CSV for %s: %v", table, err)
		}
		if counts[table] == 0 {
			t.Errorf("zero records reported for %s", table)
		}
	}

	if counts[dataset.TableEvents] != len(d.Events) {
		t.Errorf("event count %d, want %d", counts[dataset.TableEvents], len(d.Events))
	}
}

func TestWriteCSVRowShape(t *testing.T) {
	dir := t.TempDir()
	d := generateSmall(t)

	if _, err := WriteCSV(dir, d); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, dataset.TableEvents+".csv"))
	if err != nil {
		t.Fatalf("open events.csv: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read events.csv: %v", err)
	}
	if len(records) != len(d.Events)+1 {
		t.Fatalf("expected %d rows incl header, got %d", len(d.Events)+1, len(records))
	}

	header := records[0]
	if header[0] != "event_id" || header[len(header)-1] != "special_event" {
		t.Errorf("unexpected header shape: %v", header)
	}

	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %q not in header", name)
		return -1
	}

	dateCol := col("event_date")
	statusCol := col("event_status")
	attendanceCol := col("estimated_attendance")

	for i, row := range records[1:] {
		if len(row) != len(header) {
			t.Fatalf("row %d has %d fields, want %d", i, len(row), len(header))
		}
		if _, err := time.Parse("2006-01-02", row[dateCol]); err != nil {
			t.Errorf("row %d event_date %q not a date", i, row[dateCol])
		}
		if row[statusCol] == string(dataset.StatusScheduled) && row[attendanceCol] != "" {
			t.Errorf("row %d scheduled with attendance %q", i, row[attendanceCol])
		}
	}
}

func TestWriteCSVEmbedsNestedJSON(t *testing.T) {
	dir := t.TempDir()
	d := generateSmall(t)

	if _, err := WriteCSV(dir, d); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, dataset.TableEventRatings+".csv"))
	if err != nil {
		t.Fatalf("open event_ratings.csv: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read event_ratings.csv: %v", err)
	}
	if len(records) < 2 {
		t.Fatal("no rating rows")
	}

	aspectsIdx := len(records[0]) - 1
	if records[0][aspectsIdx] != "aspects" {
		t.Fatalf("last column is %q, want aspects", records[0][aspectsIdx])
	}

	var aspects dataset.EventAspects
	if err := json.Unmarshal([]byte(records[1][aspectsIdx]), &aspects); err != nil {
		t.Fatalf("aspects column is not valid JSON: %v", err)
	}
	if aspects.SoundQuality < 1 || aspects.SoundQuality > 5 {
		t.Errorf("decoded sound quality %v outside scale", aspects.SoundQuality)
	}
}

func TestWriteCSVIsDeterministic(t *testing.T) {
	d1 := generateSmall(t)
	d2 := generateSmall(t)

	dir1, dir2 := t.TempDir(), t.TempDir()
	if _, err := WriteCSV(dir1, d1); err != nil {
		t.Fatalf("first WriteCSV: %v", err)
	}
	if _, err := WriteCSV(dir2, d2); err != nil {
		t.Fatalf("second WriteCSV: %v", err)
	}

	for _, table := range []string{dataset.TableUsers, dataset.TableEvents, dataset.TableEventRatings} {
		b1, err := os.ReadFile(filepath.Join(dir1, table+".csv"))
		if err != nil {
			t.Fatalf("read first %s: %v", table, err)
		}
		b2, err := os.ReadFile(filepath.Join(dir2, table+".csv"))
		if err != nil {
			t.Fatalf("read second %s: %v", table, err)
		}
		if !bytes.Equal(b1, b2) {
			t.Errorf("%s.csv differs between identical runs", table)
		}
	}
}

func TestWriteDictionary(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDictionary(dir); err != nil {
		t.Fatalf("WriteDictionary: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "data_dictionary.md"))
	if err != nil {
		t.Fatalf("read dictionary: %v", err)
	}
	content := string(b)

	for _, table := range []string{
		dataset.TableCities, dataset.TableEvents, dataset.TableEventRatings,
		dataset.TableTicketSales, dataset.TableFollows,
	} {
		if !strings.Contains(content, "## "+table) {
			t.Errorf("dictionary missing section for %s", table)
		}
	}
	if !strings.Contains(content, "USR_09000-09999") {
		t.Error("dictionary does not document the bot ID range")
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	m := Manifest{
		RunID:       uuid.New(),
		Seed:        42,
		AnchorDate:  "2025-06-15",
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Records:     map[string]int{dataset.TableCities: 15},
	}

	if err := WriteManifest(dir, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	var got Manifest
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if got.RunID != m.RunID || got.Seed != m.Seed || got.AnchorDate != m.AnchorDate {
		t.Errorf("round-tripped manifest mismatch: %+v", got)
	}
	if got.Records[dataset.TableCities] != 15 {
		t.Errorf("records not preserved: %+v", got.Records)
	}
}
