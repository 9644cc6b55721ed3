package collector

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"YieldSentinel/internal/model"
	"YieldSentinel/internal/series"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseCSV(t *testing.T) {
	csvData := `DATE,DGS10
2019-03-20,2.54
2019-03-21,2.54
2019-03-22,.
2019-03-25,2.43
2019-03-26,
2019-03-27,NaN
2019-03-28,+Inf
2019-03-29,-inf`

	data, err := ParseCSV(strings.NewReader(csvData), "DATE", "DGS10", "")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("expected 3 observations, got %d: %v", len(data), data)
	}
	if data[date(2019, 3, 25)] != 2.43 {
		t.Errorf("expected 2.43 on 2019-03-25, got %v", data[date(2019, 3, 25)])
	}
	if _, ok := data[date(2019, 3, 22)]; ok {
		t.Error("row with '.' value should be skipped")
	}
	for _, d := range []time.Time{date(2019, 3, 27), date(2019, 3, 28), date(2019, 3, 29)} {
		if v, ok := data[d]; ok {
			t.Errorf("non-finite row on %s should be skipped, got %v", d.Format(series.DateLayout), v)
		}
	}
}

func TestParseCSV_ObservationDateFallback(t *testing.T) {
	csvData := "observation_date,DGS3MO\n2024-01-02,5.46\n2024-01-03,5.48\n"

	data, err := ParseCSV(strings.NewReader(csvData), DefaultDateColumn, "DGS3MO", series.DateLayout)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(data) != 2 || data[date(2024, 1, 3)] != 5.48 {
		t.Errorf("unexpected data %v", data)
	}
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no date column", "DAY,DGS10\n2019-01-01,1\n"},
		{"no value column", "DATE,DGS2\n2019-01-01,1\n"},
		{"bad date", "DATE,DGS10\n01/02/2019,2.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCSV(strings.NewReader(tt.data), "DATE", "DGS10", ""); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCSVLoader(t *testing.T) {
	dir := t.TempDir()
	content := "DATE,DGS10\n2019-03-20,2.54\n2019-03-21,.\n"
	if err := os.WriteFile(filepath.Join(dir, "DGS10.csv"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewCSVLoader(dir)
	data, err := loader.Load(model.DGS10())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data) != 1 || data[date(2019, 3, 20)] != 2.54 {
		t.Errorf("unexpected data %v", data)
	}

	_, err = loader.Load(model.DGS3MO())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError for missing file, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected LoadError to unwrap to os.ErrNotExist, got %v", err)
	}
}

func TestFredFetcher(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graph/fredgraph.csv" {
			http.NotFound(w, r)
			return
		}
		gotID = r.URL.Query().Get("id")
		if gotID == "MISSING" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, "observation_date,%s\n2024-01-02,3.95\n2024-01-03,\n", gotID)
	}))
	defer srv.Close()

	f := NewFredFetcher(srv.URL+"/", "")
	data, err := f.Load(model.DGS10())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotID != "DGS10" {
		t.Errorf("expected id DGS10, got %q", gotID)
	}
	if len(data) != 1 || data[date(2024, 1, 2)] != 3.95 {
		t.Errorf("unexpected data %v", data)
	}

	_, err = f.Load(model.NewSeriesSpec("MISSING", "", "", ""))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Errorf("expected *LoadError for 404, got %v", err)
	}
}

func TestFredFetcher_BadURL(t *testing.T) {
	f := NewFredFetcher("http://bad host", "")
	_, err := f.Load(model.DGS10())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError for malformed URL, got %v", err)
	}
	if !strings.Contains(le.Source, "bad host") {
		t.Errorf("expected source to name the URL, got %q", le.Source)
	}
}

func TestNewFredFetcher_BadProxy(t *testing.T) {
	f := NewFredFetcher("", "http://proxy host:8080")
	transport, ok := f.Client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("unexpected transport %T", f.Client.Transport)
	}
	if transport.Proxy != nil {
		t.Error("invalid proxy URL should leave the transport without a proxy")
	}
}

func TestSQLiteLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fred.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	stmts := []string{
		`CREATE TABLE observations (series TEXT, date TEXT, value REAL)`,
		`INSERT INTO observations VALUES ('DGS10', '2019-03-20', 2.54)`,
		`INSERT INTO observations VALUES ('DGS10', '2019-03-21', NULL)`,
		`INSERT INTO observations VALUES ('DGS10', '2019-03-22', 9e999)`,
		`INSERT INTO observations VALUES ('DGS10', '2019-03-25', -9e999)`,
		`INSERT INTO observations VALUES ('DGS3MO', '2019-03-20', 2.49)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	db.Close()

	loader, err := NewSQLiteLoader(path)
	if err != nil {
		t.Fatalf("NewSQLiteLoader: %v", err)
	}
	defer loader.Close()

	data, err := loader.Load(model.DGS10())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data) != 1 || data[date(2019, 3, 20)] != 2.54 {
		t.Errorf("unexpected data %v", data)
	}
}

func TestNewSQLiteLoader_Missing(t *testing.T) {
	_, err := NewSQLiteLoader(filepath.Join(t.TempDir(), "nope.db"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Errorf("expected *LoadError, got %v", err)
	}
}

func TestCollector(t *testing.T) {
	col := NewCollector(&MockLoader{Data: map[string]map[time.Time]float64{
		"DGS10":  {date(2019, 3, 20): 2.54, date(2019, 3, 21): 2.50},
		"DGS3MO": {},
	}})

	s, err := col.Collect(model.DGS10())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if s.Name != "dgs10" || s.Title != "10-Year Treasury" || s.Unit != "percent" {
		t.Errorf("unexpected metadata %q %q %q", s.Name, s.Title, s.Unit)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 observations, got %d", s.Len())
	}

	if _, err := col.Collect(model.DGS3MO()); !errors.Is(err, series.ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries for empty source, got %v", err)
	}

	failing := NewCollector(&MockLoader{Err: &LoadError{Source: "x", Err: os.ErrNotExist}})
	if _, err := failing.Collect(model.DGS10()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected load error to propagate, got %v", err)
	}
}
