package collector

import (
	"database/sql"
	"fmt"
	"time"

	"YieldSentinel/internal/log"
	"YieldSentinel/internal/model"
	"YieldSentinel/internal/series"

	_ "modernc.org/sqlite"
)

// SQLiteLoader reads observations from an existing SQLite database with the table
//
//	observations(series TEXT, date TEXT, value REAL)
//
// where series holds the FRED code and date is formatted as 2006-01-02.
// NULL and non-finite values are skipped.
// The database is opened read-only.
type SQLiteLoader struct {
	db   *sql.DB
	path string
}

// NewSQLiteLoader opens the SQLite database at dbPath.
func NewSQLiteLoader(dbPath string) (*SQLiteLoader, error) {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Source: dbPath, Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &LoadError{Source: dbPath, Err: err}
	}

	log.Infof("sqlite source opened: %s", dbPath)
	return &SQLiteLoader{db: db, path: dbPath}, nil
}

func (l *SQLiteLoader) Name() string { return "sqlite" }

func (l *SQLiteLoader) Load(spec model.SeriesSpec) (map[time.Time]float64, error) {
	rows, err := l.db.Query(`SELECT date, value FROM observations WHERE series = ?`, spec.Code)
	if err != nil {
		return nil, &LoadError{Source: l.path, Err: fmt.Errorf("query %s: %w", spec.Code, err)}
	}
	defer rows.Close()

	data := make(map[time.Time]float64)
	for rows.Next() {
		var (
			date  string
			value sql.NullFloat64
		)
		if err := rows.Scan(&date, &value); err != nil {
			return nil, fmt.Errorf("scan %s: %w", spec.Code, err)
		}
		if !value.Valid || !finite(value.Float64) {
			continue
		}
		d, err := time.Parse(series.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("%s: parse date %q: %w", spec.Code, date, err)
		}
		data[series.Day(d)] = value.Float64
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", spec.Code, err)
	}
	return data, nil
}

func (l *SQLiteLoader) Close() error {
	log.Infof("closing sqlite source")
	return l.db.Close()
}
