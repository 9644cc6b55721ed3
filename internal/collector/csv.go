package collector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"YieldSentinel/internal/model"
	"YieldSentinel/internal/series"
)

const (
	DefaultDateColumn = "DATE"
	// FRED renamed the date column in its newer downloads.
	fredDateColumn = "observation_date"
)

// CSVLoader reads FRED-style CSV downloads from a directory. The file for a
// series is <Dir>/<Code>.csv.
type CSVLoader struct {
	Dir        string
	DateColumn string
	DateLayout string
}

// NewCSVLoader creates a loader with FRED defaults.
func NewCSVLoader(dir string) *CSVLoader {
	return &CSVLoader{
		Dir:        dir,
		DateColumn: DefaultDateColumn,
		DateLayout: series.DateLayout,
	}
}

func (l *CSVLoader) Name() string { return "csv" }

// Path returns the file the loader reads for spec.
func (l *CSVLoader) Path(spec model.SeriesSpec) string {
	return filepath.Join(l.Dir, spec.Code+".csv")
}

func (l *CSVLoader) Load(spec model.SeriesSpec) (map[time.Time]float64, error) {
	path := l.Path(spec)
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer file.Close()

	data, err := ParseCSV(file, l.DateColumn, spec.Column, l.DateLayout)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return data, nil
}

// finite reports whether v is a usable observation. ParseFloat accepts
// "NaN" and "Inf", which cannot be charted.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseCSV reads date/value pairs from a CSV stream with a header row.
// Rows whose value does not parse as a finite float (FRED writes "." for
// days without an observation) are skipped. A row with a valid value and a bad
// date is an error.
func ParseCSV(r io.Reader, dateColumn, valueColumn, layout string) (map[time.Time]float64, error) {
	if dateColumn == "" {
		dateColumn = DefaultDateColumn
	}
	if layout == "" {
		layout = series.DateLayout
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx, valueIdx, fallbackIdx := -1, -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch h {
		case dateColumn:
			dateIdx = i
		case valueColumn:
			valueIdx = i
		case fredDateColumn:
			fallbackIdx = i
		}
	}
	if dateIdx == -1 {
		dateIdx = fallbackIdx
	}
	if dateIdx == -1 {
		return nil, fmt.Errorf("date column %q not found", dateColumn)
	}
	if valueIdx == -1 {
		return nil, fmt.Errorf("value column %q not found", valueColumn)
	}

	data := make(map[time.Time]float64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) || dateIdx >= len(record) {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(record[valueIdx]), 64)
		if err != nil || !finite(value) {
			continue
		}
		date, err := time.Parse(layout, strings.TrimSpace(record[dateIdx]))
		if err != nil {
			line, _ := reader.FieldPos(dateIdx)
			return nil, fmt.Errorf("line %d: parse date: %w", line, err)
		}
		data[series.Day(date)] = value
	}
	return data, nil
}
