// Package series holds the date/value time series used throughout YieldSentinel.
package series

import (
	"sort"
	"time"
)

// DateLayout is the calendar-date format used by FRED and in log output.
const DateLayout = "2006-01-02"

// Day truncates t to its calendar date at midnight UTC. Every key stored in a
// Series goes through Day, so lookups ignore clock time and location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Series maps calendar dates to values. The data is copied on construction
// and never exposed, so a Series does not change after New returns.
type Series struct {
	Name  string
	Title string
	Unit  string // empty when the unit is unknown

	data      map[time.Time]float64
	firstDate time.Time
	lastDate  time.Time
}

// New creates a Series. An empty title defaults to name; nil data is an empty series.
func New(name, title, unit string, data map[time.Time]float64) *Series {
	if title == "" {
		title = name
	}
	s := &Series{
		Name:  name,
		Title: title,
		Unit:  unit,
		data:  make(map[time.Time]float64, len(data)),
	}
	for d, v := range data {
		s.data[Day(d)] = v
	}
	s.computeBounds()
	return s
}

func (s *Series) computeBounds() {
	first := true
	for d := range s.data {
		if first || d.Before(s.firstDate) {
			s.firstDate = d
		}
		if first || d.After(s.lastDate) {
			s.lastDate = d
		}
		first = false
	}
}

// Len returns the number of dates with a value.
func (s *Series) Len() int {
	return len(s.data)
}

// Has reports whether the series has a value on date d.
func (s *Series) Has(d time.Time) bool {
	_, ok := s.data[Day(d)]
	return ok
}

// Value returns the value on date d.
func (s *Series) Value(d time.Time) (float64, bool) {
	v, ok := s.data[Day(d)]
	return v, ok
}

// Data returns a copy of the underlying date/value mapping.
func (s *Series) Data() map[time.Time]float64 {
	out := make(map[time.Time]float64, len(s.data))
	for d, v := range s.data {
		out[d] = v
	}
	return out
}

// FirstDate returns the earliest date in the series.
func (s *Series) FirstDate() (time.Time, error) {
	if len(s.data) == 0 {
		return time.Time{}, emptySeries(s.Name)
	}
	return s.firstDate, nil
}

// LastDate returns the latest date in the series.
func (s *Series) LastDate() (time.Time, error) {
	if len(s.data) == 0 {
		return time.Time{}, emptySeries(s.Name)
	}
	return s.lastDate, nil
}

// Bounds returns the first and last dates in the series.
func (s *Series) Bounds() (first, last time.Time, err error) {
	if len(s.data) == 0 {
		return time.Time{}, time.Time{}, emptySeries(s.Name)
	}
	return s.firstDate, s.lastDate, nil
}

// DateQuery selects dates from a series.
//
// When Candidates is non-nil, Start and End are ignored and the result keeps
// the candidates' order. Otherwise a zero Start or End falls back to the
// series' first or last date. A zero time.Time always means "not given", so
// an explicit time.Time{} bound behaves like an omitted one.
type DateQuery struct {
	Candidates []time.Time
	Start      time.Time
	End        time.Time
}

// Dates returns the dates for which the series has values and that satisfy q.
// Range results are sorted ascending and inclusive of both ends. Defaulting a
// bound on an empty series fails with ErrEmptySeries.
func (s *Series) Dates(q DateQuery) ([]time.Time, error) {
	if q.Candidates != nil {
		return s.Filter(q.Candidates), nil
	}

	start, end := q.Start, q.End
	if start.IsZero() || end.IsZero() {
		first, last, err := s.Bounds()
		if err != nil {
			return nil, err
		}
		if start.IsZero() {
			start = first
		}
		if end.IsZero() {
			end = last
		}
	}
	start, end = Day(start), Day(end)

	dates := make([]time.Time, 0, len(s.data))
	for d := range s.data {
		if !d.Before(start) && !d.After(end) {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// AllDates returns every date in the series in ascending order.
func (s *Series) AllDates() ([]time.Time, error) {
	return s.Dates(DateQuery{})
}

// Filter returns the candidates for which the series has a value, in
// candidate order.
func (s *Series) Filter(candidates []time.Time) []time.Time {
	out := make([]time.Time, 0, len(candidates))
	for _, d := range candidates {
		if s.Has(d) {
			out = append(out, Day(d))
		}
	}
	return out
}

// Values returns the values for dates, in the same order.
func (s *Series) Values(dates []time.Time) ([]float64, error) {
	out := make([]float64, len(dates))
	for i, d := range dates {
		v, ok := s.data[Day(d)]
		if !ok {
			return nil, &DateNotFoundError{Series: s.Name, Date: Day(d)}
		}
		out[i] = v
	}
	return out, nil
}

// Difference returns s minus other over their common dates.
func (s *Series) Difference(other *Series) (*Series, error) {
	return Difference(s, other)
}
