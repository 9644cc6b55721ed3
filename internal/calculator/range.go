package calculator

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/floats"
)

// TradingYear is roughly one year of business-day observations.
const TradingYear = 252

var errLengthMismatch = errors.New("dates and values must have the same length")

// Range returns the high and low of values with the dates they occurred on.
// Ties resolve to the earliest date.
func Range(dates []time.Time, values []float64) (high float64, highDate time.Time, low float64, lowDate time.Time, err error) {
	if len(dates) != len(values) {
		return 0, time.Time{}, 0, time.Time{}, errLengthMismatch
	}
	if len(values) == 0 {
		return 0, time.Time{}, 0, time.Time{}, errors.New("no values provided")
	}
	hi := floats.MaxIdx(values)
	lo := floats.MinIdx(values)
	return values[hi], dates[hi], values[lo], dates[lo], nil
}

// TrailingRange scans the most recent n values and returns the high and low.
func TrailingRange(values []float64, n int) (high, low float64, err error) {
	if len(values) == 0 {
		return 0, 0, errors.New("no values provided")
	}
	if n <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	start := len(values) - n
	if start < 0 {
		start = 0
	}
	window := values[start:]
	return floats.Max(window), floats.Min(window), nil
}
