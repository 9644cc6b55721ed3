package calculator

import (
	"fmt"
	"time"

	"YieldSentinel/internal/model"
)

// Indicators computes the curve figures from aligned sequences. All slices
// must have the same length and dates must be ascending.
func Indicators(dates []time.Time, short, long, spread []float64) (*model.CurveIndicators, error) {
	n := len(dates)
	if len(short) != n || len(long) != n || len(spread) != n {
		return nil, errLengthMismatch
	}
	if n == 0 {
		return nil, fmt.Errorf("no observations")
	}

	ind := &model.CurveIndicators{
		Observations: n,
		LatestDate:   dates[n-1],
		LatestSpread: spread[n-1],
		ShortRate:    short[n-1],
		LongRate:     long[n-1],
	}

	var err error
	ind.High, ind.HighDate, ind.Low, ind.LowDate, err = Range(dates, spread)
	if err != nil {
		return nil, fmt.Errorf("spread range: %w", err)
	}
	ind.High1y, ind.Low1y, err = TrailingRange(spread, TradingYear)
	if err != nil {
		return nil, fmt.Errorf("trailing range: %w", err)
	}

	ind.Inversions, err = Inversions(dates, spread)
	if err != nil {
		return nil, fmt.Errorf("inversions: %w", err)
	}
	for _, inv := range ind.Inversions {
		ind.InvertedObservations += inv.Observations
	}
	return ind, nil
}
