package calculator

import (
	"time"

	"YieldSentinel/internal/model"
)

// Inversions returns every maximal run of consecutive negative spreads.
// dates must be in ascending order.
func Inversions(dates []time.Time, spreads []float64) ([]model.Inversion, error) {
	if len(dates) != len(spreads) {
		return nil, errLengthMismatch
	}

	var out []model.Inversion
	var cur *model.Inversion
	for i, v := range spreads {
		if v >= 0 {
			if cur != nil {
				out = append(out, *cur)
				cur = nil
			}
			continue
		}
		if cur == nil {
			cur = &model.Inversion{Start: dates[i], Trough: v, TroughDate: dates[i]}
		}
		cur.End = dates[i]
		cur.Observations++
		if v < cur.Trough {
			cur.Trough = v
			cur.TroughDate = dates[i]
		}
	}
	if cur != nil {
		out = append(out, *cur)
	}
	return out, nil
}
