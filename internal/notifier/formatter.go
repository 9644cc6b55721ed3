package notifier

import (
	"fmt"
	"strings"

	"YieldSentinel/internal/model"
	"YieldSentinel/internal/series"
)

// FormatSpreadReport formats the curve indicators and signal as a plain-text report.
func FormatSpreadReport(ind *model.CurveIndicators, signal *model.CurveSignal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Yield curve report | %s\n\n", ind.LatestDate.Format(series.DateLayout)))

	b.WriteString(fmt.Sprintf("3-month: %.2f%% | 10-year: %.2f%%\n", ind.ShortRate, ind.LongRate))
	b.WriteString(fmt.Sprintf("10y-3m spread: %+.2f (%s)\n\n", signal.Spread, signal.Regime.Label))

	b.WriteString(fmt.Sprintf("Range over %d observations:\n", ind.Observations))
	b.WriteString(fmt.Sprintf("  high %+.2f on %s\n", ind.High, ind.HighDate.Format(series.DateLayout)))
	b.WriteString(fmt.Sprintf("  low  %+.2f on %s\n", ind.Low, ind.LowDate.Format(series.DateLayout)))
	b.WriteString(fmt.Sprintf("  trailing year %+.2f .. %+.2f\n\n", ind.Low1y, ind.High1y))

	b.WriteString(fmt.Sprintf("Inversions: %d (%d inverted observations)\n", len(ind.Inversions), ind.InvertedObservations))
	if n := len(ind.Inversions); n > 0 {
		last := ind.Inversions[n-1]
		b.WriteString(fmt.Sprintf("  last: %s to %s, trough %+.2f\n",
			last.Start.Format(series.DateLayout), last.End.Format(series.DateLayout), last.Trough))
	}

	for _, w := range signal.Warnings {
		b.WriteString(fmt.Sprintf("\nWARNING: %s", w))
	}
	if len(signal.Warnings) > 0 {
		b.WriteString("\n")
	}

	return b.String()
}
