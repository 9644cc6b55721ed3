// Package workflow runs the recession visual: load the short and long rates,
// derive their spread, chart the three series and report on the curve.
package workflow

import (
	"fmt"
	"time"

	"YieldSentinel/internal/calculator"
	"YieldSentinel/internal/chart"
	"YieldSentinel/internal/collector"
	"YieldSentinel/internal/log"
	"YieldSentinel/internal/model"
	"YieldSentinel/internal/notifier"
	"YieldSentinel/internal/series"
	"YieldSentinel/internal/strategy"
)

// DefaultTitle is the chart title of the recession visual.
const DefaultTitle = "Are we headed for a recession?"

// Workflow wires the collaborators of one recession-visual run.
type Workflow struct {
	Collector *collector.Collector
	Renderer  chart.Renderer
	Notifier  notifier.Notifier
	Short     model.SeriesSpec
	Long      model.SeriesSpec
	Title     string
}

// New creates a Workflow for the 3-month and 10-year Treasury rates.
func New(col *collector.Collector, r chart.Renderer, n notifier.Notifier) *Workflow {
	return &Workflow{
		Collector: col,
		Renderer:  r,
		Notifier:  n,
		Short:     model.DGS3MO(),
		Long:      model.DGS10(),
		Title:     DefaultTitle,
	}
}

// Result holds the aligned sequences handed to the renderer.
type Result struct {
	Dates      []time.Time
	Short      []float64
	Long       []float64
	Spread     []float64
	Indicators *model.CurveIndicators
	Signal     *model.CurveSignal
}

// Run executes the workflow once. The first failing step aborts the run.
func (w *Workflow) Run() (*Result, error) {
	short, err := w.Collector.Collect(w.Short)
	if err != nil {
		return nil, err
	}
	long, err := w.Collector.Collect(w.Long)
	if err != nil {
		return nil, err
	}

	// Dates follow the short series' order, restricted to those the long series has.
	dates, err := short.AllDates()
	if err != nil {
		return nil, fmt.Errorf("dates of %s: %w", short.Name, err)
	}
	dates = long.Filter(dates)

	diff, err := long.Difference(short)
	if err != nil {
		return nil, err
	}
	yDiff, err := diff.Values(dates)
	if err != nil {
		return nil, err
	}
	xDates := diff.Filter(dates)

	yShort, err := short.Values(dates)
	if err != nil {
		return nil, err
	}
	yLong, err := long.Values(dates)
	if err != nil {
		return nil, err
	}

	c := &chart.Chart{
		Title:      w.Title,
		XLabel:     "date",
		LeftLabel:  w.Short.Unit,
		RightLabel: "difference",
		Dates:      xDates,
		Left: []chart.Line{
			{Label: w.Short.Label(), Values: yShort},
			{Label: w.Long.Label(), Values: yLong},
		},
		Right: []chart.Line{
			{Label: diff.Name, Values: yDiff},
		},
	}
	if err := w.Renderer.Render(c); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	ind, err := calculator.Indicators(xDates, yShort, yLong, yDiff)
	if err != nil {
		return nil, fmt.Errorf("indicators: %w", err)
	}
	signal := strategy.Evaluate(ind)
	log.Infof("%s %+.2f on %s: %s", diff.Name, signal.Spread, ind.LatestDate.Format(series.DateLayout), signal.Regime.Label)

	if err := w.Notifier.Send(notifier.FormatSpreadReport(ind, signal)); err != nil {
		return nil, fmt.Errorf("send report: %w", err)
	}

	return &Result{
		Dates:      xDates,
		Short:      yShort,
		Long:       yLong,
		Spread:     yDiff,
		Indicators: ind,
		Signal:     signal,
	}, nil
}
