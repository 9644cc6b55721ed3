package strategy

import "YieldSentinel/internal/model"

// Regimes maps the latest 10y-3m spread, in percentage points, to a curve regime.
// Checked top to bottom; MinSpread is inclusive.
var Regimes = []model.CurveRegime{
	{Kind: model.RegimeSteep, Label: "steep", MinSpread: 1.5},
	{Kind: model.RegimeNormal, Label: "normal", MinSpread: 0.5},
	{Kind: model.RegimeFlat, Label: "flat", MinSpread: 0},
	{Kind: model.RegimeInverted, Label: "inverted", MinSpread: -0.5},
}

// DefaultRegime is the regime for spreads below -0.5.
var DefaultRegime = model.CurveRegime{Kind: model.RegimeDeeplyInverted, Label: "deeply inverted"}

// mapRegime maps a spread to a CurveRegime.
func mapRegime(spread float64) model.CurveRegime {
	for _, r := range Regimes {
		if spread >= r.MinSpread {
			return r
		}
	}
	return DefaultRegime
}

// Evaluate classifies the curve and attaches warnings.
func Evaluate(ind *model.CurveIndicators) *model.CurveSignal {
	signal := &model.CurveSignal{
		Regime: mapRegime(ind.LatestSpread),
		Spread: ind.LatestSpread,
	}
	for _, check := range checks {
		if msg := check(ind); msg != "" {
			signal.Warnings = append(signal.Warnings, msg)
		}
	}
	return signal
}
