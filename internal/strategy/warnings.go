package strategy

import (
	"fmt"

	"YieldSentinel/internal/model"
	"YieldSentinel/internal/series"
)

// PersistentInversion is the number of consecutive inverted observations
// (about one quarter of business days) after which an inversion is flagged
// as persistent.
const PersistentInversion = 63

var checks = []func(*model.CurveIndicators) string{
	checkInverted,
	checkPersistent,
	checkResteepening,
}

// checkInverted fires while the latest spread is negative.
func checkInverted(ind *model.CurveIndicators) string {
	if ind.LatestSpread >= 0 {
		return ""
	}
	return fmt.Sprintf("yield curve inverted: 10y-3m spread %+.2f on %s",
		ind.LatestSpread, ind.LatestDate.Format(series.DateLayout))
}

// checkPersistent fires when the ongoing inversion has lasted a quarter or more.
func checkPersistent(ind *model.CurveIndicators) string {
	inv := ind.Ongoing()
	if inv == nil || inv.Observations < PersistentInversion {
		return ""
	}
	return fmt.Sprintf("inversion persistent since %s (%d observations, trough %+.2f on %s)",
		inv.Start.Format(series.DateLayout), inv.Observations,
		inv.Trough, inv.TroughDate.Format(series.DateLayout))
}

// checkResteepening fires when the curve is positive again after inverting
// within the trailing year. Recessions have historically started during
// this phase.
func checkResteepening(ind *model.CurveIndicators) string {
	if ind.LatestSpread < 0 || ind.Low1y >= 0 {
		return ""
	}
	return fmt.Sprintf("curve re-steepening after inversion: trailing-year low %+.2f, now %+.2f",
		ind.Low1y, ind.LatestSpread)
}
