package strategy

import (
	"strings"
	"testing"
	"time"

	"YieldSentinel/internal/model"
)

var latest = time.Date(2019, 8, 30, 0, 0, 0, 0, time.UTC)

func TestEvaluate_NormalCurve(t *testing.T) {
	ind := &model.CurveIndicators{
		Observations: 500,
		LatestDate:   latest,
		LatestSpread: 0.9,
		ShortRate:    1.6,
		LongRate:     2.5,
		High1y:       1.2,
		Low1y:        0.4,
	}
	sig := Evaluate(ind)
	if sig == nil {
		t.Fatal("expected non-nil signal")
	}
	if sig.Regime.Kind != model.RegimeNormal {
		t.Errorf("expected NORMAL, got %s", sig.Regime.Kind)
	}
	if len(sig.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", sig.Warnings)
	}
	if sig.Inverted() {
		t.Error("normal curve should not be inverted")
	}
}

func TestEvaluate_PersistentInversion(t *testing.T) {
	start := latest.AddDate(0, -4, 0)
	ind := &model.CurveIndicators{
		LatestDate:   latest,
		LatestSpread: -0.52,
		Low1y:        -0.52,
		Inversions: []model.Inversion{{
			Start:        start,
			End:          latest,
			Observations: 80,
			Trough:       -0.52,
			TroughDate:   latest,
		}},
	}
	sig := Evaluate(ind)
	if sig.Regime.Kind != model.RegimeDeeplyInverted {
		t.Errorf("expected DEEPLY_INVERTED, got %s", sig.Regime.Kind)
	}
	if len(sig.Warnings) != 2 {
		t.Fatalf("expected inverted + persistent warnings, got %v", sig.Warnings)
	}
	if !strings.Contains(sig.Warnings[1], "persistent since 2019-04-30") {
		t.Errorf("unexpected persistent warning %q", sig.Warnings[1])
	}
}

func TestEvaluate_Resteepening(t *testing.T) {
	ind := &model.CurveIndicators{
		LatestDate:   latest,
		LatestSpread: 0.2,
		Low1y:        -0.3,
		Inversions: []model.Inversion{{
			Start:        latest.AddDate(0, -6, 0),
			End:          latest.AddDate(0, -1, 0),
			Observations: 90,
			Trough:       -0.3,
		}},
	}
	sig := Evaluate(ind)
	if sig.Regime.Kind != model.RegimeFlat {
		t.Errorf("expected FLAT, got %s", sig.Regime.Kind)
	}
	if len(sig.Warnings) != 1 || !strings.Contains(sig.Warnings[0], "re-steepening") {
		t.Errorf("expected only the re-steepening warning, got %v", sig.Warnings)
	}
}

func TestMapRegime_AllBoundaries(t *testing.T) {
	tests := []struct {
		spread float64
		kind   model.RegimeKind
	}{
		{3.0, model.RegimeSteep},
		{1.5, model.RegimeSteep},
		{1.49, model.RegimeNormal},
		{0.5, model.RegimeNormal},
		{0.49, model.RegimeFlat},
		{0.0, model.RegimeFlat},
		{-0.01, model.RegimeInverted},
		{-0.5, model.RegimeInverted},
		{-0.51, model.RegimeDeeplyInverted},
		{-2.0, model.RegimeDeeplyInverted},
	}
	for _, tt := range tests {
		regime := mapRegime(tt.spread)
		if regime.Kind != tt.kind {
			t.Errorf("spread %.2f: expected %s, got %s", tt.spread, tt.kind, regime.Kind)
		}
	}
}
