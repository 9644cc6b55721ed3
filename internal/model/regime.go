package model

// RegimeKind names the state of the yield curve.
type RegimeKind string

const (
	RegimeSteep          RegimeKind = "STEEP"
	RegimeNormal         RegimeKind = "NORMAL"
	RegimeFlat           RegimeKind = "FLAT"
	RegimeInverted       RegimeKind = "INVERTED"
	RegimeDeeplyInverted RegimeKind = "DEEPLY_INVERTED"
)

// CurveRegime maps a spread range to a label.
type CurveRegime struct {
	Kind      RegimeKind
	Label     string
	MinSpread float64 // inclusive lower bound, percentage points
}

// CurveSignal is the final output of the strategy engine.
type CurveSignal struct {
	Regime   CurveRegime
	Spread   float64
	Warnings []string
}

// Inverted reports whether the signal's regime has a negative spread.
func (s *CurveSignal) Inverted() bool {
	return s.Regime.Kind == RegimeInverted || s.Regime.Kind == RegimeDeeplyInverted
}
