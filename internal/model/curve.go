package model

import "time"

// CurveIndicators holds the computed yield-curve figures for one run.
type CurveIndicators struct {
	Observations int
	LatestDate   time.Time
	LatestSpread float64
	ShortRate    float64
	LongRate     float64

	High     float64
	HighDate time.Time
	Low      float64
	LowDate  time.Time

	// Over the trailing year of observations.
	High1y float64
	Low1y  float64

	InvertedObservations int
	Inversions           []Inversion
}

// Inversion is a maximal run of consecutive observations with a negative spread.
type Inversion struct {
	Start        time.Time
	End          time.Time
	Observations int
	Trough       float64
	TroughDate   time.Time
}

// Ongoing returns the inversion that runs through the latest observation, or nil.
func (ind *CurveIndicators) Ongoing() *Inversion {
	if len(ind.Inversions) == 0 {
		return nil
	}
	last := &ind.Inversions[len(ind.Inversions)-1]
	if last.End.Equal(ind.LatestDate) {
		return last
	}
	return nil
}
