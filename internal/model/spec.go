package model

import "strings"

// SeriesSpec describes one economic series and where its values live.
type SeriesSpec struct {
	Code   string // FRED series id, also the CSV file stem, e.g. "DGS10"
	Name   string // short identifier, lower-cased code
	Title  string
	Unit   string
	Column string // CSV value column
}

// NewSeriesSpec builds a spec. An empty column defaults to the code.
func NewSeriesSpec(code, title, unit, column string) SeriesSpec {
	if column == "" {
		column = code
	}
	return SeriesSpec{
		Code:   code,
		Name:   strings.ToLower(code),
		Title:  title,
		Unit:   unit,
		Column: column,
	}
}

// Label is the legend text for the series, e.g. "dgs10: 10-Year Treasury".
func (s SeriesSpec) Label() string {
	if s.Title == "" {
		return s.Name
	}
	return s.Name + ": " + s.Title
}

// DGS3MO is the 3-month Treasury constant maturity rate.
func DGS3MO() SeriesSpec {
	return NewSeriesSpec("DGS3MO", "3-Month Treasury", "percent", "")
}

// DGS10 is the 10-year Treasury constant maturity rate.
func DGS10() SeriesSpec {
	return NewSeriesSpec("DGS10", "10-Year Treasury", "percent", "")
}
