package collector

import (
	"fmt"
	"time"

	"YieldSentinel/internal/model"
)

// Loader reads the observations of one series.
type Loader interface {
	Load(spec model.SeriesSpec) (map[time.Time]float64, error)
	Name() string
}

// LoadError reports a series source that could not be opened or read.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
