package collector

import (
	"fmt"
	"time"

	"YieldSentinel/internal/log"
	"YieldSentinel/internal/model"
	"YieldSentinel/internal/series"
)

// MockLoader returns fixed data for development and testing, keyed by series code.
type MockLoader struct {
	Data map[string]map[time.Time]float64
	Err  error
}

func (m *MockLoader) Name() string { return "mock" }

func (m *MockLoader) Load(spec model.SeriesSpec) (map[time.Time]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	data, ok := m.Data[spec.Code]
	if !ok {
		return nil, &LoadError{Source: "mock:" + spec.Code, Err: fmt.Errorf("no data for %s", spec.Code)}
	}
	return data, nil
}

// Collector turns loaded observations into series.
type Collector struct {
	Loader Loader
}

// NewCollector creates a new Collector.
func NewCollector(loader Loader) *Collector {
	return &Collector{Loader: loader}
}

// Collect loads spec and builds its series. A source with no usable
// observations fails with series.ErrEmptySeries.
func (c *Collector) Collect(spec model.SeriesSpec) (*series.Series, error) {
	data, err := c.Loader.Load(spec)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", spec.Code, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("collect %s: %w", spec.Code, series.ErrEmptySeries)
	}

	s := series.New(spec.Name, spec.Title, spec.Unit, data)
	first, last, _ := s.Bounds()
	log.Infof("loaded %s from %s: %d observations, %s to %s",
		s.Name, c.Loader.Name(), s.Len(), first.Format(series.DateLayout), last.Format(series.DateLayout))
	return s, nil
}
