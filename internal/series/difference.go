package series

import (
	"fmt"
	"time"
)

// Difference derives the series a - b. Only dates present in both inputs are
// kept. The result is named "a-b" and carries a's unit.
func Difference(a, b *Series) (*Series, error) {
	name := a.Name + "-" + b.Name

	data := make(map[time.Time]float64)
	for d, av := range a.data {
		if bv, ok := b.data[d]; ok {
			data[d] = av - bv
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("difference %q: %w", name, ErrEmptyIntersection)
	}
	return New(name, "", a.Unit, data), nil
}
