package series

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptySeries       = errors.New("empty series")
	ErrDateNotFound      = errors.New("date not found")
	ErrEmptyIntersection = errors.New("empty intersection")
)

// DateNotFoundError reports a lookup of a date the series has no value for.
type DateNotFoundError struct {
	Series string
	Date   time.Time
}

func (e *DateNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s in series %q", ErrDateNotFound.Error(), e.Date.Format(DateLayout), e.Series)
}

func (e *DateNotFoundError) Unwrap() error { return ErrDateNotFound }

func emptySeries(name string) error {
	return fmt.Errorf("series %q: %w", name, ErrEmptySeries)
}
