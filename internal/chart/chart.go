// Package chart draws date-indexed line charts with a primary and a
// secondary value axis.
package chart

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoDates        = errors.New("chart has no dates")
	ErrLengthMismatch = errors.New("line length does not match dates")
)

// Line is one named value sequence, aligned with Chart.Dates.
type Line struct {
	Label  string
	Values []float64
}

// Chart describes what to draw. Left lines share the primary axis; Right
// lines share the secondary axis, which also gets a reference line at zero.
type Chart struct {
	Title      string
	XLabel     string
	LeftLabel  string
	RightLabel string
	Dates      []time.Time
	Left       []Line
	Right      []Line
}

// Validate checks that every line has one value per date.
func (c *Chart) Validate() error {
	if len(c.Dates) == 0 {
		return ErrNoDates
	}
	for _, group := range [][]Line{c.Left, c.Right} {
		for _, l := range group {
			if len(l.Values) != len(c.Dates) {
				return fmt.Errorf("%q has %d values for %d dates: %w", l.Label, len(l.Values), len(c.Dates), ErrLengthMismatch)
			}
		}
	}
	return nil
}

// Renderer draws a chart somewhere.
type Renderer interface {
	Render(c *Chart) error
}
