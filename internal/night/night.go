// Package night resolves the observing night a clock reading belongs to.
//
// An observing night runs from local evening through the following morning
// and is labelled by the evening's calendar date, so any reading before
// local noon belongs to the previous day's night.
package night

import (
	"errors"
	"fmt"
	"time"
)

// DefaultMaxYear is the last year the fixed leap-year table covers.
const DefaultMaxYear = 2032

// ErrYearCeiling is returned when the clock reads a year past the
// resolver's MaxYear.
var ErrYearCeiling = errors.New("year exceeds configured ceiling")

// Night identifies an observing night by the evening's calendar date.
type Night struct {
	Year  int
	Month int
	Day   int
}

// Stamp returns the night as used in filenames: the year unpadded, then
// month and day zero-padded to two digits.
func (n Night) Stamp() string {
	return fmt.Sprintf("%d%02d%02d", n.Year, n.Month, n.Day)
}

// String formats the night as YYYY-MM-DD.
func (n Night) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", n.Year, n.Month, n.Day)
}

// Resolver maps clock readings to observing nights.
type Resolver struct {
	// MaxYear is the last calendar year accepted. Zero disables the check.
	MaxYear int
	// Leap decides whether February has 29 days. Nil means Gregorian.
	Leap LeapRule
}

// NewResolver returns a Resolver with the default ceiling and the
// Gregorian leap-year rule.
func NewResolver() *Resolver {
	return &Resolver{MaxYear: DefaultMaxYear, Leap: Gregorian}
}

// Resolve returns the observing night containing t. The hour, day, month
// and year are read in t's own location.
func (r *Resolver) Resolve(t time.Time) (Night, error) {
	year, month, day := t.Date()
	hour := t.Hour()

	if r.MaxYear > 0 && year > r.MaxYear {
		return Night{}, fmt.Errorf("%w: year %d > %d", ErrYearCeiling, year, r.MaxYear)
	}

	n := Night{Year: year, Month: int(month), Day: day}
	if hour <= 11 {
		n.Day--
	}

	if n.Day == 0 {
		n.Month--
		n.Day = r.daysIn(n.Month, n.Year)
	}

	if n.Month == 0 {
		n.Year--
		n.Month = 12
		n.Day = 31
	}

	return n, nil
}

// daysIn returns the length of month in year. Month 0 stands for the
// December of the previous year and is reported as 31 days.
func (r *Resolver) daysIn(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		leap := r.Leap
		if leap == nil {
			leap = Gregorian
		}
		if leap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
