package night

import (
	"fmt"
	"strings"
)

// LeapRule reports whether year is a leap year.
type LeapRule func(year int) bool

// Gregorian is the general Gregorian calendar rule.
func Gregorian(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// tableYears is the fixed list the filename tool historically shipped with.
var tableYears = map[int]bool{
	2008: true,
	2012: true,
	2016: true,
	2020: true,
	2024: true,
	2028: true,
	2032: true,
}

// Table only knows the leap years 2008 through 2032. Any other year has a
// 28-day February.
func Table(year int) bool {
	return tableYears[year]
}

// ParseLeapRule maps a configuration value to a LeapRule.
func ParseLeapRule(name string) (LeapRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gregorian":
		return Gregorian, nil
	case "table":
		return Table, nil
	default:
		return nil, fmt.Errorf("unknown leap year rule %q (want gregorian or table)", name)
	}
}
