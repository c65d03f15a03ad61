// Package sidereal converts Unix time to Local Mean Sidereal Time.
//
// UTC is used in place of UT1 and leap seconds are ignored. |UT1 - UTC| is
// kept below one second, which bounds the error of every value returned here.
package sidereal

import (
	"fmt"
	"math"
)

const (
	twoPi = 2 * math.Pi

	// secondsToRadians converts seconds of time to radians of rotation.
	secondsToRadians = 7.2722052166430399038487115353692196393452995355905e-5

	// mjdUnixEpoch is the Modified Julian Date of 1970-01-01T00:00:00Z.
	mjdUnixEpoch = 40587.0

	// mjdJ2000 is the Modified Julian Date of the J2000.0 epoch.
	mjdJ2000 = 51544.5

	secondsPerDay = 86400.0
)

// SiteLongitudeHours is the GMST to LMST offset of the Liverpool Telescope
// on La Palma. It is the physical longitude difference, not the time zone,
// and is negative because the site lies west of Greenwich.
const SiteLongitudeHours = -1.191946667

// MJD converts whole Unix seconds to a Modified Julian Date. Half a second
// is added because the true instant lies somewhere inside that second.
func MJD(unixSeconds int64) float64 {
	return (float64(unixSeconds)+0.5)/secondsPerDay + mjdUnixEpoch
}

// GMST returns Greenwich Mean Sidereal Time in radians, in [0, 2π), for a
// Modified Julian Date taken as UT1. IAU 1982 expression (Astronomical
// Almanac p. S15).
func GMST(mjd float64) float64 {
	// Julian centuries from J2000.0.
	tu := (mjd - mjdJ2000) / 36525.0

	gmst := math.Mod(mjd, 1.0)*twoPi +
		(24110.54841+(8640184.812866+(0.093104-6.2e-6*tu)*tu)*tu)*secondsToRadians

	gmst = math.Mod(gmst, twoPi)
	if gmst < 0 {
		gmst += twoPi
	}
	return gmst
}

// LMST returns Local Mean Sidereal Time in hours, in [0, 24), for the given
// Unix seconds at a site offsetHours east of Greenwich.
func LMST(unixSeconds int64, offsetHours float64) float64 {
	gmstHours := GMST(MJD(unixSeconds)) / twoPi * 24.0

	lmst := math.Mod(gmstHours+offsetHours, 24.0)
	if lmst < 0 {
		lmst += 24.0
	}
	return lmst
}

// HMS is an hour value split into sexagesimal parts.
type HMS struct {
	Hours   int
	Minutes int
	Seconds float32
}

// Split breaks fractional hours into hours, minutes and seconds by
// successive truncation.
func Split(hours float64) HMS {
	h := int(hours)
	rest := (hours - float64(h)) * 60.0
	m := int(rest)
	rest = (rest - float64(m)) * 60.0
	return HMS{Hours: h, Minutes: m, Seconds: float32(rest)}
}

// String formats as HH:MM:SS.S. Seconds are rounded for display only, so
// a value just below 60 can print as 60.0.
func (t HMS) String() string {
	return fmt.Sprintf("%02d:%02d:%04.1f", t.Hours, t.Minutes, t.Seconds)
}

// Compute returns LMST at the given Unix seconds and site offset.
func Compute(unixSeconds int64, offsetHours float64) HMS {
	return Split(LMST(unixSeconds, offsetHours))
}
