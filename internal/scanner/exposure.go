package scanner

import (
	"errors"
	"fmt"
)

// ErrUnknownExposure is returned for an exposure token that is not one of
// FLAT, BIAS, DARK or EXPOSE.
var ErrUnknownExposure = errors.New("exposure type not FLAT, BIAS, DARK or EXPOSE")

// ExposureType is the kind of frame being taken.
type ExposureType int

const (
	Flat ExposureType = iota + 1
	Bias
	Dark
	Expose
)

// Categories lists every exposure type in the order directories are scanned.
var Categories = []ExposureType{Expose, Bias, Dark, Flat}

// ParseExposureType maps a command-line token to an ExposureType. Matching
// is exact and case-sensitive.
func ParseExposureType(token string) (ExposureType, error) {
	switch token {
	case "FLAT":
		return Flat, nil
	case "BIAS":
		return Bias, nil
	case "DARK":
		return Dark, nil
	case "EXPOSE":
		return Expose, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrUnknownExposure, token)
	}
}

// Code returns the single-letter code used in filenames.
func (e ExposureType) Code() string {
	switch e {
	case Flat:
		return "f"
	case Bias:
		return "b"
	case Dark:
		return "d"
	case Expose:
		return "e"
	default:
		return "x"
	}
}

// String returns the command-line token for e.
func (e ExposureType) String() string {
	switch e {
	case Flat:
		return "FLAT"
	case Bias:
		return "BIAS"
	case Dark:
		return "DARK"
	case Expose:
		return "EXPOSE"
	default:
		return fmt.Sprintf("ExposureType(%d)", int(e))
	}
}
