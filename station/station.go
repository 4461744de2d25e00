// Package station defines the Station entity of a rail network.
//
// A Station is derived entirely from its code. The first two characters
// of the code name the line ("NS", "EW", "TE", …) and the remainder is the
// station's ordinal position on that line:
//
//	NS1  → Line "NS", Index 1
//	TE22 → Line "TE", Index 22
//
// Identity is by Code: two Stations describe the same platform iff their
// codes match. Several Stations may share a Name; such a group is an
// interchange served by more than one line.
//
// Errors:
//
//	ErrInvalidCode – the code is too short or its ordinal is not a non-negative integer.
package station

import (
	"errors"
	"fmt"
	"strconv"
)

// lineCodeLen is the number of leading code characters naming the line.
const lineCodeLen = 2

// ErrInvalidCode indicates a station code that does not follow <line><ordinal>.
var ErrInvalidCode = errors.New("station: invalid station code")

// Station is an immutable platform on one line.
type Station struct {
	// Code uniquely identifies the station, e.g. "NS1".
	Code string

	// Line is the two-letter line code, e.g. "NS".
	Line string

	// Index is the ordinal position of the station on its line.
	Index int

	// Name is the human label; shared by all platforms of one interchange.
	Name string
}

// New derives a Station from its code and name.
//
// Returns ErrInvalidCode (wrapped with the offending code) if the code has
// no ordinal part or the ordinal contains anything but decimal digits.
func New(code, name string) (Station, error) {
	if len(code) <= lineCodeLen {
		return Station{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	ordinal := code[lineCodeLen:]
	for _, r := range ordinal {
		if r < '0' || r > '9' {
			return Station{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
		}
	}
	index, err := strconv.Atoi(ordinal)
	if err != nil {
		return Station{}, fmt.Errorf("%w: %q: %v", ErrInvalidCode, code, err)
	}

	return Station{
		Code:  code,
		Line:  code[:lineCodeLen],
		Index: index,
		Name:  name,
	}, nil
}

// MustNew is like New but panics on an invalid code. Intended for tests and
// static fixtures.
func MustNew(code, name string) Station {
	s, err := New(code, name)
	if err != nil {
		panic(err)
	}

	return s
}

// String renders the canonical display form "Station[<code>,<name>]".
func (s Station) String() string {
	return "Station[" + s.Code + "," + s.Name + "]"
}

// Equal reports whether s and other denote the same station (same code).
func (s Station) Equal(other Station) bool { return s.Code == other.Code }

// Less orders stations by code. Used for deterministic iteration.
func (s Station) Less(other Station) bool { return s.Code < other.Code }

// SameLine reports whether both stations are on the same line.
func (s Station) SameLine(other Station) bool { return s.Line == other.Line }

// IsZero reports whether s is the zero Station.
func (s Station) IsZero() bool { return s.Code == "" }
