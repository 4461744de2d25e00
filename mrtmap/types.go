package mrtmap

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/mrtguide/station"
)

// Sentinel errors returned by the mrtmap package.
var (
	// ErrDuplicateCode indicates two input records with the same station code.
	ErrDuplicateCode = errors.New("mrtmap: duplicate station code")

	// ErrUnknownStation indicates a token that is neither a station code nor a station name.
	ErrUnknownStation = errors.New("mrtmap: unknown station")

	// ErrBadLimit indicates a negative route limit.
	ErrBadLimit = errors.New("mrtmap: limit must be non-negative")
)

// noLimit marks an unbounded enumeration.
const noLimit = -1

// Route is one way from a start station to an end station.
type Route struct {
	// Stations lists the stations visited in order, start and end included.
	Stations []station.Station

	// Cost is the total cost under the policy used for the search.
	Cost int64
}

// Hops returns the number of edges taken.
func (r Route) Hops() int {
	if len(r.Stations) == 0 {
		return 0
	}
	return len(r.Stations) - 1
}

// Codes returns the station codes along the route.
func (r Route) Codes() []string {
	out := make([]string, len(r.Stations))
	for i, s := range r.Stations {
		out[i] = s.Code
	}
	return out
}

// Transfers counts the line changes along the route.
func (r Route) Transfers() int {
	n := 0
	for i := 1; i < len(r.Stations); i++ {
		if !r.Stations[i-1].SameLine(r.Stations[i]) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of r.
func (r Route) Clone() Route {
	return Route{
		Stations: append([]station.Station(nil), r.Stations...),
		Cost:     r.Cost,
	}
}

// String renders the route as "NS1 → NS2 (cost 1)".
func (r Route) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(r.Codes(), " → "))
	sb.WriteString(" (cost ")
	sb.WriteString(strconv.FormatInt(r.Cost, 10))
	sb.WriteString(")")

	return sb.String()
}

// Options configures FindRoutes.
//
// Limit – maximum number of routes to return; noLimit (default) enumerates
// every loop-free route.
type Options struct {
	Limit int
}

// Option represents a functional option for FindRoutes.
type Option func(*Options)

// WithLimit stops the search once n routes have been emitted.
// n == 0 returns no routes. Panics with ErrBadLimit if n < 0.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadLimit.Error())
		}
		o.Limit = n
	}
}

// DefaultOptions returns Options with no limit.
func DefaultOptions() Options {
	return Options{Limit: noLimit}
}
