package formatter

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/mrtguide/mrtmap"
	"github.com/katalvlaran/mrtguide/station"
)

// Registered formatter names.
const (
	NameConsole = "console"
	NameStyled  = "styled"
	NameJSON    = "json"
)

// ErrNameTaken indicates a second registration under one name.
var ErrNameTaken = errors.New("formatter: name already registered")

// Options controls what a Formatter renders.
type Options struct {
	// Limit caps the routes rendered; 0 or less renders all of them.
	Limit int

	// ShowCost prints each route's estimated time. Set it when the query had
	// a departure time; hop counts are not minutes.
	ShowCost bool
}

// Formatter renders a query result for people or programs.
type Formatter interface {
	Format(start, end string, routes []mrtmap.Route, opts Options) string
}

// Registry maps names to formatters.
type Registry struct {
	byName map[string]Formatter
}

// NewRegistry returns a Registry holding the console, styled and json formatters.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Formatter{
		NameConsole: Console{},
		NameStyled:  NewStyled(),
		NameJSON:    JSON{Indent: "  "},
	}}
}

// Register adds f under name.
func (r *Registry) Register(name string, f Formatter) error {
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrNameTaken, name)
	}
	r.byName[name] = f

	return nil
}

// Get returns the formatter registered under name, or Console when there is none.
func (r *Registry) Get(name string) Formatter {
	if f, ok := r.byName[name]; ok {
		return f
	}

	return Console{}
}

// Names lists the registered names, sorted.
func (r *Registry) Names() []string {
	out := maps.Keys(r.byName)
	slices.Sort(out)

	return out
}

// leg is one step of a route as a rider sees it.
type leg struct {
	transfer bool
	line     string
	from, to station.Station
}

// legs splits a route into rides and transfers.
func legs(r mrtmap.Route) []leg {
	if len(r.Stations) < 2 {
		return nil
	}
	out := make([]leg, 0, len(r.Stations)-1)
	for i := 1; i < len(r.Stations); i++ {
		prev, cur := r.Stations[i-1], r.Stations[i]
		out = append(out, leg{
			transfer: !prev.SameLine(cur),
			line:     cur.Line,
			from:     prev,
			to:       cur,
		})
	}

	return out
}

// shown returns the prefix of routes that opts allows.
func shown(routes []mrtmap.Route, opts Options) []mrtmap.Route {
	if opts.Limit > 0 && opts.Limit < len(routes) {
		return routes[:opts.Limit]
	}

	return routes
}
