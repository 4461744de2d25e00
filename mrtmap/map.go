package mrtmap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/mrtguide/core"
	"github.com/katalvlaran/mrtguide/reader"
	"github.com/katalvlaran/mrtguide/station"
)

// Map is an immutable rail graph.
type Map struct {
	byCode    map[string]station.Station   // code → station
	byName    map[string][]station.Station // name → interchange group, sorted by code
	lines     map[string][]station.Station // line → stations, sorted by index
	neighbors *core.Adjacency              // direct rides between consecutive stations
	transfers *core.Adjacency              // platform changes inside an interchange
}

// Stats summarizes the size of a Map.
type Stats struct {
	Stations     int
	Lines        int
	Interchanges int
	Rides        int
	Transfers    int
}

// New builds a Map from station records.
//
// Steps:
//  1. Derive a Station from each record (station.ErrInvalidCode on bad codes).
//  2. Index by code (ErrDuplicateCode on repeats) and by name.
//  3. Per line, sort by index and link consecutive stations.
//  4. Per name group of two or more, link every pair as a transfer.
//
// Any error rejects the whole build.
//
// Complexity: O(S log S + Σ k²) for S stations and interchange groups of size k.
func New(records []reader.Record) (*Map, error) {
	m := &Map{
		byCode:    make(map[string]station.Station, len(records)),
		byName:    make(map[string][]station.Station),
		lines:     make(map[string][]station.Station),
		neighbors: core.NewAdjacency(),
		transfers: core.NewAdjacency(),
	}

	// 1–2) Stations and indexes.
	for _, rec := range records {
		s, err := station.New(rec.Code, rec.Name)
		if err != nil {
			return nil, err
		}
		if _, dup := m.byCode[s.Code]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, s.Code)
		}
		m.byCode[s.Code] = s
		m.byName[s.Name] = append(m.byName[s.Name], s)
		m.lines[s.Line] = append(m.lines[s.Line], s)
		if err = m.neighbors.AddVertex(s.Code); err != nil {
			return nil, err
		}
	}

	// 3) Direct rides along each line.
	for _, onLine := range m.lines {
		slices.SortStableFunc(onLine, func(a, b station.Station) int { return a.Index - b.Index })
		for i := 1; i < len(onLine); i++ {
			if err := m.neighbors.Link(onLine[i-1].Code, onLine[i].Code); err != nil {
				return nil, err
			}
		}
	}

	// 4) Transfers: every pair within an interchange group.
	for _, group := range m.byName {
		slices.SortFunc(group, func(a, b station.Station) int { return strings.Compare(a.Code, b.Code) })
		if len(group) < 2 {
			continue
		}
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				if err := m.transfers.Link(group[i].Code, group[j].Code); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// Resolve maps a search token to stations: a code yields that station, a
// name yields its whole interchange group (sorted by code).
//
// Errors:
//   - ErrUnknownStation: token matches neither.
func (m *Map) Resolve(token string) ([]station.Station, error) {
	if s, ok := m.byCode[token]; ok {
		return []station.Station{s}, nil
	}
	if group, ok := m.byName[token]; ok {
		return append([]station.Station(nil), group...), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStation, token)
}

// Station looks up a station by code.
func (m *Map) Station(code string) (station.Station, bool) {
	s, ok := m.byCode[code]
	return s, ok
}

// Stations returns every station sorted by code.
func (m *Map) Stations() []station.Station {
	out := maps.Values(m.byCode)
	slices.SortFunc(out, func(a, b station.Station) int { return strings.Compare(a.Code, b.Code) })

	return out
}

// Lines returns the line codes, sorted.
func (m *Map) Lines() []string {
	out := maps.Keys(m.lines)
	slices.Sort(out)

	return out
}

// Line returns the stations of a line in index order.
func (m *Map) Line(line string) []station.Station {
	return append([]station.Station(nil), m.lines[line]...)
}

// Neighbors returns the codes reachable from code by one direct ride, sorted.
func (m *Map) Neighbors(code string) []string { return m.neighbors.NeighborIDs(code) }

// Transfers returns the codes of the other platforms of code's interchange, sorted.
func (m *Map) Transfers(code string) []string { return m.transfers.NeighborIDs(code) }

// Stats reports the size of the map.
func (m *Map) Stats() Stats {
	interchanges := 0
	for _, group := range m.byName {
		if len(group) > 1 {
			interchanges++
		}
	}

	return Stats{
		Stations:     len(m.byCode),
		Lines:        len(m.lines),
		Interchanges: interchanges,
		Rides:        m.neighbors.LinkCount(),
		Transfers:    m.transfers.LinkCount(),
	}
}
