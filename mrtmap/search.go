package mrtmap

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/mrtguide/station"
	"github.com/katalvlaran/mrtguide/weights"
)

// FindRoutes enumerates loop-free routes from start to end, cheapest first.
//
// start and end are resolved with Resolve, so either may be a station code or
// an interchange name. Routes are ordered by cost, then by hop count, then by
// discovery order. Costs come from w; an edge that w refuses with
// weights.ErrNotOperating is treated as absent.
//
// Options customization:
//
//   - WithLimit(n): stop after n routes (n == 0 returns an empty list).
//
// Errors:
//   - ErrUnknownStation: start or end does not resolve.
//   - any error from w other than weights.ErrNotOperating aborts the search.
func (m *Map) FindRoutes(start, end string, w weights.Weights, opts ...Option) ([]Route, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Resolve both ends before anything else so bad input is always reported.
	from, err := m.Resolve(start)
	if err != nil {
		return nil, err
	}
	to, err := m.Resolve(end)
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0)
	if cfg.Limit == 0 {
		return routes, nil
	}

	s := &search{
		m:      m,
		w:      w,
		limit:  cfg.Limit,
		end:    make(map[string]struct{}, len(to)),
		routes: routes,
	}
	for _, st := range to {
		s.end[st.Code] = struct{}{}
	}

	// 3) Seed one zero-cost label per start station and run.
	heap.Init(&s.pq)
	for _, st := range from {
		s.push(&label{at: st})
	}
	if err = s.run(); err != nil {
		return nil, err
	}

	return s.routes, nil
}

// search holds the mutable state of one FindRoutes call.
type search struct {
	m      *Map
	w      weights.Weights
	limit  int
	end    map[string]struct{}
	pq     labelPQ
	seq    uint64
	routes []Route
}

// run pops labels until the frontier is exhausted or the limit is met.
func (s *search) run() error {
	for s.pq.Len() > 0 {
		// 1) Pop the cheapest partial route.
		cur := heap.Pop(&s.pq).(*label)

		// 2) Drop stale labels whose station already lies on their own path.
		if cur.onPath(cur.at.Code) {
			continue
		}

		// 3) Reaching an end station completes a route; it is not extended further.
		if _, ok := s.end[cur.at.Code]; ok {
			s.routes = append(s.routes, cur.route())
			if s.limit != noLimit && len(s.routes) >= s.limit {
				return nil
			}
			continue
		}

		// 4) Extend along transfers, then along the line.
		if err := s.expand(cur, s.m.transfers.NeighborIDs(cur.at.Code), s.w.TransferCost); err != nil {
			return err
		}
		if err := s.expand(cur, s.m.neighbors.NeighborIDs(cur.at.Code), s.w.DirectCost); err != nil {
			return err
		}
	}

	return nil
}

// expand pushes one successor label per admissible edge from cur.
func (s *search) expand(cur *label, next []string, cost func(from, to station.Station) (int64, error)) error {
	var (
		nb  station.Station
		c   int64
		ok  bool
		err error
	)
	for _, code := range next {
		if nb, ok = s.m.byCode[code]; !ok {
			continue
		}
		if cur.onPath(nb.Code) {
			continue
		}
		if cur.shuttles(nb) {
			continue
		}

		if c, err = cost(cur.at, nb); err != nil {
			if errors.Is(err, weights.ErrNotOperating) {
				continue
			}
			return fmt.Errorf("mrtmap: cost of %s→%s under %s: %w", cur.at.Code, nb.Code, s.w.Name(), err)
		}
		s.push(cur.extend(nb, c))
	}

	return nil
}

func (s *search) push(l *label) {
	l.seq = s.seq
	s.seq++
	heap.Push(&s.pq, l)
}

// label is a partial route on the frontier.
type label struct {
	cost    int64
	hops    int
	seq     uint64
	at      station.Station
	path    []station.Station   // stations before at
	visited map[string]struct{} // codes in path
}

func (l *label) onPath(code string) bool {
	_, ok := l.visited[code]
	return ok
}

// shuttles reports whether moving to next would be a second same-name hop in
// a row, i.e. changing platforms again inside one interchange without riding.
func (l *label) shuttles(next station.Station) bool {
	if next.Name != l.at.Name || len(l.path) == 0 {
		return false
	}
	return l.path[len(l.path)-1].Name == l.at.Name
}

// extend returns a new label one hop further; l is left untouched.
func (l *label) extend(next station.Station, cost int64) *label {
	path := make([]station.Station, len(l.path)+1)
	copy(path, l.path)
	path[len(l.path)] = l.at

	visited := make(map[string]struct{}, len(l.visited)+1)
	for code := range l.visited {
		visited[code] = struct{}{}
	}
	visited[l.at.Code] = struct{}{}

	return &label{
		cost:    l.cost + cost,
		hops:    l.hops + 1,
		at:      next,
		path:    path,
		visited: visited,
	}
}

func (l *label) route() Route {
	stations := make([]station.Station, len(l.path)+1)
	copy(stations, l.path)
	stations[len(l.path)] = l.at

	return Route{Stations: stations, Cost: l.cost}
}

// labelPQ is a min-heap of labels ordered by (cost, hops, seq).
type labelPQ []*label

// Len returns the number of items in the heap.
func (pq labelPQ) Len() int { return len(pq) }

// Less orders by cost, then hop count, then push order.
func (pq labelPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.hops != b.hops {
		return a.hops < b.hops
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq labelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *labelPQ) Push(x interface{}) { *pq = append(*pq, x.(*label)) }

// Pop removes and returns the smallest element from the heap.
func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
