package pathfinder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mrtguide/mrtmap"
	"github.com/katalvlaran/mrtguide/reader"
	"github.com/katalvlaran/mrtguide/weights"
)

// TimeLayout is the accepted departure-time format. Single-digit hours parse too.
const TimeLayout = "2006-01-02T15:04"

// ErrMalformedTime indicates a departure time that does not match TimeLayout.
var ErrMalformedTime = errors.New("pathfinder: malformed datetime")

// PathFinder answers route queries over one station map.
type PathFinder struct {
	m        *mrtmap.Map
	selector weights.Selector
	cache    *routeCache // nil when disabled
	log      *slog.Logger
}

// Open reads the station CSV at path and builds a PathFinder from it.
func Open(path string, opts ...Option) (*PathFinder, error) {
	records, err := reader.Open(path)
	if err != nil {
		return nil, err
	}

	return New(records, opts...)
}

// New builds a PathFinder from station records.
func New(records []reader.Record, opts ...Option) (*PathFinder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.OpenedBy.IsZero() {
		var err error
		if records, err = reader.OpenedBy(records, cfg.OpenedBy); err != nil {
			return nil, err
		}
	}

	m, err := mrtmap.New(records)
	if err != nil {
		return nil, err
	}

	st := m.Stats()
	cfg.Logger.Debug("station map built",
		"stations", st.Stations,
		"lines", st.Lines,
		"interchanges", st.Interchanges,
	)

	pf := &PathFinder{
		m:        m,
		selector: weights.NewSelector(cfg.Lines.Merge(weights.DefaultLines())),
		log:      cfg.Logger,
	}
	if cfg.CacheSize > 0 {
		pf.cache = newRouteCache(cfg.CacheSize)
	}

	return pf, nil
}

// Map returns the underlying station map.
func (pf *PathFinder) Map() *mrtmap.Map { return pf.m }

// ParseTime parses a departure time in TimeLayout.
func ParseTime(timestamp string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(timestamp))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMalformedTime, timestamp)
	}

	return t, nil
}

// Policy returns the cost policy for an optional departure time.
func (pf *PathFinder) Policy(at *time.Time) weights.Weights { return pf.selector.ForTime(at) }

// FindRoutes ranks routes from start to end. start and end are station codes
// or station names.
//
// Query options:
//
//   - At(timestamp): price the routes for a departure time.
//   - Limit(n): return at most n routes.
func (pf *PathFinder) FindRoutes(start, end string, opts ...QueryOption) ([]mrtmap.Route, error) {
	q := query{}
	for _, opt := range opts {
		opt(&q)
	}

	// 1) Pick the policy.
	var at *time.Time
	if q.timed {
		t, err := ParseTime(q.at)
		if err != nil {
			return nil, err
		}
		at = &t
	}
	w := pf.selector.ForTime(at)
	pf.log.Debug("policy selected", "start", start, "end", end, "policy", w.Name())

	// 2) Serve from the cache when possible.
	key := cacheKey(start, end, w.Name(), q)
	if pf.cache != nil {
		if routes, ok := pf.cache.get(key); ok {
			pf.log.Debug("cache hit", "key", key, "routes", len(routes))
			return routes, nil
		}
	}

	// 3) Search.
	var searchOpts []mrtmap.Option
	if q.limited {
		searchOpts = append(searchOpts, mrtmap.WithLimit(q.limit))
	}
	routes, err := pf.m.FindRoutes(start, end, w, searchOpts...)
	if err != nil {
		return nil, err
	}
	pf.log.Debug("routes found", "start", start, "end", end, "routes", len(routes))

	if pf.cache != nil {
		pf.cache.set(key, routes)
	}

	return routes, nil
}
