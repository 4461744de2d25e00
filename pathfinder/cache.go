package pathfinder

import (
	"strconv"
	"strings"

	"github.com/bluele/gcache"

	"github.com/katalvlaran/mrtguide/mrtmap"
)

// routeCache is an LRU of query results. Routes are cloned on the way in and
// out so callers may modify what they receive.
type routeCache struct {
	lru gcache.Cache
}

func newRouteCache(size int) *routeCache {
	return &routeCache{lru: gcache.New(size).LRU().Build()}
}

func (c *routeCache) get(key string) ([]mrtmap.Route, bool) {
	v, err := c.lru.Get(key)
	if err != nil {
		return nil, false
	}
	routes, ok := v.([]mrtmap.Route)
	if !ok {
		return nil, false
	}

	return cloneRoutes(routes), true
}

func (c *routeCache) set(key string, routes []mrtmap.Route) {
	// Set only fails through a serialize hook, and none is configured.
	_ = c.lru.Set(key, cloneRoutes(routes))
}

func cloneRoutes(routes []mrtmap.Route) []mrtmap.Route {
	out := make([]mrtmap.Route, len(routes))
	for i, r := range routes {
		out[i] = r.Clone()
	}

	return out
}

// cacheKey is start|end|policy|limit; "all" stands for no limit.
func cacheKey(start, end, policy string, q query) string {
	limit := "all"
	if q.limited {
		limit = strconv.Itoa(q.limit)
	}

	return strings.Join([]string{start, end, policy, limit}, "|")
}
