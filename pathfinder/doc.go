// Package pathfinder is the entry point for route queries: it loads station
// records, builds an mrtmap.Map once, and answers FindRoutes calls with an
// optional departure time and result limit.
//
// A query's departure time picks the cost policy (see weights.Selector);
// without one, routes are ranked by hop count (weights.Uniform).
//
//	pf, err := pathfinder.Open("data/StationMap.csv", pathfinder.WithCacheSize(128))
//	routes, err := pf.FindRoutes("Holland Village", "Bugis",
//		pathfinder.At("2019-01-31T16:00"), pathfinder.Limit(3))
//
// Errors:
//
//   - ErrMalformedTime: At was given something other than YYYY-MM-DDTHH:MM.
//   - mrtmap.ErrUnknownStation, reader.ErrNoSuchFile and construction errors
//     are passed through unchanged.
//
// A PathFinder is safe for concurrent use. With WithCacheSize(n > 0), results
// are memoized in an LRU keyed by (start, end, policy, limit).
package pathfinder
