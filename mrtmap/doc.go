// Package mrtmap models a rail network as a graph of stations and finds
// ranked commute routes across it.
//
// Overview:
//
//   - Every station record becomes a node; its code fixes its line and its
//     position on that line.
//   - Direct edges join consecutive stations of one line (sorted by index).
//   - Transfer edges join every pair of stations sharing a name: an
//     interchange is modelled as a clique of platforms, not a chain.
//   - Edge costs are not stored. A weights.Weights policy prices each edge at
//     search time and may refuse it (weights.ErrNotOperating), in which case
//     the edge simply does not exist for that search.
//
// Search:
//
// FindRoutes is a best-first (Dijkstra-style) enumeration over partial
// routes rather than over stations. Each frontier label carries its own path
// and its own visited set, so many routes may pass through the same station;
// only revisiting a station within one route is forbidden. Labels pop in
// (cost, hops) order, ties in push order, which makes the output order
// deterministic:
//
//	start ──▶ pop min label ──▶ at end? ──yes──▶ emit route (not expanded)
//	                │                               │
//	                no                         limit reached? ──▶ stop
//	                ▼
//	  expand transfers, then direct neighbours:
//	    refused edge        → skip
//	    already on the path → skip
//	    second same-name hop in a row (platform shuttle) → skip
//
// Routes reaching an end station are emitted but never extended, so the
// enumeration yields distinct loop-free routes, cheapest first. Because every
// route is loop-free the frontier is finite and the search always terminates.
//
// Complexity:
//
//   - Time:  bounded by the number of loop-free partial routes explored,
//     each push/pop O(log N) in the frontier size N.
//   - Space: O(N · L) where L is the longest path length (each label owns its path).
//
// Errors (sentinel):
//
//   - ErrDuplicateCode:  two input records share a station code.
//   - ErrUnknownStation: a search token matches neither a code nor a name.
//   - ErrBadLimit:       panic value for WithLimit(n) with n < 0.
//   - station.ErrInvalidCode is propagated (wrapped) from construction.
//
// Thread safety:
//
//   - A Map is immutable after New returns; concurrent FindRoutes calls are safe.
package mrtmap
