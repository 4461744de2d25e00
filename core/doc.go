// Package core provides a small thread-safe adjacency set, the storage layer
// under the rail map.
//
// Adjacency keeps an undirected, unweighted relation over string IDs:
//
//	adj[from][to] = struct{}{}   and   adj[to][from] = struct{}{}
//
// Link writes both directions under one lock, so readers never observe a
// half-linked pair. There are no weights here: mrtmap keeps one Adjacency for
// rides along a line and another for platform transfers, and prices edges at
// search time.
//
// Guarantees:
//
//   - Symmetry: Linked(a, b) == Linked(b, a) at all times.
//   - Determinism: NeighborIDs and Vertices return IDs sorted ascending.
//   - Simple graph: parallel links collapse; self-loops fail with ErrLoopNotAllowed.
//   - Concurrency: a single sync.RWMutex; reads proceed in parallel.
//
// Errors:
//
//   - ErrEmptyVertexID:  an ID is "".
//   - ErrLoopNotAllowed: Link(a, a).
package core
