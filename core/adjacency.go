// File: adjacency.go
// Role: Undirected, unweighted adjacency set over string vertex IDs.
// Determinism:
//   - NeighborIDs() and Vertices() return IDs sorted lexicographically ascending.
// Concurrency:
//   - All state guarded by a single sync.RWMutex; reads never block each other.

package core

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Adjacency is a symmetric "who is next to whom" relation.
//
// Link(a, b) records both a→b and b→a, so the relation is symmetric by
// construction. Parallel links collapse into one; self-loops are rejected.
// Adjacency stores no weights: edge cost is decided by the caller at
// traversal time.
type Adjacency struct {
	mu  sync.RWMutex
	adj map[string]map[string]struct{}
}

// NewAdjacency returns an empty Adjacency.
// Complexity: O(1).
func NewAdjacency() *Adjacency {
	return &Adjacency{adj: make(map[string]map[string]struct{})}
}

// AddVertex registers id without any links. Idempotent.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
func (a *Adjacency) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensure(id)

	return nil
}

// Link connects from and to in both directions. Linking an existing pair is a no-op.
//
// Errors:
//   - ErrEmptyVertexID:  if either id is empty.
//   - ErrLoopNotAllowed: if from == to.
//
// Complexity: O(1) amortized.
func (a *Adjacency) Link(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensure(from)[to] = struct{}{}
	a.ensure(to)[from] = struct{}{}

	return nil
}

// ensure returns the bucket for id, creating it if needed. Caller holds the write lock.
func (a *Adjacency) ensure(id string) map[string]struct{} {
	bucket, ok := a.adj[id]
	if !ok {
		bucket = make(map[string]struct{})
		a.adj[id] = bucket
	}

	return bucket
}

// Linked reports whether from and to are adjacent.
func (a *Adjacency) Linked(from, to string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.adj[from][to]

	return ok
}

// HasVertex reports whether id was registered via AddVertex or Link.
func (a *Adjacency) HasVertex(id string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.adj[id]

	return ok
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// An unknown id has no neighbors; the result is nil rather than an error,
// so callers can iterate unconditionally.
//
// Complexity: O(d log d) where d is the degree of id.
func (a *Adjacency) NeighborIDs(id string) []string {
	a.mu.RLock()
	bucket := a.adj[id]
	if len(bucket) == 0 {
		a.mu.RUnlock()
		return nil
	}
	out := maps.Keys(bucket)
	a.mu.RUnlock()
	slices.Sort(out)

	return out
}

// Degree returns the number of vertices adjacent to id.
func (a *Adjacency) Degree(id string) int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.adj[id])
}

// Vertices returns every registered ID, sorted ascending.
func (a *Adjacency) Vertices() []string {
	a.mu.RLock()
	out := maps.Keys(a.adj)
	a.mu.RUnlock()
	slices.Sort(out)

	return out
}

// LinkCount returns the number of undirected links.
func (a *Adjacency) LinkCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	total := 0
	for _, bucket := range a.adj {
		total += len(bucket)
	}

	return total / 2
}
