package core

import "errors"

// Sentinel errors for adjacency operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrLoopNotAllowed indicates an attempt to link a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)
