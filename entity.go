// Package bento provides a sparse-set based Entity-Component-System (ECS) library.
package bento

// Entity is the handle for one logical object in a Registry. It is a bare
// index with no version tag: after DestroyEntity the id goes back on the free
// list and a later CreateEntity hands the same value out again. Callers must
// drop every copy of a handle they destroy.
type Entity uint32

// componentID identifies a registered component type within a single
// Registry. Values are dense, assigned in first-use order, and mean nothing
// outside the registry that issued them.
type componentID uint32

const (
	// MaxEntities is a conventional default capacity for registries whose
	// callers have no sizing requirement of their own. NewRegistry accepts
	// any positive capacity.
	MaxEntities = 50000

	// MaxComponents is the maximum number of distinct component types one
	// Registry can track.
	MaxComponents = 32
)
