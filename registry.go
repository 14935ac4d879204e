// Package bento implements a lean, preallocating, sparse-set based Entity
// Component System for Go.
//
// Features:
// - One densely packed array per component type, compacted by swap-removal.
// - Bidirectional entity/slot mapping for O(1) add, get, has and remove.
// - FIFO recycling of destroyed entity ids.
// - Destruction broadcast so no store keeps data for a dead entity.
// - Generic Views over 1 to 4 component types with cursor and callback APIs.
// - Zero allocations on the create, add, get and iterate hot paths.
//
// A Registry and everything derived from it is confined to a single
// goroutine; no operation locks.
package bento

import "reflect"

// componentStore is the type-erased handle the Registry keeps per component
// type, so stores of different element types can be owned and notified
// uniformly.
type componentStore interface {
	onEntityDestroyed(Entity)
	reset()
}

// Registry issues and recycles entity ids and owns one Store per component
// type. Component access goes through the package-level generic functions
// (AddComponent, GetComponent, ...) which take the registry as their first
// argument, since Go methods cannot introduce type parameters.
type Registry struct {
	types     map[reflect.Type]componentID
	stores    []componentStore // indexed by componentID
	free      []Entity         // FIFO ring of recyclable ids
	freeHead  int
	freeLen   int
	living    int
	capacity  int
	resources Resources
}

// NewRegistry preallocates a registry able to hold up to capacity live
// entities. Every id in [0, capacity) is seeded into the free list, so ids
// come out in ascending order first and are then reissued oldest-destroyed
// first.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		panic("bento: capacity must be positive")
	}
	r := &Registry{
		types:    make(map[reflect.Type]componentID, MaxComponents),
		stores:   make([]componentStore, 0, MaxComponents),
		free:     make([]Entity, capacity),
		freeLen:  capacity,
		capacity: capacity,
	}
	for i := range r.free {
		r.free[i] = Entity(i)
	}
	return r
}

// CreateEntity takes the oldest id off the free list and returns it. The new
// entity has no components. CreateEntity panics when the number of live
// entities already equals the registry's capacity; size the registry for the
// peak entity count.
func (r *Registry) CreateEntity() Entity {
	if r.living == r.capacity {
		panic("bento: too many entities")
	}
	e := r.free[r.freeHead]
	r.freeHead++
	if r.freeHead == len(r.free) {
		r.freeHead = 0
	}
	r.freeLen--
	r.living++
	return e
}

// DestroyEntity notifies every store so the entity's components are removed,
// firing their destroy callbacks, then pushes the id onto the back of the
// free list for reuse.
//
// The registry does not track which ids are live: destroying an id twice, or
// one that was never created, corrupts the free list. That discipline is the
// caller's. DestroyEntity panics if the id is outside [0, Cap()).
func (r *Registry) DestroyEntity(entity Entity) {
	if int(entity) >= r.capacity {
		panic("bento: entity out of range")
	}
	for _, s := range r.stores {
		s.onEntityDestroyed(entity)
	}
	tail := r.freeHead + r.freeLen
	if tail >= len(r.free) {
		tail -= len(r.free)
	}
	r.free[tail] = entity
	r.freeLen++
	r.living--
}

// Alive returns the number of live entities.
func (r *Registry) Alive() int {
	return r.living
}

// Cap returns the maximum number of concurrently live entities.
func (r *Registry) Cap() int {
	return r.capacity
}

// Clear removes every entity and every component and reseeds the free list.
// Destroy callbacks do not fire; Clear is a bulk reset, not a destruction
// broadcast. All storage is retained, so a cleared registry is immediately
// reusable at full capacity.
func (r *Registry) Clear() {
	for _, s := range r.stores {
		s.reset()
	}
	for i := range r.free {
		r.free[i] = Entity(i)
	}
	r.freeHead = 0
	r.freeLen = r.capacity
	r.living = 0
}

// Resources returns the registry's resource container, for values that exist
// once per registry rather than once per entity.
func (r *Registry) Resources() *Resources {
	return &r.resources
}

// compTypeID registers or fetches the dense id for a component type.
func (r *Registry) compTypeID(t reflect.Type) componentID {
	if id, ok := r.types[t]; ok {
		return id
	}
	if len(r.types) >= MaxComponents {
		panic("bento: too many component types")
	}
	id := componentID(len(r.types))
	r.types[t] = id
	r.stores = append(r.stores, nil)
	return id
}

// StoreFor returns the registry's store for component type T, creating it on
// first use. The store is owned by the registry and stays valid for the
// registry's lifetime; holding one skips the type lookup that the generic
// component functions pay per call.
func StoreFor[T any](r *Registry) *Store[T] {
	id := r.compTypeID(reflect.TypeFor[T]())
	if s := r.stores[id]; s != nil {
		return s.(*Store[T])
	}
	s := newStore[T](r.capacity)
	r.stores[id] = s
	return s
}

// AddComponent attaches a component of type T to the entity and returns a
// pointer to the stored value. If the entity already has a T, the value is
// replaced in place. The pointer follows Store.Insert's validity rule: good
// only until the next insert or remove of a T.
func AddComponent[T any](r *Registry, entity Entity, value T) *T {
	return StoreFor[T](r).Insert(entity, value)
}

// GetComponent returns a pointer to the entity's T component, or nil if the
// entity does not have one.
func GetComponent[T any](r *Registry, entity Entity) *T {
	return StoreFor[T](r).Get(entity)
}

// HasComponent reports whether the entity has a component of type T.
func HasComponent[T any](r *Registry, entity Entity) bool {
	return StoreFor[T](r).Has(entity)
}

// RemoveComponent detaches the entity's T component, firing destroy
// callbacks. It reports whether a component was actually removed.
func RemoveComponent[T any](r *Registry, entity Entity) bool {
	return StoreFor[T](r).Remove(entity)
}

// OnConstruct registers fn to run after every insert of a T component,
// including inserts that replace an existing value. fn receives the owning
// entity and a pointer to the freshly stored value.
func OnConstruct[T any](r *Registry, fn func(Entity, *T)) {
	s := StoreFor[T](r)
	s.onConstruct = append(s.onConstruct, fn)
}

// OnDestroy registers fn to run just before a T component is removed, whether
// through RemoveComponent or a DestroyEntity broadcast. fn observes the value
// as it still sits in the store. Registry.Clear does not fire destroy
// callbacks.
func OnDestroy[T any](r *Registry, fn func(Entity, *T)) {
	s := StoreFor[T](r)
	s.onDestroy = append(s.onDestroy, fn)
}
