// Package bento provides a sparse-set based Entity-Component-System (ECS) library.
package bento

// Store holds every live value of one component type in a densely packed
// array with no holes. Insertion appends at the end of the live range;
// removal moves the last live value into the vacated slot, so iterating a
// store is always a linear walk over contiguous memory.
//
// All storage is preallocated to the owning registry's capacity, so Insert,
// Remove and Get never allocate. A Store is obtained from a Registry via
// StoreFor and stays valid for the registry's lifetime.
type Store[T any] struct {
	dense       []T      // packed component values, live range is [0, size)
	entities    []Entity // entities[i] owns dense[i] for i < size
	sparse      []int    // sparse[e] is the slot of entity e, -1 if absent
	size        int
	onConstruct []func(Entity, *T)
	onDestroy   []func(Entity, *T)
}

func newStore[T any](capacity int) *Store[T] {
	s := &Store[T]{
		dense:    make([]T, capacity),
		entities: make([]Entity, capacity),
		sparse:   make([]int, capacity),
	}
	for i := range s.sparse {
		s.sparse[i] = -1
	}
	return s
}

// Insert stores value for the given entity and returns a pointer to the
// stored copy. If the entity already has a value in this store it is
// overwritten in place; otherwise the value is appended to the packed range.
// Construct callbacks run after the value is in place, in either case.
//
// The returned pointer is only good until the next Insert or Remove on this
// store relocates values; re-resolve with Get after mutating.
//
// Insert panics if the entity is outside the registry's capacity.
func (s *Store[T]) Insert(entity Entity, value T) *T {
	if int(entity) >= len(s.sparse) {
		panic("bento: entity out of range")
	}
	i := s.sparse[entity]
	if i < 0 {
		i = s.size
		s.entities[i] = entity
		s.sparse[entity] = i
		s.size++
	}
	s.dense[i] = value
	p := &s.dense[i]
	for _, fn := range s.onConstruct {
		fn(entity, p)
	}
	return p
}

// Remove drops the entity's value and reports whether one was present.
// The last live value is moved into the vacated slot to keep the array
// packed. Destroy callbacks run before the value is overwritten.
func (s *Store[T]) Remove(entity Entity) bool {
	if int(entity) >= len(s.sparse) {
		return false
	}
	i := s.sparse[entity]
	if i < 0 {
		return false
	}
	for _, fn := range s.onDestroy {
		fn(entity, &s.dense[i])
	}
	last := s.size - 1
	if i != last {
		moved := s.entities[last]
		s.dense[i] = s.dense[last]
		s.entities[i] = moved
		s.sparse[moved] = i
	}
	var zero T
	s.dense[last] = zero // dead slots must not pin referenced memory
	s.sparse[entity] = -1
	s.size--
	return true
}

// Get returns a pointer to the entity's value, or nil if the entity has no
// value in this store. Like the pointer Insert returns, it is invalidated by
// the next Insert or Remove on this store.
func (s *Store[T]) Get(entity Entity) *T {
	if int(entity) >= len(s.sparse) {
		return nil
	}
	i := s.sparse[entity]
	if i < 0 {
		return nil
	}
	return &s.dense[i]
}

// Has reports whether the entity currently has a value in this store. It is
// safe to call with any entity value, including out-of-range ones.
func (s *Store[T]) Has(entity Entity) bool {
	return int(entity) < len(s.sparse) && s.sparse[entity] >= 0
}

// Len returns the number of live values in the store.
func (s *Store[T]) Len() int {
	return s.size
}

// Entities returns the entities that currently have a value in this store, in
// packed slot order.
// Note: The returned slice is owned by the Store and is invalidated by the
// next Insert or Remove. Copy if needed for long-term use.
func (s *Store[T]) Entities() []Entity {
	return s.entities[:s.size]
}

// Iter returns a cursor over the live values, walking the packed array from
// the highest slot down to slot 0. Slot order is an artifact of the packing
// scheme and changes as values are inserted and removed; callers must not
// rely on it.
//
// Walking backwards makes it safe for the caller to Remove the entity the
// cursor currently points at: the swapped-in value lands in an already
// visited slot. Removing any other entity mid-iteration is not supported.
func (s *Store[T]) Iter() StoreIter[T] {
	return StoreIter[T]{store: s, index: s.size}
}

// StoreIter iterates one store's packed values without per-entity lookups.
// Next must be called before the first access.
type StoreIter[T any] struct {
	store *Store[T]
	index int
}

// Next advances the cursor and returns true if another value was found.
func (it *StoreIter[T]) Next() bool {
	it.index--
	return it.index >= 0
}

// Entity returns the entity at the cursor position.
func (it *StoreIter[T]) Entity() Entity {
	return it.store.entities[it.index]
}

// Component returns a pointer to the value at the cursor position.
func (it *StoreIter[T]) Component() *T {
	return &it.store.dense[it.index]
}

// Reset rewinds the cursor so the store can be walked again.
func (it *StoreIter[T]) Reset() {
	it.index = it.store.size
}

// onEntityDestroyed is the destruction broadcast hook. A store that never saw
// the entity treats it as a no-op.
func (s *Store[T]) onEntityDestroyed(entity Entity) {
	s.Remove(entity)
}

// reset empties the store without firing destroy callbacks.
func (s *Store[T]) reset() {
	if s.size == 0 {
		return
	}
	clear(s.dense[:s.size])
	for _, e := range s.entities[:s.size] {
		s.sparse[e] = -1
	}
	s.size = 0
}
