package bento

// View provides a fast, cache-friendly iterator over all entities that have a
// specific set of components. It is the primary mechanism for implementing
// game logic (systems). The view iterates the packed array of its primary
// store directly, so matching entities are visited without any hashing.
//
// This is the view for entities with one component. Generated views for
// multiple components (View2, View3, View4) follow the same pattern and
// intersect the remaining stores per entity.
//
// A view holds no snapshot: it always reflects the current contents of its
// stores, and it stays valid for the lifetime of the registry that built it.
type View[T any] struct {
	store *Store[T]
	index int
}

// NewView creates a new `View` over all entities possessing the component of
// type `T`. The store for T is created on first use, so a view may be built
// before any component of the type exists.
//
// Parameters:
//   - r: The Registry to view.
//
// Returns:
//   - A pointer to the newly created `View[T]`.
func NewView[T any](r *Registry) *View[T] {
	v := &View[T]{store: StoreFor[T](r)}
	v.Reset()
	return v
}

// New is a convenience method that constructs a new view instance for the
// same component type, equivalent to calling `NewView`.
func (v *View[T]) New(r *Registry) *View[T] {
	return NewView[T](r)
}

// Reset rewinds the view's cursor to the newest packed slot. It must be
// called before re-iterating a view whose stores have changed since the last
// pass.
func (v *View[T]) Reset() {
	v.index = v.store.size
}

// Next advances the view to the next matching entity. It returns true if an
// entity was found, and false when the iteration is complete. This method
// must be called before accessing the entity or its component.
//
// Example:
//
//	view := bento.NewView[Position](registry)
//	for view.Next() {
//	    // ... process view.Entity()
//	}
//
// Iteration runs from the highest packed slot down to slot 0, which makes it
// safe to destroy the current entity (or remove its components) mid-walk.
// Slot order is unspecified and changes as stores mutate.
func (v *View[T]) Next() bool {
	v.index--
	return v.index >= 0
}

// Entity returns the current `Entity` in the iteration. This should only be
// called after `Next()` has returned true.
func (v *View[T]) Entity() Entity {
	return v.store.entities[v.index]
}

// Component returns a pointer to the component of type `T` for the current
// entity in the iteration. This should only be called after `Next()` has
// returned true.
func (v *View[T]) Component() *T {
	return &v.store.dense[v.index]
}

// Each calls fn once for every entity in the view, passing the entity and a
// pointer to its component. It is the callback-style alternative to the
// cursor and never needs a Reset. fn may destroy the entity it was handed;
// other structural changes to the viewed types mid-iteration are undefined.
func (v *View[T]) Each(fn func(Entity, *T)) {
	s := v.store
	for i := s.size - 1; i >= 0; i-- {
		fn(s.entities[i], &s.dense[i])
	}
}

// Contains reports whether the entity has the view's component type.
func (v *View[T]) Contains(entity Entity) bool {
	return v.store.Has(entity)
}

// Get returns a pointer to the entity's component, or nil if the entity is
// not in the view.
func (v *View[T]) Get(entity Entity) *T {
	return v.store.Get(entity)
}

// Len returns the number of entities in the view.
func (v *View[T]) Len() int {
	return v.store.size
}

// Entities returns all entities that match the view, in packed slot order.
// Note: The returned slice is owned by the underlying store and is
// invalidated by the next mutation. Copy if needed for long-term use.
func (v *View[T]) Entities() []Entity {
	return v.store.Entities()
}
