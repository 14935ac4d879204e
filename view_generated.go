package bento

import "reflect"

// View2 provides a fast, cache-friendly iterator over all entities that have
// the 2 components: T1, T2.
//
// The first type parameter is the primary: iteration walks its packed array
// and skips entities missing any of the other types, so put the rarest
// component first for the least wasted work.
type View2[T1 any, T2 any] struct {
	a     *Store[T1]
	b     *Store[T2]
	index int
	slotB int
}

// NewView2 creates a new `View` over all entities possessing at least the 2
// components: T1, T2.
//
// Parameters:
//   - r: The Registry to view.
//
// Returns:
//   - A pointer to the newly created `View2`.
func NewView2[T1 any, T2 any](r *Registry) *View2[T1, T2] {
	t1 := reflect.TypeFor[T1]()
	t2 := reflect.TypeFor[T2]()

	// Duplicates are rejected before the registry is touched, so a recovered
	// panic never leaves a type registered without its store.
	if t2 == t1 {
		panic("bento: duplicate component types in View2")
	}
	v := &View2[T1, T2]{
		a: StoreFor[T1](r),
		b: StoreFor[T2](r),
	}
	v.Reset()
	return v
}

// New is a convenience method that constructs a new view instance for the
// same component types, equivalent to calling `NewView2`.
func (v *View2[T1, T2]) New(r *Registry) *View2[T1, T2] {
	return NewView2[T1, T2](r)
}

// Reset rewinds the view's cursor to the newest packed slot of the primary
// store. It must be called before re-iterating a view whose stores have
// changed since the last pass.
func (v *View2[T1, T2]) Reset() {
	v.index = v.a.size
}

// Next advances the view to the next entity that has every one of the view's
// component types. It returns true if one was found, and false when the
// iteration is complete. This method must be called before accessing the
// entity or its components.
//
// Iteration runs from the highest packed slot of the primary store down to
// slot 0, which makes it safe to destroy the current entity mid-walk.
func (v *View2[T1, T2]) Next() bool {
	for v.index--; v.index >= 0; v.index-- {
		e := v.a.entities[v.index]
		if j := v.b.sparse[e]; j >= 0 {
			v.slotB = j
			return true
		}
	}
	return false
}

// Entity returns the current `Entity` in the iteration. This should only be
// called after `Next()` has returned true.
func (v *View2[T1, T2]) Entity() Entity {
	return v.a.entities[v.index]
}

// Components returns pointers to the current entity's components, in the
// order of the view's type parameters. This should only be called after
// `Next()` has returned true.
func (v *View2[T1, T2]) Components() (*T1, *T2) {
	return &v.a.dense[v.index], &v.b.dense[v.slotB]
}

// Each calls fn once for every entity that has all of the view's component
// types, passing the entity and its components. It is the callback-style
// alternative to the cursor and never needs a Reset. fn may destroy the
// entity it was handed; other structural changes to the viewed types
// mid-iteration are undefined.
func (v *View2[T1, T2]) Each(fn func(Entity, *T1, *T2)) {
	a, b := v.a, v.b
	for i := a.size - 1; i >= 0; i-- {
		e := a.entities[i]
		j := b.sparse[e]
		if j < 0 {
			continue
		}
		fn(e, &a.dense[i], &b.dense[j])
	}
}

// Contains reports whether the entity has every component type in the view.
func (v *View2[T1, T2]) Contains(entity Entity) bool {
	return v.a.Has(entity) && v.b.Has(entity)
}

// Get returns pointers to the entity's components, in the order of the
// view's type parameters. A missing component yields a nil pointer; use
// Contains first when all types are required.
func (v *View2[T1, T2]) Get(entity Entity) (*T1, *T2) {
	return v.a.Get(entity), v.b.Get(entity)
}

// Entities returns the packed entities of the view's primary store, without
// filtering by the other component types; entities missing one of them are
// included. Use the cursor or Each for the exact intersection.
// Note: The returned slice is owned by the underlying store and is
// invalidated by the next mutation. Copy if needed for long-term use.
func (v *View2[T1, T2]) Entities() []Entity {
	return v.a.Entities()
}

// View3 provides a fast, cache-friendly iterator over all entities that have
// the 3 components: T1, T2, T3.
type View3[T1 any, T2 any, T3 any] struct {
	a     *Store[T1]
	b     *Store[T2]
	c     *Store[T3]
	index int
	slotB int
	slotC int
}

// NewView3 creates a new `View` over all entities possessing at least the 3
// components: T1, T2, T3.
//
// Parameters:
//   - r: The Registry to view.
//
// Returns:
//   - A pointer to the newly created `View3`.
func NewView3[T1 any, T2 any, T3 any](r *Registry) *View3[T1, T2, T3] {
	t1 := reflect.TypeFor[T1]()
	t2 := reflect.TypeFor[T2]()
	t3 := reflect.TypeFor[T3]()

	if t2 == t1 || t3 == t1 || t3 == t2 {
		panic("bento: duplicate component types in View3")
	}
	v := &View3[T1, T2, T3]{
		a: StoreFor[T1](r),
		b: StoreFor[T2](r),
		c: StoreFor[T3](r),
	}
	v.Reset()
	return v
}

// New is a convenience method that constructs a new view instance for the
// same component types, equivalent to calling `NewView3`.
func (v *View3[T1, T2, T3]) New(r *Registry) *View3[T1, T2, T3] {
	return NewView3[T1, T2, T3](r)
}

// Reset rewinds the view's cursor to the newest packed slot of the primary
// store. It must be called before re-iterating a view whose stores have
// changed since the last pass.
func (v *View3[T1, T2, T3]) Reset() {
	v.index = v.a.size
}

// Next advances the view to the next entity that has every one of the view's
// component types. It returns true if one was found, and false when the
// iteration is complete. This method must be called before accessing the
// entity or its components.
func (v *View3[T1, T2, T3]) Next() bool {
	for v.index--; v.index >= 0; v.index-- {
		e := v.a.entities[v.index]
		j := v.b.sparse[e]
		if j < 0 {
			continue
		}
		k := v.c.sparse[e]
		if k < 0 {
			continue
		}
		v.slotB = j
		v.slotC = k
		return true
	}
	return false
}

// Entity returns the current `Entity` in the iteration. This should only be
// called after `Next()` has returned true.
func (v *View3[T1, T2, T3]) Entity() Entity {
	return v.a.entities[v.index]
}

// Components returns pointers to the current entity's components, in the
// order of the view's type parameters. This should only be called after
// `Next()` has returned true.
func (v *View3[T1, T2, T3]) Components() (*T1, *T2, *T3) {
	return &v.a.dense[v.index], &v.b.dense[v.slotB], &v.c.dense[v.slotC]
}

// Each calls fn once for every entity that has all of the view's component
// types, passing the entity and its components. fn may destroy the entity it
// was handed; other structural changes to the viewed types mid-iteration are
// undefined.
func (v *View3[T1, T2, T3]) Each(fn func(Entity, *T1, *T2, *T3)) {
	a, b, c := v.a, v.b, v.c
	for i := a.size - 1; i >= 0; i-- {
		e := a.entities[i]
		j := b.sparse[e]
		if j < 0 {
			continue
		}
		k := c.sparse[e]
		if k < 0 {
			continue
		}
		fn(e, &a.dense[i], &b.dense[j], &c.dense[k])
	}
}

// Contains reports whether the entity has every component type in the view.
func (v *View3[T1, T2, T3]) Contains(entity Entity) bool {
	return v.a.Has(entity) && v.b.Has(entity) && v.c.Has(entity)
}

// Get returns pointers to the entity's components, in the order of the
// view's type parameters. A missing component yields a nil pointer; use
// Contains first when all types are required.
func (v *View3[T1, T2, T3]) Get(entity Entity) (*T1, *T2, *T3) {
	return v.a.Get(entity), v.b.Get(entity), v.c.Get(entity)
}

// Entities returns the packed entities of the view's primary store, without
// filtering by the other component types.
// Note: The returned slice is owned by the underlying store and is
// invalidated by the next mutation. Copy if needed for long-term use.
func (v *View3[T1, T2, T3]) Entities() []Entity {
	return v.a.Entities()
}

// View4 provides a fast, cache-friendly iterator over all entities that have
// the 4 components: T1, T2, T3, T4.
type View4[T1 any, T2 any, T3 any, T4 any] struct {
	a     *Store[T1]
	b     *Store[T2]
	c     *Store[T3]
	d     *Store[T4]
	index int
	slotB int
	slotC int
	slotD int
}

// NewView4 creates a new `View` over all entities possessing at least the 4
// components: T1, T2, T3, T4.
//
// Parameters:
//   - r: The Registry to view.
//
// Returns:
//   - A pointer to the newly created `View4`.
func NewView4[T1 any, T2 any, T3 any, T4 any](r *Registry) *View4[T1, T2, T3, T4] {
	t1 := reflect.TypeFor[T1]()
	t2 := reflect.TypeFor[T2]()
	t3 := reflect.TypeFor[T3]()
	t4 := reflect.TypeFor[T4]()

	if t2 == t1 || t3 == t1 || t3 == t2 || t4 == t1 || t4 == t2 || t4 == t3 {
		panic("bento: duplicate component types in View4")
	}
	v := &View4[T1, T2, T3, T4]{
		a: StoreFor[T1](r),
		b: StoreFor[T2](r),
		c: StoreFor[T3](r),
		d: StoreFor[T4](r),
	}
	v.Reset()
	return v
}

// New is a convenience method that constructs a new view instance for the
// same component types, equivalent to calling `NewView4`.
func (v *View4[T1, T2, T3, T4]) New(r *Registry) *View4[T1, T2, T3, T4] {
	return NewView4[T1, T2, T3, T4](r)
}

// Reset rewinds the view's cursor to the newest packed slot of the primary
// store. It must be called before re-iterating a view whose stores have
// changed since the last pass.
func (v *View4[T1, T2, T3, T4]) Reset() {
	v.index = v.a.size
}

// Next advances the view to the next entity that has every one of the view's
// component types. It returns true if one was found, and false when the
// iteration is complete. This method must be called before accessing the
// entity or its components.
func (v *View4[T1, T2, T3, T4]) Next() bool {
	for v.index--; v.index >= 0; v.index-- {
		e := v.a.entities[v.index]
		j := v.b.sparse[e]
		if j < 0 {
			continue
		}
		k := v.c.sparse[e]
		if k < 0 {
			continue
		}
		l := v.d.sparse[e]
		if l < 0 {
			continue
		}
		v.slotB = j
		v.slotC = k
		v.slotD = l
		return true
	}
	return false
}

// Entity returns the current `Entity` in the iteration. This should only be
// called after `Next()` has returned true.
func (v *View4[T1, T2, T3, T4]) Entity() Entity {
	return v.a.entities[v.index]
}

// Components returns pointers to the current entity's components, in the
// order of the view's type parameters. This should only be called after
// `Next()` has returned true.
func (v *View4[T1, T2, T3, T4]) Components() (*T1, *T2, *T3, *T4) {
	return &v.a.dense[v.index], &v.b.dense[v.slotB], &v.c.dense[v.slotC], &v.d.dense[v.slotD]
}

// Each calls fn once for every entity that has all of the view's component
// types, passing the entity and its components. fn may destroy the entity it
// was handed; other structural changes to the viewed types mid-iteration are
// undefined.
func (v *View4[T1, T2, T3, T4]) Each(fn func(Entity, *T1, *T2, *T3, *T4)) {
	a, b, c, d := v.a, v.b, v.c, v.d
	for i := a.size - 1; i >= 0; i-- {
		e := a.entities[i]
		j := b.sparse[e]
		if j < 0 {
			continue
		}
		k := c.sparse[e]
		if k < 0 {
			continue
		}
		l := d.sparse[e]
		if l < 0 {
			continue
		}
		fn(e, &a.dense[i], &b.dense[j], &c.dense[k], &d.dense[l])
	}
}

// Contains reports whether the entity has every component type in the view.
func (v *View4[T1, T2, T3, T4]) Contains(entity Entity) bool {
	return v.a.Has(entity) && v.b.Has(entity) && v.c.Has(entity) && v.d.Has(entity)
}

// Get returns pointers to the entity's components, in the order of the
// view's type parameters. A missing component yields a nil pointer; use
// Contains first when all types are required.
func (v *View4[T1, T2, T3, T4]) Get(entity Entity) (*T1, *T2, *T3, *T4) {
	return v.a.Get(entity), v.b.Get(entity), v.c.Get(entity), v.d.Get(entity)
}

// Entities returns the packed entities of the view's primary store, without
// filtering by the other component types.
// Note: The returned slice is owned by the underlying store and is
// invalidated by the next mutation. Copy if needed for long-term use.
func (v *View4[T1, T2, T3, T4]) Entities() []Entity {
	return v.a.Entities()
}
