package bento

import "reflect"

// Resources holds at most one value per Go type, for state that belongs to a
// registry as a whole rather than to any entity: a clock, an RNG, asset
// handles, tuning tables. Obtain a registry's container with
// Registry.Resources; the zero value is also ready to use.
type Resources struct {
	values map[reflect.Type]any
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.values)
}

// Clear removes all resources.
func (r *Resources) Clear() {
	clear(r.values)
}

// PutResource stores v as the singleton resource of type T, replacing any
// previous value. Panics if v is nil.
func PutResource[T any](r *Resources, v *T) {
	if v == nil {
		panic("bento: nil resource")
	}
	if r.values == nil {
		r.values = make(map[reflect.Type]any)
	}
	r.values[reflect.TypeFor[T]()] = v
}

// GetResource returns the stored resource of type T, or nil if none is set.
func GetResource[T any](r *Resources) *T {
	if v, ok := r.values[reflect.TypeFor[T]()]; ok {
		return v.(*T)
	}
	return nil
}

// HasResource reports whether a resource of type T is set.
func HasResource[T any](r *Resources) bool {
	_, ok := r.values[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource drops the resource of type T, reporting whether one was
// set.
func RemoveResource[T any](r *Resources) bool {
	t := reflect.TypeFor[T]()
	if _, ok := r.values[t]; !ok {
		return false
	}
	delete(r.values, t)
	return true
}
