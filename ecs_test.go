package bento_test

import (
	"testing"

	"github.com/edwinsyarief/bento"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int }
type Tag struct{}

// --- Tests ---

// go test -run ^TestCreateEntity$ . -count 1
func TestCreateEntity(t *testing.T) {
	r := bento.NewRegistry(bento.MaxEntities)
	e1 := r.CreateEntity()
	e2 := r.CreateEntity()

	if e1 != 0 {
		t.Errorf("Expected first entity to be 0, got %d", e1)
	}
	if e2 != 1 {
		t.Errorf("Expected second entity to be 1, got %d", e2)
	}
	if r.Alive() != 2 {
		t.Errorf("Expected 2 live entities, got %d", r.Alive())
	}
	if r.Cap() != bento.MaxEntities {
		t.Errorf("Expected capacity %d, got %d", bento.MaxEntities, r.Cap())
	}
}

// go test -run ^TestCreateEntityRecyclesFIFO$ . -count 1
func TestCreateEntityRecyclesFIFO(t *testing.T) {
	// --- SCENARIO 1: RECYCLED IDS COME BACK OLDEST FIRST ---
	t.Run("OldestDestroyedFirst", func(t *testing.T) {
		r := bento.NewRegistry(8)
		for i := 0; i < 5; i++ {
			r.CreateEntity() // ids 0..4
		}
		r.DestroyEntity(1)
		r.DestroyEntity(3)
		r.DestroyEntity(0)

		// Fresh ids 5..7 are older entries on the free list than the
		// recycled ones, so they come out first.
		want := []bento.Entity{5, 6, 7, 1, 3, 0}
		for i, w := range want {
			if got := r.CreateEntity(); got != w {
				t.Fatalf("Create #%d: expected entity %d, got %d", i, w, got)
			}
		}
	})

	// --- SCENARIO 2: FREE LIST WRAPS AROUND AT CAPACITY ---
	t.Run("WrapAround", func(t *testing.T) {
		r := bento.NewRegistry(3)
		for i := 0; i < 3; i++ {
			r.CreateEntity()
		}
		r.DestroyEntity(2)
		r.DestroyEntity(0)
		r.DestroyEntity(1)

		want := []bento.Entity{2, 0, 1}
		for i, w := range want {
			if got := r.CreateEntity(); got != w {
				t.Fatalf("Create #%d: expected entity %d, got %d", i, w, got)
			}
		}
	})
}

// go test -run ^TestCreateEntityPanicsAtCapacity$ . -count 1
func TestCreateEntityPanicsAtCapacity(t *testing.T) {
	r := bento.NewRegistry(4)
	for i := 0; i < 4; i++ {
		r.CreateEntity()
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic when creating past capacity")
		}
	}()
	r.CreateEntity()
}

// go test -run ^TestNewRegistryInvalidCapacityPanics$ . -count 1
func TestNewRegistryInvalidCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for capacity 0")
		}
	}()
	bento.NewRegistry(0)
}

// go test -run ^TestAddComponent$ . -count 1
func TestAddComponent(t *testing.T) {
	r := bento.NewRegistry(bento.MaxEntities)
	e := r.CreateEntity()

	p := bento.AddComponent(r, e, Position{})
	if p == nil {
		t.Fatal("AddComponent returned a nil pointer")
	}

	p.X = 10
	p.Y = 20

	retrievedP := bento.GetComponent[Position](r, e)
	if retrievedP == nil {
		t.Fatal("GetComponent failed to find the component")
	}
	if retrievedP.X != 10 || retrievedP.Y != 20 {
		t.Errorf("Component data is incorrect after adding. Got %+v", retrievedP)
	}
}

// go test -run ^TestAddComponentReplacesExisting$ . -count 1
func TestAddComponentReplacesExisting(t *testing.T) {
	r := bento.NewRegistry(bento.MaxEntities)
	e := r.CreateEntity()

	bento.AddComponent(r, e, Position{X: 100, Y: 200})
	bento.AddComponent(r, e, Velocity{VX: 1, VY: 2})
	bento.AddComponent(r, e, Position{X: 555, Y: 777})

	p := bento.GetComponent[Position](r, e)
	if p == nil {
		t.Fatal("GetComponent failed after replacing a component")
	}
	if p.X != 555 || p.Y != 777 {
		t.Errorf("Component data incorrect after replace. Expected {555, 777}, got %+v", p)
	}
	if got := bento.StoreFor[Position](r).Len(); got != 1 {
		t.Errorf("Expected store to still hold 1 value after replace, got %d", got)
	}

	// Verify other components are untouched
	v := bento.GetComponent[Velocity](r, e)
	if v == nil {
		t.Fatal("Velocity component was lost after replacing Position")
	}
	if v.VX != 1 || v.VY != 2 {
		t.Errorf("Velocity component data was corrupted. Got %+v", v)
	}
}

// go test -run ^TestRemoveComponent$ . -count 1
func TestRemoveComponent(t *testing.T) {
	r := bento.NewRegistry(bento.MaxEntities)
	e := r.CreateEntity()
	bento.AddComponent(r, e, Position{X: 1})
	bento.AddComponent(r, e, Velocity{VX: 2})

	removed := bento.RemoveComponent[Position](r, e)
	if !removed {
		t.Fatal("RemoveComponent returned false")
	}

	if bento.GetComponent[Position](r, e) != nil {
		t.Fatal("Component was not actually removed")
	}
	if bento.GetComponent[Velocity](r, e) == nil {
		t.Fatal("A component of another type was removed as well")
	}

	if bento.RemoveComponent[Position](r, e) {
		t.Error("Expected second removal of the same component to return false")
	}
}

// go test -run ^TestGetComponentMissing$ . -count 1
func TestGetComponentMissing(t *testing.T) {
	r := bento.NewRegistry(bento.MaxEntities)
	e := r.CreateEntity()
	other := r.CreateEntity()
	bento.AddComponent(r, other, Position{X: 1})

	if got := bento.GetComponent[Position](r, e); got != nil {
		t.Errorf("Expected nil for an entity without the component, got %+v", got)
	}
	if got := bento.GetComponent[Health](r, e); got != nil {
		t.Errorf("Expected nil for a type never added, got %+v", got)
	}
}

// go test -run ^TestHasComponent$ . -count 1
func TestHasComponent(t *testing.T) {
	r := bento.NewRegistry(16)
	e := r.CreateEntity()
	bento.AddComponent(r, e, Tag{})

	if !bento.HasComponent[Tag](r, e) {
		t.Error("Expected HasComponent to be true after add")
	}
	if bento.HasComponent[Position](r, e) {
		t.Error("Expected HasComponent to be false for a type never added")
	}
	if bento.HasComponent[Tag](r, bento.Entity(9999)) {
		t.Error("Expected HasComponent to be false for an out-of-range entity")
	}
}

// go test -run ^TestDestroyEntityRemovesAllComponents$ . -count 1
func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	r := bento.NewRegistry(bento.MaxEntities)
	e1 := r.CreateEntity()
	bento.AddComponent(r, e1, Position{X: 1})
	bento.AddComponent(r, e1, Velocity{VX: 1})
	e2 := r.CreateEntity()
	p2 := bento.AddComponent(r, e2, Position{})
	p2.X = 100

	r.DestroyEntity(e1)

	// Check if e1's components are gone
	if bento.GetComponent[Position](r, e1) != nil {
		t.Fatal("GetComponent should return nil for a destroyed entity")
	}
	if bento.GetComponent[Velocity](r, e1) != nil {
		t.Fatal("Velocity survived the destruction broadcast")
	}
	if r.Alive() != 1 {
		t.Errorf("Expected 1 live entity, got %d", r.Alive())
	}

	// Check if e2 is still there and correct
	p2Retrieved := bento.GetComponent[Position](r, e2)
	if p2Retrieved == nil {
		t.Fatal("Entity e2 was removed incorrectly")
	}
	if p2Retrieved.X != 100 {
		t.Errorf("Data for entity e2 was corrupted. Got %+v", p2Retrieved)
	}

	// Check iteration count
	view := bento.NewView[Position](r)
	count := 0
	for view.Next() {
		count++
	}
	if count != 1 {
		t.Errorf("View returned %d entities, expected 1", count)
	}
}

// go test -run ^TestDestroyEntityOutOfRangePanics$ . -count 1
func TestDestroyEntityOutOfRangePanics(t *testing.T) {
	r := bento.NewRegistry(8)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an out-of-range entity")
		}
	}()
	r.DestroyEntity(bento.Entity(8))
}

// go test -run ^TestComponentDataIntegrityAfterSwapAndPop$ . -count 1
func TestComponentDataIntegrityAfterSwapAndPop(t *testing.T) {
	r := bento.NewRegistry(bento.MaxEntities)

	entities := make([]bento.Entity, 11)
	for i := 0; i < 10; i++ {
		entities[i] = r.CreateEntity()
		p := bento.AddComponent(r, entities[i], Position{})
		p.X = float32(i)
	}

	// Remove an entity from the middle
	entityToRemove := entities[5]
	r.DestroyEntity(entityToRemove)

	lastEnt := r.CreateEntity()
	p := bento.AddComponent(r, lastEnt, Position{})
	p.X = 10
	entities[10] = lastEnt

	// Check that the removed entity is gone
	if bento.GetComponent[Position](r, entityToRemove) != nil {
		t.Fatalf("Entity %d was not removed", entityToRemove)
	}

	// Check that all other entities have their correct data
	for i, e := range entities {
		if i == 5 { // Skip the removed one
			continue
		}
		p := bento.GetComponent[Position](r, e)
		if p == nil {
			t.Errorf("Entity %d lost its component after removal", e)
			continue
		}
		if p.X != float32(i) {
			t.Errorf("Data for entity %d is incorrect. Expected X=%d, got X=%.f", e, i, p.X)
		}
	}

	// Check store count
	if got := bento.StoreFor[Position](r).Len(); got != 10 {
		t.Errorf("Store holds %d values after removal, expected 10", got)
	}
}

// go test -run ^TestClear$ . -count 1
func TestClear(t *testing.T) {
	r := bento.NewRegistry(16)
	destroyed := 0
	bento.OnDestroy(r, func(e bento.Entity, p *Position) {
		destroyed++
	})

	for i := 0; i < 10; i++ {
		e := r.CreateEntity()
		bento.AddComponent(r, e, Position{X: float32(i)})
	}

	r.Clear()

	if r.Alive() != 0 {
		t.Errorf("Expected 0 live entities after Clear, got %d", r.Alive())
	}
	if got := bento.StoreFor[Position](r).Len(); got != 0 {
		t.Errorf("Expected empty store after Clear, got %d values", got)
	}
	if destroyed != 0 {
		t.Errorf("Clear must not fire destroy callbacks, got %d calls", destroyed)
	}

	// The registry is immediately reusable and ids start over.
	e := r.CreateEntity()
	if e != 0 {
		t.Errorf("Expected first entity after Clear to be 0, got %d", e)
	}
	if bento.GetComponent[Position](r, e) != nil {
		t.Error("Recycled entity inherited a component from before Clear")
	}
}

// go test -run ^TestOnConstruct$ . -count 1
func TestOnConstruct(t *testing.T) {
	r := bento.NewRegistry(16)
	var constructed []bento.Entity
	bento.OnConstruct(r, func(e bento.Entity, p *Position) {
		constructed = append(constructed, e)
		p.Y = 42 // callbacks see and may adjust the stored value
	})

	e1 := r.CreateEntity()
	e2 := r.CreateEntity()
	bento.AddComponent(r, e1, Position{X: 1})
	bento.AddComponent(r, e2, Position{X: 2})
	bento.AddComponent(r, e1, Position{X: 3}) // replace fires again

	if len(constructed) != 3 {
		t.Fatalf("Expected 3 construct calls, got %d", len(constructed))
	}
	if constructed[0] != e1 || constructed[1] != e2 || constructed[2] != e1 {
		t.Errorf("Construct calls saw wrong entities: %v", constructed)
	}
	if p := bento.GetComponent[Position](r, e1); p.X != 3 || p.Y != 42 {
		t.Errorf("Expected callback write to be visible, got %+v", p)
	}
}

// go test -run ^TestOnDestroy$ . -count 1
func TestOnDestroy(t *testing.T) {
	r := bento.NewRegistry(16)
	type removal struct {
		entity bento.Entity
		x      float32
	}
	var destroyed []removal
	bento.OnDestroy(r, func(e bento.Entity, p *Position) {
		destroyed = append(destroyed, removal{e, p.X})
	})

	e1 := r.CreateEntity()
	e2 := r.CreateEntity()
	bento.AddComponent(r, e1, Position{X: 1})
	bento.AddComponent(r, e2, Position{X: 2})

	bento.RemoveComponent[Position](r, e1)
	r.DestroyEntity(e2) // broadcast removal fires the callback too

	if len(destroyed) != 2 {
		t.Fatalf("Expected 2 destroy calls, got %d", len(destroyed))
	}
	if destroyed[0].entity != e1 || destroyed[0].x != 1 {
		t.Errorf("First destroy call incorrect: %+v", destroyed[0])
	}
	if destroyed[1].entity != e2 || destroyed[1].x != 2 {
		t.Errorf("Second destroy call incorrect: %+v", destroyed[1])
	}

	// Destroying an entity without the component must not fire.
	e3 := r.CreateEntity()
	r.DestroyEntity(e3)
	if len(destroyed) != 2 {
		t.Errorf("Destroy callback fired for an entity without the component")
	}
}

// go test -run ^TestStoreForSharesOneStore$ . -count 1
func TestStoreForSharesOneStore(t *testing.T) {
	r := bento.NewRegistry(16)
	s1 := bento.StoreFor[Position](r)
	s2 := bento.StoreFor[Position](r)
	if s1 != s2 {
		t.Fatal("StoreFor must return the same store for the same type")
	}

	e := r.CreateEntity()
	bento.AddComponent(r, e, Position{X: 7})
	if !s1.Has(e) {
		t.Error("Store does not see a component added through the registry")
	}
	if got := s1.Get(e).X; got != 7 {
		t.Errorf("Expected X=7 through the store, got %v", got)
	}
	if s1.Len() != 1 {
		t.Errorf("Expected store length 1, got %d", s1.Len())
	}
}
