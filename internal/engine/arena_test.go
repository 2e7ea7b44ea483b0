package engine

import "testing"

func testBases() []BaseObject {
	return []BaseObject{
		{Name: "scout", Health: FixedFromLong(10), Attributes: CanCollide | CanBeHit},
		{Name: "rock", Health: FixedFromLong(50), Attributes: CanCollide},
	}
}

func TestArenaCreateDestroyGeneration(t *testing.T) {
	a := NewArena(4, testBases())
	h := a.Create(0, FixedPoint{}, 0, NewRandomSeed(1))
	if !h.IsSet() {
		t.Fatal("expected a valid handle")
	}
	if _, ok := a.Get(h); !ok {
		t.Fatal("expected newly created object to be live")
	}
	a.Destroy(h)
	if _, ok := a.Get(h); ok {
		t.Fatal("expected destroyed handle to be stale")
	}
	a.Cull()

	h2 := a.Create(0, FixedPoint{}, 0, NewRandomSeed(2))
	if h2.index == h.index && h2.generation == h.generation {
		t.Fatal("expected reused slot to carry a new generation")
	}
}

func TestArenaFullReturnsNoHandle(t *testing.T) {
	a := NewArena(1, testBases())
	h1 := a.Create(0, FixedPoint{}, 0, NewRandomSeed(1))
	if !h1.IsSet() {
		t.Fatal("expected first create to succeed")
	}
	h2 := a.Create(0, FixedPoint{}, 0, NewRandomSeed(2))
	if h2.IsSet() {
		t.Fatal("expected create on a full arena to return NoHandle")
	}
}

func TestArenaAllStopsEarly(t *testing.T) {
	a := NewArena(4, testBases())
	for i := 0; i < 3; i++ {
		a.Create(0, FixedPoint{}, 0, NewRandomSeed(uint32(i)))
	}
	seen := 0
	a.All(func(o *SpaceObject) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("All stopped after %d, want 2", seen)
	}
}

func TestArenaChangeBaseType(t *testing.T) {
	a := NewArena(2, testBases())
	h := a.Create(0, FixedPoint{}, 0, NewRandomSeed(1))
	if !a.ChangeBaseType(h, 1, true) {
		t.Fatal("expected ChangeBaseType to succeed on a live handle")
	}
	obj, _ := a.Get(h)
	if obj.BaseType() != 1 {
		t.Errorf("BaseType() = %d, want 1", obj.BaseType())
	}
}
