package engine

import "testing"

// TestScenarioElasticPushOnCollision exercises P5 / §8.4's collision
// scenario: two collidable objects placed within each other's combined
// radius must take damage and separate rather than pass through.
func TestScenarioElasticPushOnCollision(t *testing.T) {
	bases := []BaseObject{
		{Name: "rock", Health: FixedFromLong(100), Mass: FixedFromLong(5), PixRadius: FixedFromLong(10), Attributes: CanCollide | CanBeHit},
	}
	g := NewGame(8, bases, nil, nil, 1)

	h1 := g.Arena.Create(0, FixedPoint{H: FixedFromLong(0), V: FixedFromLong(0)}, -1, NewRandomSeed(1))
	h2 := g.Arena.Create(0, FixedPoint{H: FixedFromLong(5), V: FixedFromLong(0)}, -1, NewRandomSeed(2))

	g.Tick()

	o1, ok1 := g.Arena.Get(h1)
	o2, ok2 := g.Arena.Get(h2)
	if !ok1 || !ok2 {
		t.Fatal("expected both objects to survive a single collision tick")
	}
	if o1.Health.Ge(FixedFromLong(100)) || o2.Health.Ge(FixedFromLong(100)) {
		t.Error("expected both objects to take collision damage")
	}
	if o1.Velocity.H.Raw() == 0 && o2.Velocity.H.Raw() == 0 {
		t.Error("expected collision to impart separating velocity")
	}
}

// TestScenarioCloakCancelOnHit exercises §4.6: a cloaked object hit in
// collision loses its cloak immediately rather than ramping down.
func TestScenarioCloakCancelOnHit(t *testing.T) {
	bases := []BaseObject{
		{Name: "rock", Health: FixedFromLong(100), Mass: FixedFromLong(5), PixRadius: FixedFromLong(10), Attributes: CanCollide | CanBeHit},
	}
	g := NewGame(8, bases, nil, nil, 1)
	h1 := g.Arena.Create(0, FixedPoint{H: FixedFromLong(0), V: FixedFromLong(0)}, -1, NewRandomSeed(1))
	h2 := g.Arena.Create(0, FixedPoint{H: FixedFromLong(5), V: FixedFromLong(0)}, -1, NewRandomSeed(2))
	obj1, _ := g.Arena.Get(h1)
	obj1.RuntimeFlags |= RuntimeCloaked
	obj1.CloakLevel = FixedFromLong(1)

	g.Tick()

	obj1, _ = g.Arena.Get(h1)
	obj2, _ := g.Arena.Get(h2)
	_ = obj2
	if obj1.RuntimeFlags&RuntimeCloaked != 0 {
		t.Error("expected cloak flag cleared after collision hit")
	}
	if obj1.CloakLevel.Raw() != 0 {
		t.Error("expected cloak level reset to zero immediately on hit, not ramped")
	}
}
