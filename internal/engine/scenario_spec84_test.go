package engine

import "testing"

// energyReleaseBases puts the pod at index 0, mirroring
// applyReleaseEnergy's energyPodBaseType convention.
func energyReleaseBases() []BaseObject {
	return []BaseObject{
		{Name: "pod", Health: FixedFromLong(1), Attributes: CanCollide},
		{Name: "hulk", Health: FixedFromLong(100), Energy: FixedFromLong(2000)},
	}
}

// TestScenarioReleaseEnergyDualSpawnDeterminism exercises §8.4 scenario 1:
// two identically-seeded arenas releasing 100% of a hulk's energy must
// spawn the same number of energy pods via the same RandomSeed lineage,
// regardless of which arena instance runs the verb.
func TestScenarioReleaseEnergyDualSpawnDeterminism(t *testing.T) {
	run := func() int32 {
		bases := energyReleaseBases()
		a := NewArena(64, bases)
		q := NewActionQueue()
		ex := NewExecutor(a, q)
		a.SetExecutor(ex)

		h := a.Create(1, FixedPoint{}, -1, NewRandomSeed(42))
		ex.Run([]Action{{
			Verb:      VerbReleaseEnergy,
			Reflexive: true,
			Argument:  Argument{Percent: FixedFromLong(1)},
		}}, h, NoHandle, 0)

		return a.Count() - 1 // exclude the hulk itself
	}

	podsA := run()
	podsB := run()
	if podsA == 0 {
		t.Fatal("expected releasing 100% of a non-trivial energy pool to spawn at least one pod")
	}
	if podsA != podsB {
		t.Fatalf("expected deterministic pod count across identical runs: %d != %d", podsA, podsB)
	}
}

func warpTestBases() []BaseObject {
	return []BaseObject{
		{
			Name:            "warpship",
			Attributes:      CanCollide | CanBeHit,
			Health:          FixedFromLong(100),
			Energy:          FixedFromLong(3000),
			WarpSpeed: FixedFromLong(50),
			// DestinationPoint below sits well inside this radius of the
			// origin, so WarpOut triggers on the very first Warping tick
			// (before that tick's motion integrates the warp velocity),
			// keeping this test about the energy bookkeeping rather than
			// navigation timing.
			WarpOutDistance: FixedFromLong(10),
			MaxVelocity:     FixedFromLong(50),
		},
	}
}

// TestScenarioWarpEnergyAccounting exercises §8.4's warp-energy scenario:
// entering WarpIn deducts a lump sum from Energy up front, each Warping
// tick deducts a further per-tick cost, and completing WarpOut refunds
// exactly the energy taken to Battery rather than losing or duplicating it.
func TestScenarioWarpEnergyAccounting(t *testing.T) {
	bases := warpTestBases()
	g := NewGame(4, bases, nil, nil, 7)
	h := g.Arena.Create(0, FixedPoint{}, -1, NewRandomSeed(7))
	obj, _ := g.Arena.Get(h)
	obj.Presence = PresenceWarpIn
	obj.DestinationPoint = FixedPoint{H: FixedFromLong(1), V: FixedFromLong(0)}

	startEnergy := obj.Energy
	wantSpent := startEnergy.DivInt(kWarpInEnergyFactor)

	g.Tick()
	obj, _ = g.Arena.Get(h)
	if obj.Energy.Ge(startEnergy) {
		t.Fatal("expected WarpIn entry to deduct energy immediately")
	}
	if !obj.WarpEnergySpent.Eq(wantSpent) {
		t.Fatalf("expected WarpEnergySpent to record the WarpIn lump sum %v, got %v", wantSpent, obj.WarpEnergySpent)
	}

	for i := 0; i < 200 && obj.Presence != PresenceNormal; i++ {
		g.Tick()
		obj, _ = g.Arena.Get(h)
	}

	if obj.Presence != PresenceNormal {
		t.Fatal("expected the warp cycle to complete and return to PresenceNormal")
	}
	if obj.WarpEnergySpent.Raw() != 0 {
		t.Error("expected WarpEnergySpent to be cleared once refunded")
	}
	if obj.Battery.Raw() == 0 {
		t.Error("expected WarpOut completion to refund the spent energy into Battery")
	}
}

// TestScenarioConditionAndViaDistanceAndHealth exercises §8.4's
// condition-AND scenario using real ConditionDistance and ConditionHealth
// kinds with the ComparisonOp design: a scripted pair only fires once both
// the proximity and health thresholds are simultaneously true.
func TestScenarioConditionAndViaDistanceAndHealth(t *testing.T) {
	bases := []BaseObject{
		{Name: "scout", Health: FixedFromLong(10), Attributes: CanCollide | CanBeHit},
	}
	a := NewArena(4, bases)
	h1 := a.Create(0, FixedPoint{H: FixedFromLong(0), V: FixedFromLong(0)}, 0, NewRandomSeed(1))
	h2 := a.Create(0, FixedPoint{H: FixedFromLong(100), V: FixedFromLong(0)}, 1, NewRandomSeed(2))
	ev := NewEvaluator(a)

	near := Condition{Kind: ConditionDistance, Subject: h1, Object: h2, Op: OpLE, Value: 200}
	healthy := Condition{Kind: ConditionHealth, Subject: h1, Op: OpGE, ValueFixed: FixedFromLong(8).Div(FixedFromLong(10))}

	if !ev.All([]Condition{near, healthy}, 0) {
		t.Fatal("expected both near and healthy to hold for a fresh full-health pair 100 apart")
	}

	obj1, _ := a.Get(h1)
	obj1.Health = FixedFromLong(1)
	if ev.All([]Condition{near, healthy}, 0) {
		t.Error("expected conjunction to fail once health drops below its threshold")
	}

	obj1.Health = FixedFromLong(10)
	obj2, _ := a.Get(h2)
	obj2.Position.H = FixedFromLong(10000)
	if ev.All([]Condition{near, healthy}, 0) {
		t.Error("expected conjunction to fail once the pair is no longer within distance")
	}
}
