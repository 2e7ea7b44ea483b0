package engine

import "testing"

func TestConditionDistanceExtremelyDistantFastPath(t *testing.T) {
	a := NewArena(2, testBases())
	h1 := a.Create(0, FixedPoint{H: FixedFromLong(0), V: FixedFromLong(0)}, 0, NewRandomSeed(1))
	ev := NewEvaluator(a)

	c := Condition{Kind: ConditionDistance, Subject: h1, Object: NoHandle, Op: OpGE, Value: 2 * 65534}
	if !ev.IsTrue(c, 0) {
		t.Error("expected unresolvable Object with extremely-distant threshold to count as true")
	}
}

func TestConditionHealthRange(t *testing.T) {
	a := NewArena(2, testBases())
	h := a.Create(0, FixedPoint{}, 0, NewRandomSeed(1))
	ev := NewEvaluator(a)
	ge := Condition{Kind: ConditionHealth, Subject: h, Op: OpGE, ValueFixed: FixedFromFloat(0.5)}
	le := Condition{Kind: ConditionHealth, Subject: h, Op: OpLE, ValueFixed: FixedFromFloat(1.5)}
	if !ev.All([]Condition{ge, le}, 0) {
		t.Error("expected full health (fraction 1.0) to be within [0.5,1.5]")
	}
	obj, _ := a.Get(h)
	obj.Health = FixedFromLong(1)
	if ev.All([]Condition{ge, le}, 0) {
		t.Error("expected health 1 of 10 (fraction 0.1) to be outside [0.5,1.5]")
	}
}

func TestConditionDestroyedAfterRemoval(t *testing.T) {
	a := NewArena(2, testBases())
	h := a.Create(0, FixedPoint{}, 0, NewRandomSeed(1))
	ev := NewEvaluator(a)
	c := Condition{Kind: ConditionDestroyed, Subject: h, Op: OpEQ, ValueBool: true}
	if ev.IsTrue(c, 0) {
		t.Error("expected live object to not satisfy ConditionDestroyed")
	}
	a.Destroy(h)
	if !ev.IsTrue(c, 0) {
		t.Error("expected destroyed object to satisfy ConditionDestroyed")
	}
}

func TestConditionTimeLegacyWeighting(t *testing.T) {
	ev := NewEvaluator(NewArena(1, testBases()))
	c := Condition{Kind: ConditionTime, Op: OpEQ, Value: 10, legacyStartTimeWeight: true}
	if !ev.IsTrue(c, 30) {
		t.Error("expected tick 30 with 1/3 weighting to equal 10")
	}
	if ev.IsTrue(c, 29) {
		t.Error("expected tick 29 with 1/3 weighting (9) to miss 10")
	}
}

func TestConditionOpGEFiresAtEqualityGTDoesNot(t *testing.T) {
	ev := NewEvaluator(NewArena(1, testBases()))
	ge := Condition{Kind: ConditionTime, Op: OpGE, Value: 10}
	gt := Condition{Kind: ConditionTime, Op: OpGT, Value: 10}
	if !ev.IsTrue(ge, 10) {
		t.Error("expected OpGE to fire at value == threshold")
	}
	if ev.IsTrue(gt, 10) {
		t.Error("expected OpGT to not fire at value == threshold")
	}
}

func TestEvaluatorAllIsConjunction(t *testing.T) {
	ev := NewEvaluator(NewArena(1, testBases()))
	always := Condition{Kind: ConditionTime, Op: OpGE, Value: 0}
	never := Condition{Kind: ConditionFalse}
	if ev.All([]Condition{always, never}, 0) {
		t.Error("expected conjunction with a false condition to be false")
	}
	if !ev.All([]Condition{always}, 0) {
		t.Error("expected conjunction of only-true conditions to be true")
	}
}
