package engine

// ConditionKind enumerates the 16 predicate kinds a level script can test,
// matching condition.hpp. Some kinds are flagged not-net-safe because
// their truth depends on host-local state (e.g. which admiral this
// process considers "self") that diverges across replay consumers if
// evaluated blindly — NetSafe() exists so the scheduler can refuse to
// schedule such a condition for anything but single-consumer replay
// checks (§4.5, §9).
type ConditionKind uint8

const (
	ConditionAutopilot ConditionKind = iota
	ConditionBuilding
	ConditionComputer
	ConditionCounter
	ConditionDestroyed
	ConditionDistance
	ConditionFalse
	ConditionHealth
	ConditionMessage
	ConditionOrdered
	ConditionOwner
	ConditionShips
	ConditionSpeed
	ConditionSubject
	ConditionTime
	ConditionZoom
)

// ComparisonOp is the relational operator a Condition applies between its
// computed value and its stored threshold, matching condition.hpp's
// ConditionOp (each kind's doc comment lists which ops it supports; the
// engine does not reject an unsupported op, it just evaluates it literally
// — §8.3's explicit testable property is "ConditionOp GE fires at value ==
// threshold; GT does not", which Compare below satisfies directly).
type ComparisonOp uint8

const (
	OpEQ ComparisonOp = iota
	OpNE
	OpLT
	OpGT
	OpLE
	OpGE
)

// Compare applies op between a computed value and the condition's stored
// threshold.
func (op ComparisonOp) Compare(value, threshold int32) bool {
	switch op {
	case OpEQ:
		return value == threshold
	case OpNE:
		return value != threshold
	case OpLT:
		return value < threshold
	case OpGT:
		return value > threshold
	case OpLE:
		return value <= threshold
	case OpGE:
		return value >= threshold
	default:
		return false
	}
}

// CompareFixed is Compare for Fixed-valued kinds (health fraction, speed).
func (op ComparisonOp) CompareFixed(value, threshold Fixed) bool {
	switch op {
	case OpEQ:
		return value.Eq(threshold)
	case OpNE:
		return !value.Eq(threshold)
	case OpLT:
		return value.Lt(threshold)
	case OpGT:
		return value.Gt(threshold)
	case OpLE:
		return value.Le(threshold)
	case OpGE:
		return value.Ge(threshold)
	default:
		return false
	}
}

// kMaximumRelevantDistanceSquared bounds ConditionDistance's "extremely
// distant" fast path: the largest squared distance two universal
// coordinates can actually produce, (2*65534)^2, derived from the
// coordinate range rather than an arbitrary round number (§9 Open
// Question: resolved as "distance² ≥ this counts as extremely distant").
const kMaximumRelevantDistanceSquared int64 = int64(2*65534) * int64(2*65534)

// Condition is one predicate in a script's condition list. Fields beyond
// Kind are interpreted according to Kind, mirroring the original's single
// wide condition struct rather than per-kind subclasses, so level data
// round-trips without a discriminated-union decoder. Every kind computes
// exactly one raw value and compares it against Value/ValueFixed/ValueBool
// via Op, rather than the inclusive-range Min/Max scheme this replaces.
type Condition struct {
	Kind ConditionKind
	Op   ComparisonOp

	Persistent       bool
	InitiallyEnabled bool

	Subject Handle
	Object  Handle

	// Value is the generic int32 threshold (distance, counter, ship
	// count, time duration in ticks, owner/admiral index).
	Value int32
	// ValueFixed is the threshold for Fixed-valued kinds (speed, health
	// fraction).
	ValueFixed Fixed
	// ValueBool is the threshold for boolean-predicate kinds (autopilot,
	// building, destroyed, ordered, message-as-active), compared via Op's
	// EQ/NE only — the original documents these kinds as "Ops: EQ, NE".
	ValueBool bool

	CounterAdmiral int32
	CounterIndex   int32

	MessageID   int32
	MessagePage int32

	// legacyStartTimeWeight mirrors legacy_start_time's 1/3 weighting of
	// elapsed ticks when Kind == ConditionTime, preserved because existing
	// level data's authored tick counts assume it (§9 Open Question:
	// resolved as "keep the 1/3 weighting").
	legacyStartTimeWeight bool
}

// NetSafe reports whether this condition's truth value is safe to
// evaluate identically by every replay consumer. ConditionComputer,
// ConditionMessage, ConditionAutopilot, ConditionBuilding, ConditionZoom,
// and ConditionSubject read host-local UI/player state in the original and
// are excluded; every other kind depends only on simulation state and is
// safe.
func (c Condition) NetSafe() bool {
	switch c.Kind {
	case ConditionComputer, ConditionMessage, ConditionAutopilot,
		ConditionBuilding, ConditionZoom, ConditionSubject:
		return false
	default:
		return true
	}
}

// Evaluator resolves Condition predicates against arena state. It holds
// no state of its own beyond the arena and current tick it is given, so
// evaluating the same condition against the same tick snapshot is always
// reproducible (I6).
type Evaluator struct {
	arena *Arena
}

// NewEvaluator builds an Evaluator bound to arena.
func NewEvaluator(arena *Arena) *Evaluator {
	return &Evaluator{arena: arena}
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// IsTrue evaluates c at the given simulation tick.
func (e *Evaluator) IsTrue(c Condition, tick int32) bool {
	switch c.Kind {
	case ConditionFalse:
		return false

	case ConditionDestroyed:
		_, ok := e.arena.Get(c.Subject)
		return c.Op.Compare(boolToInt32(!ok), boolToInt32(c.ValueBool))

	case ConditionHealth:
		obj, ok := e.arena.Get(c.Subject)
		if !ok {
			return c.Op.CompareFixed(FixedFromLong(0), c.ValueFixed)
		}
		base := e.arena.BaseObjectAt(obj.BaseType())
		var fraction Fixed
		if base.Health.Raw() > 0 {
			fraction = obj.Health.Div(base.Health)
		}
		return c.Op.CompareFixed(fraction, c.ValueFixed)

	case ConditionOwner:
		obj, ok := e.arena.Get(c.Subject)
		if !ok {
			return false
		}
		return c.Op.Compare(obj.Owner, c.Value)

	case ConditionSpeed:
		obj, ok := e.arena.Get(c.Subject)
		if !ok {
			return false
		}
		speedSq := obj.Velocity.H.Mul(obj.Velocity.H).Add(obj.Velocity.V.Mul(obj.Velocity.V))
		return c.Op.CompareFixed(speedSq, c.ValueFixed.Mul(c.ValueFixed))

	case ConditionDistance:
		subj, ok1 := e.arena.Get(c.Subject)
		obj, ok2 := e.arena.Get(c.Object)
		if !ok1 || !ok2 {
			// Unresolvable reference counts as extremely distant rather
			// than an error so AND-composed scripts degrade gracefully.
			return c.Op.Compare(1, boolToInt32(int64(c.Value)*int64(c.Value) >= kMaximumRelevantDistanceSquared))
		}
		dh := int64(subj.Position.H.Raw() - obj.Position.H.Raw())
		dv := int64(subj.Position.V.Raw() - obj.Position.V.Raw())
		distSq := dh*dh + dv*dv
		// Value is in whole units; scale its square by 256^2 to match the
		// raw fixed-point positions distSq is computed from.
		thresholdSq := int64(c.Value) * int64(c.Value) << 16
		// distSq can exceed int32 range; compare in the int64 domain
		// directly rather than through ComparisonOp.Compare.
		switch c.Op {
		case OpEQ:
			return distSq == thresholdSq
		case OpNE:
			return distSq != thresholdSq
		case OpLT:
			return distSq < thresholdSq
		case OpGT:
			return distSq > thresholdSq
		case OpLE:
			return distSq <= thresholdSq
		case OpGE:
			return distSq >= thresholdSq
		default:
			return false
		}

	case ConditionOrdered:
		obj, ok := e.arena.Get(c.Subject)
		if !ok {
			return false
		}
		return c.Op.Compare(boolToInt32(obj.DestinationObject.IsSet()), boolToInt32(c.ValueBool))

	case ConditionShips:
		count := int32(0)
		e.arena.All(func(o *SpaceObject) bool {
			if o.Active() && o.Owner == c.CounterAdmiral {
				count++
			}
			return true
		})
		return c.Op.Compare(count, c.Value)

	case ConditionTime:
		effective := tick
		if c.legacyStartTimeWeight {
			effective = tick / 3
		}
		return c.Op.Compare(effective, c.Value)

	case ConditionAutopilot:
		obj, ok := e.arena.Get(c.Subject)
		if !ok {
			return false
		}
		on := e.arena.BaseObjectAt(obj.BaseType()).Attributes.Has(AutoPilot)
		return c.Op.Compare(boolToInt32(on), boolToInt32(c.ValueBool))

	case ConditionZoom:
		return c.Op.Compare(tick, c.Value)

	case ConditionSubject:
		return c.Op.Compare(boolToInt32(c.Subject.IsSet()), boolToInt32(c.ValueBool))

	case ConditionBuilding:
		// The original reads local-player UI build state, which this
		// engine has no concept of (already excluded by NetSafe). As a
		// deterministic engine-level approximation, the referenced
		// subject being in WarpIn or Warping presence stands in for "is
		// building".
		obj, ok := e.arena.Get(c.Subject)
		if !ok {
			return c.Op.Compare(0, boolToInt32(c.ValueBool))
		}
		return c.Op.Compare(boolToInt32(obj.Presence == PresenceWarpIn || obj.Presence == PresenceWarping), boolToInt32(c.ValueBool))

	case ConditionCounter:
		return false // resolved against a live Admiral in IsTrueForAdmirals

	case ConditionComputer, ConditionMessage:
		return false

	default:
		return false
	}
}

// IsTrueForAdmirals is IsTrue plus the one kind (ConditionCounter) that
// needs an admiral roster rather than just the arena, kept as a separate
// entry point so the common case (Evaluator.IsTrue/All) doesn't have to
// thread admirals through every call.
func (e *Evaluator) IsTrueForAdmirals(c Condition, tick int32, admirals []*Admiral) bool {
	if c.Kind != ConditionCounter {
		return e.IsTrue(c, tick)
	}
	for _, a := range admirals {
		if a.Index == c.CounterAdmiral {
			if c.CounterIndex < 0 || int(c.CounterIndex) >= len(a.Counters) {
				return false
			}
			return c.Op.Compare(a.Counters[c.CounterIndex], c.Value)
		}
	}
	return false
}

// All reports whether every condition in cs is true (level scripts AND
// conditions together by listing more than one in the same slot, per
// P6 — there is no explicit AND node).
func (e *Evaluator) All(cs []Condition, tick int32) bool {
	for _, c := range cs {
		if !e.IsTrue(c, tick) {
			return false
		}
	}
	return true
}

// AllForAdmirals is All but routes ConditionCounter through the admiral
// roster instead of always returning false.
func (e *Evaluator) AllForAdmirals(cs []Condition, tick int32, admirals []*Admiral) bool {
	for _, c := range cs {
		if !e.IsTrueForAdmirals(c, tick, admirals) {
			return false
		}
	}
	return true
}
