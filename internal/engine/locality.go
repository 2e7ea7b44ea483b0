package engine

import "math"

// cloakRampPerTick is how much CloakLevel moves toward its target (0 or
// full) each tick, expressed as a fixed-point fraction — a ship neither
// snaps invisible nor snaps visible, it ramps over a handful of ticks,
// which is also what gives the AlterCloak and AlterCloakLevel alter kinds
// something to race against (§4.6).
var cloakRampPerTick = FixedFromFloat(1.0 / 8.0)

// Visibility reports, per admiral, whether a given object should be
// rendered/targetable: an object's own admiral always sees it; other
// admirals see it unless it is fully cloaked.
type Visibility uint8

const (
	VisibilityHidden Visibility = iota
	VisibilityVisible
	VisibilityPartial
)

// StepLocality advances obj's cloak ramp by one step toward its
// RuntimeCloaked target. It returns nothing; the resulting CloakLevel is
// read by VisibilityTo and by Game.Snapshot.
func StepLocality(obj *SpaceObject) {
	target := FixedZero
	if obj.RuntimeFlags&RuntimeCloaked != 0 {
		target = FixedFromLong(1)
	}
	if obj.CloakLevel.Lt(target) {
		obj.CloakLevel = minFixed(obj.CloakLevel.Add(cloakRampPerTick), target)
	} else if obj.CloakLevel.Gt(target) {
		obj.CloakLevel = maxFixed(obj.CloakLevel.Sub(cloakRampPerTick), target)
	}
}

// VisibilityTo reports how viewer (an admiral index) perceives obj.
func VisibilityTo(obj *SpaceObject, viewer int32) Visibility {
	if obj.Owner == viewer {
		return VisibilityVisible
	}
	switch {
	case obj.CloakLevel.Raw() == 0:
		return VisibilityVisible
	case obj.CloakLevel.Ge(FixedFromLong(1)):
		return VisibilityHidden
	default:
		return VisibilityPartial
	}
}

// closestDistanceUnset is ClosestDistance's reset value each tick, larger
// than any real squared-distance in the universe so the first candidate
// encountered always wins the comparison.
var closestDistanceUnset = FixedFromRaw(math.MaxInt32)

// StepLocalityPass recomputes every active object's closest-object/
// closest-distance and local friend/foe strength fields for this tick,
// then ramps its cloak level, using the coarse grid's broad-phase buckets
// rather than an O(n^2) scan over every active object (§4.2, §4.6).
// Game.Tick runs it after collision resolution, which comes after the
// admiral-think step, so AdmiralThink's think_build reads the
// LocalFriendStrength/LocalFoeStrength values from the previous tick.
func StepLocalityPass(arena *Arena, cs *CollisionSystem) {
	arena.All(func(o *SpaceObject) bool {
		o.ClosestObject = NoHandle
		o.ClosestDistance = closestDistanceUnset
		o.LocalFriendStrength = FixedZero
		o.LocalFoeStrength = FixedZero
		StepLocality(o)
		return true
	})

	cs.VisitCoarsePairs(func(a, b int32) {
		oa := &arena.slots[a]
		ob := &arena.slots[b]
		if !oa.Active() || !ob.Active() {
			return
		}
		baseA := arena.BaseObjectAt(oa.baseType)
		baseB := arena.BaseObjectAt(ob.baseType)

		dh := oa.Position.H.Sub(ob.Position.H)
		dv := oa.Position.V.Sub(ob.Position.V)
		distSq := dh.Mul(dh).Add(dv.Mul(dv))

		accumulateLocality(oa, ob, baseB, distSq)
		accumulateLocality(ob, oa, baseA, distSq)
	})
}

func accumulateLocality(self, other *SpaceObject, otherBase *BaseObject, distSq Fixed) {
	if distSq.Lt(self.ClosestDistance) {
		self.ClosestDistance = distSq
		self.ClosestObject = other.handle
	}
	if IsFriend(self.Owner, other.Owner) {
		self.LocalFriendStrength = self.LocalFriendStrength.Add(otherBase.OffenseValue)
	} else {
		self.LocalFoeStrength = self.LocalFoeStrength.Add(otherBase.OffenseValue)
	}
}

// IsFriend reports whether two owners are allied. The engine has no
// separate alliance table (§9 Open Question: resolved as "owner equality
// is the only alliance relation; a richer diplomacy layer is a
// replaystore/matchoperator-level concern, not core engine state").
func IsFriend(ownerA, ownerB int32) bool { return ownerA == ownerB }

// CountNearby tallies friends and foes of viewer within radius of pos,
// used by think.go's shouldEvade (§4.7).
func CountNearby(arena *Arena, pos FixedPoint, radius Fixed, viewer int32) (friends, foes int32) {
	radiusSq := radius.Mul(radius)
	arena.All(func(o *SpaceObject) bool {
		dh := o.Position.H.Sub(pos.H)
		dv := o.Position.V.Sub(pos.V)
		distSq := dh.Mul(dh).Add(dv.Mul(dv))
		if distSq.Gt(radiusSq) {
			return true
		}
		if IsFriend(o.Owner, viewer) {
			friends++
		} else {
			foes++
		}
		return true
	})
	return friends, foes
}

func minFixed(a, b Fixed) Fixed {
	if a.Lt(b) {
		return a
	}
	return b
}

func maxFixed(a, b Fixed) Fixed {
	if a.Gt(b) {
		return a
	}
	return b
}
