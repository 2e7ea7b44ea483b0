package engine

// Angle thresholds governing engagement and evasion, matching the
// original's hardcoded constants (§4.3).
const (
	kShootAngle = 15 // half-cone, degrees: target must be within this bearing to fire
	kEvadeAngle = 30 // heading jitter applied when fleeing a closer foe
	kGuidedCone = 60 // guided projectiles can only correct heading within this cone
)

// kWarpInEnergyFactor divides a base object's full energy to get the lump
// sum spent entering warp; kWarpSubticksPerTick/kWarpFullProgress bound
// the 100-subtick WarpIn/WarpOut ramp (§4.6).
const (
	kWarpInEnergyFactor  = 3
	kWarpSubticksPerTick = 25
	kWarpFullProgress    = 100

	landingTicks = 30
)

// Think runs one tick of non-player AI for obj: the warp/landing presence
// state machine, destination steering with arrive-action firing, target
// acquisition and weapon fire within engagement range, and evasion for
// CanEvade ships fleeing a nearer foe. arena resolves target/destination
// handles and creates weapon projectiles; exec fires the Arrive/Expire
// hook lists; tick timestamps any action Run schedules.
func Think(obj *SpaceObject, base *BaseObject, arena *Arena, exec *Executor, tick int32) (turnInput, thrustInput Fixed) {
	if turn, thrust, handled := thinkPresence(obj, base, arena, exec, tick); handled {
		return turn, thrust
	}

	if base.Attributes.Has(IsGuided) {
		return thinkGuided(obj, arena)
	}

	if base.Attributes.Has(CanEvade) && shouldEvade(obj, base, arena) {
		return thinkEvade(obj)
	}

	if base.Attributes.Has(CanEngage) || base.Attributes.Has(AutoTarget) {
		acquireTarget(obj, base, arena)
		thinkEngage(obj, base, arena, exec, tick)
	}

	if !base.Attributes.Has(AutoPilot) && !base.Attributes.Has(OnAutoPilot) {
		return FixedZero, FixedZero
	}

	return thinkAutopilot(obj, arena, exec, tick)
}

// thinkPresence advances obj's warp/landing transient state machine.
// Returns handled=false when obj is in PresenceNormal, so the caller falls
// through to ordinary AI.
func thinkPresence(obj *SpaceObject, base *BaseObject, arena *Arena, exec *Executor, tick int32) (turn, thrust Fixed, handled bool) {
	switch obj.Presence {
	case PresenceWarpIn:
		if obj.WarpProgress == 0 {
			spent := base.Energy.DivInt(kWarpInEnergyFactor)
			obj.Energy = obj.Energy.Sub(spent)
			obj.WarpEnergySpent = spent
		}
		obj.WarpProgress += kMajorTick
		for bit := uint8(0); bit < 4; bit++ {
			threshold := (int32(bit) + 1) * kWarpSubticksPerTick
			if obj.WarpProgress >= threshold {
				obj.WarpSoundMask |= 1 << bit
			}
		}
		if obj.WarpProgress >= kWarpFullProgress {
			obj.Presence = PresenceWarping
			obj.WarpProgress = 0
		}
		return FixedZero, FixedZero, true

	case PresenceWarping:
		h, v := GetRotPoint(obj.Rotation)
		obj.Velocity = FixedPoint{H: h.Mul(base.WarpSpeed), V: v.Mul(base.WarpSpeed)}
		cost := base.Energy.DivInt(kWarpInEnergyFactor * 10)
		obj.Energy = obj.Energy.Sub(cost)
		obj.WarpEnergySpent = obj.WarpEnergySpent.Add(cost)

		if warpArrivalDistanceSq(obj, arena).Le(base.WarpOutDistance.Mul(base.WarpOutDistance)) {
			obj.Presence = PresenceWarpOut
			obj.WarpProgress = kWarpFullProgress
		}
		return FixedZero, FixedZero, true

	case PresenceWarpOut:
		obj.WarpProgress -= kMajorTick
		scale := FixedFromLong(obj.WarpProgress).DivInt(kWarpFullProgress)
		h, v := GetRotPoint(obj.Rotation)
		obj.Velocity = FixedPoint{H: h.Mul(base.WarpSpeed).Mul(scale), V: v.Mul(base.WarpSpeed).Mul(scale)}
		if obj.WarpProgress <= 0 {
			obj.Battery = obj.Battery.Add(obj.WarpEnergySpent)
			obj.WarpEnergySpent = FixedZero
			obj.Presence = PresenceNormal
		}
		return FixedZero, FixedZero, true

	case PresenceLanding:
		obj.LandingScale = obj.LandingScale.Sub(obj.LandingDecayStep)
		obj.PresenceTimer++
		if obj.LandingScale.Raw() <= 0 || obj.PresenceTimer >= landingTicks {
			obj.LandingScale = FixedZero
			if len(base.Expire) > 0 && exec != nil {
				exec.Run(base.Expire, obj.handle, NoHandle, tick)
			}
			if !base.ExpireDontDie {
				arena.Destroy(obj.handle)
			}
		}
		return FixedZero, FixedZero, true
	}
	return FixedZero, FixedZero, false
}

// warpArrivalDistanceSq returns obj's squared distance to its destination
// (object or point), or FixedZero (immediate arrival) if it has neither,
// so a warping object with no destination drops out of warp on its next
// tick rather than flying forever.
func warpArrivalDistanceSq(obj *SpaceObject, arena *Arena) Fixed {
	var target FixedPoint
	if obj.DestinationObject.IsSet() {
		t, ok := arena.Get(obj.DestinationObject)
		if !ok {
			return FixedZero
		}
		target = t.Position
	} else if obj.DestinationPoint != (FixedPoint{}) {
		target = obj.DestinationPoint
	} else {
		return FixedZero
	}
	dh := target.H.Sub(obj.Position.H)
	dv := target.V.Sub(obj.Position.V)
	return dh.Mul(dh).Add(dv.Mul(dv))
}

// thinkGuided steers a guided projectile toward its Target, but only ever
// within kGuidedCone of its current heading: beyond that cone it holds
// heading rather than snapping around, matching the original's limited
// projectile-homing correction (§4.3).
func thinkGuided(obj *SpaceObject, arena *Arena) (turn, thrust Fixed) {
	thrust = FixedFromLong(1)
	if !obj.Target.IsSet() {
		return FixedZero, thrust
	}
	t, ok := arena.Get(obj.Target)
	if !ok {
		return FixedZero, thrust
	}
	dh := t.Position.H.Sub(obj.Position.H)
	dv := t.Position.V.Sub(obj.Position.V)
	bearing := GetAngleFromVector(dh.Raw(), dv.Raw())
	diff := AngleDifference(obj.Rotation, bearing)
	if absInt32(diff) > kGuidedCone {
		return FixedZero, thrust
	}
	if diff > 0 {
		return FixedFromLong(1), thrust
	} else if diff < 0 {
		return FixedFromLong(-1), thrust
	}
	return FixedZero, thrust
}

// shouldEvade reports whether obj should flee rather than engage: it must
// have a nearby foe at all (the coarse-grid LocalFoeStrength check, cheap
// and already computed by locality.go) and then, to actually commit to
// fleeing rather than just declining to engage, be locally outnumbered —
// fewer friends than foes within its own engage radius, tallied by
// CountNearby (§4.3, §4.7).
func shouldEvade(obj *SpaceObject, base *BaseObject, arena *Arena) bool {
	if obj.LocalFoeStrength.Raw() == 0 || !obj.ClosestObject.IsSet() {
		return false
	}
	friends, foes := CountNearby(arena, obj.Position, base.EngageRange, obj.Owner)
	return foes > friends
}

// thinkEvade turns obj toward the reverse of its own current heading,
// offset by kEvadeAngle plus a small per-object jitter (drawn from its own
// random stream so two ships fleeing the same threat don't turn in
// lockstep), and thrusts. The flee heading is derived from obj's rotation
// alone; the position and heading of the closest object are not consulted.
func thinkEvade(obj *SpaceObject) (turn, thrust Fixed) {
	jitter := obj.RandomSeed.NextRange(-kEvadeAngle/2, kEvadeAngle/2+1, MakeTag("evja"))
	fleeHeading := (obj.Rotation + 180 + kEvadeAngle + jitter) % RotPos
	diff := AngleDifference(obj.Rotation, fleeHeading)
	turn = FixedZero
	if diff > 0 {
		turn = FixedFromLong(1)
	} else if diff < 0 {
		turn = FixedFromLong(-1)
	}
	return turn, FixedFromLong(1)
}

// acquireTarget assigns obj.Target from its precomputed ClosestObject if it
// has none yet (or its current target has gone stale), restricting to
// foes within the template's engage range (§4.3, §8.3's exact-range test).
func acquireTarget(obj *SpaceObject, base *BaseObject, arena *Arena) {
	if obj.Target.IsSet() {
		if _, ok := arena.Get(obj.Target); ok {
			return
		}
	}
	closest, ok := arena.Get(obj.ClosestObject)
	if !ok || IsFriend(closest.Owner, obj.Owner) {
		return
	}
	distSq := obj.ClosestDistance
	rangeSq := base.EngageRange.Mul(base.EngageRange)
	if distSq.Gt(rangeSq) {
		return
	}
	obj.Target = obj.ClosestObject
}

// thinkEngage fires the first loadout weapon slot with ammo and an
// elapsed cooldown timer, once the target is resolved, within engage
// range, and within kShootAngle of obj's current heading (§8.3: a target
// at exactly engageRange engages; engageRange+1 does not).
func thinkEngage(obj *SpaceObject, base *BaseObject, arena *Arena, exec *Executor, tick int32) {
	for i := range obj.WeaponCooldown {
		if obj.WeaponCooldown[i] > 0 {
			obj.WeaponCooldown[i] -= kMajorTick
		}
	}

	if !obj.Target.IsSet() {
		return
	}
	t, ok := arena.Get(obj.Target)
	if !ok {
		obj.Target = NoHandle
		return
	}

	dh := t.Position.H.Sub(obj.Position.H)
	dv := t.Position.V.Sub(obj.Position.V)
	distSq := dh.Mul(dh).Add(dv.Mul(dv))
	rangeSq := base.EngageRange.Mul(base.EngageRange)
	if distSq.Gt(rangeSq) {
		return
	}

	bearing := GetAngleFromVector(dh.Raw(), dv.Raw())
	if absInt32(AngleDifference(obj.Rotation, bearing)) > kShootAngle {
		return
	}

	weapons := [3]Weapon{base.Loadout.Pulse, base.Loadout.Beam, base.Loadout.Special}
	for slot, w := range weapons {
		if w.BaseType == 0 && w.AmmoMax == 0 && w.FireTime == 0 {
			continue // unconfigured slot
		}
		if obj.AmmoLeft[slot] == 0 {
			continue
		}
		if obj.WeaponCooldown[slot] > 0 {
			continue
		}
		fireWeapon(obj, w, slot, arena, exec, tick)
		obj.WeaponCooldown[slot] = w.FireTime
		if obj.AmmoLeft[slot] > 0 {
			obj.AmmoLeft[slot]--
		}
		return
	}
}

// fireWeapon spawns slot's projectile base object at obj's weapon mount
// point, inheriting obj's velocity and aimed along its current heading —
// a guided projectile picks up obj.Target as its own Target so thinkGuided
// can home it in.
func fireWeapon(obj *SpaceObject, w Weapon, slot int, arena *Arena, exec *Executor, tick int32) {
	_ = exec
	_ = tick
	h, v := GetRotPoint(obj.Rotation)
	mount := obj.Position.Add(FixedPoint{
		H: w.Position.H.Mul(h).Sub(w.Position.V.Mul(v)),
		V: w.Position.H.Mul(v).Add(w.Position.V.Mul(h)),
	})
	seed := obj.RandomSeed.Sub(w.BaseType)
	created := arena.Create(w.BaseType, mount, obj.Owner, seed)
	if !created.IsSet() {
		return
	}
	shot, ok := arena.Get(created)
	if !ok {
		return
	}
	shot.Rotation = obj.Rotation
	shot.Velocity = obj.Velocity
	if arena.BaseObjectAt(shot.baseType).Attributes.Has(IsGuided) {
		shot.Target = obj.Target
	}
}

// thinkAutopilot steers obj toward its current target or destination,
// firing the template's Arrive action list once when it first comes
// within ArriveActionDistance (§4.1 Arrive hook). Reproduces the original
// NonPlayerShip.cpp call sites exactly — including the spot flagged in the
// original as "probably unintended": the heading-correction branch below
// is an `if / else if` where the second branch was very likely meant to
// be an unconditional `if`, so a ship already within one turn-increment
// of its goal heading never gets the small overshoot-correction nudge the
// `else if` would have given it. Fixing it would change steering outcomes
// for existing level data, so it stays exactly as originally written (§9,
// rotation.go's AddAngle doc comment).
func thinkAutopilot(obj *SpaceObject, arena *Arena, exec *Executor, tick int32) (turnInput, thrustInput Fixed) {
	checkArrival(obj, arena, exec, tick)

	goal, hasGoal := destinationHeading(obj, arena)
	if !hasGoal {
		return FixedZero, FixedZero
	}

	diff := AngleDifference(obj.Rotation, goal)
	turn := FixedZero
	if diff > 0 {
		turn = FixedFromLong(1)
	} else if diff < 0 {
		turn = FixedFromLong(-1)
	}

	// The flagged quirk: because the correction is chained as `else if`
	// off the diff == 0 test, it runs only when diff is exactly ±1, and
	// then it cancels the one-degree turn chosen above instead of nudging.
	if diff == 0 {
		// goal reached exactly; no correction needed
	} else if absInt32(diff) <= 1 {
		turn = FixedZero
	}

	thrust := FixedZero
	if absInt32(diff) < Rot90 {
		thrust = FixedFromLong(1)
	}

	return turn, thrust
}

// checkArrival fires base.Arrive once (latched via RuntimeHasArrived) when
// obj comes within its template's ArriveActionDistance of its current
// destination object or point.
func checkArrival(obj *SpaceObject, arena *Arena, exec *Executor, tick int32) {
	if obj.RuntimeFlags.Has(RuntimeHasArrived) {
		return
	}
	base := arena.BaseObjectAt(obj.baseType)
	if len(base.Arrive) == 0 || base.ArriveActionDistance.Raw() == 0 {
		return
	}

	var dest FixedPoint
	switch {
	case obj.DestinationObject.IsSet():
		t, ok := arena.Get(obj.DestinationObject)
		if !ok {
			return
		}
		dest = t.Position
	case obj.DestinationPoint != (FixedPoint{}):
		dest = obj.DestinationPoint
	default:
		return
	}

	dh := dest.H.Sub(obj.Position.H)
	dv := dest.V.Sub(obj.Position.V)
	distSq := dh.Mul(dh).Add(dv.Mul(dv))
	thresholdSq := base.ArriveActionDistance.Mul(base.ArriveActionDistance)
	if distSq.Gt(thresholdSq) {
		return
	}

	obj.RuntimeFlags |= RuntimeHasArrived
	if exec != nil {
		exec.Run(base.Arrive, obj.handle, obj.DestinationObject, tick)
	}
}

func destinationHeading(obj *SpaceObject, arena *Arena) (int32, bool) {
	if obj.Target.IsSet() {
		if t, ok := arena.Get(obj.Target); ok {
			dh := t.Position.H.Sub(obj.Position.H)
			dv := t.Position.V.Sub(obj.Position.V)
			return GetAngleFromVector(dh.Raw(), dv.Raw()), true
		}
	}
	if obj.DestinationObject.IsSet() {
		if t, ok := arena.Get(obj.DestinationObject); ok {
			dh := t.Position.H.Sub(obj.Position.H)
			dv := t.Position.V.Sub(obj.Position.V)
			return GetAngleFromVector(dh.Raw(), dv.Raw()), true
		}
	}
	if obj.DestinationPoint != (FixedPoint{}) {
		dh := obj.DestinationPoint.H.Sub(obj.Position.H)
		dv := obj.DestinationPoint.V.Sub(obj.Position.V)
		if dh.Raw() == 0 && dv.Raw() == 0 {
			return 0, false
		}
		return GetAngleFromVector(dh.Raw(), dv.Raw()), true
	}
	return 0, false
}

func absInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
