package engine

// universalBoundRaw is the half-width (in raw fixed-point units) of the
// universal coordinate rectangle objects without DoesBounce may leave
// before being marked ToBeFreed: a radius of 2*65534 centered on universal
// center (§4.2 Bounds, §8.3). Bouncing objects instead reflect the
// offending velocity component and clamp position to the wall.
const universalBoundRaw int32 = (2 * 65534) << 8

// StepMotion advances obj by one tick: integrates velocity into position,
// applies thrust toward its current rotation when thrusting, turns toward
// its direction goal when the base object has CanTurn, and applies the
// universe-boundary rule (§4.2). turnInput and thrustInput are in [-1, 1]
// fixed-point, supplied by think.go or external player input.
func StepMotion(obj *SpaceObject, base *BaseObject, turnInput, thrustInput Fixed) {
	if base.Attributes.Has(CanTurn) && turnInput.Raw() != 0 {
		delta := base.Rotation.TurnRate.Mul(turnInput)
		AddAngle(&obj.Rotation, EvilFixedToLong(delta))
	}

	if thrustInput.Raw() != 0 {
		h, v := GetRotPoint(obj.Rotation)
		accel := base.Thrust.Mul(thrustInput)
		obj.Velocity.H = obj.Velocity.H.Add(h.Mul(accel))
		obj.Velocity.V = obj.Velocity.V.Add(v.Mul(accel))
		clampSpeed(obj, base.MaxVelocity)
	}

	obj.Position.H = obj.Position.H.Add(obj.Velocity.H)
	obj.Position.V = obj.Position.V.Add(obj.Velocity.V)

	applyBounds(obj, base)
}

// applyBounds enforces §4.2's universe-edge rule: DoesBounce objects
// reflect the offending velocity component and clamp to the wall; every
// other object that has left the rectangle is marked ToBeFreed rather than
// wrapped, so it is culled on the next Cull() pass (§8.3).
func applyBounds(obj *SpaceObject, base *BaseObject) {
	bounce := base.Attributes.Has(DoesBounce)

	if obj.Position.H.Raw() > universalBoundRaw {
		if bounce {
			obj.Position.H = FixedFromRaw(universalBoundRaw)
			obj.Velocity.H = obj.Velocity.H.Neg()
		} else {
			obj.lifecycle = LifecycleToBeFreed
		}
	} else if obj.Position.H.Raw() < -universalBoundRaw {
		if bounce {
			obj.Position.H = FixedFromRaw(-universalBoundRaw)
			obj.Velocity.H = obj.Velocity.H.Neg()
		} else {
			obj.lifecycle = LifecycleToBeFreed
		}
	}

	if obj.Position.V.Raw() > universalBoundRaw {
		if bounce {
			obj.Position.V = FixedFromRaw(universalBoundRaw)
			obj.Velocity.V = obj.Velocity.V.Neg()
		} else {
			obj.lifecycle = LifecycleToBeFreed
		}
	} else if obj.Position.V.Raw() < -universalBoundRaw {
		if bounce {
			obj.Position.V = FixedFromRaw(-universalBoundRaw)
			obj.Velocity.V = obj.Velocity.V.Neg()
		} else {
			obj.lifecycle = LifecycleToBeFreed
		}
	}
}

func clampSpeed(obj *SpaceObject, maxVelocity Fixed) {
	speedSq := obj.Velocity.H.Mul(obj.Velocity.H).Add(obj.Velocity.V.Mul(obj.Velocity.V))
	capSq := maxVelocity.Mul(maxVelocity)
	if !speedSq.Gt(capSq) || speedSq.Raw() == 0 {
		return
	}
	// scale velocity down to maxVelocity along its current heading using
	// the rotation table's closest matching angle, avoiding a sqrt
	angle := GetAngleFromVector(obj.Velocity.H.Raw(), obj.Velocity.V.Raw())
	h, v := GetRotPoint(angle)
	obj.Velocity.H = h.Mul(maxVelocity)
	obj.Velocity.V = v.Mul(maxVelocity)
}
