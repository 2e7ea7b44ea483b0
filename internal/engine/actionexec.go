package engine

// Executor runs Action lists against an Arena, scheduling delayed actions
// onto an ActionQueue and reporting side effects (messages, score/winner
// changes) the caller needs to observe without the executor importing
// those concerns directly.
type Executor struct {
	arena   *Arena
	queue   *ActionQueue
	Effects Effects

	// Recheck latches true whenever an applied verb could affect condition
	// truth (§4.4 step 6); Game.Tick reads and clears it each pass through
	// the condition evaluator.
	Recheck bool
}

// Effects accumulates observable side effects produced by Executor.Run and
// DrainDelayed calls until Game.Tick drains them, collected rather than
// dispatched inline so callers (the scheduler, tests) can assert on them
// without wiring a live message bus.
type Effects struct {
	Messages    []string
	ScoreDeltas map[int32]int32
	Winner      int32 // -1 until a VerbDeclareWinner effect fires
	WinnerSet   bool
}

// NewExecutor builds an Executor bound to arena and queue.
func NewExecutor(arena *Arena, queue *ActionQueue) *Executor {
	return &Executor{
		arena: arena,
		queue: queue,
		Effects: Effects{
			ScoreDeltas: map[int32]int32{},
			Winner:      -1,
		},
	}
}

// Run executes acts in order against subject/direct (§4.4 steps 1-6):
// reflexive actions apply directly to subject; non-reflexive actions
// resolve their Filter against every active object and apply to each
// match; any action with Delay > 0 is scheduled instead of applied
// immediately, carrying subject/direct forward to fire time.
func (ex *Executor) Run(acts []Action, subject, direct Handle, tick int32) {
	for _, act := range acts {
		if act.Delay > 0 {
			ex.queue.Schedule(act, subject, direct)
			continue
		}
		ex.apply(act, subject, direct, tick)
	}
}

// DrainDelayed fires every action whose countdown reached zero this tick.
func (ex *Executor) DrainDelayed(tick int32) {
	for _, p := range ex.queue.Tick() {
		ex.apply(p.action, p.subject, p.direct, tick)
	}
}

func (ex *Executor) apply(act Action, subject, direct Handle, tick int32) {
	if act.Reflexive {
		ex.applyTo(act, subject, subject, direct)
		return
	}
	ex.arena.All(func(obj *SpaceObject) bool {
		base := ex.arena.BaseObjectAt(obj.BaseType())
		if act.Filter.Match(base.Attributes, obj.Owner) {
			ex.applyTo(act, obj.handle, subject, direct)
		}
		return true
	})
}

// conditionAffectingVerb reports whether v is one of the verbs whose effect could flip an
// IsTrue() predicate (health/owner/destroyed/distance-relevant state), per
// §4.4 step 6.
func conditionAffectingVerb(v Verb) bool {
	switch v {
	case VerbAlter, VerbDie, VerbCreateObject, VerbCreateObjectSetDest, VerbSetDestination:
		return true
	}
	return false
}

func (ex *Executor) applyTo(act Action, target, subject, direct Handle) {
	obj, ok := ex.arena.Get(target)
	if !ok {
		return
	}
	if conditionAffectingVerb(act.Verb) {
		ex.Recheck = true
	}
	switch act.Verb {
	case VerbNoAction:
		// deliberate no-op: it draws nothing from any random stream and
		// changes no object state.

	case VerbAlter:
		ex.applyAlter(obj, act.Argument)

	case VerbDisplayMessage:
		ex.Effects.Messages = append(ex.Effects.Messages, act.Argument.Message)

	case VerbChangeScore:
		ex.Effects.ScoreDeltas[act.Owner] += act.Argument.Count

	case VerbDeclareWinner:
		ex.Effects.Winner = act.Owner
		ex.Effects.WinnerSet = true

	case VerbDie:
		switch act.Argument.DieKind {
		case DieDestroy:
			ex.arena.Destroy(target)
		case DieExpire:
			obj.lifecycle = LifecycleToBeFreed
		}

	case VerbCreateObject, VerbCreateObjectSetDest:
		ex.applyCreateObject(act, obj, direct)

	case VerbSetDestination:
		if d, ok := ex.arena.Get(direct); ok {
			obj.DestinationObject = d.handle
			obj.DestinationPoint = d.Position
		}

	case VerbNilTarget:
		obj.Target = NoHandle

	case VerbLandAt:
		obj.Presence = PresenceLanding
		obj.LandingScale = FixedFromLong(1)
		obj.LandingDecayStep = act.Argument.Percent

	case VerbEnterWarp:
		obj.Presence = PresenceWarpIn
		obj.WarpProgress = 0
		obj.WarpSoundMask = 0

	case VerbReleaseEnergy:
		ex.applyReleaseEnergy(obj, act.Argument)

	case VerbMakeSparks:
		// presentation-only: particle bursts have no arena-local state to
		// mutate here (owned by a renderer collaborator this package
		// doesn't import).

	case VerbActivateSpecial, VerbActivatePulse, VerbActivateBeam:
		ex.forceFireWeapon(obj, act.Verb)

	case VerbColorFlash, VerbSetZoom, VerbComputerSelect,
		VerbDisableKeys, VerbEnableKeys:
		// external-collaborator verbs (screen flash, HUD zoom, mini-
		// computer selection, input key mask) — no arena-local state.

	case VerbAssumeInitialObject:
		// tutorial-only rebinding of g.initials[N]; level-data concern,
		// not arena-local state.

	case VerbPlaySound:
		// presentation-only: audio has no arena-local state.
	}
}

func (ex *Executor) applyCreateObject(act Action, creator *SpaceObject, direct Handle) {
	n := act.Argument.Count
	if act.Argument.CountRange > 0 {
		n += creator.RandomSeed.NextRange(0, act.Argument.CountRange, MakeTag("crn "))
	}
	for i := int32(0); i < n; i++ {
		seed := creator.RandomSeed.Sub(act.Argument.BaseTypeIndex)

		pos := creator.Position
		if act.Argument.RandomDistance > 0 {
			angle := creator.RandomSeed.NextRange(0, RotPos, MakeTag("crda"))
			rh, rv := GetRotPoint(angle)
			dist := FixedFromLong(creator.RandomSeed.NextRange(0, act.Argument.RandomDistance, MakeTag("crdd")))
			pos = pos.Add(FixedPoint{H: rh.Mul(dist), V: rv.Mul(dist)})
		}

		h := ex.arena.Create(act.Argument.BaseTypeIndex, pos, creator.Owner, seed)
		if !h.IsSet() {
			continue
		}
		created, ok := ex.arena.Get(h)
		if !ok {
			continue
		}

		if act.Argument.VelocityRelative {
			created.Velocity = creator.Velocity
		}
		if act.Argument.DirectionRelative {
			created.Rotation = creator.Rotation
		}

		if act.Verb == VerbCreateObjectSetDest {
			var src *SpaceObject
			if direct.IsSet() {
				src, _ = ex.arena.Get(direct)
			} else {
				src = creator
			}
			if src != nil {
				created.DestinationObject = src.DestinationObject
				created.DestinationPoint = src.DestinationPoint
			}
		}
	}
}

// applyReleaseEnergy spawns energy-pod objects (base type 0 by convention
// in level data, matching the original's single global energyBlobID)
// totaling percent*focus.Energy split into kEnergyPodAmount-sized pods,
// satisfying §8.4 scenario 1's dual-spawn determinism requirement.
func (ex *Executor) applyReleaseEnergy(obj *SpaceObject, arg Argument) {
	const energyPodAmount = 500
	const energyPodBaseType = int32(0)

	total := obj.Energy.Mul(arg.Percent)
	podCount := EvilFixedToLong(total) / energyPodAmount
	for i := int32(0); i < podCount; i++ {
		seed := obj.RandomSeed.Sub(energyPodBaseType)
		ex.arena.Create(energyPodBaseType, obj.Position, -1, seed)
	}
}

// forceFireWeapon marks the matching weapon slot's cooldown elapsed so the
// next think.go engagement pass may fire it without waiting out its normal
// recharge cadence (target, range and angle checks still apply).
func (ex *Executor) forceFireWeapon(obj *SpaceObject, v Verb) {
	switch v {
	case VerbActivatePulse:
		obj.WeaponCooldown[0] = 0
	case VerbActivateBeam:
		obj.WeaponCooldown[1] = 0
	case VerbActivateSpecial:
		obj.WeaponCooldown[2] = 0
	}
}

func (ex *Executor) applyAlter(obj *SpaceObject, arg Argument) {
	switch arg.AlterKind {
	case AlterHealth:
		if arg.RelativeValue {
			obj.Health = obj.Health.Add(arg.MinValue)
		} else {
			obj.Health = arg.MinValue
		}
	case AlterDamage:
		obj.Health = obj.Health.Sub(arg.MinValue)
	case AlterEnergy:
		if arg.RelativeValue {
			obj.Energy = obj.Energy.Add(arg.MinValue)
		} else {
			obj.Energy = arg.MinValue
		}
	case AlterLocation:
		if arg.RelativeValue {
			obj.Position = obj.Position.Add(arg.Velocity)
		} else {
			obj.Position = arg.Velocity
		}
	case AlterVelocity:
		if arg.RelativeValue {
			obj.Velocity = obj.Velocity.Add(arg.Velocity)
		} else {
			obj.Velocity = arg.Velocity
		}
	case AlterThrust, AlterMaxThrust, AlterMaxVelocity:
		// These mutate the BaseObject template in the original (a ship's
		// thrust/top-speed class stat), which this engine treats as
		// immutable and shared across every instance; no per-instance
		// field backs them.
	case AlterDirection:
		obj.Rotation = int32(arg.MinValue.Raw()) % RotPos
	case AlterCurrentDirection:
		AddAngle(&obj.Rotation, int32(arg.MinValue.Raw()))
	case AlterSpin:
		if arg.RelativeValue {
			obj.Rotation = (obj.Rotation + int32(arg.Count)) % RotPos
		} else {
			obj.Rotation = int32(arg.Count) % RotPos
		}
	case AlterOwner:
		obj.Owner = arg.OwnerIndex
	case AlterBaseType:
		ex.arena.ChangeBaseType(obj.handle, arg.BaseTypeIndex, true)
	case AlterAge:
		obj.Age = arg.Count
	case AlterHidden:
		if arg.Count != 0 {
			obj.RuntimeFlags |= RuntimeHidden
		} else {
			obj.RuntimeFlags &^= RuntimeHidden
		}
	case AlterCloak:
		if arg.Count != 0 {
			obj.RuntimeFlags |= RuntimeCloaked
		} else {
			obj.RuntimeFlags &^= RuntimeCloaked
		}
	case AlterCloakLevel:
		obj.CloakLevel = arg.MinValue
	case AlterOffline:
		obj.PresenceTimer = arg.Count
	case AlterRandomSeed:
		obj.RandomSeed = NewRandomSeed(uint32(arg.Count))
	case AlterOccupation:
		if arg.Count != 0 {
			obj.RuntimeFlags |= RuntimeOccupied
		} else {
			obj.RuntimeFlags &^= RuntimeOccupied
		}
	case AlterAttributes, AlterColor, AlterRevealNearby,
		AlterWeapon1, AlterWeapon2, AlterWeaponSpecial, AlterAbsoluteCash:
		// No per-instance arena state backs these (they alter either the
		// BaseObject template, which is shared and not scripted live, or
		// admiral-scoped economy state); they have no effect here, and
		// nothing else applies AlterAbsoluteCash either. Left explicit for
		// completeness of the Alter switch rather than silently dropped.
	}
}
