package engine

// Arena owns every live SpaceObject slot plus the BaseObject template
// table instances are created from. It is the sole component that may
// mutate the active/inactive state of a slot, so every other component
// that needs to create or destroy an object goes through it (§4.1).
type Arena struct {
	slots       []SpaceObject
	generations []uint32

	freeHead int32 // index of first free slot, or -1
	freeNext []int32

	activeHead int32 // index of most-recently-inserted active slot, or -1
	activeTail int32
	count      int32

	bases []BaseObject

	// exec and tick let Create/Destroy fire a BaseObject's create/destroy
	// action lists without either side importing the other; Game wires exec
	// in once both it and the Arena exist, and refreshes tick every Tick().
	exec *Executor
	tick int32
}

// NewArena allocates an arena with cap slots and the given base-object
// table. cap is fixed for the arena's lifetime: spec.md's size budget
// treats "run out of object slots" as a level-data authoring error, not a
// runtime condition to recover from.
func NewArena(cap int32, bases []BaseObject) *Arena {
	a := &Arena{
		slots:       make([]SpaceObject, cap),
		generations: make([]uint32, cap),
		freeNext:    make([]int32, cap),
		activeHead:  -1,
		activeTail:  -1,
		bases:       bases,
	}
	for i := int32(0); i < cap; i++ {
		a.generations[i] = 1
		if i == cap-1 {
			a.freeNext[i] = -1
		} else {
			a.freeNext[i] = i + 1
		}
	}
	a.freeHead = 0
	if cap == 0 {
		a.freeHead = -1
	}
	return a
}

// SetExecutor wires the action Executor the arena calls into for
// create/destroy lifecycle actions. Must be called before the first Create
// or Destroy.
func (a *Arena) SetExecutor(exec *Executor) { a.exec = exec }

// SetTick records the scheduler's current tick, used to timestamp any
// delayed actions fired from Create/Destroy.
func (a *Arena) SetTick(tick int32) { a.tick = tick }

// BaseObjectAt returns the template at index i. Callers hold the returned
// pointer only transiently — templates never move once loaded.
func (a *Arena) BaseObjectAt(i int32) *BaseObject {
	return &a.bases[i]
}

// Count returns the number of currently active objects.
func (a *Arena) Count() int32 { return a.count }

// Create instantiates a new SpaceObject from the BaseObject at baseType,
// placing it at pos with the given owner and random seed, then fires the
// template's create action list (§4.1). Returns NoHandle if the arena is
// full (I2: creation never silently evicts another live object to make
// room).
func (a *Arena) Create(baseType int32, pos FixedPoint, owner int32, seed RandomSeed) Handle {
	idx := a.freeHead
	if idx < 0 {
		return NoHandle
	}
	a.freeHead = a.freeNext[idx]

	base := &a.bases[baseType]

	// age mirrors the original's construct-time expire_after roll: -1 means
	// the object never expires on its own (InitialAge/Range both zero),
	// otherwise it counts down by kMajorTick each tick (see AgeAndActivate).
	age := int32(-1)
	if base.InitialAge > 0 || base.InitialAgeRange > 0 {
		age = base.InitialAge + seed.NextRange(0, base.InitialAgeRange, MakeTag("age "))
	}

	obj := &a.slots[idx]
	*obj = SpaceObject{
		handle:            Handle{index: idx, generation: a.generations[idx]},
		lifecycle:         LifecycleInUse,
		baseType:          baseType,
		Position:          pos,
		Owner:             owner,
		Health:            base.Health,
		Energy:            base.Energy,
		Age:               age,
		RandomSeed:        seed,
		Target:            NoHandle,
		DestinationObject: NoHandle,
		ClosestObject:     NoHandle,
		ActivatePeriodTimer: base.ActivatePeriod,
		AmmoLeft:            [3]int32{base.Loadout.Pulse.AmmoMax, base.Loadout.Beam.AmmoMax, base.Loadout.Special.AmmoMax},
		prev: -1,
		next: -1,
	}
	a.linkActive(idx)
	a.count++
	if len(base.Create) > 0 && a.exec != nil {
		a.exec.Run(base.Create, obj.handle, NoHandle, a.tick)
	}
	return obj.handle
}

// Get resolves h to its SpaceObject, returning ok=false if h is stale or
// unset — the only sanctioned way to dereference a Handle (I1). Objects
// that have been marked ToBeFreed but not yet culled no longer resolve, the
// same way the original treats kObjectToBeFreed as no longer "in use".
func (a *Arena) Get(h Handle) (*SpaceObject, bool) {
	if !h.IsSet() {
		return nil, false
	}
	if h.index < 0 || int(h.index) >= len(a.slots) {
		return nil, false
	}
	if a.generations[h.index] != h.generation {
		return nil, false
	}
	if a.slots[h.index].lifecycle != LifecycleInUse {
		return nil, false
	}
	return &a.slots[h.index], true
}

// Destroy runs the first phase of an object's death: NeutralDeath objects
// reset to full health, revert to neutral ownership, and fire their
// destroy list but stay alive; everything else fires its destroy list and
// is marked ToBeFreed, remaining linked (and still walkable via All, though
// no longer Active) until the next Cull actually frees the slot (§4.1). It
// is a no-op if h is already stale or already ToBeFreed.
func (a *Arena) Destroy(h Handle) {
	obj, ok := a.Get(h)
	if !ok {
		return
	}
	base := &a.bases[obj.baseType]

	if base.Attributes.Has(NeutralDeath) {
		obj.Health = base.Health
		obj.Owner = -1
		obj.Target = NoHandle
		obj.RuntimeFlags |= RuntimeNeutralized
		if len(base.Destroy) > 0 && a.exec != nil {
			a.exec.Run(base.Destroy, h, NoHandle, a.tick)
		}
		return
	}

	if base.Attributes.Has(ReleaseEnergyOnDeath) && a.exec != nil {
		a.exec.Run([]Action{{Verb: VerbReleaseEnergy, Reflexive: true, Argument: Argument{Percent: FixedFromLong(1)}}}, h, NoHandle, a.tick)
	}
	if len(base.Destroy) > 0 && a.exec != nil {
		a.exec.Run(base.Destroy, h, NoHandle, a.tick)
	}

	// The exec call above may have already destroyed this slot (e.g. a
	// destroy action that re-enters Destroy reflexively); re-resolve
	// before marking it ToBeFreed.
	obj, ok = a.Get(h)
	if !ok {
		return
	}
	obj.lifecycle = LifecycleToBeFreed
}

// Cull unlinks and frees every ToBeFreed slot, bumping its generation so
// any handle still referencing it becomes stale (I1), and returning it to
// the free list. This is the second half of the two-phase destroy (§4.1),
// run once per tick from Game.Tick() after collision and action execution
// have had a chance to observe ToBeFreed objects one last time.
func (a *Arena) Cull() {
	i := a.activeHead
	for i >= 0 {
		obj := &a.slots[i]
		next := obj.next
		if obj.lifecycle == LifecycleToBeFreed {
			idx := i
			a.unlinkActive(idx)
			a.slots[idx].lifecycle = LifecycleAvailable
			a.generations[idx]++
			a.freeNext[idx] = a.freeHead
			a.freeHead = idx
			a.count--
		}
		i = next
	}
}

// kMajorTick is the simulation's fixed per-tick time delta, matching the
// original's 3-subtick major tick (spec.md §2) that age_object and
// activate_object count down against.
const kMajorTick int32 = 3

// AgeAndActivate runs age_object/activate_object for every active object:
// decrements its expire countdown (if armed by a positive InitialAge or
// InitialAgeRange at creation) and fires Expire when it lapses, marking
// the object ToBeFreed unless its template sets ExpireDontDie; and
// decrements its periodic-activate timer, firing Activate and re-rolling
// the timer from ActivatePeriod/ActivatePeriodRange at zero (matching
// motion.cpp's age_object/activate_object).
func (a *Arena) AgeAndActivate() {
	a.All(func(obj *SpaceObject) bool {
		if !obj.Active() {
			return true
		}
		base := a.BaseObjectAt(obj.baseType)

		if obj.Age >= 0 {
			obj.Age -= kMajorTick
			if obj.Age < 0 {
				if !base.ExpireDontDie {
					obj.lifecycle = LifecycleToBeFreed
				}
				if len(base.Expire) > 0 && a.exec != nil {
					a.exec.Run(base.Expire, obj.handle, NoHandle, a.tick)
				}
			}
		}

		if base.ActivatePeriod > 0 {
			obj.ActivatePeriodTimer -= kMajorTick
			if obj.ActivatePeriodTimer <= 0 {
				if len(base.Activate) > 0 && a.exec != nil {
					a.exec.Run(base.Activate, obj.handle, NoHandle, a.tick)
				}
				obj.ActivatePeriodTimer = base.ActivatePeriod
				if base.ActivatePeriodRange > 0 {
					obj.ActivatePeriodTimer += obj.RandomSeed.NextRange(0, base.ActivatePeriodRange, MakeTag("actp"))
				}
			}
		}
		return true
	})
}

// ChangeBaseType re-templates an already-live object onto a different
// BaseObject without destroying and recreating it, preserving its handle,
// position, and other live-instance state — mirrors the original's
// change_base_type action, used for e.g. turning an "egg" object into the
// hatched creature in place (§4.1).
func (a *Arena) ChangeBaseType(h Handle, newBaseType int32, keepRuntimeState bool) bool {
	obj, ok := a.Get(h)
	if !ok {
		return false
	}
	obj.baseType = newBaseType
	if !keepRuntimeState {
		base := &a.bases[newBaseType]
		obj.Health = base.Health
		obj.Energy = base.Energy
	}
	return true
}

// All calls fn for every object currently linked into the arena's active
// list — in LIFO order, most-recently-created first (§4.1) — stopping
// early if fn returns false. This includes ToBeFreed objects still
// awaiting Cull, matching the original's SpaceObject::all() iterating
// everything not kObjectAvailable; callers that only want live objects
// should check obj.Active(). fn must not call Create or Destroy on the
// arena it is iterating — doing so would invalidate the link it is
// walking; schedule such effects onto the action queue instead (§4.1 note
// on `all`).
func (a *Arena) All(fn func(*SpaceObject) bool) {
	for i := a.activeHead; i >= 0; {
		obj := &a.slots[i]
		nextIdx := obj.next
		if !fn(obj) {
			return
		}
		i = nextIdx
	}
}

func (a *Arena) linkActive(idx int32) {
	obj := &a.slots[idx]
	obj.prev = -1
	obj.next = a.activeHead
	if a.activeHead >= 0 {
		a.slots[a.activeHead].prev = idx
	} else {
		a.activeTail = idx
	}
	a.activeHead = idx
}

func (a *Arena) unlinkActive(idx int32) {
	obj := &a.slots[idx]
	if obj.prev >= 0 {
		a.slots[obj.prev].next = obj.next
	} else {
		a.activeHead = obj.next
	}
	if obj.next >= 0 {
		a.slots[obj.next].prev = obj.prev
	} else {
		a.activeTail = obj.prev
	}
}
