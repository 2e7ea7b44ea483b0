package engine

// Attributes is the bitset of static capabilities carried by a BaseObject
// template and inherited unchanged by every SpaceObject instantiated from
// it. Named to match the original's kCan*/kIs*/kOn* flags (base-object.hpp)
// so level data and scripted conditions translate directly.
type Attributes uint64

const (
	CanTurn Attributes = 1 << iota
	CanBeEngaged
	HasDirectionGoal
	IsRemote
	CanCollide
	CanBeHit
	AutoTarget
	StaticDestination
	CanAcceptDestination
	AutoPilot
	FiresStraight
	Destination
	CanEngage
	CanEvade
	CanAcceptHail
	CanThink
	RemoteOrHuman
	IsHumanControlled
	IsBeam
	DoesBounce
	IsSelfAnimated
	ShapeFromDirection
	IsPlayerShip
	CanBeDestination
	NeutralDeath
	IsGuided
	Bombable
	CanHold
	CanHoldAttribute
	IsCloaked
	OnAutoPilot
	ReleaseEnergyOnDeath
	CanAcceptBuild
	CanBeEvaded
	Hated
	OccupiesSpace
	IsDestination
	HideEffect
	IsVector
	AnimationCycle
	AppearOnRadar
)

// Has reports whether all bits in mask are set.
func (a Attributes) Has(mask Attributes) bool { return a&mask == mask }

// Any reports whether at least one bit in mask is set.
func (a Attributes) Any(mask Attributes) bool { return a&mask != 0 }

// BuildFlags gate whether a base object may appear in a level's build
// menu and under what restriction.
type BuildFlags uint8

const (
	BuildFlagNone BuildFlags = iota
	BuildFlagStandard
	BuildFlagOnlyEngagedBy
	BuildFlagNotVisible
)

// OrderFlags select what a Destination-capable object accepts as orders.
type OrderFlags uint8

const (
	OrderNone OrderFlags = 1 << iota
	OrderHold
	OrderMove
	OrderEngage
)

// RuntimeFlags track transient per-instance state that is not part of the
// template and not scriptable, only observable (e.g. by conditions).
type RuntimeFlags uint16

const (
	RuntimeNone RuntimeFlags = 1 << iota
	RuntimeCloaked
	RuntimeHidden
	RuntimeOccupied
	RuntimeInitialized
	RuntimeHasArrived
	RuntimeTargetLocked
	RuntimeIsTarget

	// RuntimeNeutralized is set each time a NeutralDeath object dies,
	// including the first: the original strips kHated|kCanEngage|kCanCollide|kCanBeHit
	// from the instance on destroy() so a recaptured neutral base stops
	// fighting back and stops blocking collision, without touching the
	// shared BaseObject template every other instance still reads.
	RuntimeNeutralized
)

// Has reports whether all bits in mask are set.
func (f RuntimeFlags) Has(mask RuntimeFlags) bool { return f&mask == mask }

// EffectiveAttributes is base attrs with the instance-level strips
// RuntimeNeutralized applies (Hated, CanEngage, CanCollide, CanBeHit)
// cleared, matching destroy()'s post-NeutralDeath attribute mask.
func EffectiveAttributes(base Attributes, runtime RuntimeFlags) Attributes {
	if runtime.Has(RuntimeNeutralized) {
		return base &^ (Hated | CanEngage | CanCollide | CanBeHit)
	}
	return base
}

// Lifecycle is the arena's tri-state bookkeeping for a slot: kInUse objects
// are ticked and visible to All, kToBeFreed objects have fired their destroy
// list and wait for the next Cull, kAvailable slots are free-list members.
type Lifecycle uint8

const (
	LifecycleAvailable Lifecycle = iota
	LifecycleInUse
	LifecycleToBeFreed
)
