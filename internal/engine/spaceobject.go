package engine

// PresenceState tracks the warp-in/warp-out finite state machine described
// in §4.6. Normal is the steady state; the others are transient and drive
// think.go's per-tick animation and collision suppression.
type PresenceState uint8

const (
	PresenceNormal PresenceState = iota
	PresenceWarpIn
	PresenceWarping
	PresenceWarpOut
	PresenceLanding
)

// SpaceObject is a live instance carved from a BaseObject template. Only
// fields that vary per instance live here; anything constant across every
// instance of a class stays on BaseObject (§4.1).
type SpaceObject struct {
	handle     Handle
	lifecycle  Lifecycle
	baseType   int32

	Position FixedPoint
	Velocity FixedPoint
	Rotation int32 // degrees, [0, 360)

	Health   Fixed
	Energy   Fixed
	Battery  Fixed
	Age      int32

	Owner    int32 // admiral index, or -1 for neutral
	Presence PresenceState
	PresenceTimer int32

	// WarpProgress counts subticks within WarpIn/WarpOut (0..100, §4.6);
	// WarpSoundMask latches which of the four escalating warp-in sound
	// cues have already fired this presence cycle.
	WarpProgress   int32
	WarpSoundMask  uint8
	WarpEnergySpent Fixed

	// LandingScale shrinks from Fixed one to zero over a Landing approach;
	// LandingDecayStep is how much it loses per tick.
	LandingScale     Fixed
	LandingDecayStep Fixed

	ActivatePeriodTimer int32

	// WeaponCooldown/AmmoLeft track each of the three loadout slots
	// (pulse, beam, special) independently; AmmoLeft stays at -1 for
	// unlimited ammo and is never decremented (§8.2).
	WeaponCooldown [3]int32
	AmmoLeft       [3]int32

	RandomSeed RandomSeed

	RuntimeFlags RuntimeFlags

	// Destination tracks an order given to a Destination-capable object;
	// NoHandle means "no order".
	DestinationObject Handle
	DestinationPoint  FixedPoint

	// Target is the current engage/evade target, independent of
	// DestinationObject (a ship can be ordered to hold at a point while
	// still engaging whichever enemy is nearest).
	Target Handle

	CloakLevel Fixed // 0 = fully visible, 256 = fully cloaked

	// ClosestObject/ClosestDistance and the two LocalStrength fields are
	// recomputed every tick by locality.go's nearby-object aggregation
	// pass and read by think.go's engagement logic (§4.2).
	ClosestObject      Handle
	ClosestDistance    Fixed
	LocalFriendStrength Fixed
	LocalFoeStrength    Fixed

	// link fields for the arena's doubly linked "all active objects" list
	// (§4.1 `all` operation) — kept here rather than computed so the
	// traversal is O(1) per step regardless of how sparse the slice is.
	prev, next int32

	// gridCell remembers which spatial-grid bucket this object was filed
	// under as of the last motion step, so collision.go can remove it in
	// O(1) before re-filing (see spatialgrid.go).
	gridCellCoarse, gridCellFine int32
}

// Handle returns this instance's stable handle.
func (o *SpaceObject) Handle() Handle { return o.handle }

// Active reports whether the slot currently holds a live, tickable object.
// A ToBeFreed object is still linked (destroy actions may still reference
// it this tick) but is no longer Active.
func (o *SpaceObject) Active() bool { return o.lifecycle == LifecycleInUse }

// ToBeFreed reports whether this object has been marked for culling but has
// not yet been unlinked (§4.1 two-phase destroy).
func (o *SpaceObject) ToBeFreed() bool { return o.lifecycle == LifecycleToBeFreed }

// BaseType returns the index of the BaseObject this instance was created
// from, or the index it was last changed to via change_base_type (§4.1).
func (o *SpaceObject) BaseType() int32 { return o.baseType }
