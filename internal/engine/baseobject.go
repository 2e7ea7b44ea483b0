package engine

// Weapon describes one of a BaseObject's three weapon slots (pulse, beam,
// special) as a reference to the base object fired plus its firing
// cadence, matching the original's weaponType.
type Weapon struct {
	BaseType   int32
	AmmoMax    int32
	FireTime   int32
	Position   FixedPoint
}

// Loadout bundles the three weapon slots a SpaceObject can carry.
type Loadout struct {
	Pulse   Weapon
	Beam    Weapon
	Special Weapon
}

// RotationSpec captures how quickly and by how much a base object can
// turn, in degrees-per-tick at full thrust.
type RotationSpec struct {
	TurnRate   Fixed
	MaxVelocity Fixed
}

// AnimationSpec drives self-animated sprites (frame count, cycle speed) --
// purely cosmetic, carried here because conditions and scheduler snapshots
// read it for presentation but gameplay logic never branches on it.
type AnimationSpec struct {
	FrameCount int32
	FrameSpeed Fixed
}

// VectorSpec configures the particle/vector trail a base object spawns
// (beams, flak, engine glow) independently of the Vector ECS entities it
// produces at runtime (see vector.go).
type VectorSpec struct {
	Kind      int32
	Color     uint8
	Lifetime  int32
}

// DeviceSpec configures special-purpose hardware slots: cloak, warp,
// repair, or a scripted special-action trigger.
type DeviceSpec struct {
	Kind     int32
	Capacity Fixed
	RechargeRate Fixed
}

// BaseObject is the immutable template every SpaceObject is instantiated
// from — the level-data-authored "class" of a ship, planet, or effect.
// Its fields mirror base-object.hpp; runtime-only state lives on
// SpaceObject instead (§4.1).
type BaseObject struct {
	Name       string
	Attributes Attributes
	BuildFlags BuildFlags
	OrderFlags OrderFlags

	Health     Fixed
	Mass       Fixed
	MaxVelocity Fixed
	Thrust     Fixed
	Damage     Fixed

	Energy    Fixed
	WarpSpeed Fixed
	WarpOutDistance      Fixed
	ArriveActionDistance Fixed
	EngageRange          Fixed

	Price     Fixed
	BuildTime int32

	Rotation  RotationSpec
	Animation AnimationSpec
	Vector    VectorSpec
	Device    DeviceSpec

	Loadout Loadout

	InitialAge  int32
	InitialAgeRange int32

	ActivatePeriod      int32
	ActivatePeriodRange int32

	FriendDefecit int32
	OffenseValue  Fixed

	PixRadius Fixed

	// The six lifecycle hook lists (§4.1): Destroy fires from
	// Arena.Destroy, Expire from Arena.AgeAndActivate and the end of a
	// Landing, Create from Arena.Create, Collide from
	// CollisionSystem.HitObject, Activate from Arena.AgeAndActivate, and
	// Arrive from think.go's checkArrival. ExpireDontDie mirrors the
	// original's baseType flag: when set, expire fires Expire without
	// marking the object ToBeFreed.
	Destroy  []Action
	Expire   []Action
	Create   []Action
	Collide  []Action
	Activate []Action
	Arrive   []Action

	ExpireDontDie bool
}
