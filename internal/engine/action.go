package engine

// Verb identifies what kind of effect an Action produces. Names mirror
// objectVerbIDEnum in action.hpp; Alter is further split by AlterKind
// below rather than being its own family of verbs, matching how the
// original packs all "mutate a field" effects behind a single verb with a
// sub-discriminant.
type Verb uint8

const (
	VerbNoAction Verb = iota
	VerbCreateObject
	VerbCreateObjectSetDest
	VerbPlaySound
	VerbAlter
	VerbMakeSparks
	VerbReleaseEnergy
	VerbLandAt
	VerbEnterWarp
	VerbDisplayMessage
	VerbChangeScore
	VerbDeclareWinner
	VerbDie
	VerbSetDestination
	VerbActivateSpecial
	VerbActivatePulse
	VerbActivateBeam
	VerbColorFlash
	VerbNilTarget
	VerbDisableKeys
	VerbEnableKeys
	VerbSetZoom
	VerbComputerSelect
	VerbAssumeInitialObject
)

// DieKind discriminates VerbDie's two outcomes, mirroring dieVerbIDEnum.
type DieKind uint8

const (
	DieNone DieKind = iota
	DieExpire
	DieDestroy
)

// AlterKind discriminates the ~27 field-mutation sub-effects packed behind
// VerbAlter in the original (alterVerbIDType), rather than giving each its
// own Verb constant — keeps Action's Verb switch short while still
// exposing every original mutation.
type AlterKind uint8

const (
	AlterNone AlterKind = iota
	AlterAge
	AlterAttributes
	AlterBaseType
	AlterCloak
	AlterCloakLevel
	AlterColor
	AlterCurrentDirection
	AlterDamage
	AlterDirection
	AlterEnergy
	AlterHealth
	AlterHidden
	AlterLocation
	AlterMaxThrust
	AlterMaxVelocity
	AlterOccupation
	AlterOffline
	AlterOwner
	AlterRandomSeed
	AlterRevealNearby
	AlterSpin
	AlterThrust
	AlterVelocity
	AlterWeapon1
	AlterWeapon2
	AlterWeaponSpecial
	AlterAbsoluteCash
)

// Argument is the tagged-union payload every Action carries, mirroring
// argumentType's approach of one struct with mostly-unused fields instead
// of a Go interface — an interface would let levelData JSON decode into
// the wrong concrete type silently, where a flat struct just leaves
// unused fields zeroed.
type Argument struct {
	AlterKind AlterKind
	DieKind   DieKind

	MinValue, MaxValue Fixed
	RelativeValue      bool

	BaseTypeIndex int32
	Count         int32
	CountRange    int32
	Velocity      FixedPoint
	VelocityRelative  bool
	DirectionRelative bool
	RandomDistance    int32

	// Percent is ReleaseEnergy's fraction of focus.Energy to release.
	Percent Fixed

	Message string

	KeyMask uint32

	OwnerIndex int32

	// ScoreWhich names one of an admiral's score counters for ChangeScore,
	// but the executor does not read it: ChangeScore always adds Count to
	// the owner's single Admiral.Score. ZoomLevel/ComputerScreen/
	// ComputerLine belong to SetZoom and ComputerSelect, external-
	// collaborator verbs the executor neither records nor interprets.
	ScoreWhich     int32
	ZoomLevel      int32
	ComputerScreen int32
	ComputerLine   int32
}

// Filter narrows which live objects an Action's verb applies to, built
// from the Action's InclusiveFilter/ExclusiveFilter attribute masks plus
// an optional owner restriction (§4.4 step 2).
type Filter struct {
	Inclusive Attributes
	Exclusive Attributes
	OwnerRestriction int32 // -1 means no restriction
}

// Match reports whether obj (whose base object carries baseAttrs and
// whose owner is ownerIdx) passes f.
func (f Filter) Match(baseAttrs Attributes, ownerIdx int32) bool {
	if f.Inclusive != 0 && !baseAttrs.Any(f.Inclusive) {
		return false
	}
	if f.Exclusive != 0 && baseAttrs.Any(f.Exclusive) {
		return false
	}
	if f.OwnerRestriction >= 0 && f.OwnerRestriction != ownerIdx {
		return false
	}
	return true
}

// Action is a single scripted effect attached to a BaseObject hook point
// (create/destroy/collide/activate/expire) or scheduled onto the delayed
// queue. Reflexive actions apply to the acting object itself rather than
// to Filter-matched targets; Delay postpones execution by that many
// ticks, at which point the queue replays it with the subject/direct
// overrides captured at schedule time so a delayed action still affects
// the object that triggered it even if other objects of the same type
// have since been created or destroyed (§4.3, §4.4).
type Action struct {
	Verb      Verb
	Reflexive bool
	Filter    Filter

	LevelKeyTag int32
	Owner       int32
	Delay       int32

	InitialSubjectOverride Handle
	InitialDirectOverride  Handle

	Argument Argument
}
