package engine

// blitzkrieg mirrors the original's hardcoded 1200-tick threshold after
// which a computer admiral abandons patient economy play and throws
// everything it has at the nearest target, regardless of score (§4.7).
// This layers on top of the build economy below rather than replacing it:
// past this tick, engagement no longer waits for a ship to have no
// current target, it's simply (re)assigned the nearest foe every think.
const blitzkrieg int32 = 1200

// AdmiralAttributes gates what a computer admiral may do: human-driven
// admirals ignore these and act purely on InjectInput.
type AdmiralAttributes uint8

const (
	AdmiralCanBuild AdmiralAttributes = 1 << iota
	AdmiralCanEngage
	AdmiralAutoEconomy
	AdmiralCheats
)

// AdmiralBuildFlags summarizes one tick's local-strength sampling into the
// coarse signals think_build uses to decide what (and whether) to build,
// matching the original's bitset of trend/existence flags (§4.6).
type AdmiralBuildFlags uint16

const (
	FlagUncapturedBaseExists AdmiralBuildFlags = 1 << iota
	FlagSufficientEscortsExist
	FlagThisBaseNeedsProtection
	FlagFriendUpTrend
	FlagFriendDownTrend
	FlagFoeUpTrend
	FlagFoeDownTrend
	FlagMatchingFoeExists
)

// Destination is a build-and-order target a Destination-capable object can
// be assigned to by its admiral: a fixed point or another object, the
// order flags deciding how ships already there should behave, plus (for
// objects with CanAcceptBuild) the build-economy bookkeeping from
// admiral.hpp's Destination struct.
type Destination struct {
	Handle     Handle
	Point      FixedPoint
	Name       string
	OrderFlags OrderFlags

	// CanBuildType lists the BaseObject indices this destination may
	// produce; Occupied tracks per-player occupation counts for
	// NeutralDeath-capturable destinations (kMaxPlayerNum == 4 in the
	// original, hence the fixed array).
	CanBuildType []int32
	Occupied     [4]int32
	Earn         Fixed

	// BuildTime counts down from TotalBuildTime once a build is
	// committed; BuildObjectBase is the BaseObject index under
	// construction, or -1 when idle.
	BuildTime       int32
	TotalBuildTime  int32
	BuildObjectBase int32
}

// Admiral is the per-player (or per-computer-opponent) economic and
// command state: cash, build queue considerations, and the destination
// table its ships are ordered against. Matches admiral.hpp's field set,
// condensed from separate considerShip/considerDestination cursors into
// plain indices since Go slices make the original's intrusive iterator
// pattern unnecessary.
type Admiral struct {
	Index      int32
	Attributes AdmiralAttributes
	Hue        uint8

	Cash        Fixed
	CashAccrued Fixed

	Destinations []Destination

	ConsiderShip        int32
	ConsiderDestination int32

	Score int32

	Kills  int32
	Losses int32

	// LastFreeEscortStrength/ThisFreeEscortStrength let think_build detect
	// the friend-up/down trend flags by comparing this tick's sampled
	// escort strength to last tick's.
	LastFreeEscortStrength Fixed
	ThisFreeEscortStrength Fixed

	// Counters backs ConditionCounter — a small fixed-size per-admiral
	// scratch array level scripts read via the condition. No action verb
	// writes it; only Go code that sets the array directly changes it.
	Counters [8]int32

	// HopeToBuild is the BaseObject index think_build has provisionally
	// chosen to build next, or -1 if undecided; BuildAtDestination is the
	// index into Destinations currently building, or -1 if none.
	HopeToBuild        int32
	BuildAtDestination int32

	BuildFlags AdmiralBuildFlags
}

// NewAdmiral returns an Admiral with no destinations and zero cash.
func NewAdmiral(index int32, attrs AdmiralAttributes) *Admiral {
	return &Admiral{
		Index:               index,
		Attributes:          attrs,
		ConsiderDestination: -1,
		HopeToBuild:         -1,
		BuildAtDestination:  -1,
	}
}

// Accrue adds tick income to the admiral's cash, matching the original's
// per-tick cash trickle rather than a lump sum on an interval, so a
// replay's cash curve is smooth and tick-addressable.
func (a *Admiral) Accrue(perTick Fixed) {
	a.Cash = a.Cash.Add(perTick)
	a.CashAccrued = a.CashAccrued.Add(perTick)
}

// Spend deducts cost from cash if affordable, returning false (and
// leaving cash untouched) otherwise.
func (a *Admiral) Spend(cost Fixed) bool {
	if a.Cash.Lt(cost) {
		return false
	}
	a.Cash = a.Cash.Sub(cost)
	return true
}

// AdmiralThink runs one tick of computer-admiral logic (§4.6, §4.7):
// aggregate local friend/foe strength into build flags, commit or advance
// a build at each owned CanAcceptBuild destination, and — independent of
// the economy — past the blitzkrieg tick threshold, order every CanEngage
// ship at the nearest foe regardless of current target.
func AdmiralThink(a *Admiral, arena *Arena, tick int32) {
	if a.Attributes&AdmiralAutoEconomy != 0 {
		thinkBuild(a, arena, tick)
	}

	if a.Attributes&AdmiralCanEngage == 0 {
		return
	}
	arena.All(func(obj *SpaceObject) bool {
		if obj.Owner != a.Index || !obj.Active() {
			return true
		}
		base := arena.BaseObjectAt(obj.BaseType())
		if !base.Attributes.Has(CanEngage) {
			return true
		}
		if tick < blitzkrieg && obj.Target.IsSet() {
			return true
		}
		if nearest, ok := nearestForeignObject(arena, obj.Position, a.Index); ok {
			obj.Target = nearest
		}
		return true
	})
}

// thinkBuild implements §4.6's per-tick build economy against every
// Destination this admiral owns whose underlying object still accepts
// builds.
func thinkBuild(a *Admiral, arena *Arena, tick int32) {
	a.BuildFlags = 0
	uncapturedExists := false
	matchingFoeExists := false
	var totalFriend, totalFoe Fixed

	arena.All(func(o *SpaceObject) bool {
		if !o.Active() {
			return true
		}
		base := arena.BaseObjectAt(o.BaseType())
		if base.Attributes.Has(IsDestination) && o.Owner < 0 {
			uncapturedExists = true
		}
		if o.Owner == a.Index {
			totalFriend = totalFriend.Add(o.LocalFriendStrength)
			totalFoe = totalFoe.Add(o.LocalFoeStrength)
			if base.Attributes.Has(CanEngage) && o.Owner != a.Index {
				matchingFoeExists = true
			}
		} else if base.Attributes.Has(CanEngage) {
			matchingFoeExists = true
		}
		return true
	})

	if uncapturedExists {
		a.BuildFlags |= FlagUncapturedBaseExists
	}
	if matchingFoeExists {
		a.BuildFlags |= FlagMatchingFoeExists
	}
	a.ThisFreeEscortStrength = totalFriend
	if a.ThisFreeEscortStrength.Gt(a.LastFreeEscortStrength) {
		a.BuildFlags |= FlagFriendUpTrend
	} else if a.ThisFreeEscortStrength.Lt(a.LastFreeEscortStrength) {
		a.BuildFlags |= FlagFriendDownTrend
	}
	if totalFoe.Gt(FixedZero) {
		a.BuildFlags |= FlagFoeUpTrend
	} else {
		a.BuildFlags |= FlagFoeDownTrend
	}
	if totalFriend.Ge(totalFoe) {
		a.BuildFlags |= FlagSufficientEscortsExist
	}
	a.LastFreeEscortStrength = a.ThisFreeEscortStrength

	for i := range a.Destinations {
		d := &a.Destinations[i]
		owner, ok := arena.Get(d.Handle)
		if !ok || owner.Owner != a.Index {
			continue
		}
		base := arena.BaseObjectAt(owner.BaseType())
		if !base.Attributes.Has(CanAcceptBuild) {
			continue
		}

		if d.BuildObjectBase >= 0 {
			d.BuildTime--
			if d.BuildTime <= 0 {
				seed := owner.RandomSeed.Sub(d.BuildObjectBase)
				arena.Create(d.BuildObjectBase, owner.Position, a.Index, seed)
				d.BuildObjectBase = -1
			}
			continue
		}

		if a.HopeToBuild < 0 && len(d.CanBuildType) > 0 {
			a.HopeToBuild = d.CanBuildType[0]
		}
		if a.HopeToBuild < 0 {
			continue
		}
		price := arena.BaseObjectAt(a.HopeToBuild).Price
		if a.Spend(price) {
			buildBase := arena.BaseObjectAt(a.HopeToBuild)
			d.BuildObjectBase = a.HopeToBuild
			d.TotalBuildTime = buildBase.BuildTime
			d.BuildTime = buildBase.BuildTime
			a.BuildAtDestination = int32(i)
			a.HopeToBuild = -1
		}
	}
}

func nearestForeignObject(arena *Arena, pos FixedPoint, owner int32) (Handle, bool) {
	var best Handle
	bestDistSq := int64(-1)
	arena.All(func(o *SpaceObject) bool {
		if o.Owner == owner || !o.Active() {
			return true
		}
		dh := int64(o.Position.H.Raw() - pos.H.Raw())
		dv := int64(o.Position.V.Raw() - pos.V.Raw())
		distSq := dh*dh + dv*dv
		if bestDistSq < 0 || distSq < bestDistSq {
			bestDistSq = distSq
			best = o.handle
		}
		return true
	})
	return best, best.IsSet()
}

// ShipCounts returns the number of currently active objects owned by each
// admiral index in [0, n), used by Game.Tick to derive kill/loss deltas
// across a cull (§4.6).
func ShipCounts(arena *Arena, n int32) []int32 {
	counts := make([]int32, n)
	arena.All(func(o *SpaceObject) bool {
		if o.Active() && o.Owner >= 0 && o.Owner < n {
			counts[o.Owner]++
		}
		return true
	})
	return counts
}

// UpdateKillLossCounters compares before/after ship counts (taken either
// side of a Cull) and attributes each admiral's own losses directly, and
// credits CanEngage admirals with the combined losses suffered by every
// other admiral that tick as an approximation of kills — the engine has
// no per-hit "last damaging attacker" record to attribute kills precisely,
// so this spreads credit across every admiral capable of engaging rather
// than inventing an attacker (§4.6 Open Question, resolved as "approximate
// via aggregate loss attribution").
func UpdateKillLossCounters(admirals []*Admiral, before, after []int32) {
	for i, a := range admirals {
		if before[i] > after[i] {
			a.Losses += before[i] - after[i]
		}
	}
	for i, a := range admirals {
		if a.Attributes&AdmiralCanEngage == 0 {
			continue
		}
		var foeLosses int32
		for j := range admirals {
			if j == i {
				continue
			}
			if before[j] > after[j] {
				foeLosses += before[j] - after[j]
			}
		}
		a.Kills += foeLosses
	}
}
