package engine

// CollisionSystem maintains the coarse and fine spatial grids and
// resolves per-tick collision pairs against an Arena. Coarse buckets are
// roughly ship-scale (cheap broad phase over the whole active set); fine
// buckets are roughly hull-scale (used for beam/point collision where
// coarse buckets would group too many unrelated objects together).
type CollisionSystem struct {
	coarse *spatialGrid
	fine   *spatialGrid
}

// NewCollisionSystem builds a system sized for a universe of the given
// span, with fine cells one eighth the width of coarse cells.
func NewCollisionSystem(cols, rows int32, coarseCellSize Fixed) *CollisionSystem {
	fineCellSize := coarseCellSize.DivInt(8)
	return &CollisionSystem{
		coarse: newSpatialGrid(cols, rows, coarseCellSize),
		fine:   newSpatialGrid(cols*8, rows*8, fineCellSize),
	}
}

// Refile re-buckets obj in both grids after motion has moved it. Must run
// once per active object per tick, after StepMotion and before Resolve.
func (cs *CollisionSystem) Refile(idx int32, obj *SpaceObject) {
	hadPrev := obj.RuntimeFlags&RuntimeInitialized != 0
	obj.gridCellCoarse = cs.coarse.File(idx, obj.gridCellCoarse, hadPrev, obj.Position)
	obj.gridCellFine = cs.fine.File(idx, obj.gridCellFine, hadPrev, obj.Position)
	obj.RuntimeFlags |= RuntimeInitialized
}

// VisitCoarsePairs calls fn once for every unordered pair of slot indices
// sharing a coarse bucket or one of its five neighbor offsets. This is the
// broad "locality" pass (distinct from Resolve's fine-grid hit test):
// locality.go uses it to aggregate nearby friend/foe strength and find
// each object's closest other object in roughly grid-bucket time instead
// of an O(n^2) scan over every active object (§4.2 "Spatial grid").
func (cs *CollisionSystem) VisitCoarsePairs(fn func(a, b int32)) {
	cs.coarse.VisitPairs(fn)
}

// Pair is a resolved collision between two object slot indices.
type Pair struct {
	A, B int32
}

// Resolve scans the fine grid for overlapping pairs among active,
// collidable objects and returns them in bucket-visiting order — which is
// deterministic for a fixed set of filed positions, satisfying I5. It
// does not mutate the arena; HitObject applies the actual effects so
// callers can filter or reorder pairs first if a script depends on it.
func (cs *CollisionSystem) Resolve(arena *Arena) []Pair {
	var pairs []Pair
	cs.fine.VisitPairs(func(a, b int32) {
		oa := &arena.slots[a]
		ob := &arena.slots[b]
		if !oa.Active() || !ob.Active() {
			return
		}
		attrsA := EffectiveAttributes(arena.BaseObjectAt(oa.baseType).Attributes, oa.RuntimeFlags)
		attrsB := EffectiveAttributes(arena.BaseObjectAt(ob.baseType).Attributes, ob.RuntimeFlags)
		if !attrsA.Has(CanCollide) || !attrsB.Has(CanCollide) {
			return
		}
		baseA := arena.BaseObjectAt(oa.baseType)
		baseB := arena.BaseObjectAt(ob.baseType)
		if oa.Presence != PresenceNormal || ob.Presence != PresenceNormal {
			return
		}
		dh := oa.Position.H.Sub(ob.Position.H)
		dv := oa.Position.V.Sub(ob.Position.V)
		distSq := dh.Mul(dh).Add(dv.Mul(dv))
		radiusSum := baseA.PixRadius.Add(baseB.PixRadius)
		if distSq.Le(radiusSum.Mul(radiusSum)) {
			pairs = append(pairs, Pair{A: a, B: b})
		}
	})
	return pairs
}

// HitObject applies a, b's collision: damage proportional to the other's
// mass and an elastic push along the separation axis, then clears cloak
// (a hit always breaks cloak, per §4.6). Bounce-flagged objects reflect
// velocity instead of absorbing it. Each side's Collide action list then
// runs with that side as subject and the other party as direct object
// (each action's own Reflexive flag decides what it applies to), mirroring
// CollideSpaceObjects' exec(baseType->collide, ...) call per collider.
func (cs *CollisionSystem) HitObject(arena *Arena, pair Pair, exec *Executor, tick int32) {
	oa := &arena.slots[pair.A]
	ob := &arena.slots[pair.B]
	baseA := arena.BaseObjectAt(oa.baseType)
	baseB := arena.BaseObjectAt(ob.baseType)

	oa.Health = oa.Health.Sub(baseB.Mass)
	ob.Health = ob.Health.Sub(baseA.Mass)

	oa.RuntimeFlags &^= RuntimeCloaked
	ob.RuntimeFlags &^= RuntimeCloaked
	oa.CloakLevel = FixedZero
	ob.CloakLevel = FixedZero

	dh := oa.Position.H.Sub(ob.Position.H)
	dv := oa.Position.V.Sub(ob.Position.V)

	if baseA.Attributes.Has(DoesBounce) {
		oa.Velocity = FixedPoint{H: oa.Velocity.H.Neg(), V: oa.Velocity.V.Neg()}
	} else {
		oa.Velocity.H = oa.Velocity.H.Add(dh.DivInt(4))
		oa.Velocity.V = oa.Velocity.V.Add(dv.DivInt(4))
	}
	if baseB.Attributes.Has(DoesBounce) {
		ob.Velocity = FixedPoint{H: ob.Velocity.H.Neg(), V: ob.Velocity.V.Neg()}
	} else {
		ob.Velocity.H = ob.Velocity.H.Sub(dh.DivInt(4))
		ob.Velocity.V = ob.Velocity.V.Sub(dv.DivInt(4))
	}

	if exec == nil {
		return
	}
	if len(baseA.Collide) > 0 {
		exec.Run(baseA.Collide, oa.handle, ob.handle, tick)
	}
	if len(baseB.Collide) > 0 {
		exec.Run(baseB.Collide, ob.handle, oa.handle, tick)
	}
}
