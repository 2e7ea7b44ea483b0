package engine

// Handle identifies a slot in an arena together with the generation that
// occupied it when the handle was issued. A stale handle (one whose
// generation no longer matches the slot's current generation) must be
// treated as absent rather than dereferenced, which is how the engine
// satisfies I1: a destroyed object is never silently resurrected by a
// leftover reference (§4.1, §9).
type Handle struct {
	index      int32
	generation uint32
}

// NoHandle is the zero value and never refers to a live object: arenas
// start their generation counters at 1, so a zeroed Handle always fails
// validity checks.
var NoHandle = Handle{}

// IsSet reports whether h was ever assigned (distinct from being stale).
func (h Handle) IsSet() bool { return h.generation != 0 }

// Index returns the underlying slot index, valid only when paired with
// the matching generation — callers outside this package should not use
// this directly; it exists for components (spatial grid, action queue)
// that index parallel slices by the same key.
func (h Handle) Index() int32 { return h.index }

// NamedHandle pairs a Handle with the short level-authored name used to
// resolve cross-references (initial-object "owner" links, scripted
// targets) before the arena exists — the original's NamedHandle<T>
// template collapsed into this single concrete type since the engine
// only ever hands out SpaceObject handles.
type NamedHandle struct {
	Handle
	Name string
}
