package engine

// RandomSeed is a linear congruential generator state. The engine keeps one
// global stream (initial placement angles, scenario-wide choices) and one
// substream per live SpaceObject, seeded at creation from the global
// stream. Both use the identical update rule, so a draw is reproducible
// given (seed, base-object index, call-site tag) alone (§3.3, I6).
type RandomSeed struct {
	state uint32
}

// NewRandomSeed creates a stream seeded with the given value.
func NewRandomSeed(seed uint32) RandomSeed {
	return RandomSeed{state: seed}
}

// lcg is the shared update rule for every stream in the engine. Constants
// are the classic ANSI C rand() 32-bit LCG multiplier and increment; what matters for
// determinism is not which constants are "better" but that every stream
// uses exactly these ones.
func lcg(state uint32) uint32 {
	return state*1103515245 + 12345
}

// next advances the stream and returns the raw 32-bit word.
func (r *RandomSeed) next() uint32 {
	r.state = lcg(r.state)
	return r.state
}

// Tag is a four-character call-site identifier. It does not affect the
// draw: it exists only so every call site that historically drew from the
// RNG continues to draw from it, in the same order, even when the result
// is provably unused — some sites in the original advance the stream
// unconditionally (e.g. rolling an "expiry age" for base types that never
// expire) and skipping that draw would desynchronize replays (§9).
type Tag [4]byte

// MakeTag builds a Tag from a short string, truncating or space-padding to
// four bytes.
func MakeTag(s string) Tag {
	var t Tag
	for i := range t {
		if i < len(s) {
			t[i] = s[i]
		} else {
			t[i] = ' '
		}
	}
	return t
}

// Next draws a pseudo-random integer in [0, n) parameterized by a
// debugging tag that exists solely for replay-compatible call ordering.
func (r *RandomSeed) Next(n int32, tag Tag) int32 {
	_ = tag
	if n <= 0 {
		return 0
	}
	word := r.next()
	return int32(word % uint32(n))
}

// NextFixed draws a Fixed in [lo, hi).
func (r *RandomSeed) NextFixed(lo, hi Fixed, tag Tag) Fixed {
	if hi.raw <= lo.raw {
		return lo
	}
	span := hi.raw - lo.raw
	word := r.next()
	_ = tag
	return Fixed{raw: lo.raw + int32(uint32(word)%uint32(span))}
}

// NextRange draws an int32 in [lo, hi).
func (r *RandomSeed) NextRange(lo, hi int32, tag Tag) int32 {
	if hi <= lo {
		return lo
	}
	return lo + r.Next(hi-lo, tag)
}

// Sub derives a per-object substream from the global stream, seeded from
// the current global state mixed with the object's base-object index (so
// two objects of different classes created on the same tick diverge
// immediately, matching the original's per-object "randomSeed" field).
func (r *RandomSeed) Sub(baseObjectIndex int32) RandomSeed {
	mixed := r.next() ^ uint32(baseObjectIndex)*2654435761
	return RandomSeed{state: lcg(mixed)}
}
