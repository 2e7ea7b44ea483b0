package engine

import "math"

// Fixed is a signed 32-bit fixed-point number with 8 fractional bits:
// value = raw / 256. All physics quantities that participate in
// determinism use this type instead of float64 so that replays produce
// identical results across platforms.
type Fixed struct {
	raw int32
}

// FixedZero is the additive identity.
var FixedZero = Fixed{}

// FixedNone is a sentinel used where "no value" must be distinguished
// from zero (mirrors kFixedNone in the original source).
var FixedNone = Fixed{raw: -1}

// FixedFromLong converts an integer to fixed point.
func FixedFromLong(x int32) Fixed {
	return Fixed{raw: x << 8}
}

// FixedFromFloat converts a float64 to fixed point, rounding to nearest.
func FixedFromFloat(x float64) Fixed {
	return Fixed{raw: int32(math.Round(x * 256.0))}
}

// FixedFromRaw wraps a raw fixed-point value directly.
func FixedFromRaw(raw int32) Fixed {
	return Fixed{raw: raw}
}

// Raw returns the underlying fixed-point representation.
func (f Fixed) Raw() int32 { return f.raw }

func (a Fixed) Add(b Fixed) Fixed { return Fixed{raw: a.raw + b.raw} }
func (a Fixed) Sub(b Fixed) Fixed { return Fixed{raw: a.raw - b.raw} }
func (a Fixed) Neg() Fixed        { return Fixed{raw: -a.raw} }

// MulInt multiplies by a plain integer (no shift).
func (a Fixed) MulInt(b int32) Fixed { return Fixed{raw: a.raw * b} }

// DivInt divides by a plain integer.
func (a Fixed) DivInt(b int32) Fixed { return Fixed{raw: a.raw / b} }

func (a Fixed) Shl(n uint) Fixed { return Fixed{raw: a.raw << n} }
func (a Fixed) Shr(n uint) Fixed { return Fixed{raw: a.raw >> n} }

// Mul multiplies two fixed-point values: (a*b) >> 8.
//
// Safe range: |x| <= 181 for arbitrary signed*signed; |x| <= 32767 when
// the other operand is within [-1, 1]. Exceeding this overflows int32,
// exactly as the original C++ did; we do not guard against it because
// levels that overflow this are themselves a content bug, not something
// this engine should paper over.
func (a Fixed) Mul(b Fixed) Fixed {
	return a.MulInt(b.raw).Shr(8)
}

// Div divides two fixed-point values: (a << 8) / b.
func (a Fixed) Div(b Fixed) Fixed {
	return a.Shl(8).DivInt(b.raw)
}

func (a Fixed) Mod(b Fixed) Fixed { return Fixed{raw: a.raw % b.raw} }

func (a Fixed) Eq(b Fixed) bool { return a.raw == b.raw }
func (a Fixed) Lt(b Fixed) bool { return a.raw < b.raw }
func (a Fixed) Le(b Fixed) bool { return a.raw <= b.raw }
func (a Fixed) Gt(b Fixed) bool { return a.raw > b.raw }
func (a Fixed) Ge(b Fixed) bool { return a.raw >= b.raw }

// EvilFixedToLong truncates a fixed-point value toward zero for negative
// inputs that have a fractional part by adding 1 after the arithmetic
// shift; whole negative values (raw divisible by 256) and positive or zero
// inputs are exact (value/256). This is the original's "mFixedToLong"
// rounding rule and must be preserved bit-for-bit.
func EvilFixedToLong(f Fixed) int32 {
	if f.raw < 0 && f.raw&0xff != 0 {
		return (f.raw >> 8) + 1
	}
	return f.raw >> 8
}

// MoreEvilFixedToLong is evil_fixed_to_long minus one for negative inputs
// not evenly divisible by 256 — it is simply an arithmetic shift with no
// correction, which differs from EvilFixedToLong only when 256 does not
// evenly divide the raw value.
func MoreEvilFixedToLong(f Fixed) int32 {
	return f.Shr(8).raw
}

// FixedToFloat converts fixed-point to a float64 truncated to 3 decimal
// places, matching mFixedToFloat's use of floor after scaling.
func FixedToFloat(f Fixed) float64 {
	return math.Floor(float64(f.raw)*1e3/256.0) / 1e3
}

// FixedPoint is a 2D point in fixed-point universal coordinates.
type FixedPoint struct {
	H, V Fixed
}

func (p FixedPoint) Add(o FixedPoint) FixedPoint { return FixedPoint{H: p.H.Add(o.H), V: p.V.Add(o.V)} }
func (p FixedPoint) Sub(o FixedPoint) FixedPoint { return FixedPoint{H: p.H.Sub(o.H), V: p.V.Sub(o.V)} }
