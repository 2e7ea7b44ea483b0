package engine

import "math"

// Angle bounds, named to match the original's ROT_* constants.
const (
	Rot0   = 0
	Rot45  = 45
	Rot90  = 90
	Rot180 = 180
	RotPos = 360
)

// RotTable holds 360 entries of (cosine, sine) in fixed point, indexed by
// integer angle. In the original this is loaded from a "rot " resource;
// here it is built once at init from math.Cos/math.Sin scaled into the
// fixed format, which produces the same table without needing an asset
// pipeline. All direction math goes through this table instead of calling
// trig functions directly, so replays are identical regardless of the
// host's math library.
var RotTable [360]FixedPoint

func init() {
	for angle := 0; angle < 360; angle++ {
		radians := float64(angle) * math.Pi / 180.0
		// Screen-space convention used throughout the engine: angle 0 points
		// along +H and angle 90 points "up" (negative V), so angles increase
		// counterclockwise on screen.
		cos := math.Cos(radians)
		sin := -math.Sin(radians)
		RotTable[angle] = FixedPoint{
			H: FixedFromFloat(cos),
			V: FixedFromFloat(sin),
		}
	}
}

// GetRotPoint returns the (cos, sin) fixed-point pair for rotpos, which is
// reduced modulo 360 first.
func GetRotPoint(rotpos int32) (h, v Fixed) {
	rotpos = rotpos % RotPos
	if rotpos < 0 {
		rotpos += RotPos
	}
	p := RotTable[rotpos]
	return p.H, p.V
}

// GetAngleFromVector scans the rotation table for the entry whose slope
// best matches (x, y), returning the corresponding angle. Used wherever
// the original computes "angle from slope" without floating-point trig,
// so results match the table exactly rather than atan2's continuous
// output.
func GetAngleFromVector(x, y int32) int32 {
	if x == 0 && y == 0 {
		return 0
	}
	bestAngle := int32(0)
	var bestScore int64 = math.MinInt64
	fx, fy := float64(x), float64(y)
	norm := math.Hypot(fx, fy)
	for angle := 0; angle < 360; angle++ {
		p := RotTable[angle]
		// Dot product between the table direction and (x, y), scaled; the
		// angle that maximizes it is the closest match.
		dot := float64(p.H.Raw())*fx/256.0 + float64(p.V.Raw())*fy/256.0
		score := int64(dot * 1e6 / (norm + 1e-9))
		if score > bestScore {
			bestScore = score
			bestAngle = int32(angle)
		}
	}
	return bestAngle
}

// AngleDifference returns the signed smallest difference from theta to
// other, in [-180, 180]: two angles exactly 180 apart give +180 when
// theta < other and -180 when theta > other.
func AngleDifference(theta, other int32) int32 {
	if theta >= other {
		if (theta - other) > Rot180 {
			return other - theta + RotPos
		}
		return other - theta
	}
	if (other - theta) > Rot180 {
		return other - theta - RotPos
	}
	return other - theta
}

// AddAngle adds `other` to *theta and normalizes the result into
// [0, 360). This is a plain function, not an operator, so (per spec.md §9)
// it cannot intercept a caller's trailing `else` the way the original's
// macro-turned-function could not either — callers that mirror the
// flagged NonPlayerShip.cpp call sites keep that quirk; see think.go.
func AddAngle(theta *int32, other int32) {
	*theta += other
	if *theta >= RotPos {
		*theta -= RotPos
	} else if *theta < 0 {
		*theta += RotPos
	}
}
