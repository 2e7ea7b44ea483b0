package engine

import "testing"

func TestAngleFromSlopeRoundTrip(t *testing.T) {
	for angle := int32(0); angle < 360; angle++ {
		h, v := GetRotPoint(angle)
		got := GetAngleFromVector(h.Raw(), v.Raw())
		diff := AngleDifference(angle, got)
		opposite := AngleDifference((angle+180)%360, got)
		if diff != 0 && opposite != 0 {
			t.Errorf("angle %d: table round trip gave %d (diff %d, opposite-diff %d)", angle, got, diff, opposite)
		}
	}
}

func TestAddAngleWraps(t *testing.T) {
	theta := int32(350)
	AddAngle(&theta, 20)
	if theta != 10 {
		t.Errorf("AddAngle(350, 20) = %d, want 10", theta)
	}
	theta = 10
	AddAngle(&theta, -20)
	if theta != 350 {
		t.Errorf("AddAngle(10, -20) = %d, want 350", theta)
	}
}

func TestAngleDifferenceBoundary(t *testing.T) {
	if d := AngleDifference(0, 180); d != 180 {
		t.Errorf("AngleDifference(0,180) = %d, want 180", d)
	}
	if d := AngleDifference(0, 181); d != -179 {
		t.Errorf("AngleDifference(0,181) = %d, want -179", d)
	}
}

func TestGetRotPointNegativeWrap(t *testing.T) {
	h1, v1 := GetRotPoint(-10)
	h2, v2 := GetRotPoint(350)
	if h1 != h2 || v1 != v2 {
		t.Errorf("GetRotPoint(-10) != GetRotPoint(350): (%v,%v) vs (%v,%v)", h1, v1, h2, v2)
	}
}
