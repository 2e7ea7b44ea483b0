package engine

import "testing"

func TestEvilFixedToLong(t *testing.T) {
	cases := []struct {
		raw  int32
		evil int32
		more int32
	}{
		{0, 0, 0},
		{256, 1, 1},
		{-256, -1, -1}, // evenly divisible: both agree
		{-1, 0, -1},    // not evenly divisible: evil rounds toward zero, more-evil truncates down
		{-257, -1, -2},
		{300, 1, 1},
		{-300, -1, -2},
	}
	for _, c := range cases {
		f := FixedFromRaw(c.raw)
		if got := EvilFixedToLong(f); got != c.evil {
			t.Errorf("EvilFixedToLong(%d) = %d, want %d", c.raw, got, c.evil)
		}
		if got := MoreEvilFixedToLong(f); got != c.more {
			t.Errorf("MoreEvilFixedToLong(%d) = %d, want %d", c.raw, got, c.more)
		}
	}
}

func TestFixedRoundTrip(t *testing.T) {
	for _, x := range []int32{0, 1, -1, 181, -181, 32767, -32767} {
		f := FixedFromLong(x)
		if got := EvilFixedToLong(f); got != x {
			t.Errorf("round trip FixedFromLong(%d): EvilFixedToLong = %d", x, got)
		}
	}
}

func TestFixedMulDiv(t *testing.T) {
	a := FixedFromLong(10)
	b := FixedFromLong(3)
	got := a.Mul(b)
	if want := FixedFromLong(30); got != want {
		t.Errorf("10*3 fixed = %v, want %v", got, want)
	}
	got = a.Div(b)
	// 10/3 in fixed point: (10<<8<<8)/(3<<8) -> truncated toward zero
	want := FixedFromRaw((a.Raw() << 8) / b.Raw())
	if got != want {
		t.Errorf("10/3 fixed = %v, want %v", got, want)
	}
}

func TestFixedNoneSentinel(t *testing.T) {
	if FixedNone.Raw() != -1 {
		t.Fatalf("FixedNone.Raw() = %d, want -1", FixedNone.Raw())
	}
}
