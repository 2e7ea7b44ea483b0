package netinput

import "testing"

func TestGobCodecRoundTrip(t *testing.T) {
	c := gobCodec{}
	in := &InputMessage{Admiral: 2, Tick: 100, KeyMask: 0x7}

	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := new(InputMessage)
	if err := c.Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
	if c.Name() != "gob" {
		t.Errorf("Name() = %q, want gob", c.Name())
	}
}
