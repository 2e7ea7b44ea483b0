// Package netinput carries player input over the network into a running
// engine.Game. It deliberately does not reintroduce the client-authoritative
// split spec.md's Non-goals rule out: every message here is a single
// (admiral, tick, keyMask) input sample, never simulation state — the
// server remains the sole place Game.Tick ever runs.
package netinput

// InputMessage is the wire payload for one admiral's input sample.
type InputMessage struct {
	Admiral int32
	Tick    int32
	KeyMask uint32
}

// Ack is returned for every InputMessage the server accepted.
type Ack struct {
	AcceptedTick int32
}
