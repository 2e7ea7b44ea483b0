package engine

// pendingAction is a scheduled Action awaiting its Delay to elapse,
// carrying the subject/direct handles captured at schedule time so it
// still targets the right objects even if unrelated objects are created
// or destroyed before it fires (§4.3, §4.4 step 6).
type pendingAction struct {
	action    Action
	countdown int32
	subject   Handle
	direct    Handle
}

// ActionQueue holds delayed actions in the order they were scheduled. It
// is a simple slice rather than a priority heap: per-tick action volume in
// practice is small enough that an O(n) scan costs less than heap
// bookkeeping, and it keeps insertion order stable among equal-countdown
// entries, which matters for I5 (deterministic tie-breaking).
type ActionQueue struct {
	pending []pendingAction
}

// NewActionQueue returns an empty queue.
func NewActionQueue() *ActionQueue {
	return &ActionQueue{}
}

// Schedule enqueues act to fire in act.Delay ticks (0 means "next
// Drain call", not "now", so same-tick ordering stays deterministic
// relative to other scheduled effects).
func (q *ActionQueue) Schedule(act Action, subject, direct Handle) {
	q.pending = append(q.pending, pendingAction{
		action:    act,
		countdown: act.Delay,
		subject:   subject,
		direct:    direct,
	})
}

// Tick decrements every pending action's countdown by one and returns the
// ones that reached zero, removing them from the queue, in the order they
// were originally scheduled.
func (q *ActionQueue) Tick() []pendingAction {
	var fired []pendingAction
	kept := q.pending[:0]
	for _, p := range q.pending {
		p.countdown--
		if p.countdown <= 0 {
			fired = append(fired, p)
		} else {
			kept = append(kept, p)
		}
	}
	q.pending = kept
	return fired
}

// Len reports how many actions are still waiting.
func (q *ActionQueue) Len() int32 { return int32(len(q.pending)) }
