package engine

import "testing"

func TestActionQueueFiresInScheduleOrder(t *testing.T) {
	q := NewActionQueue()
	q.Schedule(Action{Verb: VerbDisplayMessage, Delay: 2, Argument: Argument{Message: "first"}}, NoHandle, NoHandle)
	q.Schedule(Action{Verb: VerbDisplayMessage, Delay: 1, Argument: Argument{Message: "second"}}, NoHandle, NoHandle)

	if fired := q.Tick(); len(fired) != 1 || fired[0].action.Argument.Message != "second" {
		t.Fatalf("tick 1: got %v, want [second]", fired)
	}
	if fired := q.Tick(); len(fired) != 1 || fired[0].action.Argument.Message != "first" {
		t.Fatalf("tick 2: got %v, want [first]", fired)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestActionQueueSameTickStableOrder(t *testing.T) {
	q := NewActionQueue()
	q.Schedule(Action{Verb: VerbDisplayMessage, Delay: 1, Argument: Argument{Message: "a"}}, NoHandle, NoHandle)
	q.Schedule(Action{Verb: VerbDisplayMessage, Delay: 1, Argument: Argument{Message: "b"}}, NoHandle, NoHandle)
	fired := q.Tick()
	if len(fired) != 2 || fired[0].action.Argument.Message != "a" || fired[1].action.Argument.Message != "b" {
		t.Fatalf("expected stable schedule order [a b], got %v", fired)
	}
}
