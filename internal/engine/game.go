package engine

// Game is the single entry point external callers (render/input, netinput,
// cmd/antares-replay) drive. It owns every subsystem and exposes exactly
// the operations spec.md §6.4 names: advancing one tick, injecting input,
// reading a snapshot, subscribing to messages, and asking whether/who won.
// The subsystems are exported fields that callers such as metrics and the
// cmd/ binaries read; only Tick advances them, which is what keeps its ten
// steps reproducible regardless of caller (I6).
type Game struct {
	Arena      *Arena
	Admirals   []*Admiral
	Vectors    *VectorStore
	Collision  *CollisionSystem
	Queue      *ActionQueue
	Evaluator  *Evaluator
	Conditions []ScriptedCondition

	exec *Executor

	randomSeed RandomSeed
	tick       int32

	pendingMessages []string
	winner          int32
	gameOver        bool

	inputMask map[int32]uint32 // per-admiral human input key mask
}

// kConditionTick gates how often scripted conditions are (re-)evaluated,
// matching level.cpp's `(g.time - start_time) % kConditionTick == 0`
// guard. The original's #define was not recoverable from the available
// source subset; 12 ticks (4 major ticks of 3 subticks each) is chosen so
// a condition's fastest possible reaction time stays well under a second
// of gameplay without re-evaluating the full script list every tick (§9
// Open Question, resolved as "12 ticks").
const kConditionTick int32 = 12

// ScriptedCondition pairs a win/lose (or triggered-action) condition set
// with the Actions to run once every condition in Conditions is true,
// mirroring a level's top-level script entries (§4.5).
type ScriptedCondition struct {
	Conditions []Condition
	Actions    []Action
	fired      bool
	RepeatOK   bool
}

// NewGame constructs a Game from level data already decoded into arena
// capacity, BaseObject templates, admirals, and scripted conditions.
func NewGame(cap int32, bases []BaseObject, admirals []*Admiral, conditions []ScriptedCondition, seed uint32) *Game {
	arena := NewArena(cap, bases)
	queue := NewActionQueue()
	exec := NewExecutor(arena, queue)
	arena.SetExecutor(exec)

	g := &Game{
		Arena:      arena,
		Admirals:   admirals,
		Vectors:    NewVectorStore(),
		Collision:  NewCollisionSystem(16, 16, FixedFromLong(4096)),
		Queue:      queue,
		Evaluator:  NewEvaluator(arena),
		Conditions: conditions,
		exec:       exec,
		randomSeed: NewRandomSeed(seed),
		winner:     -1,
		inputMask:  map[int32]uint32{},
	}
	return g
}

// InjectInput records the current key mask for a human-controlled
// admiral, consumed by the think step on the next Tick (§6.3).
func (g *Game) InjectInput(admiralIdx int32, keyMask uint32) {
	g.inputMask[admiralIdx] = keyMask
}

// Tick advances the simulation by exactly one fixed step, in run_game_1s's
// order: advance the tick counter, age/expire/periodically-activate every
// object, run AI/player think and integrate motion, run admiral economy
// and engagement orders, drain the delayed action queue, resolve
// collisions (firing each side's Collide list), evaluate locality (cloak
// ramp, closest-object, friend/foe strength), evaluate scripted
// conditions (gated by kConditionTick) and dispatch their actions, cull
// every object marked ToBeFreed this tick (crediting kill/loss counters
// off the before/after ship counts), and step the vector store. Every
// subsystem consulted here reads only state already committed by an
// earlier step in the same tick, never a later one, so replays are
// order-independent of wall-clock scheduling (I6, P1).
func (g *Game) Tick() {
	g.tick += kMajorTick
	g.Arena.SetTick(g.tick)

	g.Arena.AgeAndActivate()

	g.Arena.All(func(obj *SpaceObject) bool {
		base := g.Arena.BaseObjectAt(obj.BaseType())
		var turn, thrust Fixed
		if base.Attributes.Has(IsHumanControlled) {
			turn, thrust = inputToMotion(g.inputMask[obj.Owner])
		} else {
			turn, thrust = Think(obj, base, g.Arena, g.exec, g.tick)
		}
		if obj.Active() {
			StepMotion(obj, base, turn, thrust)
		}
		return true
	})

	for _, a := range g.Admirals {
		AdmiralThink(a, g.Arena, g.tick)
	}

	g.exec.DrainDelayed(g.tick)

	g.Arena.All(func(obj *SpaceObject) bool {
		g.Collision.Refile(obj.handle.index, obj)
		return true
	})

	for _, pair := range g.Collision.Resolve(g.Arena) {
		g.Collision.HitObject(g.Arena, pair, g.exec, g.tick)
	}

	StepLocalityPass(g.Arena, g.Collision)

	// Conditions are normally only worth re-checking every kConditionTick
	// ticks, but a verb that could flip one (Alter/Die/CreateObject/
	// SetDestination) latches Recheck so a script reacts on the very tick
	// its trigger condition became true rather than up to kConditionTick-1
	// ticks late (§4.4 step 6).
	if g.tick%kConditionTick == 0 || g.exec.Recheck {
		g.exec.Recheck = false
		for i := range g.Conditions {
			sc := &g.Conditions[i]
			if sc.fired && !sc.RepeatOK {
				continue
			}
			if g.Evaluator.AllForAdmirals(sc.Conditions, g.tick, g.Admirals) {
				g.exec.Run(sc.Actions, NoHandle, NoHandle, g.tick)
				sc.fired = true
			}
		}
	}

	g.pendingMessages = append(g.pendingMessages, g.exec.Effects.Messages...)
	g.exec.Effects.Messages = nil
	for admiral, delta := range g.exec.Effects.ScoreDeltas {
		for _, a := range g.Admirals {
			if a.Index == admiral {
				a.Score += delta
			}
		}
	}
	g.exec.Effects.ScoreDeltas = map[int32]int32{}
	if g.exec.Effects.WinnerSet {
		g.winner = g.exec.Effects.Winner
		g.gameOver = true
	}

	before := ShipCounts(g.Arena, int32(len(g.Admirals)))
	g.Arena.Cull()
	after := ShipCounts(g.Arena, int32(len(g.Admirals)))
	UpdateKillLossCounters(g.Admirals, before, after)

	g.Vectors.Step()
}

func inputToMotion(mask uint32) (turn, thrust Fixed) {
	const (
		keyTurnLeft  = 1 << 0
		keyTurnRight = 1 << 1
		keyThrust    = 1 << 2
	)
	switch {
	case mask&keyTurnLeft != 0:
		turn = FixedFromLong(-1)
	case mask&keyTurnRight != 0:
		turn = FixedFromLong(1)
	}
	if mask&keyThrust != 0 {
		thrust = FixedFromLong(1)
	}
	return turn, thrust
}

// SubscribeMessages drains and returns every message Action effect
// produced since the last call, in emission order.
func (g *Game) SubscribeMessages() []string {
	msgs := g.pendingMessages
	g.pendingMessages = nil
	return msgs
}

// IsGameOver reports whether a VerbDeclareWinner effect has fired.
func (g *Game) IsGameOver() bool { return g.gameOver }

// Winner returns the winning admiral index, or -1 if the game is not
// over.
func (g *Game) Winner() int32 { return g.winner }

// TickCount returns the current simulation tick count.
func (g *Game) TickCount() int32 { return g.tick }

// Snapshot captures every field a replay consumer or renderer needs to
// reproduce the current frame without reaching into engine internals.
type Snapshot struct {
	Tick    int32
	Objects []ObjectSnapshot
}

// ObjectSnapshot is one active object's externally-visible state.
type ObjectSnapshot struct {
	Handle   Handle
	BaseType int32
	Position FixedPoint
	Rotation int32
	Owner    int32
	Health   Fixed
	Cloak    Fixed
}

// Snapshot builds a Snapshot of every active object, in arena traversal
// order.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick}
	g.Arena.All(func(obj *SpaceObject) bool {
		if !obj.Active() {
			return true
		}
		snap.Objects = append(snap.Objects, ObjectSnapshot{
			Handle:   obj.handle,
			BaseType: obj.baseType,
			Position: obj.Position,
			Rotation: obj.Rotation,
			Owner:    obj.Owner,
			Health:   obj.Health,
			Cloak:    obj.CloakLevel,
		})
		return true
	})
	return snap
}

// NextLevel resets Game to play level-data described by the given arena
// capacity, base objects, admirals, and conditions, keeping the same
// random seed lineage so a multi-level campaign replay remains
// deterministic end to end (§6.4).
func (g *Game) NextLevel(cap int32, bases []BaseObject, admirals []*Admiral, conditions []ScriptedCondition) {
	seed := g.randomSeed.Sub(0)
	*g = *NewGame(cap, bases, admirals, conditions, seed.state)
}
