package engine

import (
	"github.com/mlange-42/ark/ecs"
)

// vecComponent is the single ECS component backing every Vector entity:
// trail/beam/spark particles that are numerous, short-lived, and
// deliberately excluded from collision and admiral ownership — they are
// visual-only and never referenced by Action/Condition (§4.2 note on
// "vector" objects). Routing them through ecs.World instead of the
// handle-based Arena keeps the arena's generation bookkeeping reserved
// for objects the simulation's determinism invariants actually care
// about, while still giving vectors a dense, cache-friendly store.
type vecComponent struct {
	Position FixedPoint
	Velocity FixedPoint
	Color    uint8
	Lifetime int32
}

// VectorStore owns every live Vector entity. It layers a generation-id
// array over ecs.World's entities because ark entities are reused
// immediately on removal and the engine still wants Handle-shaped
// stability for the (rare) case of a script referencing a vector it just
// spawned within the same tick.
type VectorStore struct {
	world      ecs.World
	mapper     *ecs.Map1[vecComponent]
	entities   []ecs.Entity
	generations []uint32
	freeHead   int32
	freeNext   []int32
}

// NewVectorStore builds an empty store.
func NewVectorStore() *VectorStore {
	world := ecs.NewWorld()
	return &VectorStore{
		world:    world,
		mapper:   ecs.NewMap1[vecComponent](&world),
		freeHead: -1,
	}
}

// Spawn creates a new vector particle and returns a stable Handle for it.
func (s *VectorStore) Spawn(pos, vel FixedPoint, color uint8, lifetime int32) Handle {
	ent := s.mapper.NewEntity(&vecComponent{Position: pos, Velocity: vel, Color: color, Lifetime: lifetime})

	if s.freeHead >= 0 {
		idx := s.freeHead
		s.freeHead = s.freeNext[idx]
		s.entities[idx] = ent
		s.generations[idx]++
		return Handle{index: idx, generation: s.generations[idx]}
	}

	idx := int32(len(s.entities))
	s.entities = append(s.entities, ent)
	s.generations = append(s.generations, 1)
	s.freeNext = append(s.freeNext, -1)
	return Handle{index: idx, generation: 1}
}

// Step advances every live vector by one tick and removes any whose
// Lifetime has elapsed.
func (s *VectorStore) Step() {
	query := s.mapper.Query()
	for query.Next() {
		comp := query.Get()
		comp.Lifetime--
		comp.Position = comp.Position.Add(comp.Velocity)
	}

	for idx, ent := range s.entities {
		if !s.world.Alive(ent) {
			continue
		}
		comp := s.mapper.Get(ent)
		if comp.Lifetime <= 0 {
			s.world.RemoveEntity(ent)
			s.freeNext[idx] = s.freeHead
			s.freeHead = int32(idx)
		}
	}
}

// Get resolves h to its current position/color, returning ok=false if the
// vector has expired or h is stale.
func (s *VectorStore) Get(h Handle) (pos FixedPoint, color uint8, ok bool) {
	if !h.IsSet() || int(h.index) >= len(s.entities) {
		return FixedPoint{}, 0, false
	}
	if s.generations[h.index] != h.generation {
		return FixedPoint{}, 0, false
	}
	ent := s.entities[h.index]
	if !s.world.Alive(ent) {
		return FixedPoint{}, 0, false
	}
	comp := s.mapper.Get(ent)
	return comp.Position, comp.Color, true
}

// Len reports the number of live vector entities, used by metrics.ObserveTick.
func (s *VectorStore) Len() int {
	return s.world.Len()
}
