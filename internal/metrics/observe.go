package metrics

import (
	"time"

	"github.com/antares-engine/antares/internal/engine"
)

// ObserveTick runs one Game.Tick and records its duration plus the
// resulting arena/queue/vector gauges, so callers get metrics for free
// by swapping g.Tick() for metrics.ObserveTick(g).
func ObserveTick(g *engine.Game) {
	start := time.Now()

	g.Tick()

	TickDuration.Observe(time.Since(start).Seconds())
	ArenaOccupancy.Set(float64(g.Arena.Count()))
	ActionQueueDepth.Set(float64(g.Queue.Len()))
	VectorEntities.Set(float64(g.Vectors.Len()))
}
