// Package metrics exposes the engine's tick loop to Prometheus. The
// collectors are registered once on Registry when the package loads, and
// cmd/antares-replay's run command updates them through ObserveTick.
// Nothing in this module serves Registry over HTTP.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "antares_tick_duration_seconds",
			Help:    "Wall-clock time spent in one Game.Tick call.",
			Buckets: prometheus.DefBuckets,
		},
	)

	ArenaOccupancy = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "antares_arena_occupancy",
			Help: "Number of active SpaceObjects in the arena as of the last tick.",
		},
	)

	ActionQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "antares_action_queue_depth",
			Help: "Number of delayed actions still pending as of the last tick.",
		},
	)

	// CollisionPairsTotal is registered but nothing in this module
	// increments it, so it stays at zero.
	CollisionPairsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "antares_collision_pairs_total",
			Help: "Total number of collision pairs resolved since process start.",
		},
	)

	VectorEntities = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "antares_vector_entities",
			Help: "Number of live cosmetic vector particles.",
		},
	)
)

// Registry is a dedicated registry rather than prometheus.DefaultRegisterer
// so embedding cmd/antares-demo alongside other Prometheus-instrumented
// code never collides on collector names.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		TickDuration,
		ArenaOccupancy,
		ActionQueueDepth,
		CollisionPairsTotal,
		VectorEntities,
	)
}
