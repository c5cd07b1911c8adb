// Package metrics holds the Prometheus collectors for mazeflood. They are
// registered on the default registry at init via promauto.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/traverse"
)

var (
	MazesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mazeflood_mazes_generated_total",
			Help: "Total number of mazes carved",
		},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mazeflood_generation_duration_seconds",
			Help:    "Time spent carving a maze",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// Searches counts searches by discipline and whether the goal was reached.
	Searches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mazeflood_searches_total",
			Help: "Total number of searches run",
		},
		[]string{"discipline", "found"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mazeflood_search_duration_seconds",
			Help:    "Time spent searching a maze",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"discipline"},
	)

	// CellsVisited records the History length of each search.
	CellsVisited = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mazeflood_search_cells_visited",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		},
		[]string{"discipline"},
	)

	ReplayTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mazeflood_replay_ticks_total",
			Help: "Total number of replay steps taken",
		},
	)

	ReplaysCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mazeflood_replays_completed_total",
			Help: "Total number of replays that reached the done state",
		},
	)

	ActiveGames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mazeflood_active_games",
			Help: "Games currently held by the HTTP registry",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mazeflood_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mazeflood_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "path"},
	)
)

// Observer feeds game events into the collectors above.
type Observer struct{}

func (Observer) Generated(_, _ int, took time.Duration) {
	MazesGenerated.Inc()
	GenerationDuration.Observe(took.Seconds())
}

func (Observer) Searched(res *traverse.Result, took time.Duration) {
	d := res.Discipline.String()
	Searches.WithLabelValues(d, strconv.FormatBool(res.Found)).Inc()
	SearchDuration.WithLabelValues(d).Observe(took.Seconds())
	CellsVisited.WithLabelValues(d).Observe(float64(len(res.History)))
}

func (Observer) Ticked(s flood.State) {
	ReplayTicks.Inc()
	if s == flood.Done {
		ReplaysCompleted.Inc()
	}
}
