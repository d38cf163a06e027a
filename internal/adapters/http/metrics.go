package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_session_ops_total",
		Help: "Session operations handled, by operation and outcome",
	}, []string{"op", "outcome"})

	puzzlesGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sudoku_puzzles_generated_total",
		Help: "Puzzles generated (new sessions plus regenerations)",
	})

	generateSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudoku_generate_duration_seconds",
		Help:    "Duration of solved-grid generation plus carving",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.25},
	})
)

func countOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	sessionOpsTotal.WithLabelValues(op, outcome).Inc()
}
