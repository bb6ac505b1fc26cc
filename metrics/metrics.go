package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gomentum_evaluations_total",
			Help: "Total number of evaluation passes (by stage).",
		},
		[]string{"stage"},
	)

	EntrySignals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gomentum_entry_signals_total",
			Help: "Total number of entry signals emitted (by side).",
		},
		[]string{"side"},
	)

	ExitSignals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gomentum_exit_signals_total",
			Help: "Total number of exit signals emitted (by side).",
		},
		[]string{"side"},
	)

	LeverageReductions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gomentum_leverage_reductions_total",
			Help: "Times volatility tiering reduced leverage below base.",
		},
	)
)

func init() {
	prometheus.MustRegister(Evaluations, EntrySignals, ExitSignals, LeverageReductions)
}
