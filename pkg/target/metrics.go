package target

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	commandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "iosctl",
		Subsystem: "session",
		Name:      "commands_total",
		Help:      "Number of commands sent to the device.",
	}, []string{"status"})

	commandDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "iosctl",
		Subsystem: "session",
		Name:      "command_duration_seconds",
		Help:      "Time spent waiting for a device response.",
	})
)

// RegisterMetrics registers the session collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{commandsTotal, commandDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveCommand records the outcome of a single command send.
// Transport adapters call it after every Send.
func ObserveCommand(start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	commandsTotal.WithLabelValues(status).Inc()
	commandDuration.Observe(time.Since(start).Seconds())
}
