package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every jsdeps metric. It is kept apart from the prometheus
// default registry so a one-shot run only reports its own series.
var Registry = prometheus.NewRegistry()

// Metrics definitions
var (
	SpecifiersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jsdeps_specifiers_total",
		Help: "Total number of specifiers classified, by kind.",
	}, []string{"kind"})

	PackagesIgnoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jsdeps_packages_ignored_total",
		Help: "Total number of installable packages dropped by ignore patterns.",
	})

	ResolveDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "jsdeps_resolve_seconds",
		Help:    "Time spent resolving a specifier list into packages.",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	Registry.MustRegister(SpecifiersTotal, PackagesIgnoredTotal, ResolveDuration)
}

// LogMetrics writes the current counter and histogram values through logger.
func LogMetrics(logger *slog.Logger) error {
	families, err := Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := make([]any, 0, 6)
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				attrs = append(attrs,
					"count", m.GetHistogram().GetSampleCount(),
					"sum", m.GetHistogram().GetSampleSum())
			}
			logger.Info(mf.GetName(), attrs...)
		}
	}
	return nil
}
