package metrics

import "github.com/prometheus/client_golang/prometheus"

// StringsAnalyzedTotal counts strings run through the analyzer on create.
var StringsAnalyzedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "stringdex",
		Name:      "strings_analyzed_total",
		Help:      "Total number of strings analyzed on insert",
	},
)

// RegisterStringMetrics registers the domain metrics explicitly (no init()).
func RegisterStringMetrics() {
	prometheus.MustRegister(StringsAnalyzedTotal)
}
