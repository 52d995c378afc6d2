package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"

	"residence-facilities/internal/catalog"
)

const unknownLabel = "unknown"

type metrics struct {
	filterRequests *prometheus.CounterVec
	ctaActivations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		filterRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "facilities_filter_requests_total",
			Help: "Facility list requests by selected category.",
		}, []string{"category"}),
		ctaActivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "facilities_cta_activations_total",
			Help: "Call-to-action activations by CTA id.",
		}, []string{"cta"}),
	}
	for _, c := range []prometheus.Collector{m.filterRequests, m.ctaActivations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observeFilter counts a filter request. Ids outside the catalog share one
// label value to keep cardinality bounded.
func (m *metrics) observeFilter(selection string) {
	if _, ok := catalog.Category(selection); !ok {
		selection = unknownLabel
	}
	m.filterRequests.WithLabelValues(selection).Inc()
}

func (m *metrics) observeCTA(id string) {
	m.ctaActivations.WithLabelValues(id).Inc()
}
