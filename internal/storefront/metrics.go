package storefront

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	SessionsCreated prometheus.Counter
	SessionsSwept   prometheus.Counter
	Searches        prometheus.Counter
	CartAdds        *prometheus.CounterVec
	LocaleChanges   *prometheus.CounterVec
	InvalidLocales  prometheus.Counter
}

// NewMetrics registers storefront counters on reg. A nil reg yields working
// but unregistered counters.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Storefront sessions created",
		}),
		SessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_swept_total",
			Help:      "Idle storefront sessions discarded",
		}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Search query updates",
		}),
		CartAdds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_additions_total",
			Help:      "Products added to carts",
		}, []string{"product_id"}),
		LocaleChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "locale_changes_total",
			Help:      "Successful locale switches by target locale",
		}, []string{"locale"}),
		InvalidLocales: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_locale_total",
			Help:      "Rejected locale switches",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.SessionsCreated,
			m.SessionsSwept,
			m.Searches,
			m.CartAdds,
			m.LocaleChanges,
			m.InvalidLocales,
		)
	}
	return m
}
