package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultSuccess       = "success"
	ResultNotFound      = "not_found"
	ResultAlreadyJoined = "already_signed_up"
	ResultFull          = "full"
	ResultNotJoined     = "not_signed_up"
	ResultError         = "error"
)

// Metrics holds the activity registry collectors
type Metrics struct {
	Signups         *prometheus.CounterVec
	Unregistrations *prometheus.CounterVec
	Participants    *prometheus.GaugeVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Signups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_signups_total",
				Help: "Total number of signup attempts by result",
			},
			[]string{"result"},
		),
		Unregistrations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_unregistrations_total",
				Help: "Total number of unregister attempts by result",
			},
			[]string{"result"},
		),
		Participants: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "activity_participants",
				Help: "Current number of participants per activity",
			},
			[]string{"activity"},
		),
	}
}
