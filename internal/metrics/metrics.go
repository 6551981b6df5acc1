// Package metrics exports Prometheus metrics for the volunteer directory.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
)

// UserLister is satisfied by repository.UserRepository.
type UserLister interface {
	List(ctx context.Context) ([]model.User, error)
}

// EventLister is satisfied by repository.EventRepository.
type EventLister interface {
	List(ctx context.Context) ([]model.Event, error)
}

// Recorder counts operation outcomes. It is a service.Notifier.
type Recorder struct {
	operations *prometheus.CounterVec
}

// New registers the directory metrics with reg. Gauges are read from the
// collections at scrape time.
func New(reg prometheus.Registerer, users UserLister, events EventLister) *Recorder {
	factory := promauto.With(reg)

	r := &Recorder{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volunteer_operations_total",
				Help: "Store operations by outcome",
			},
			[]string{"operation", "outcome", "reason"},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "volunteer_users_total",
			Help: "Registered users",
		},
		func() float64 {
			list, err := users.List(context.Background())
			if err != nil {
				return 0
			}
			return float64(len(list))
		},
	)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "volunteer_events_total",
			Help: "Created events",
		},
		func() float64 {
			list, err := events.List(context.Background())
			if err != nil {
				return 0
			}
			return float64(len(list))
		},
	)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "volunteer_matches_total",
			Help: "Volunteers matched across all events",
		},
		func() float64 {
			list, err := events.List(context.Background())
			if err != nil {
				return 0
			}
			var n int
			for _, e := range list {
				n += len(e.MatchedVolunteers)
			}
			return float64(n)
		},
	)

	return r
}

// Notify implements service.Notifier.
func (r *Recorder) Notify(_ context.Context, n model.Notification) {
	r.operations.WithLabelValues(n.Operation, string(n.Kind), string(n.Reason)).Inc()
}
