// Package metrics exposes operation counters in the Prometheus format.
package metrics

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts finished session operations.
type Recorder interface {
	Observe(operation string, err error)
}

// Nop records nothing.
type Nop struct{}

func (Nop) Observe(string, error) {}

type Prometheus struct {
	operations *prometheus.CounterVec
}

// NewPrometheus registers the counters on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenkeeper",
		Name:      "operations_total",
		Help:      "Session operations by name and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(ops)

	return &Prometheus{operations: ops}
}

func (p *Prometheus) Observe(operation string, err error) {
	p.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

var outcomes = []struct {
	err   error
	label string
}{
	{common.ErrDuplicateUsername, "duplicate_username"},
	{common.ErrUnknownUser, "unknown_user"},
	{common.ErrBadPassword, "bad_password"},
	{common.ErrorUnauthorized, "unauthorized"},
	{common.ErrTokenAlreadyExists, "token_already_exists"},
	{common.ErrNoToken, "no_token"},
	{common.ErrInvalidToken, "invalid_token"},
	{common.ErrTokenExpired, "token_expired"},
	{common.ErrValidation, "validation"},
}

// Outcome maps err to a bounded label value.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return o.label
		}
	}
	return "error"
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
