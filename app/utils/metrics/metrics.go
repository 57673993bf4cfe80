package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the session and guard layer. Registered on the default
// registry and exposed on /metrics.
var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "volunteerhub_login_attempts_total",
		Help: "Login attempts by role and outcome.",
	}, []string{"role", "outcome"})

	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "volunteerhub_registrations_total",
		Help: "Registration attempts by role and outcome.",
	}, []string{"role", "outcome"})

	GuardDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "volunteerhub_guard_decisions_total",
		Help: "Guard evaluations by guard kind and decision.",
	}, []string{"guard", "decision"})

	ForcedLogouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "volunteerhub_forced_logouts_total",
		Help: "Sessions invalidated after an upstream 401.",
	})
)

// Outcome label values.
const (
	OutcomeOK     = "ok"
	OutcomeError  = "error"
	OutcomeDenied = "denied"
)
