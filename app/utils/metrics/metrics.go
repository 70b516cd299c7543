// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GuardDecisions counts guard evaluations by guard name and outcome
	GuardDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "guard",
		Name:      "decisions_total",
		Help:      "Guard evaluations by guard and resolved state.",
	}, []string{"guard", "state"})

	// AccessCacheHits counts permission cache hits
	AccessCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "access",
		Name:      "cache_hits_total",
		Help:      "Organization permission cache hits.",
	})

	// AccessCheckFailures counts failed remote authorization calls
	AccessCheckFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "access",
		Name:      "check_failures_total",
		Help:      "Remote organization authorization calls that failed in transport.",
	})

	// LockoutCheckFailures counts failed lockout snapshot queries
	LockoutCheckFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "security",
		Name:      "lockout_check_failures_total",
		Help:      "Lockout status queries that failed in transport.",
	})

	// ContactSubmissions counts stored contact leads
	ContactSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Contact form submissions stored.",
	})
)
