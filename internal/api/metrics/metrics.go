// Package metrics defines and registers the custom Prometheus metrics of the
// registry service. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level metrics come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registro"

// MutationsTotal counts create/update/delete operations on managed records.
// Labels:
//   - entity: "cliente" or "perfil"
//   - action: "save", "update" or "delete"
//   - outcome: "ok" or "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of record mutations, by entity, action and outcome.",
	},
	[]string{"entity", "action", "outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)
