// Package metrics defines all custom Prometheus metrics for the user
// service. It is the single source of truth for metric names, labels, and
// help strings; metrics self-register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users"

// RegistrationsTotal counts successful signups.
// Label:
//   - role: the role assigned at creation ("ADMIN" for the bootstrap
//     account, "USER" for everyone after it)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by assigned role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure". Failures are not broken down further;
//     unknown username and wrong password are indistinguishable on purpose.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// DeletionsTotal counts accounts removed by an admin.
var DeletionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deletions_total",
		Help:      "Total number of accounts deleted.",
	},
)
