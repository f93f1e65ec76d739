// Package metrics defines and registers all custom Prometheus metrics for the
// Beyond content platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "beyond"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionsRevokedTotal counts sessions ended by explicit logout.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked by logout before expiry.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ContentMutationsTotal counts admin writes to the content catalog.
// Labels:
//   - kind: "video", "podcast", or "summit"
//   - action: "create", "update", or "delete"
var ContentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_mutations_total",
		Help:      "Total number of content catalog mutations, by kind and action.",
	},
	[]string{"kind", "action"},
)

// LikesTotal counts like and unlike actions as requested, including
// idempotent no-ops.
// Labels:
//   - kind: "video", "podcast", or "summit"
//   - action: "like" or "unlike"
var LikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of like/unlike actions, by kind and action.",
	},
	[]string{"kind", "action"},
)

// UsersCreatedTotal counts accounts created through the admin API.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)
