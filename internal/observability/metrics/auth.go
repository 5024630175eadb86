package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tokens_issued_total",
			Help: "Total number of session tokens issued",
		},
	)

	LoginFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "login_failures_total",
			Help: "Total number of failed login attempts",
		},
	)

	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total number of successful signups",
		},
	)

	JWTValidationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jwt_validations_total",
			Help: "Total number of JWT validations",
		},
	)

	JWTValidationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jwt_validations_failed_total",
			Help: "Total number of failed JWT validations",
		},
	)
)
