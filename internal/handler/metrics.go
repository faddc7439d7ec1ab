package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pizza_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders placed",
		},
		[]string{"type"},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pizza_service",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Total number of applied order status transitions",
		},
		[]string{"from", "to", "role"},
	)

	statusUpdateFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pizza_service",
			Subsystem: "orders",
			Name:      "status_update_failures_total",
			Help:      "Total number of rejected order status updates by HTTP status",
		},
		[]string{"role", "code"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		ordersCreated,
		statusTransitions,
		statusUpdateFailures,
	)
}
