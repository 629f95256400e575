// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ProductOps counts product operations by outcome.
var ProductOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "product_operations_total",
	Help: "Total product operations handled, labeled by operation and outcome.",
}, []string{"operation", "outcome"})
