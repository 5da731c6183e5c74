package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DuplicateItemIDs counts item ids found in both the product and service
// sequences of a tenant. Co-occurrence is a data-quality violation: lookups
// still resolve (products win) but the condition is surfaced here.
var DuplicateItemIDs = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_duplicate_item_ids_total",
		Help: "Item ids present in both the product and service sequences of a store.",
	},
	[]string{"store_id"},
)

// GatewayRequests counts payment gateway calls by operation and outcome.
var GatewayRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "paystack_requests_total",
		Help: "Paystack API calls by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// Outcome labels for GatewayRequests.
const (
	OutcomeSuccess   = "success"
	OutcomeUpstream  = "upstream_error"
	OutcomeTransport = "transport_error"
)
