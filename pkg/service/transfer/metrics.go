package transfer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// transfersTotal counts transfers by outcome.
var transfersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "transfers_total",
		Help: "Total number of transfer requests by outcome",
	},
	[]string{"outcome"},
)

const (
	outcomeCompleted = "completed"
	outcomeRejected  = "rejected"
	outcomeBusy      = "busy"
)
