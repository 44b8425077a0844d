package ftos

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsnap_device_commands_total",
			Help: "Total number of commands sent to devices",
		},
	)

	transportErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsnap_transport_errors_total",
			Help: "Total number of connection-level command failures",
		},
	)

	recordsExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsnap_records_extracted_total",
			Help: "Total number of records extracted from device output",
		},
	)

	coercionFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netsnap_coercion_fallbacks_total",
			Help: "Total number of fields that degraded to their sentinel fallback",
		},
	)
)
