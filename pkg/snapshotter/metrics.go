package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netsnap_snapshot_duration_seconds",
			Help:    "Time taken to snapshot all targets",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	snapshotTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netsnap_snapshot_total",
			Help: "Total number of snapshot runs",
		},
		[]string{"status"}, // success or error
	)

	deviceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netsnap_snapshot_device_duration_seconds",
			Help:    "Time taken to snapshot one device",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
		[]string{"target"},
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netsnap_collector_duration_seconds",
			Help:    "Time taken by individual state collectors",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"collector"},
	)

	deviceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netsnap_snapshot_device_failures_total",
			Help: "Devices that failed during a snapshot run",
		},
		[]string{"target"},
	)
)
