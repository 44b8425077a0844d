// Package server exposes netsnap as a long-running agent. It serves
// on-demand device snapshots over HTTP alongside health probes and
// Prometheus metrics.
//
// Endpoints:
//
//	GET /health       liveness probe
//	GET /ready        readiness probe
//	GET /v1/snapshot  capture and return a snapshot of all targets
//	GET /metrics      Prometheus metrics
package server
