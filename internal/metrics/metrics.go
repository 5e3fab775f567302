// Package metrics exposes Prometheus counters for the gallery service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogReloads counts catalog file reloads by result.
	CatalogReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dtsite_catalog_reloads_total",
		Help: "Total number of catalog file reloads, by status.",
	}, []string{"status"})

	// LedgerIncrements counts view-ledger increments.
	LedgerIncrements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dtsite_ledger_increments_total",
		Help: "Total number of view ledger increments.",
	})

	// PlayerOpens counts player opens by outcome.
	PlayerOpens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dtsite_player_opens_total",
		Help: "Total number of player opens, by outcome (playing, not_found, invalid_url).",
	}, []string{"outcome"})
)
