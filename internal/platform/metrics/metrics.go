// Package metrics agrupa los contadores Prometheus del motor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "medtrack"

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drug_searches_total",
			Help:      "Drug searches by outcome (results, suggestion, empty, rejected).",
		},
		[]string{"outcome"},
	)

	remoteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drug_label_lookup_failures_total",
			Help:      "Remote drug-label lookups that failed or timed out (search fell back to local).",
		},
	)

	translationFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translation_fallbacks_total",
			Help:      "Translations that failed and fell back to the original text.",
		},
	)

	alertsEmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_emitted_total",
			Help:      "Alerts emitted after dismissal filtering, by kind.",
		},
		[]string{"kind"},
	)

	dismissalsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_dismissals_total",
			Help:      "Alert dismissals recorded.",
		},
	)
)

func ObserveSearch(outcome string) { searchesTotal.WithLabelValues(outcome).Inc() }

func ObserveRemoteFailure() { remoteFailuresTotal.Inc() }

func ObserveTranslationFallback() { translationFallbacksTotal.Inc() }

func ObserveAlert(kind string) { alertsEmittedTotal.WithLabelValues(kind).Inc() }

func ObserveDismissal() { dismissalsTotal.Inc() }
