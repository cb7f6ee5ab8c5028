// Package metrics declares the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dictionary load sources
const (
	SourceStore    = "store"
	SourceDefault  = "default"
	SourceFallback = "fallback"
)

var (
	DocumentsAnalyzed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalease_documents_analyzed_total",
		Help: "Documents analyzed by resulting risk level",
	}, []string{"risk_level"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "legalease_analysis_duration_seconds",
		Help:    "Time spent running the analysis pipeline on one document",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalease_llm_requests_total",
		Help: "Language model requests by operation and result",
	}, []string{"operation", "result"})

	LLMDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "legalease_llm_request_duration_seconds",
		Help:    "Language model request latency by operation",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	}, []string{"operation"})

	DictionaryLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalease_dictionary_loads_total",
		Help: "Dictionary loads by category and source",
	}, []string{"category", "source"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalease_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"method", "route", "status"})
)
