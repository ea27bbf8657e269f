package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentDownloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docvault", Name: "document_downloads_total", Help: "Number of documents served by class and disposition."},
		[]string{"class", "disposition"},
	)
	SecretMismatches = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "docvault", Name: "document_secret_mismatches_total", Help: "Number of document requests rejected for a wrong secret."},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docvault", Name: "rate_limit_rejected_total", Help: "Number of requests rejected by the rate limiter by route."},
		[]string{"path"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentDownloads)
	reg.MustRegister(SecretMismatches)
	reg.MustRegister(RateLimitRejected)
}
