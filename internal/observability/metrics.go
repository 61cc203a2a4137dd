// Package observability содержит Prometheus метрики приложения.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal - количество запросов по маршруту и статусу
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushire_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campushire_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushire_redis_errors_total",
		Help: "Total number of Redis errors by operation",
	}, []string{"operation"})

	// JobCacheLookups - попадания и промахи кеша ленты вакансий
	JobCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushire_job_cache_lookups_total",
		Help: "Job listing cache lookups by result",
	}, []string{"result"})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campushire_emails_sent_total",
		Help: "Outgoing notification emails by status",
	}, []string{"status"})

	OrphanImagesRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campushire_orphan_images_removed_total",
		Help: "Company logos removed by the image sweeper",
	})
)
