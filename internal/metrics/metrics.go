package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RestaurantsProcessed *prometheus.CounterVec
	ProviderErrors       *prometheus.CounterVec
	RequestSeconds       *prometheus.HistogramVec
	QuotaHits            prometheus.Counter
	RateLimitWait        *prometheus.CounterVec
	ActivePasses         prometheus.Gauge
	HTTPRequests         *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RestaurantsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "choprest_restaurants_processed_total",
			Help: "Total number of restaurants processed by the location updater, by outcome.",
		}, []string{"outcome"}),
		ProviderErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "choprest_provider_errors_total",
			Help: "Total number of failed geocoding provider calls.",
		}, []string{"provider"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "choprest_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		QuotaHits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "choprest_provider_quota_exceeded_total",
			Help: "Total number of quota rejections (HTTP 429) from the geocoding provider.",
		}),
		RateLimitWait: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "choprest_ratelimit_wait_seconds_total",
			Help: "Total time spent waiting in the outbound rate limiter, by reason.",
		}, []string{"reason"}),
		ActivePasses: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "choprest_location_pass_active",
			Help: "Set to 1 while a location update pass is running.",
		}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "choprest_http_requests_total",
			Help: "Total number of HTTP API requests, by route and status code.",
		}, []string{"route", "code"}),
	}
}

// ObserveWait matches the rate limiter's wait observer signature.
func (m *Metrics) ObserveWait(reason string, d time.Duration) {
	m.RateLimitWait.WithLabelValues(reason).Add(d.Seconds())
}
