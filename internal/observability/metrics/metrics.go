package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (o Outcome) String() string {
	return string(o)
}

var (
	once                           sync.Once
	metricsRouter                  *chi.Mux
	explorerClientLatency          *prometheus.HistogramVec
	clientRequestDurationHistogram *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	totalStakedGauge               prometheus.Gauge
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and registers the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	explorerClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "explorer_client_latency_seconds",
			Help:    "Histogram of explorer client method durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller cycle durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"poller_name", "status"},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "aleo_total_staked_microcredits",
			Help: "Most recently computed aggregate committee stake in microcredits.",
		},
	)

	prometheus.MustRegister(
		clientRequestDurationHistogram,
		explorerClientLatency,
		pollerDurationHistogram,
		totalStakedGauge,
	)
}

// RecordClientRequestDuration records the duration of a single outgoing HTTP
// request made by a client.
func RecordClientRequestDuration(baseurl, method, path string, statusCode int, duration time.Duration) {
	if clientRequestDurationHistogram == nil {
		return
	}
	clientRequestDurationHistogram.WithLabelValues(
		baseurl, method, path, strconv.Itoa(statusCode),
	).Observe(duration.Seconds())
}

func RecordExplorerClientLatency(duration time.Duration, method string, failure bool) {
	if explorerClientLatency == nil {
		return
	}
	status := Success
	if failure {
		status = Error
	}
	explorerClientLatency.WithLabelValues(method, status.String()).Observe(duration.Seconds())
}

func RecordPollerDuration(duration time.Duration, pollerName string, failure bool) {
	if pollerDurationHistogram == nil {
		return
	}
	status := Success
	if failure {
		status = Error
	}
	pollerDurationHistogram.WithLabelValues(pollerName, status.String()).Observe(duration.Seconds())
}

// RecordTotalStaked publishes the latest aggregate stake. Precision loss in
// the float conversion only affects the exported gauge, never the computation.
func RecordTotalStaked(total sdkmath.Int) {
	if totalStakedGauge == nil {
		return
	}
	f, _ := strconv.ParseFloat(total.String(), 64)
	totalStakedGauge.Set(f)
}
