package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics はHTTPと論理削除まわりのメトリクス。
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	// 作成/更新/削除/復元の回数
	lifecycleEvents *prometheus.CounterVec
}

// New は registry にコレクタを登録する。nilなら新しく作る
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	return &Metrics{
		registry: registry,
		httpRequests: registerCounterVec(registry, prometheus.CounterOpts{
			Name: "store_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: registerHistogramVec(registry, prometheus.HistogramOpts{
			Name:    "store_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		lifecycleEvents: registerCounterVec(registry, prometheus.CounterOpts{
			Name: "store_lifecycle_events_total",
			Help: "Total number of create/update/delete/restore operations per entity",
		}, []string{"entity", "action"}),
	}
}

func (m *Metrics) ObserveRequest(method string, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// usecase.LifecycleRecorder
func (m *Metrics) Record(entity string, action string) {
	m.lifecycleEvents.WithLabelValues(entity, action).Inc()
}

// /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if ok {
				return existing
			}
		}
		panic(fmt.Sprintf("metrics: register %s: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if ok {
				return existing
			}
		}
		panic(fmt.Sprintf("metrics: register %s: %v", opts.Name, err))
	}
	return collector
}
