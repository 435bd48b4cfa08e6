package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя, поэтому при выключенных метриках можно передавать nil
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge

	reservationsCreated    *prometheus.CounterVec
	pricingLookups         *prometheus.CounterVec
	pricingIntegrityFaults prometheus.Counter
	pricingCacheRequests   *prometheus.CounterVec
	pushDeliveries         *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном registry
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),
		reservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Reservations created by the booking flow, by initial status",
			ConstLabels: constLabels,
		}, []string{"status"}),
		pricingLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "pricing_lookups_total",
			Help:        "Pricing resolver lookups by result (found, not_found, duplicate)",
			ConstLabels: constLabels,
		}, []string{"result"}),
		pricingIntegrityFaults: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "pricing_integrity_faults_total",
			Help:        "Lookups that matched more than one pricing row for the same key",
			ConstLabels: constLabels,
		}),
		pricingCacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "pricing_cache_requests_total",
			Help:        "Price cache requests by result (hit, miss)",
			ConstLabels: constLabels,
		}, []string{"result"}),
		pushDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "push_deliveries_total",
			Help:        "Web push deliveries by result (sent, failed, pruned)",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.reservationsCreated,
		m.pricingLookups,
		m.pricingIntegrityFaults,
		m.pricingCacheRequests,
		m.pushDeliveries,
	)

	return m
}

// Handler HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает registry (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	m.dbIdleConns.Set(float64(stats.Idle))
}

// IncReservationCreated фиксирует созданное бронирование
func (m *Metrics) IncReservationCreated(status string) {
	if m == nil {
		return
	}
	m.reservationsCreated.WithLabelValues(status).Inc()
}

// IncPricingLookup фиксирует результат поиска цены
func (m *Metrics) IncPricingLookup(result string) {
	if m == nil {
		return
	}
	m.pricingLookups.WithLabelValues(result).Inc()
}

// IncPricingIntegrityFault фиксирует найденные дубликаты цен
func (m *Metrics) IncPricingIntegrityFault() {
	if m == nil {
		return
	}
	m.pricingIntegrityFaults.Inc()
}

// IncPricingCache фиксирует попадание/промах кеша цен
func (m *Metrics) IncPricingCache(result string) {
	if m == nil {
		return
	}
	m.pricingCacheRequests.WithLabelValues(result).Inc()
}

// AddPushDeliveries фиксирует результаты рассылки push-уведомлений
func (m *Metrics) AddPushDeliveries(result string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pushDeliveries.WithLabelValues(result).Add(float64(n))
}
