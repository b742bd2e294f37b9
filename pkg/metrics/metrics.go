// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三组：
//   - HTTP请求：请求总数、耗时分布、处理中的请求数
//   - 图书仓库：各操作的调用次数与耗时、缺货次数、在库图书数
//   - 缺货事件投递：发布结果、熔断器状态
//
// 命名规范：Counter以`_total`结尾，Histogram以单位结尾（`_seconds`），
// 标签只使用有限取值（operation、result、status），不要用ISBN作为标签。
//
// 使用示例：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(metrics.Handler()))
//
//	start := time.Now()
//	err := store.BuyBooks(copies)
//	metrics.ObserveOperation("buy_books", apperrors.CodeOf(err), time.Since(start))
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 操作结果标签取值
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 图书仓库指标

	// BookOperationsTotal 仓库操作总数（Counter）
	// 标签：operation（buy_books/add_books/...）、result（success/failure）、code（业务错误码，成功为0）
	BookOperationsTotal *prometheus.CounterVec

	// BookOperationDuration 仓库操作耗时（Histogram）
	// 内存操作，桶从10µs开始
	BookOperationDuration *prometheus.HistogramVec

	// SaleMissesTotal 缺货未售出次数（Counter），与StockBook.NumSaleMisses同步递增
	SaleMissesTotal prometheus.Counter

	// BooksInStore 当前在库图书种数（Gauge）
	BooksInStore prometheus.Gauge

	// 缺货事件投递指标

	// DemandEventsPublishedTotal 缺货事件发布总数（Counter）
	// 标签：driver（redis/rabbitmq）、result（success/failure/rejected）
	DemandEventsPublishedTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 使用promauto注册到默认Registry，重复调用只生效一次
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BookOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_operations_total",
				Help: "图书仓库操作总数",
			},
			[]string{"operation", "result", "code"},
		)

		BookOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "book_operation_duration_seconds",
				Help:    "图书仓库操作耗时（秒）",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
			[]string{"operation"},
		)

		SaleMissesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "book_sale_misses_total",
				Help: "缺货未售出次数",
			},
		)

		BooksInStore = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "books_in_store",
				Help: "当前在库图书种数",
			},
		)

		DemandEventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demand_events_published_total",
				Help: "缺货事件发布总数",
			},
			[]string{"driver", "result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)
	})
}

// Handler 返回/metrics端点处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveOperation 记录一次仓库操作的结果与耗时
// code为业务错误码（成功为0），由调用方从error中提取
func ObserveOperation(operation string, code int, duration time.Duration) {
	result := ResultSuccess
	if code != 0 {
		result = ResultFailure
	}
	BookOperationsTotal.With(prometheus.Labels{
		"operation": operation,
		"result":    result,
		"code":      strconv.Itoa(code),
	}).Inc()
	BookOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// AddCounter Counter增加指定值
func AddCounter(counter prometheus.Counter, delta float64) {
	counter.Add(delta)
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
