// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hitoshi/reji/internal/money"
)

// Recorder はメトリクス収集のインターフェース。
// サービス層およびミドルウェアから利用する。
type Recorder interface {
	RecordOrderCommitted(finalTotal money.Cents, itemCount int)
	RecordCheckoutLatency(duration time.Duration)
	RecordHTTPStatus(statusCode int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	ordersCommitted prometheus.Counter
	revenueCents    prometheus.Counter
	itemsSold       prometheus.Counter
	checkoutLatency prometheus.Histogram
	httpStatus      *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ordersCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reji_orders_committed_total",
			Help: "確定した取引の合計数",
		}),
		revenueCents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reji_revenue_cents_total",
			Help: "確定取引の最終金額合計（セント単位）",
		}),
		itemsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reji_items_sold_total",
			Help: "販売された商品点数の合計",
		}),
		checkoutLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "reji_checkout_latency_seconds",
			Help:    "チェックアウト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reji_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.ordersCommitted,
		c.revenueCents,
		c.itemsSold,
		c.checkoutLatency,
		c.httpStatus,
	)

	return c
}

// RecordOrderCommitted は取引確定を記録する。
func (c *Collector) RecordOrderCommitted(finalTotal money.Cents, itemCount int) {
	c.ordersCommitted.Inc()
	c.revenueCents.Add(float64(finalTotal))
	c.itemsSold.Add(float64(itemCount))
}

// RecordCheckoutLatency はチェックアウト処理のレイテンシを記録する。
func (c *Collector) RecordCheckoutLatency(duration time.Duration) {
	c.checkoutLatency.Observe(duration.Seconds())
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
