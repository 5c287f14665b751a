package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestCollector_RecordOrderCommitted は取引確定メトリクスの記録を検証する。
func TestCollector_RecordOrderCommitted(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordOrderCommitted(48000, 12)
	c.RecordOrderCommitted(2500, 1)

	if got := testutil.ToFloat64(c.ordersCommitted); got != 2 {
		t.Errorf("orders committed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.revenueCents); got != 50500 {
		t.Errorf("revenue cents = %v, want 50500", got)
	}
	if got := testutil.ToFloat64(c.itemsSold); got != 13 {
		t.Errorf("items sold = %v, want 13", got)
	}
}

// TestCollector_RecordHTTPStatus はステータスコード別カウントを検証する。
func TestCollector_RecordHTTPStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(404)

	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("200")); got != 2 {
		t.Errorf("status 200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("404")); got != 1 {
		t.Errorf("status 404 count = %v, want 1", got)
	}
}

// TestHandler はスクレイプエンドポイントが登録済みメトリクスを公開することを検証する。
func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordCheckoutLatency(150 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	Handler(reg).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "reji_checkout_latency_seconds") {
		t.Error("metrics output does not contain reji_checkout_latency_seconds")
	}
	if !strings.Contains(body, "reji_orders_committed_total") {
		t.Error("metrics output does not contain reji_orders_committed_total")
	}
}
