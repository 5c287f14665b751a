package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func testRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		GeneralRate:     rate.Limit(1),
		GeneralBurst:    2,
		CheckoutRate:    rate.Limit(1),
		CheckoutBurst:   1,
		CleanupInterval: time.Minute,
	}
}

// TestRateLimiter_General はバースト超過で429が返ることを検証する。
func TestRateLimiter_General(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig())
	defer rl.Stop()

	st := newTestStore(t)
	sess := st.Create()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(ContextWithSession(req.Context(), sess))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("first two requests = %v, want 200s", statuses[:2])
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", statuses[2])
	}
}

// TestRateLimiter_RetryAfterHeader は429レスポンスにRetry-Afterが付くことを検証する。
func TestRateLimiter_RetryAfterHeader(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig())
	defer rl.Stop()

	st := newTestStore(t)
	sess := st.Create()

	handler := rl.CheckoutMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var last *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req = req.WithContext(ContextWithSession(req.Context(), sess))
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", last.Code)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header is missing")
	}
}

// TestRateLimiter_PerSessionIsolation はセッションごとに独立したリミッターを持つことを検証する。
func TestRateLimiter_PerSessionIsolation(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig())
	defer rl.Stop()

	st := newTestStore(t)
	a := st.Create()
	b := st.Create()

	handler := rl.CheckoutMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// セッションaのバーストを使い切る
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req = req.WithContext(ContextWithSession(req.Context(), a))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	// セッションbはまだ通る
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req = req.WithContext(ContextWithSession(req.Context(), b))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("other session status = %d, want 200", w.Code)
	}
}

// TestRateLimiter_Cleanup は期限切れエントリが掃除されることを検証する。
func TestRateLimiter_Cleanup(t *testing.T) {
	cfg := testRateLimiterConfig()
	cfg.CleanupInterval = 10 * time.Millisecond
	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	st := newTestStore(t)
	sess := st.Create()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ContextWithSession(req.Context(), sess))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if rl.GeneralLimiterCount() != 1 {
		t.Fatalf("limiter count = %d, want 1", rl.GeneralLimiterCount())
	}

	// 最終アクセスをTTL超過まで巻き戻して掃除を直接実行する
	rl.generalMu.Lock()
	for _, sl := range rl.generalLimiters {
		sl.lastAccess = time.Now().Add(-time.Hour)
	}
	rl.generalMu.Unlock()

	rl.cleanup()

	if rl.GeneralLimiterCount() != 0 {
		t.Errorf("limiter count after cleanup = %d, want 0", rl.GeneralLimiterCount())
	}
}
