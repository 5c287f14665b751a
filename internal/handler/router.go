package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/reji/internal/metrics"
	"github.com/hitoshi/reji/internal/middleware"
)

// HealthChecker はデータベース接続の死活確認インターフェース。
// インメモリ構成ではnilのままでよい。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger        *slog.Logger
	Recorder      metrics.Recorder
	SessionStore  middleware.SessionProvider
	SessionConfig middleware.SessionConfig
	RateLimiter   *middleware.RateLimiter

	// 運用エンドポイント
	HealthChecker HealthChecker
	Gatherer      prometheus.Gatherer

	// ドメインサービス
	Products ProductLister
	Carts    CartServiceInterface
	Members  MemberServiceInterface
	Checkout CheckoutServiceInterface
}

// NewRouter は全エンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	SecurityHeaders → Logging → Recovery → Session → RateLimit(General)
//
// 運用エンドポイント（/health、/metrics）はセッションとレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.Recorder))
	r.Use(middleware.NewRecoveryMiddleware())

	// --- 運用エンドポイント ---

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if deps.HealthChecker != nil {
			if err := deps.HealthChecker.PingContext(r.Context()); err != nil {
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- 店頭エンドポイント ---
	// ミドルウェアスタック: Session → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionMiddleware(deps.SessionStore, deps.SessionConfig))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		shopHandler := NewShopHandler(deps.Products, deps.Carts)
		memberHandler := NewMemberHandler(deps.Members)
		checkoutHandler := NewCheckoutHandler(deps.Checkout)

		// 商品・カート
		r.Get("/", shopHandler.Home)
		r.Post("/add_to_cart/{productID}", shopHandler.AddToCart)
		r.Post("/update_cart/{productID}", shopHandler.UpdateCart)
		r.Get("/cart", shopHandler.CartPage)

		// 会員
		r.Get("/member", memberHandler.Page)
		r.Post("/member", memberHandler.Login)
		r.Get("/logout", memberHandler.Logout)

		// 結帳（POSTには確定専用レート制限を追加）
		r.Get("/checkout", checkoutHandler.Review)
		r.With(deps.RateLimiter.CheckoutMiddleware()).Post("/checkout", checkoutHandler.Commit)
		r.Get("/receipt", checkoutHandler.Receipt)
	})

	return r
}
