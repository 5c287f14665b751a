package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/microcosm-cc/bluemonday"

	"github.com/hitoshi/reji/internal/checkout"
	"github.com/hitoshi/reji/internal/middleware"
	"github.com/hitoshi/reji/internal/model"
	"github.com/hitoshi/reji/internal/session"
)

// CheckoutServiceInterface はチェックアウトハンドラーが必要とするサービスインターフェース。
type CheckoutServiceInterface interface {
	// Review は取引金額を計算して返す。状態は変更しない。
	Review(ctx context.Context, sess *session.Session) (model.TransactionTotals, error)
	// Commit は取引を確定し、在庫減算とカート消去を行う。
	Commit(ctx context.Context, sess *session.Session, paymentMethod string) (*model.Receipt, error)
}

// CheckoutHandler はチェックアウトとレシートのHTTPハンドラー。
type CheckoutHandler struct {
	service   CheckoutServiceInterface
	sanitizer *bluemonday.Policy
}

// NewCheckoutHandler はCheckoutHandlerを生成する。
func NewCheckoutHandler(service CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		// 支払方法は自由入力のままクエリパラメータを経由してページに戻ってくるため、
		// 表示前にタグを全て除去する。
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// checkoutPage は結帳画面の表示データ。
type checkoutPage struct {
	basePage
	Totals model.TransactionTotals
}

// receiptPage はレシート画面の表示データ。
// Receiptはセッションに直近の取引がない場合nil。
type receiptPage struct {
	basePage
	PaymentMethod string
	Receipt       *model.Receipt
}

// Review は結帳画面を表示する。会員割引と大口割引を含む金額を計算する。
// GET /checkout
// カートが空の場合は警告付きでホームへリダイレクトする。
func (h *CheckoutHandler) Review(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	totals, err := h.service.Review(r.Context(), sess)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			sess.AddFlash(model.FlashWarning, "購物車是空的")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	render(w, "checkout.html", checkoutPage{
		basePage: basePage{Member: sess.Member, Flashes: sess.PopFlashes()},
		Totals:   totals,
	})
}

// Commit は取引を確定してレシート画面にリダイレクトする。
// POST /checkout フォームフィールド: payment_method
func (h *CheckoutHandler) Commit(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	receipt, err := h.service.Commit(r.Context(), sess, r.FormValue("payment_method"))
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			sess.AddFlash(model.FlashWarning, "購物車是空的")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/receipt?payment_method="+url.QueryEscape(receipt.PaymentMethod), http.StatusSeeOther)
}

// Receipt はレシート画面を表示する。
// GET /receipt クエリパラメータ: payment_method（デフォルト "cash"）
// セッションに直近の取引があればレシート番号と取引時刻も表示する。
func (h *CheckoutHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	paymentMethod := r.URL.Query().Get("payment_method")
	if paymentMethod == "" {
		paymentMethod = checkout.DefaultPaymentMethod
	}
	paymentMethod = h.sanitizer.Sanitize(paymentMethod)

	render(w, "receipt.html", receiptPage{
		basePage:      basePage{Member: sess.Member, Flashes: sess.PopFlashes()},
		PaymentMethod: paymentMethod,
		Receipt:       sess.LastReceipt,
	})
}
