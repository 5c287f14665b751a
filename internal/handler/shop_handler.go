package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/reji/internal/cart"
	"github.com/hitoshi/reji/internal/middleware"
	"github.com/hitoshi/reji/internal/model"
	"github.com/hitoshi/reji/internal/money"
	"github.com/hitoshi/reji/internal/pricing"
	"github.com/hitoshi/reji/internal/session"
)

// ProductLister は商品一覧の取得インターフェース。
// repository.ProductRepositoryの部分集合として定義する。
type ProductLister interface {
	ListAll(ctx context.Context) ([]model.Product, error)
}

// CartServiceInterface はショップハンドラーが必要とするカート操作のインターフェース。
type CartServiceInterface interface {
	// Add は商品をカートに追加する。数量1未満は1として扱う。
	Add(sess *session.Session, productID, quantity int)
	// Adjust はカート行の数量を操作する。対象行がない場合は何もしない。
	Adjust(sess *session.Session, productID int, action cart.Action)
	// Snapshot はカート内容をカタログと結合した行とカート合計を返す。
	Snapshot(ctx context.Context, sess *session.Session) ([]model.CartLine, money.Cents, error)
}

// ShopHandler は商品一覧とカート操作のHTTPハンドラー。
type ShopHandler struct {
	products ProductLister
	carts    CartServiceInterface
}

// NewShopHandler はShopHandlerを生成する。
func NewShopHandler(products ProductLister, carts CartServiceInterface) *ShopHandler {
	return &ShopHandler{
		products: products,
		carts:    carts,
	}
}

// --- 表示データ ---

// homePage はホーム画面の表示データ。
type homePage struct {
	basePage
	Products  []model.Product
	CartLines []model.CartLine
	CartTotal money.Cents
}

// cartPage はカート画面の表示データ。
// 大口割引はこの画面では表示しない。結帳画面でのみ適用される。
type cartPage struct {
	basePage
	Totals model.TransactionTotals
}

// Home は商品一覧とカート概要を表示する。
// GET /
func (h *ShopHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	products, err := h.products.ListAll(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	lines, total, err := h.carts.Snapshot(r.Context(), sess)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	render(w, "index.html", homePage{
		basePage:  basePage{Member: sess.Member, Flashes: sess.PopFlashes()},
		Products:  products,
		CartLines: lines,
		CartTotal: total,
	})
}

// AddToCart は商品をカートに追加してホームにリダイレクトする。
// POST /add_to_cart/{productID} フォームフィールド: quantity（デフォルト1）
func (h *ShopHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	// 数値でない・未指定のquantityは1として扱う
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		quantity = 1
	}

	h.carts.Add(sess, productID, quantity)
	sess.AddFlash(model.FlashSuccess, "商品已加入購物車")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UpdateCart はカート行の数量を操作してカート画面にリダイレクトする。
// POST /update_cart/{productID} フォームフィールド: action（increase/decrease/remove）
// 未知のactionは無視される。
func (h *ShopHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	h.carts.Adjust(sess, productID, cart.Action(r.FormValue("action")))

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// CartPage はカート内容と会員割引後の金額を表示する。
// GET /cart
func (h *ShopHandler) CartPage(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	lines, _, err := h.carts.Snapshot(r.Context(), sess)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	render(w, "cart.html", cartPage{
		basePage: basePage{Member: sess.Member, Flashes: sess.PopFlashes()},
		Totals:   pricing.Quote(lines, sess.Member, false),
	})
}
