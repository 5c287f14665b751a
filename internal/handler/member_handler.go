package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hitoshi/reji/internal/middleware"
	"github.com/hitoshi/reji/internal/model"
	"github.com/hitoshi/reji/internal/session"
)

// MemberServiceInterface は会員ハンドラーが必要とするサービスインターフェース。
type MemberServiceInterface interface {
	// Login は会員を検索してセッションに設定する。見つからない場合はnilを返す。
	Login(ctx context.Context, sess *session.Session, memberID string) (*model.Member, error)
	// Logout はセッションから会員参照のみを外す。
	Logout(sess *session.Session)
	// List は会員名簿の全件を返す。
	List(ctx context.Context) ([]model.Member, error)
}

// MemberHandler は会員ログイン関連のHTTPハンドラー。
type MemberHandler struct {
	service MemberServiceInterface
}

// NewMemberHandler はMemberHandlerを生成する。
func NewMemberHandler(service MemberServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// memberPage は会員画面の表示データ。
type memberPage struct {
	basePage
	Members []model.Member
}

// Page は会員名簿とログインフォームを表示する。
// GET /member
func (h *MemberHandler) Page(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, sess)
}

// Login は会員IDでログインする。
// POST /member フォームフィールド: member_id
// 成功時はホームへリダイレクト、失敗時は通知付きで会員画面を再表示する。
func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	memberID := r.FormValue("member_id")

	m, err := h.service.Login(r.Context(), sess, memberID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if m == nil {
		sess.AddFlash(model.FlashError, "會員編號不存在")
		h.renderPage(w, r, sess)
		return
	}

	sess.AddFlash(model.FlashSuccess, fmt.Sprintf("歡迎 %s 會員！", m.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout は会員ログアウトを行う。カートはそのまま残る。
// GET /logout
func (h *MemberHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.service.Logout(sess)
	sess.AddFlash(model.FlashInfo, "已登出")

	http.Redirect(w, r, "/", http.StatusFound)
}

// renderPage は会員画面を描画する。
func (h *MemberHandler) renderPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	members, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	render(w, "member.html", memberPage{
		basePage: basePage{Member: sess.Member, Flashes: sess.PopFlashes()},
		Members:  members,
	})
}
