// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hitoshi/reji/internal/session"
)

const sessionCookieName = "session_id"

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// sessionContextKey はリクエストコンテキストにセッションを格納するためのキー。
var sessionContextKey = contextKey("session")

// SessionProvider はセッションの取得・生成に必要なインターフェース。
// session.Storeの部分集合として定義する。
type SessionProvider interface {
	Get(id string) *session.Session
	Create() *session.Session
}

// SessionConfig はセッションCookieの設定。
type SessionConfig struct {
	CookieSecure bool
	CookieDomain string
	MaxAge       int // Cookieの有効期間（秒）
}

// NewSessionMiddleware はHTTP Only Cookieからセッションを読み取り、
// リクエストコンテキストに注入するミドルウェアを返す。
// Cookieがない、またはセッションが期限切れの場合は新しいセッションを発行する。
// 会員ログインを必須としないため、認証エラーは発生しない。
func NewSessionMiddleware(provider SessionProvider, config SessionConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				sess = provider.Get(cookie.Value)
			}

			if sess == nil {
				sess = provider.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					Domain:   config.CookieDomain,
					MaxAge:   config.MaxAge,
					HttpOnly: true,
					Secure:   config.CookieSecure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			// ロギングミドルウェアが確立済みセッションIDを記録できるよう書き戻す
			if holder, ok := r.Context().Value(sessionIDHolderKey).(*sessionIDHolder); ok {
				holder.id = sess.ID
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext はリクエストコンテキストからセッションを取得する。
// セッションミドルウェアを通過したリクエストでのみ有効。
func SessionFromContext(ctx context.Context) (*session.Session, error) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	if !ok || sess == nil {
		return nil, fmt.Errorf("session not found in context")
	}
	return sess, nil
}

// ContextWithSession はコンテキストにセッションを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}
