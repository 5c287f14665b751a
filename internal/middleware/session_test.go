package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hitoshi/reji/internal/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	st := session.NewStore(time.Hour)
	t.Cleanup(st.Stop)
	return st
}

// TestSessionMiddleware_IssuesCookie はCookieなしのリクエストに新しいセッションが発行されることを検証する。
func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	st := newTestStore(t)
	mw := NewSessionMiddleware(st, SessionConfig{MaxAge: 3600})

	var captured *session.Session
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := SessionFromContext(r.Context())
		if err != nil {
			t.Fatalf("SessionFromContext error = %v", err)
		}
		captured = sess
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if captured == nil {
		t.Fatal("session was not injected")
	}

	cookies := w.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			found = c
		}
	}
	if found == nil {
		t.Fatal("session cookie was not set")
	}
	if found.Value != captured.ID {
		t.Errorf("cookie value = %q, want session ID %q", found.Value, captured.ID)
	}
	if !found.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}
}

// TestSessionMiddleware_ReusesExistingSession は有効なCookie付きリクエストが同一セッションを得ることを検証する。
func TestSessionMiddleware_ReusesExistingSession(t *testing.T) {
	st := newTestStore(t)
	existing := st.Create()
	existing.Cart[1] = 3

	mw := NewSessionMiddleware(st, SessionConfig{MaxAge: 3600})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		if sess.ID != existing.ID {
			t.Errorf("session ID = %q, want %q", sess.ID, existing.ID)
		}
		if sess.Cart[1] != 3 {
			t.Errorf("Cart[1] = %d, want 3", sess.Cart[1])
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: existing.ID})
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

// TestSessionMiddleware_ReplacesUnknownCookie は不明なセッションIDのCookieが新セッションに差し替わることを検証する。
func TestSessionMiddleware_ReplacesUnknownCookie(t *testing.T) {
	st := newTestStore(t)
	mw := NewSessionMiddleware(st, SessionConfig{MaxAge: 3600})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		if sess.ID == "stale-id" {
			t.Error("stale session ID was reused")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale-id"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(w.Result().Cookies()) == 0 {
		t.Error("replacement session cookie was not set")
	}
}

// TestSessionFromContext_Missing はセッション未注入のコンテキストでエラーになることを検証する。
func TestSessionFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := SessionFromContext(req.Context()); err == nil {
		t.Error("SessionFromContext on empty context: err = nil, want error")
	}
}
