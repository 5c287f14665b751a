package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hitoshi/reji/internal/metrics"
)

// sessionIDHolder は下流で確定したセッションIDをログ用に書き戻すための入れ物。
// ロギングはセッションミドルウェアより外側に位置するため、
// 自身のコンテキストからはセッションを直接参照できない。
type sessionIDHolder struct {
	id string
}

// sessionIDHolderKey はリクエストコンテキストにsessionIDHolderを格納するためのキー。
var sessionIDHolderKey = contextKey("sessionIDHolder")

// statusRecorder はhttp.ResponseWriterをラップし、ステータスコードを記録する。
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

// WriteHeader はステータスコードを記録してから委譲する。
func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

// Write はデータを書き込む。WriteHeaderが未呼び出しの場合は200を記録する。
func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// NewLoggingMiddleware はリクエストのJSON構造化ログを出力するミドルウェアを返す。
// ログにはmethod、path、status、duration_ms、session_id（セッションがある場合）を含む。
// recorderが指定された場合はステータスコード別メトリクスも記録する。
func NewLoggingMiddleware(logger *slog.Logger, recorder metrics.Recorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			holder := &sessionIDHolder{}
			ctx := context.WithValue(r.Context(), sessionIDHolderKey, holder)

			next.ServeHTTP(rec, r.WithContext(ctx))

			duration := time.Since(start)
			durationMs := float64(duration.Nanoseconds()) / float64(time.Millisecond)

			args := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.statusCode),
				slog.Float64("duration_ms", durationMs),
			}

			sessionID := holder.id
			if sessionID == "" {
				// セッションミドルウェアがロギングより外側に居る構成ではコンテキストから直接取れる
				if sess, err := SessionFromContext(r.Context()); err == nil {
					sessionID = sess.ID
				}
			}
			if sessionID != "" {
				args = append(args, slog.String("session_id", sessionID))
			}

			level := slog.LevelInfo
			if rec.statusCode >= 500 {
				level = slog.LevelError
			} else if rec.statusCode >= 400 {
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "http_request", args...)

			if recorder != nil {
				recorder.RecordHTTPStatus(rec.statusCode)
			}
		})
	}
}
