// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/hitoshi/reji/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageTemplates は全ページテンプレートのパース済みセット。
// レイアウト部品（header、flashes）は各ページから参照される。
var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// basePage は全ページ共通の表示データ。各ページのデータ構造体に埋め込む。
type basePage struct {
	Member  *model.Member
	Flashes []model.Flash
}

// render はテンプレートを実行してHTMLレスポンスを書き込む。
// テンプレートエラーはバッファリングにより書き込み前に検出し、500を返す。
func render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
