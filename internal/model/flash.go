// Package model はドメインモデルを定義する。
package model

// FlashLevel はフラッシュメッセージの表示区分を表す。
type FlashLevel string

const (
	// FlashSuccess は操作成功の通知。
	FlashSuccess FlashLevel = "success"
	// FlashError は操作失敗の通知。
	FlashError FlashLevel = "error"
	// FlashInfo は情報通知。
	FlashInfo FlashLevel = "info"
	// FlashWarning は警告通知。
	FlashWarning FlashLevel = "warning"
)

// Flash はリダイレクト越しに1回だけ表示される通知メッセージを表す。
// セッションに蓄積され、次のページ描画時に取り出されて消える。
type Flash struct {
	Level   FlashLevel
	Message string
}
