// Package model はドメインモデルを定義する。
package model

import "github.com/hitoshi/reji/internal/money"

// Product は販売商品を表す。
// Stockのみがチェックアウト時に更新される可変フィールドで、0未満にはならない。
type Product struct {
	ID       int
	Name     string
	Price    money.Cents
	Category string
	Stock    int
}

// Member は会員を表す。読み取り専用の参照データ。
// ログイン時にセッションへ値コピーされるため、後からの会員情報変更は
// ログイン中のセッションには反映されない。
type Member struct {
	ID           string
	Name         string
	Tier         string
	Points       int
	DiscountRate money.Rate
}
