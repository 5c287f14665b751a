// Package repository はカタログ・会員データへのアクセスインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/reji/internal/model"
)

// ProductRepository は商品カタログへのアクセスインターフェース。
type ProductRepository interface {
	// FindByID は指定IDの商品を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.Product, error)

	// ListAll は全商品をID昇順で返す。
	ListAll(ctx context.Context) ([]model.Product, error)

	// DecrementStock は商品の在庫を指定数量だけ減らす。結果が負になる場合は0に切り上げる。
	// 存在しない商品IDに対しては何もしない。
	DecrementStock(ctx context.Context, id int, quantity int) error
}

// MemberRepository は会員名簿へのアクセスインターフェース。会員データは読み取り専用。
type MemberRepository interface {
	// FindByID は指定IDの会員を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Member, error)

	// ListAll は全会員を返す。
	ListAll(ctx context.Context) ([]model.Member, error)
}
