package repository

import (
	"context"

	"github.com/hitoshi/reji/internal/model"
)

// MemoryProductRepo はプロセス内メモリに商品カタログを保持するリポジトリ。
// 在庫はプロセス生存期間のみ保持される。
//
// 注意: DecrementStockの read-modify-write は同期化されていない。
// 異なるセッションが同一商品を同時にチェックアウトした場合、
// 両者が同じ減算前の値を読み、減算が一方分失われることがある。
// これは元システムの観測可能な挙動であり、意図的に維持している。
type MemoryProductRepo struct {
	products []*model.Product
}

// NewMemoryProductRepo は初期データからMemoryProductRepoを生成する。
func NewMemoryProductRepo(products []model.Product) *MemoryProductRepo {
	repo := &MemoryProductRepo{}
	for i := range products {
		p := products[i]
		repo.products = append(repo.products, &p)
	}
	return repo
}

// FindByID は指定IDの商品を取得する。見つからない場合はnilを返す。
// 呼び出し側による書き換えを防ぐためコピーを返す。
func (r *MemoryProductRepo) FindByID(ctx context.Context, id int) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// ListAll は全商品をID昇順で返す。
func (r *MemoryProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

// DecrementStock は商品の在庫を指定数量だけ減らす。結果が負になる場合は0に切り上げる。
// 存在しない商品IDは無視する。
func (r *MemoryProductRepo) DecrementStock(ctx context.Context, id int, quantity int) error {
	for _, p := range r.products {
		if p.ID == id {
			p.Stock -= quantity
			if p.Stock < 0 {
				p.Stock = 0
			}
			return nil
		}
	}
	return nil
}

// compile-time interface check
var _ ProductRepository = (*MemoryProductRepo)(nil)
