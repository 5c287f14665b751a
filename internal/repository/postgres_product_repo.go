package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/reji/internal/model"
)

// PostgresProductRepo はPostgreSQLを使用した商品リポジトリ。
// DATABASE_URLが設定されている場合にインメモリ実装の代わりに使用される。
type PostgresProductRepo struct {
	db *sql.DB
}

// NewPostgresProductRepo はPostgresProductRepoを生成する。
func NewPostgresProductRepo(db *sql.DB) *PostgresProductRepo {
	return &PostgresProductRepo{db: db}
}

// FindByID は指定IDの商品を取得する。見つからない場合はnilを返す。
func (r *PostgresProductRepo) FindByID(ctx context.Context, id int) (*model.Product, error) {
	p := &model.Product{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price_cents, category, stock FROM products WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Stock)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return p, nil
}

// ListAll は全商品をID昇順で返す。
func (r *PostgresProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price_cents, category, stock FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// DecrementStock は商品の在庫を指定数量だけ減らす。結果が負になる場合は0に切り上げる。
// 存在しない商品IDは無視する。
func (r *PostgresProductRepo) DecrementStock(ctx context.Context, id int, quantity int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock = GREATEST(stock - $2, 0) WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	return nil
}

// compile-time interface check
var _ ProductRepository = (*PostgresProductRepo)(nil)
