package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/reji/internal/model"
)

// PostgresMemberRepo はPostgreSQLを使用した会員リポジトリ。
type PostgresMemberRepo struct {
	db *sql.DB
}

// NewPostgresMemberRepo はPostgresMemberRepoを生成する。
func NewPostgresMemberRepo(db *sql.DB) *PostgresMemberRepo {
	return &PostgresMemberRepo{db: db}
}

// FindByID は指定IDの会員を取得する。見つからない場合はnilを返す。
func (r *PostgresMemberRepo) FindByID(ctx context.Context, id string) (*model.Member, error) {
	m := &model.Member{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, tier, points, discount_bps FROM members WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Name, &m.Tier, &m.Points, &m.DiscountRate)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find member by ID: %w", err)
	}

	return m, nil
}

// ListAll は全会員をID昇順で返す。
func (r *PostgresMemberRepo) ListAll(ctx context.Context) ([]model.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, tier, points, discount_bps FROM members ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Tier, &m.Points, &m.DiscountRate); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// compile-time interface check
var _ MemberRepository = (*PostgresMemberRepo)(nil)
