package repository

import (
	"context"

	"github.com/hitoshi/reji/internal/model"
)

// MemoryMemberRepo はプロセス内メモリに会員名簿を保持するリポジトリ。
// 会員データは起動時に固定され、以後変更されない。
type MemoryMemberRepo struct {
	members []model.Member
}

// NewMemoryMemberRepo は初期データからMemoryMemberRepoを生成する。
func NewMemoryMemberRepo(members []model.Member) *MemoryMemberRepo {
	return &MemoryMemberRepo{members: members}
}

// FindByID は指定IDの会員を取得する。見つからない場合はnilを返す。
func (r *MemoryMemberRepo) FindByID(ctx context.Context, id string) (*model.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

// ListAll は全会員を返す。
func (r *MemoryMemberRepo) ListAll(ctx context.Context) ([]model.Member, error) {
	out := make([]model.Member, len(r.members))
	copy(out, r.members)
	return out, nil
}

// compile-time interface check
var _ MemberRepository = (*MemoryMemberRepo)(nil)
