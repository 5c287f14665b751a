// Package member は会員管理のドメインロジックを提供する。
package member

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/reji/internal/model"
	"github.com/hitoshi/reji/internal/repository"
	"github.com/hitoshi/reji/internal/session"
)

// Service は会員ログイン・ログアウトのサービス層。
type Service struct {
	members repository.MemberRepository
}

// NewService はServiceを生成する。
func NewService(members repository.MemberRepository) *Service {
	return &Service{members: members}
}

// Login は会員IDで名簿を検索し、見つかった会員をセッションに値コピーで設定する。
// 見つからない場合はnilを返し、セッションは変更しない。
// 名簿への生参照は持たないため、以後の名簿変更はログイン中のセッションに反映されない。
func (s *Service) Login(ctx context.Context, sess *session.Session, memberID string) (*model.Member, error) {
	m, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	if m == nil {
		slog.Info("member login failed: not found",
			slog.String("member_id", memberID),
		)
		return nil, nil
	}

	cp := *m
	sess.Member = &cp

	slog.Info("member logged in",
		slog.String("member_id", m.ID),
		slog.String("tier", m.Tier),
	)

	return sess.Member, nil
}

// Logout はセッションから会員参照のみを外す。カートには触れない。
func (s *Service) Logout(sess *session.Session) {
	sess.Member = nil
}

// List は会員名簿の全件を返す。
func (s *Service) List(ctx context.Context) ([]model.Member, error) {
	members, err := s.members.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}
