// Package cart はセッションごとの購物車操作を提供する。
package cart

import (
	"context"
	"fmt"

	"github.com/hitoshi/reji/internal/model"
	"github.com/hitoshi/reji/internal/money"
	"github.com/hitoshi/reji/internal/repository"
	"github.com/hitoshi/reji/internal/session"
)

// Action はカート行に対する操作種別を表す。
type Action string

const (
	// ActionIncrease は数量を1増やす。
	ActionIncrease Action = "increase"
	// ActionDecrease は数量を1減らす。結果が0以下になる場合は行ごと削除する。
	ActionDecrease Action = "decrease"
	// ActionRemove は行を無条件に削除する。
	ActionRemove Action = "remove"
)

// Service はカート操作のサービス層。
// カートの実体はセッションが保持する商品ID→数量のマップで、
// 表示時にカタログと結合される。
type Service struct {
	products repository.ProductRepository
}

// NewService はServiceを生成する。
func NewService(products repository.ProductRepository) *Service {
	return &Service{products: products}
}

// Add は商品をカートに追加する。既存行があれば数量を加算する。
// 数量が1未満の場合は1として扱う。在庫数に対する上限チェックは行わない。
func (s *Service) Add(sess *session.Session, productID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	sess.Cart[productID] += quantity
}

// Adjust はカート行の数量を操作する。
// 対象行が存在しない場合、および未知のactionの場合は何もしない。
func (s *Service) Adjust(sess *session.Session, productID int, action Action) {
	if _, ok := sess.Cart[productID]; !ok {
		return
	}

	switch action {
	case ActionIncrease:
		sess.Cart[productID]++
	case ActionDecrease:
		sess.Cart[productID]--
		if sess.Cart[productID] <= 0 {
			delete(sess.Cart, productID)
		}
	case ActionRemove:
		delete(sess.Cart, productID)
	}
}

// Clear はカートを空にする。
func (s *Service) Clear(sess *session.Session) {
	sess.Cart = make(map[int]int)
}

// Snapshot はカート内容をカタログと結合した表示用の行とカート合計を返す。
// カタログに存在しない商品IDの行は黙ってスキップする。
// 行は商品ID昇順で返す。
func (s *Service) Snapshot(ctx context.Context, sess *session.Session) ([]model.CartLine, money.Cents, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load catalog: %w", err)
	}

	var lines []model.CartLine
	var total money.Cents

	for _, p := range products {
		quantity, ok := sess.Cart[p.ID]
		if !ok {
			continue
		}
		subtotal := p.Price * money.Cents(quantity)
		lines = append(lines, model.CartLine{
			Product:  p,
			Quantity: quantity,
			Subtotal: subtotal,
		})
		total += subtotal
	}

	return lines, total, nil
}
