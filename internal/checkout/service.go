// Package checkout はチェックアウト処理のドメインロジックを提供する。
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/reji/internal/metrics"
	"github.com/hitoshi/reji/internal/model"
	"github.com/hitoshi/reji/internal/money"
	"github.com/hitoshi/reji/internal/pricing"
	"github.com/hitoshi/reji/internal/session"
)

// ErrEmptyCart は空のカートでチェックアウトに入ろうとした場合のエラー。
var ErrEmptyCart = errors.New("cart is empty")

// DefaultPaymentMethod は支払方法未指定時に使用するラベル。
const DefaultPaymentMethod = "cash"

// CartAccess はチェックアウトが必要とするカート操作のインターフェース。
type CartAccess interface {
	// Snapshot はカート内容をカタログと結合した行とカート合計を返す。
	Snapshot(ctx context.Context, sess *session.Session) ([]model.CartLine, money.Cents, error)
	// Clear はカートを空にする。
	Clear(sess *session.Session)
}

// StockDecrementer は在庫減算のインターフェース。
// repository.ProductRepositoryの部分集合として定義する。
type StockDecrementer interface {
	DecrementStock(ctx context.Context, id int, quantity int) error
}

// Service はチェックアウト処理のサービス層。
// Review（計算のみ）とCommit（計算＋在庫減算＋カート消去）の2操作を提供する。
type Service struct {
	carts    CartAccess
	products StockDecrementer
	recorder metrics.Recorder
}

// NewService はServiceを生成する。recorderはnil可。
func NewService(carts CartAccess, products StockDecrementer, recorder metrics.Recorder) *Service {
	return &Service{
		carts:    carts,
		products: products,
		recorder: recorder,
	}
}

// Review はカート・会員・大口割引から取引金額を計算して返す。状態は一切変更しない。
// カートが空の場合はErrEmptyCartを返す。
//
// 大口割引はチェックアウト画面でのみ適用される。カート画面の金額計算
// （cart.Service.Snapshot + pricing.Quote(includeBulk=false)）とは意図的に一致しない。
func (s *Service) Review(ctx context.Context, sess *session.Session) (model.TransactionTotals, error) {
	if len(sess.Cart) == 0 {
		return model.TransactionTotals{}, ErrEmptyCart
	}

	lines, _, err := s.carts.Snapshot(ctx, sess)
	if err != nil {
		return model.TransactionTotals{}, fmt.Errorf("failed to snapshot cart: %w", err)
	}

	return pricing.Quote(lines, sess.Member, true), nil
}

// Commit は取引を確定する。金額を計算し、カートの全行について在庫を数量分
// 減算（0で切り上げ）した後、カートを空にしてレシートを返す。
// レシートはセッションにも保持され、レシート画面の表示に使用される。
// カートが空の場合はErrEmptyCartを返し、在庫もカートも変更しない。
// 支払方法が空文字の場合はDefaultPaymentMethodを使用する。
//
// 在庫の減算はセッション間で同期化されておらず、同一商品への同時チェックアウトでは
// 減算が失われることがある。
func (s *Service) Commit(ctx context.Context, sess *session.Session, paymentMethod string) (*model.Receipt, error) {
	start := time.Now()

	totals, err := s.Review(ctx, sess)
	if err != nil {
		return nil, err
	}

	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	itemCount := 0
	for id, quantity := range sess.Cart {
		itemCount += quantity
		if err := s.products.DecrementStock(ctx, id, quantity); err != nil {
			return nil, fmt.Errorf("failed to update inventory: %w", err)
		}
	}

	s.carts.Clear(sess)

	receipt := &model.Receipt{
		ID:            uuid.NewString(),
		PaymentMethod: paymentMethod,
		Totals:        totals,
		Member:        sess.Member,
		PaidAt:        time.Now(),
	}
	// レシート画面がリダイレクト後に参照できるようセッションに保持する
	sess.LastReceipt = receipt

	if s.recorder != nil {
		s.recorder.RecordOrderCommitted(totals.FinalTotal, itemCount)
		s.recorder.RecordCheckoutLatency(time.Since(start))
	}

	slog.Info("order committed",
		slog.String("receipt_id", receipt.ID),
		slog.String("payment_method", paymentMethod),
		slog.Int64("final_total_cents", int64(totals.FinalTotal)),
		slog.Int("item_count", itemCount),
	)

	return receipt, nil
}
