// Package model はドメインモデルを定義する。
package model

import (
	"time"

	"github.com/hitoshi/reji/internal/money"
)

// CartLine はカート内の1商品をカタログ情報と結合した表示用の行を表す。
type CartLine struct {
	Product  Product
	Quantity int
	Subtotal money.Cents
}

// TransactionTotals は取引金額の内訳を表す。
// 永続化されず、リクエストごとにカタログ・カート・会員から再計算される。
// 常に FinalTotal = CartTotal - MemberDiscount - BulkDiscount が成り立つ。
type TransactionTotals struct {
	Lines          []CartLine
	CartTotal      money.Cents
	MemberDiscount money.Cents
	BulkDiscount   money.Cents
	FinalTotal     money.Cents
}

// Receipt は確定済み取引のレシートを表す。
type Receipt struct {
	ID            string
	PaymentMethod string
	Totals        TransactionTotals
	Member        *Member
	PaidAt        time.Time
}
