// Package pricing は取引金額の計算を提供する。
package pricing

import (
	"github.com/hitoshi/reji/internal/model"
	"github.com/hitoshi/reji/internal/money"
)

const (
	// BulkThreshold は大口割引が発動するカート合計の下限（500.00元）。
	BulkThreshold money.Cents = 50000

	// bulkDiscountRate は大口割引率（10%）。
	bulkDiscountRate money.Rate = 1000
)

// Quote はカート行・会員・大口割引の適用有無から取引金額の内訳を計算する。
// 純粋関数であり、入力を変更しない。
//
// 会員割引と大口割引はどちらも割引前のカート合計に対して計算され、
// 加算的に重なる（互いの割引後金額には掛からない）。
// 大口割引はカート合計がBulkThreshold以上の場合にのみ適用される閾値ルールで、
// 累進ではない。FinalTotalは0で切り上げない。
func Quote(lines []model.CartLine, member *model.Member, includeBulk bool) model.TransactionTotals {
	var cartTotal money.Cents
	for _, line := range lines {
		cartTotal += line.Subtotal
	}

	var memberDiscount money.Cents
	if member != nil {
		memberDiscount = cartTotal.Mul(member.DiscountRate)
	}

	var bulkDiscount money.Cents
	if includeBulk && cartTotal >= BulkThreshold {
		bulkDiscount = cartTotal.Mul(bulkDiscountRate)
	}

	return model.TransactionTotals{
		Lines:          lines,
		CartTotal:      cartTotal,
		MemberDiscount: memberDiscount,
		BulkDiscount:   bulkDiscount,
		FinalTotal:     cartTotal - memberDiscount - bulkDiscount,
	}
}
