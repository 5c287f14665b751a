// Package money は整数最小単位による金額表現を提供する。
// 浮動小数点の丸め誤差を避けるため、金額はすべてセント単位のint64で扱う。
package money

import "fmt"

// Cents はセント単位の金額を表す。
// 100セント = 1元。負の値は差引後の金額としてのみ現れうる。
type Cents int64

// Rate はベーシスポイント（1/10000）単位の割引率を表す。
// 例: 10% = 1000bps、5% = 500bps。
type Rate int64

// FromUnits は元単位の整数金額をCentsに変換する。
func FromUnits(units int64) Cents {
	return Cents(units * 100)
}

// Mul は金額に割引率を適用した額を返す。端数は切り捨てる。
func (c Cents) Mul(r Rate) Cents {
	return Cents(int64(c) * int64(r) / 10000)
}

// String は "123.45" 形式の表示用文字列を返す。
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
