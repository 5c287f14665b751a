package repository

import (
	"github.com/hitoshi/reji/internal/model"
	"github.com/hitoshi/reji/internal/money"
)

// SeedProducts はデモ用の初期商品データを返す。
// DATABASE_URL未設定時のインメモリカタログとして使用する。
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "珍珠奶茶", Price: money.FromUnits(50), Category: "飲料", Stock: 20},
		{ID: 2, Name: "紅茶", Price: money.FromUnits(25), Category: "飲料", Stock: 30},
		{ID: 3, Name: "美式咖啡", Price: money.FromUnits(45), Category: "飲料", Stock: 15},
		{ID: 4, Name: "巧克力蛋糕", Price: money.FromUnits(80), Category: "點心", Stock: 10},
		{ID: 5, Name: "薯條", Price: money.FromUnits(60), Category: "點心", Stock: 25},
		{ID: 6, Name: "洋芋片", Price: money.FromUnits(35), Category: "零食", Stock: 40},
	}
}

// SeedMembers はデモ用の初期会員データを返す。割引率はベーシスポイント単位。
func SeedMembers() []model.Member {
	return []model.Member{
		{ID: "M001", Name: "張小明", Tier: "金卡", Points: 1500, DiscountRate: 1000},
		{ID: "M002", Name: "李小華", Tier: "銀卡", Points: 800, DiscountRate: 500},
		{ID: "M003", Name: "王大明", Tier: "普通", Points: 200, DiscountRate: 0},
	}
}
