package db

import "gorm.io/gorm"

// Product 定义商品橱窗模型
// Price 以货币最小展示单位的十进制数保存，不允许为负
type Product struct {
	gorm.Model
	ProfileID   uint    `gorm:"index;not null"`
	Name        string  `gorm:"size:120;not null"`
	Description string  `gorm:"size:255"`
	Price       float64 `gorm:"default:0"`
	Currency    string  `gorm:"size:8;default:USD"`
	ImageURL    string  `gorm:"size:255"`
	PurchaseURL string  `gorm:"size:255;not null"`
	OrderIndex  int     `gorm:"default:0"`
	IsVisible   bool    `gorm:"default:true"`
}
