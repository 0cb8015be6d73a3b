package db

import "gorm.io/gorm"

// Social 用于保存前台展示的社交入口
// Icon 字段用于匹配前端内置的图标，未命中时回退到 globe
// OrderIndex 值越小越靠前
// IsVisible 标记是否在前台展示

type Social struct {
	gorm.Model
	ProfileID  uint   `gorm:"index;not null"`
	Platform   string `gorm:"size:50;not null"`
	URL        string `gorm:"size:255;not null"`
	Icon       string `gorm:"size:50"`
	OrderIndex int    `gorm:"default:0"`
	IsVisible  bool   `gorm:"default:true"`
}
