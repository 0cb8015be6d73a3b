package db

import "gorm.io/gorm"

// Link 定义自定义链接卡片模型
type Link struct {
	gorm.Model
	ProfileID    uint   `gorm:"index;not null"`
	Title        string `gorm:"size:120;not null"`
	URL          string `gorm:"size:255;not null"`
	Description  string `gorm:"size:255"`
	ThumbnailURL string `gorm:"size:255"`
	OrderIndex   int    `gorm:"default:0"`
	IsVisible    bool   `gorm:"default:true"`
}
