package db

import (
	"time"

	"gorm.io/gorm"
)

// Blog 定义博客文章模型
// Slug 由标题在创建时派生，未加唯一约束，重复时前台取最新一篇
// PublishedAt 在发布时写入，可为空
type Blog struct {
	gorm.Model
	ProfileID     uint   `gorm:"index;not null"`
	Title         string `gorm:"size:200;not null"`
	Content       string `gorm:"type:text"`
	Excerpt       string `gorm:"size:255"`
	CoverImageURL string `gorm:"size:255"`
	Slug          string `gorm:"size:200;index"`
	IsPublished   bool   `gorm:"default:false"`
	PublishedAt   *time.Time
}
