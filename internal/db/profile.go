package db

import "gorm.io/gorm"

// Profile 定义个人主页的根模型
// Username 是前台访问时的唯一标识
// Theme 对应前端内置的主题方案
type Profile struct {
	gorm.Model
	Username    string `gorm:"uniqueIndex;size:50;not null"`
	DisplayName string `gorm:"size:80;not null"`
	Bio         string `gorm:"type:text"`
	AvatarURL   string `gorm:"size:255"`
	Theme       string `gorm:"size:30;default:default"`
}
