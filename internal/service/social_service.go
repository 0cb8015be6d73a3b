package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linkfolio/internal/db"
	"gorm.io/gorm"
)

// ErrSocialInvalidInput 在输入数据不完整时返回
var ErrSocialInvalidInput = errors.New("invalid social input")

// SocialService 负责维护某个主页的社交入口列表
// 提供加载、追加、删除能力，与 handler 解耦

type SocialService struct {
	db *gorm.DB
}

// NewSocialService 构造 SocialService
func NewSocialService(gdb *gorm.DB) *SocialService {
	return &SocialService{db: gdb}
}

// SocialInput 描述新增社交入口时可设置的字段
// Icon 为空时取平台名的小写形式；Visible 使用指针判断是否显式传入

type SocialInput struct {
	Platform string
	URL      string
	Icon     string
	Visible  *bool
}

// List 返回指定主页的社交入口，按排序值升序
// includeHidden 为 false 时过滤掉 IsVisible=false 的条目
func (s *SocialService) List(profileID uint, includeHidden bool) ([]db.Social, error) {
	query := s.db.Where("profile_id = ?", profileID)
	if !includeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var items []db.Social
	if err := query.Order("order_index ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list socials: %w", err)
	}
	return items, nil
}

// Create 追加社交入口，排序位置在插入事务内由存储侧计算
func (s *SocialService) Create(profileID uint, input SocialInput) (*db.Social, error) {
	if profileID == 0 {
		return nil, fmt.Errorf("%w: profile is required", ErrSocialInvalidInput)
	}
	if strings.TrimSpace(input.Platform) == "" {
		return nil, fmt.Errorf("%w: platform is required", ErrSocialInvalidInput)
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", ErrSocialInvalidInput)
	}

	icon := strings.ToLower(strings.TrimSpace(input.Icon))
	if icon == "" {
		icon = strings.ToLower(strings.TrimSpace(input.Platform))
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	social := db.Social{
		ProfileID: profileID,
		Platform:  strings.TrimSpace(input.Platform),
		URL:       strings.TrimSpace(input.URL),
		Icon:      icon,
		IsVisible: visible,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		next, err := nextOrderIndex(tx, &db.Social{}, profileID)
		if err != nil {
			return err
		}
		social.OrderIndex = next
		return tx.Create(&social).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create social: %w", err)
	}

	return &social, nil
}

// Delete 删除指定社交入口，id 不存在时不报错
func (s *SocialService) Delete(id uint) error {
	if err := s.db.Delete(&db.Social{}, id).Error; err != nil {
		return fmt.Errorf("delete social: %w", err)
	}
	return nil
}
