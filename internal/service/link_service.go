package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linkfolio/internal/db"
	"gorm.io/gorm"
)

// ErrLinkInvalidInput 在输入数据不完整时返回
var ErrLinkInvalidInput = errors.New("invalid link input")

// LinkService 负责维护某个主页的链接卡片列表
type LinkService struct {
	db *gorm.DB
}

// NewLinkService 构造 LinkService
func NewLinkService(gdb *gorm.DB) *LinkService {
	return &LinkService{db: gdb}
}

// LinkInput 描述新增链接时可设置的字段
type LinkInput struct {
	Title        string
	URL          string
	Description  string
	ThumbnailURL string
	Visible      *bool
}

// List 返回指定主页的链接，按排序值升序
func (s *LinkService) List(profileID uint, includeHidden bool) ([]db.Link, error) {
	query := s.db.Where("profile_id = ?", profileID)
	if !includeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var items []db.Link
	if err := query.Order("order_index ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return items, nil
}

// Create 追加链接，排序位置在插入事务内由存储侧计算
func (s *LinkService) Create(profileID uint, input LinkInput) (*db.Link, error) {
	if profileID == 0 {
		return nil, fmt.Errorf("%w: profile is required", ErrLinkInvalidInput)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrLinkInvalidInput)
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", ErrLinkInvalidInput)
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	link := db.Link{
		ProfileID:    profileID,
		Title:        strings.TrimSpace(input.Title),
		URL:          strings.TrimSpace(input.URL),
		Description:  strings.TrimSpace(input.Description),
		ThumbnailURL: strings.TrimSpace(input.ThumbnailURL),
		IsVisible:    visible,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		next, err := nextOrderIndex(tx, &db.Link{}, profileID)
		if err != nil {
			return err
		}
		link.OrderIndex = next
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create link: %w", err)
	}

	return &link, nil
}

// Delete 删除指定链接，id 不存在时不报错
func (s *LinkService) Delete(id uint) error {
	if err := s.db.Delete(&db.Link{}, id).Error; err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}
