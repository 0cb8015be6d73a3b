package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/linkfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrBlogNotFound 在指定文章不存在时返回
	ErrBlogNotFound = errors.New("blog not found")
	// ErrBlogInvalidInput 在输入数据不完整时返回
	ErrBlogInvalidInput = errors.New("invalid blog input")
)

// BlogService wraps blog related database operations.
type BlogService struct {
	db *gorm.DB
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// BlogInput represents fields accepted when publishing a blog post.
type BlogInput struct {
	Title         string
	Content       string
	Excerpt       string
	CoverImageURL string
}

// List 返回指定主页的文章，按创建时间倒序（最新在前）
// publishedOnly 为 true 时只返回已发布的文章
func (s *BlogService) List(profileID uint, publishedOnly bool) ([]db.Blog, error) {
	query := s.db.Where("profile_id = ?", profileID)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var items []db.Blog
	if err := query.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return items, nil
}

// Create 发布一篇新文章：slug 由标题派生，发布标记与发布时间在提交时写入
func (s *BlogService) Create(profileID uint, input BlogInput) (*db.Blog, error) {
	if profileID == 0 {
		return nil, fmt.Errorf("%w: profile is required", ErrBlogInvalidInput)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBlogInvalidInput)
	}
	if strings.TrimSpace(input.Excerpt) == "" {
		return nil, fmt.Errorf("%w: excerpt is required", ErrBlogInvalidInput)
	}

	now := time.Now()
	blog := db.Blog{
		ProfileID:     profileID,
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		Excerpt:       strings.TrimSpace(input.Excerpt),
		CoverImageURL: strings.TrimSpace(input.CoverImageURL),
		Slug:          DeriveSlug(input.Title),
		IsPublished:   true,
		PublishedAt:   &now,
	}

	if err := s.db.Create(&blog).Error; err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	return &blog, nil
}

// GetPublishedBySlug 返回指定 slug 的已发布文章
// slug 未加唯一约束，重复时取最新一篇
func (s *BlogService) GetPublishedBySlug(profileID uint, slug string) (*db.Blog, error) {
	var blog db.Blog
	if err := s.db.Where("profile_id = ? AND slug = ? AND is_published = ?", profileID, slug, true).
		Order("created_at DESC, id DESC").
		First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog by slug: %w", err)
	}
	return &blog, nil
}

// Delete 删除指定文章，id 不存在时不报错
func (s *BlogService) Delete(id uint) error {
	if err := s.db.Delete(&db.Blog{}, id).Error; err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

// DeriveSlug 将标题转换为 URL 友好的 slug：
// 小写化，连续的非小写字母数字字符折叠为单个连字符，并去掉首尾连字符。
// 对已是 slug 的输入再次派生结果不变。
func DeriveSlug(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	pendingSep := false
	for _, r := range lowered {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingSep = false
		b.WriteRune(r)
	}

	return b.String()
}
