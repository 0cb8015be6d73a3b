package service

import (
	"errors"
	"fmt"

	"github.com/linkfolio/internal/db"
	"gorm.io/gorm"
)

// ProfileView 是前台主页使用的聚合读模型
// Profile 为 nil 表示用户名不存在，四个子集合保证非 nil
type ProfileView struct {
	Profile  *db.Profile
	Socials  []db.Social
	Links    []db.Link
	Products []db.Product
	Blogs    []db.Blog
}

// ProfileViewService assembles the public read model for one profile.
type ProfileViewService struct {
	db *gorm.DB
}

// NewProfileViewService 构造 ProfileViewService
func NewProfileViewService(gdb *gorm.DB) *ProfileViewService {
	return &ProfileViewService{db: gdb}
}

// Assemble 根据用户名组装前台读模型
// 用户名不存在时直接返回空的聚合结果，不视为错误，也不再发起子查询；
// 存储层失败会作为错误返回，与"合法为空"区分开
func (s *ProfileViewService) Assemble(username string) (*ProfileView, error) {
	view := &ProfileView{
		Socials:  []db.Social{},
		Links:    []db.Link{},
		Products: []db.Product{},
		Blogs:    []db.Blog{},
	}

	var profile db.Profile
	if err := s.db.Where("username = ?", username).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, nil
		}
		return nil, fmt.Errorf("lookup profile: %w", err)
	}
	view.Profile = &profile

	if err := s.db.Where("profile_id = ? AND is_visible = ?", profile.ID, true).
		Order("order_index ASC, id ASC").
		Find(&view.Socials).Error; err != nil {
		return nil, fmt.Errorf("list visible socials: %w", err)
	}

	if err := s.db.Where("profile_id = ? AND is_visible = ?", profile.ID, true).
		Order("order_index ASC, id ASC").
		Find(&view.Links).Error; err != nil {
		return nil, fmt.Errorf("list visible links: %w", err)
	}

	if err := s.db.Where("profile_id = ? AND is_visible = ?", profile.ID, true).
		Order("order_index ASC, id ASC").
		Find(&view.Products).Error; err != nil {
		return nil, fmt.Errorf("list visible products: %w", err)
	}

	// 博客按时间倒序，与人工排序的集合不同
	if err := s.db.Where("profile_id = ? AND is_published = ?", profile.ID, true).
		Order("created_at DESC, id DESC").
		Find(&view.Blogs).Error; err != nil {
		return nil, fmt.Errorf("list published blogs: %w", err)
	}

	return view, nil
}
