package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/db"
	"github.com/linkfolio/internal/service"
	"gorm.io/gorm"
)

// ErrOwnerProfileMissing 在配置的主页资料尚未建立时返回
var ErrOwnerProfileMissing = errors.New("owner profile not found")

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db            *gorm.DB
	views         *service.ProfileViewService
	socials       *service.SocialService
	links         *service.LinkService
	products      *service.ProductService
	blogs         *service.BlogService
	ownerUsername string
	uploadDir     string
	uploadURL     string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, ownerUsername, uploadDir, uploadURL string) *API {
	return &API{
		db:            gdb,
		views:         service.NewProfileViewService(gdb),
		socials:       service.NewSocialService(gdb),
		links:         service.NewLinkService(gdb),
		products:      service.NewProductService(gdb),
		blogs:         service.NewBlogService(gdb),
		ownerUsername: ownerUsername,
		uploadDir:     uploadDir,
		uploadURL:     uploadURL,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

// ownerProfile 解析配置的主页所有者
// 后台的每一次操作都显式携带所有者 id，不在更深层持有全局常量
func (a *API) ownerProfile() (*db.Profile, error) {
	var profile db.Profile
	if err := a.db.Where("username = ?", a.ownerUsername).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerProfileMissing
		}
		return nil, fmt.Errorf("resolve owner profile: %w", err)
	}
	return &profile, nil
}

// requireOwner 获取所有者资料，失败时直接写出错误响应
func (a *API) requireOwner(c *gin.Context) (*db.Profile, bool) {
	profile, err := a.ownerProfile()
	if err != nil {
		if errors.Is(err, ErrOwnerProfileMissing) {
			respondError(c, http.StatusNotFound, "主页资料尚未初始化")
		} else {
			respondError(c, http.StatusInternalServerError, "获取主页资料失败")
		}
		return nil, false
	}
	return profile, true
}
