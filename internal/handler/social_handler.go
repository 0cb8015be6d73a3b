package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/db"
	"github.com/linkfolio/internal/service"
	"github.com/linkfolio/internal/view"
)

// ShowSocialAdmin renders the admin page for managing social entries.
func (a *API) ShowSocialAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "socials.html", gin.H{
		"title":       "社交入口",
		"iconOptions": view.SocialIconOptions(),
	})
}

type socialRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Icon     string `json:"icon"`
	Visible  *bool  `json:"visible"`
}

// ListSocials 返回后台管理用的社交入口列表，包含隐藏条目
func (a *API) ListSocials(c *gin.Context) {
	profile, ok := a.requireOwner(c)
	if !ok {
		return
	}

	socials, err := a.socials.List(profile.ID, true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取社交入口失败")
		return
	}

	items := make([]gin.H, 0, len(socials))
	for _, social := range socials {
		items = append(items, socialPayload(social))
	}

	c.JSON(http.StatusOK, gin.H{"socials": items})
}

// CreateSocial 追加新的社交入口
func (a *API) CreateSocial(c *gin.Context) {
	profile, ok := a.requireOwner(c)
	if !ok {
		return
	}

	var payload socialRequest
	if !bindJSON(c, &payload, "请填写完整的社交入口信息") {
		return
	}

	social, err := a.socials.Create(profile.ID, service.SocialInput{
		Platform: payload.Platform,
		URL:      payload.URL,
		Icon:     payload.Icon,
		Visible:  payload.Visible,
	})
	if err != nil {
		handleSocialError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "已新增社交入口",
		"social":  socialPayload(*social),
	})
}

// DeleteSocial 删除指定社交入口
func (a *API) DeleteSocial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的社交入口ID")
		return
	}

	if err := a.socials.Delete(id); err != nil {
		handleSocialError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "社交入口已删除"})
}

func socialPayload(social db.Social) gin.H {
	return gin.H{
		"id":         social.ID,
		"platform":   social.Platform,
		"url":        social.URL,
		"icon":       social.Icon,
		"orderIndex": social.OrderIndex,
		"visible":    social.IsVisible,
	}
}

func handleSocialError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSocialInvalidInput):
		respondError(c, http.StatusBadRequest, "请检查必填项")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
