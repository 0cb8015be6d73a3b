package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/db"
	"github.com/linkfolio/internal/service"
)

// ShowLinkAdmin renders the admin page for managing link cards.
func (a *API) ShowLinkAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "links.html", gin.H{
		"title": "链接卡片",
	})
}

type linkRequest struct {
	Title        string `json:"title" binding:"required"`
	URL          string `json:"url" binding:"required,url"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url" binding:"omitempty,url"`
	Visible      *bool  `json:"visible"`
}

// ListLinks 返回后台管理用的链接列表，包含隐藏条目
func (a *API) ListLinks(c *gin.Context) {
	profile, ok := a.requireOwner(c)
	if !ok {
		return
	}

	links, err := a.links.List(profile.ID, true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取链接失败")
		return
	}

	items := make([]gin.H, 0, len(links))
	for _, link := range links {
		items = append(items, linkPayload(link))
	}

	c.JSON(http.StatusOK, gin.H{"links": items})
}

// CreateLink 追加新的链接卡片
func (a *API) CreateLink(c *gin.Context) {
	profile, ok := a.requireOwner(c)
	if !ok {
		return
	}

	var payload linkRequest
	if !bindJSON(c, &payload, "请填写完整的链接信息") {
		return
	}

	link, err := a.links.Create(profile.ID, service.LinkInput{
		Title:        payload.Title,
		URL:          payload.URL,
		Description:  payload.Description,
		ThumbnailURL: payload.ThumbnailURL,
		Visible:      payload.Visible,
	})
	if err != nil {
		handleLinkError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "已新增链接",
		"link":    linkPayload(*link),
	})
}

// DeleteLink 删除指定链接
func (a *API) DeleteLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的链接ID")
		return
	}

	if err := a.links.Delete(id); err != nil {
		handleLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "链接已删除"})
}

func linkPayload(link db.Link) gin.H {
	return gin.H{
		"id":           link.ID,
		"title":        link.Title,
		"url":          link.URL,
		"description":  link.Description,
		"thumbnailUrl": link.ThumbnailURL,
		"orderIndex":   link.OrderIndex,
		"visible":      link.IsVisible,
	}
}

func handleLinkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLinkInvalidInput):
		respondError(c, http.StatusBadRequest, "请检查必填项")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
