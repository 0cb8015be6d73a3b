package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/db"
	"github.com/linkfolio/internal/service"
)

// ShowBlogAdmin renders the admin page for managing blog posts.
func (a *API) ShowBlogAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "blogs.html", gin.H{
		"title": "博客文章",
	})
}

type blogRequest struct {
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt" binding:"required"`
	CoverImageURL string `json:"cover_image_url" binding:"omitempty,url"`
}

// ListBlogs 返回后台管理用的文章列表，包含未发布的条目
func (a *API) ListBlogs(c *gin.Context) {
	profile, ok := a.requireOwner(c)
	if !ok {
		return
	}

	blogs, err := a.blogs.List(profile.ID, false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取文章失败")
		return
	}

	items := make([]gin.H, 0, len(blogs))
	for _, blog := range blogs {
		items = append(items, blogPayload(blog))
	}

	c.JSON(http.StatusOK, gin.H{"blogs": items})
}

// CreateBlog 发布新文章
func (a *API) CreateBlog(c *gin.Context) {
	profile, ok := a.requireOwner(c)
	if !ok {
		return
	}

	var payload blogRequest
	if !bindJSON(c, &payload, "请填写完整的文章信息") {
		return
	}

	blog, err := a.blogs.Create(profile.ID, service.BlogInput{
		Title:         payload.Title,
		Content:       payload.Content,
		Excerpt:       payload.Excerpt,
		CoverImageURL: payload.CoverImageURL,
	})
	if err != nil {
		handleBlogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "文章已发布",
		"blog":    blogPayload(*blog),
	})
}

// DeleteBlog 删除指定文章
func (a *API) DeleteBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	if err := a.blogs.Delete(id); err != nil {
		handleBlogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "文章已删除"})
}

func blogPayload(blog db.Blog) gin.H {
	payload := gin.H{
		"id":            blog.ID,
		"title":         blog.Title,
		"excerpt":       blog.Excerpt,
		"coverImageUrl": blog.CoverImageURL,
		"slug":          blog.Slug,
		"published":     blog.IsPublished,
	}
	if blog.PublishedAt != nil {
		payload["publishedAt"] = blog.PublishedAt
	}
	return payload
}

func handleBlogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		respondError(c, http.StatusNotFound, "文章不存在")
	case errors.Is(err, service.ErrBlogInvalidInput):
		respondError(c, http.StatusBadRequest, "请检查必填项")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
