package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/service"
	"github.com/linkfolio/internal/view"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(htmlrenderer.WithHardWraps(), htmlrenderer.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将文章正文渲染为净化后的 HTML
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// ShowProfile renders the public link-in-bio page for the configured profile.
func (a *API) ShowProfile(c *gin.Context) {
	composite, err := a.views.Assemble(a.ownerUsername)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "profile.html", gin.H{
			"title": "出错了",
			"error": "获取主页数据失败",
		})
		return
	}

	if composite.Profile == nil {
		c.HTML(http.StatusNotFound, "profile.html", gin.H{
			"title":    "Profile not found",
			"notFound": true,
		})
		return
	}

	socials := make([]gin.H, 0, len(composite.Socials))
	for _, social := range composite.Socials {
		socials = append(socials, gin.H{
			"platform": social.Platform,
			"url":      social.URL,
			"icon":     template.HTML(view.SocialIconSVG(social.Icon)),
		})
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"title":    composite.Profile.DisplayName,
		"profile":  composite.Profile,
		"socials":  socials,
		"links":    composite.Links,
		"products": composite.Products,
		"blogs":    composite.Blogs,
	})
}

// ShowBlogPost renders a published blog post looked up by slug.
func (a *API) ShowBlogPost(c *gin.Context) {
	slug := c.Param("slug")

	profile, err := a.ownerProfile()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrOwnerProfileMissing) {
			status = http.StatusNotFound
		}
		c.HTML(status, "blog.html", gin.H{
			"title":    "文章不存在",
			"notFound": true,
		})
		return
	}

	blog, err := a.blogs.GetPublishedBySlug(profile.ID, slug)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.HTML(http.StatusNotFound, "blog.html", gin.H{
				"title":    "文章不存在",
				"notFound": true,
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "blog.html", gin.H{
			"title": "出错了",
			"error": "获取文章失败",
		})
		return
	}

	c.HTML(http.StatusOK, "blog.html", gin.H{
		"title":   blog.Title,
		"blog":    blog,
		"content": renderMarkdown(blog.Content),
	})
}
