package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/db"
	"github.com/linkfolio/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
// templateGlob 为空时使用默认模板目录，测试中可传入相对于包目录的路径
func SetupRouter(sessionSecret, uploadDir, uploadURLPath, profileUsername, templateGlob string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("linkfolio_session", store))

	if templateGlob == "" {
		templateGlob = "web/template/*.html"
	}
	r.LoadHTMLGlob(templateGlob)

	// 静态文件服务
	r.Static("/static", "./web/static")

	api := handler.NewAPI(db.DB, profileUsername, uploadDir, uploadURLPath)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 前台页面
	r.GET("/", api.ShowProfile)
	r.GET("/blog/:slug", api.ShowBlogPost)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", handler.ShowLoginPage)
		admin.POST("/login", handler.Login)
		admin.GET("/logout", handler.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/socials", api.ShowSocialAdmin)
			auth.GET("/links", api.ShowLinkAdmin)
			auth.GET("/products", api.ShowProductAdmin)
			auth.GET("/blogs", api.ShowBlogAdmin)

			// API路由
			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/socials", api.ListSocials)
				adminAPI.POST("/socials", api.CreateSocial)
				adminAPI.DELETE("/socials/:id", api.DeleteSocial)

				adminAPI.GET("/links", api.ListLinks)
				adminAPI.POST("/links", api.CreateLink)
				adminAPI.DELETE("/links/:id", api.DeleteLink)

				adminAPI.GET("/products", api.ListProducts)
				adminAPI.POST("/products", api.CreateProduct)
				adminAPI.DELETE("/products/:id", api.DeleteProduct)

				adminAPI.GET("/blogs", api.ListBlogs)
				adminAPI.POST("/blogs", api.CreateBlog)
				adminAPI.DELETE("/blogs/:id", api.DeleteBlog)

				adminAPI.POST("/uploads", api.UploadImage)
			}
		}
	}

	return r
}
