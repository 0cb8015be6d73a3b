package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage 渲染登录页面
func ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "管理员登录",
	})
}

// Login 处理管理员登录请求
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login_error.html", gin.H{"error": "用户名或密码错误"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		c.HTML(http.StatusUnauthorized, "login_error.html", gin.H{"error": "用户名或密码错误"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login_error.html", gin.H{"error": "会话保存失败"})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理管理员登出
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ShowDashboard 渲染后台主面板，汇总各集合的记录数
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	var socialCount, linkCount, productCount, blogCount int64
	if profile, err := a.ownerProfile(); err == nil {
		a.db.Model(&db.Social{}).Where("profile_id = ?", profile.ID).Count(&socialCount)
		a.db.Model(&db.Link{}).Where("profile_id = ?", profile.ID).Count(&linkCount)
		a.db.Model(&db.Product{}).Where("profile_id = ?", profile.ID).Count(&productCount)
		a.db.Model(&db.Blog{}).Where("profile_id = ?", profile.ID).Count(&blogCount)
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":        "管理面板",
		"username":     username,
		"socialCount":  socialCount,
		"linkCount":    linkCount,
		"productCount": productCount,
		"blogCount":    blogCount,
	})
}
