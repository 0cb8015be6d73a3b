package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/config"
	"github.com/linkfolio/internal/db"
	"github.com/linkfolio/internal/router"
)

func main() {
	cfg := config.Load()

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 管理员引导账号（环境变量缺省时跳过）
	if err := db.EnsureUser(cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		log.Fatalf("failed to ensure root user: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(cfg.SessionSecret, cfg.UploadDir, cfg.UploadURLPath, cfg.ProfileUsername, "")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
