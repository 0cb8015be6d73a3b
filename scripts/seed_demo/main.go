package main

import (
	"fmt"
	"log"

	"github.com/linkfolio/internal/config"
	"github.com/linkfolio/internal/db"
	"github.com/linkfolio/internal/service"
)

// 演示数据生成器：创建 demo 主页及示例社交入口、链接、商品与文章
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	profile := ensureDemoProfile(cfg.ProfileUsername)
	seedSocials(profile.ID)
	seedLinks(profile.ID)
	seedProducts(profile.ID)
	seedBlogs(profile.ID)

	fmt.Println("演示数据生成完成！")
	fmt.Printf("前台地址: / (用户名: %s)\n", profile.Username)
}

func ensureDemoProfile(username string) *db.Profile {
	var existing db.Profile
	if err := db.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Println("主页资料已存在，跳过创建")
		return &existing
	}

	profile := db.Profile{
		Username:    username,
		DisplayName: "Demo User",
		Bio:         "Designer & developer sharing links, products and writing in one place.",
		AvatarURL:   "/static/uploads/avatar-demo.png",
		Theme:       "default",
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		log.Fatal("创建主页资料失败:", err)
	}

	fmt.Println("✅ 主页资料创建完成")
	return &profile
}

func seedSocials(profileID uint) {
	var count int64
	db.DB.Model(&db.Social{}).Where("profile_id = ?", profileID).Count(&count)
	if count > 0 {
		fmt.Println("社交入口已存在，跳过创建")
		return
	}

	svc := service.NewSocialService(db.DB)
	samples := []service.SocialInput{
		{Platform: "Twitter", URL: "https://twitter.com/demo"},
		{Platform: "Instagram", URL: "https://instagram.com/demo"},
		{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/demo"},
		{Platform: "Email", URL: "mailto:demo@example.com", Icon: "email"},
	}
	for _, input := range samples {
		if _, err := svc.Create(profileID, input); err != nil {
			log.Fatal("创建社交入口失败:", err)
		}
	}

	fmt.Println("✅ 社交入口创建完成")
}

func seedLinks(profileID uint) {
	var count int64
	db.DB.Model(&db.Link{}).Where("profile_id = ?", profileID).Count(&count)
	if count > 0 {
		fmt.Println("链接已存在，跳过创建")
		return
	}

	svc := service.NewLinkService(db.DB)
	samples := []service.LinkInput{
		{Title: "My Portfolio", URL: "https://demo.example.com", Description: "Selected work and case studies"},
		{Title: "Newsletter", URL: "https://newsletter.example.com", Description: "Weekly notes on design and code"},
	}
	for _, input := range samples {
		if _, err := svc.Create(profileID, input); err != nil {
			log.Fatal("创建链接失败:", err)
		}
	}

	fmt.Println("✅ 链接创建完成")
}

func seedProducts(profileID uint) {
	var count int64
	db.DB.Model(&db.Product{}).Where("profile_id = ?", profileID).Count(&count)
	if count > 0 {
		fmt.Println("商品已存在，跳过创建")
		return
	}

	svc := service.NewProductService(db.DB)
	samples := []service.ProductInput{
		{Name: "Icon Pack", Description: "120 hand-drawn icons", Price: 12, Currency: "USD", PurchaseURL: "https://shop.example.com/icons"},
		{Name: "Notion Template", Description: "Personal CRM template", Price: 8, Currency: "USD", PurchaseURL: "https://shop.example.com/notion"},
	}
	for _, input := range samples {
		if _, err := svc.Create(profileID, input); err != nil {
			log.Fatal("创建商品失败:", err)
		}
	}

	fmt.Println("✅ 商品创建完成")
}

func seedBlogs(profileID uint) {
	var count int64
	db.DB.Model(&db.Blog{}).Where("profile_id = ?", profileID).Count(&count)
	if count > 0 {
		fmt.Println("文章已存在，跳过创建")
		return
	}

	svc := service.NewBlogService(db.DB)
	samples := []service.BlogInput{
		{Title: "Hello, World!", Excerpt: "Why I built this page", Content: "A short note on **why** this page exists."},
		{Title: "Designing a Link-in-Bio", Excerpt: "Notes from the build", Content: "Some thoughts on keeping a one-page profile honest."},
	}
	for _, input := range samples {
		if _, err := svc.Create(profileID, input); err != nil {
			log.Fatal("创建文章失败:", err)
		}
	}

	fmt.Println("✅ 文章创建完成")
}
