package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/linkfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupProfileViewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:profile-view-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Profile{}, &db.Social{}, &db.Link{}, &db.Product{}, &db.Blog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func TestAssembleUnknownUsername(t *testing.T) {
	gdb := setupProfileViewTestDB(t)

	svc := NewProfileViewService(gdb)
	view, err := svc.Assemble("nobody")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	if view.Profile != nil {
		t.Fatalf("expected nil profile for unknown username, got %#v", view.Profile)
	}
	if view.Socials == nil || len(view.Socials) != 0 {
		t.Fatalf("expected empty socials, got %#v", view.Socials)
	}
	if view.Links == nil || len(view.Links) != 0 {
		t.Fatalf("expected empty links, got %#v", view.Links)
	}
	if view.Products == nil || len(view.Products) != 0 {
		t.Fatalf("expected empty products, got %#v", view.Products)
	}
	if view.Blogs == nil || len(view.Blogs) != 0 {
		t.Fatalf("expected empty blogs, got %#v", view.Blogs)
	}
}

func TestAssembleUsernameIsCaseSensitive(t *testing.T) {
	gdb := setupProfileViewTestDB(t)

	if err := gdb.Create(&db.Profile{Username: "demo", DisplayName: "Demo"}).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	svc := NewProfileViewService(gdb)
	view, err := svc.Assemble("Demo")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if view.Profile != nil {
		t.Fatalf("expected case-sensitive lookup to miss, got %#v", view.Profile)
	}
}

func TestAssembleFiltersAndOrders(t *testing.T) {
	gdb := setupProfileViewTestDB(t)

	demo := db.Profile{Username: "demo", DisplayName: "Demo"}
	other := db.Profile{Username: "other", DisplayName: "Other"}
	if err := gdb.Create(&demo).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	if err := gdb.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed second profile: %v", err)
	}

	socials := []db.Social{
		{ProfileID: demo.ID, Platform: "Twitter", URL: "https://t", Icon: "twitter", OrderIndex: 2, IsVisible: true},
		{ProfileID: demo.ID, Platform: "Email", URL: "mailto:a", Icon: "email", OrderIndex: 1, IsVisible: true},
		{ProfileID: demo.ID, Platform: "Hidden", URL: "https://h", Icon: "globe", OrderIndex: 3, IsVisible: false},
		{ProfileID: other.ID, Platform: "Other", URL: "https://o", Icon: "globe", OrderIndex: 1, IsVisible: true},
	}
	for i := range socials {
		if err := gdb.Create(&socials[i]).Error; err != nil {
			t.Fatalf("failed to seed social: %v", err)
		}
	}

	links := []db.Link{
		{ProfileID: demo.ID, Title: "First", URL: "https://1", OrderIndex: 1, IsVisible: true},
		{ProfileID: demo.ID, Title: "Second", URL: "https://2", OrderIndex: 2, IsVisible: true},
		{ProfileID: demo.ID, Title: "Hidden", URL: "https://3", OrderIndex: 3, IsVisible: false},
	}
	for i := range links {
		if err := gdb.Create(&links[i]).Error; err != nil {
			t.Fatalf("failed to seed link: %v", err)
		}
	}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := db.Blog{ProfileID: demo.ID, Title: "Older", Excerpt: "o", Slug: "older", IsPublished: true}
	older.CreatedAt = base
	newer := db.Blog{ProfileID: demo.ID, Title: "Newer", Excerpt: "n", Slug: "newer", IsPublished: true}
	newer.CreatedAt = base.Add(24 * time.Hour)
	draft := db.Blog{ProfileID: demo.ID, Title: "Draft", Excerpt: "d", Slug: "draft", IsPublished: false}
	draft.CreatedAt = base.Add(48 * time.Hour)
	for _, blog := range []*db.Blog{&older, &newer, &draft} {
		if err := gdb.Create(blog).Error; err != nil {
			t.Fatalf("failed to seed blog: %v", err)
		}
	}

	svc := NewProfileViewService(gdb)
	view, err := svc.Assemble("demo")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	if view.Profile == nil || view.Profile.ID != demo.ID {
		t.Fatalf("expected demo profile, got %#v", view.Profile)
	}

	if len(view.Socials) != 2 {
		t.Fatalf("expected 2 visible socials, got %d", len(view.Socials))
	}
	if view.Socials[0].Platform != "Email" || view.Socials[1].Platform != "Twitter" {
		t.Fatalf("socials not ordered by order_index: %q, %q", view.Socials[0].Platform, view.Socials[1].Platform)
	}

	if len(view.Links) != 2 {
		t.Fatalf("expected 2 visible links, got %d", len(view.Links))
	}
	if view.Links[0].Title != "First" || view.Links[1].Title != "Second" {
		t.Fatalf("links not in position order: %q, %q", view.Links[0].Title, view.Links[1].Title)
	}

	if len(view.Blogs) != 2 {
		t.Fatalf("expected 2 published blogs, got %d", len(view.Blogs))
	}
	if view.Blogs[0].Title != "Newer" || view.Blogs[1].Title != "Older" {
		t.Fatalf("blogs not ordered newest first: %q, %q", view.Blogs[0].Title, view.Blogs[1].Title)
	}
}
