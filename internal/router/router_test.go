package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testTemplateGlob = "../../web/template/*.html"

func setupRouterTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Profile{}, &db.Social{}, &db.Link{}, &db.Product{}, &db.Blog{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	db.DB = gdb

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}

func TestPing(t *testing.T) {
	setupRouterTestDB(t)

	r := SetupRouter("test-secret", t.TempDir(), "/static/uploads", "demo", testTemplateGlob)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestAdminRequiresSession(t *testing.T) {
	setupRouterTestDB(t)

	r := SetupRouter("test-secret", t.TempDir(), "/static/uploads", "demo", testTemplateGlob)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect for unauthenticated request, got %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != "/admin/login" {
		t.Fatalf("expected redirect to login page, got %q", location)
	}
}

func TestLoginWithValidCredentials(t *testing.T) {
	setupRouterTestDB(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.DB.Create(&db.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	r := SetupRouter("test-secret", t.TempDir(), "/static/uploads", "demo", testTemplateGlob)

	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "admin123")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect after login, got %d: %s", w.Code, w.Body.String())
	}
	if location := w.Header().Get("Location"); location != "/admin/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", location)
	}
}

func TestLoginWithBadPassword(t *testing.T) {
	setupRouterTestDB(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.DB.Create(&db.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	r := SetupRouter("test-secret", t.TempDir(), "/static/uploads", "demo", testTemplateGlob)

	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "wrong")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
