package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/linkfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupProductServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:product-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Profile{}, &db.Product{}); err != nil {
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

func TestProductServiceCreateDefaultsCurrency(t *testing.T) {
	gdb := setupProductServiceTestDB(t)
	profileID := seedProfile(t, gdb)

	svc := NewProductService(gdb)
	created, err := svc.Create(profileID, ProductInput{Name: "Icon Pack", Price: 12, PurchaseURL: "https://shop/icons"})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if created.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %q", created.Currency)
	}
	if created.OrderIndex != 1 {
		t.Fatalf("expected first product at position 1, got %d", created.OrderIndex)
	}

	lower, err := svc.Create(profileID, ProductInput{Name: "Template", Price: 8, Currency: "eur", PurchaseURL: "https://shop/template"})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if lower.Currency != "EUR" {
		t.Fatalf("expected currency normalized to uppercase, got %q", lower.Currency)
	}
}

func TestProductServiceRejectsNegativePrice(t *testing.T) {
	gdb := setupProductServiceTestDB(t)
	profileID := seedProfile(t, gdb)

	svc := NewProductService(gdb)
	if _, err := svc.Create(profileID, ProductInput{Name: "Broken", Price: -1, PurchaseURL: "https://shop/broken"}); !errors.Is(err, ErrProductInvalidInput) {
		t.Fatalf("expected invalid input error for negative price, got %v", err)
	}
}

func TestProductServiceListVisibility(t *testing.T) {
	gdb := setupProductServiceTestDB(t)
	profileID := seedProfile(t, gdb)

	svc := NewProductService(gdb)
	if _, err := svc.Create(profileID, ProductInput{Name: "Public", PurchaseURL: "https://shop/public"}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if _, err := svc.Create(profileID, ProductInput{Name: "Hidden", PurchaseURL: "https://shop/hidden", Visible: boolPtr(false)}); err != nil {
		t.Fatalf("create hidden product failed: %v", err)
	}

	visible, err := svc.List(profileID, false)
	if err != nil {
		t.Fatalf("list visible products failed: %v", err)
	}
	if len(visible) != 1 || visible[0].Name != "Public" {
		t.Fatalf("expected only public product, got %#v", visible)
	}

	all, err := svc.List(profileID, true)
	if err != nil {
		t.Fatalf("list all products failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
}
