package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linkfolio/internal/db"
	"gorm.io/gorm"
)

// ErrProductInvalidInput 在输入数据不完整或价格非法时返回
var ErrProductInvalidInput = errors.New("invalid product input")

// ProductService 负责维护某个主页的商品橱窗列表
type ProductService struct {
	db *gorm.DB
}

// NewProductService 构造 ProductService
func NewProductService(gdb *gorm.DB) *ProductService {
	return &ProductService{db: gdb}
}

// ProductInput 描述新增商品时可设置的字段
// Currency 为空时回退到 USD
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	ImageURL    string
	PurchaseURL string
	Visible     *bool
}

// List 返回指定主页的商品，按排序值升序
func (s *ProductService) List(profileID uint, includeHidden bool) ([]db.Product, error) {
	query := s.db.Where("profile_id = ?", profileID)
	if !includeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var items []db.Product
	if err := query.Order("order_index ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

// Create 追加商品，排序位置在插入事务内由存储侧计算
func (s *ProductService) Create(profileID uint, input ProductInput) (*db.Product, error) {
	if profileID == 0 {
		return nil, fmt.Errorf("%w: profile is required", ErrProductInvalidInput)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrProductInvalidInput)
	}
	if strings.TrimSpace(input.PurchaseURL) == "" {
		return nil, fmt.Errorf("%w: purchase url is required", ErrProductInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrProductInvalidInput)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	product := db.Product{
		ProfileID:   profileID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Currency:    currency,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		PurchaseURL: strings.TrimSpace(input.PurchaseURL),
		IsVisible:   visible,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		next, err := nextOrderIndex(tx, &db.Product{}, profileID)
		if err != nil {
			return err
		}
		product.OrderIndex = next
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return &product, nil
}

// Delete 删除指定商品，id 不存在时不报错
func (s *ProductService) Delete(id uint) error {
	if err := s.db.Delete(&db.Product{}, id).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
