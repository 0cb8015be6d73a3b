package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio/internal/db"
	"github.com/linkfolio/internal/service"
)

// ShowProductAdmin renders the admin page for managing products.
func (a *API) ShowProductAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "products.html", gin.H{
		"title": "商品橱窗",
	})
}

type productRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
	PurchaseURL string  `json:"purchase_url" binding:"required,url"`
	Visible     *bool   `json:"visible"`
}

// ListProducts 返回后台管理用的商品列表，包含隐藏条目
func (a *API) ListProducts(c *gin.Context) {
	profile, ok := a.requireOwner(c)
	if !ok {
		return
	}

	products, err := a.products.List(profile.ID, true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取商品失败")
		return
	}

	items := make([]gin.H, 0, len(products))
	for _, product := range products {
		items = append(items, productPayload(product))
	}

	c.JSON(http.StatusOK, gin.H{"products": items})
}

// CreateProduct 追加新的商品
func (a *API) CreateProduct(c *gin.Context) {
	profile, ok := a.requireOwner(c)
	if !ok {
		return
	}

	var payload productRequest
	if !bindJSON(c, &payload, "请填写完整的商品信息") {
		return
	}

	product, err := a.products.Create(profile.ID, service.ProductInput{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Currency:    payload.Currency,
		ImageURL:    payload.ImageURL,
		PurchaseURL: payload.PurchaseURL,
		Visible:     payload.Visible,
	})
	if err != nil {
		handleProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "已新增商品",
		"product": productPayload(*product),
	})
}

// DeleteProduct 删除指定商品
func (a *API) DeleteProduct(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的商品ID")
		return
	}

	if err := a.products.Delete(id); err != nil {
		handleProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "商品已删除"})
}

func productPayload(product db.Product) gin.H {
	return gin.H{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"currency":    product.Currency,
		"imageUrl":    product.ImageURL,
		"purchaseUrl": product.PurchaseURL,
		"orderIndex":  product.OrderIndex,
		"visible":     product.IsVisible,
	}
}

func handleProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductInvalidInput):
		respondError(c, http.StatusBadRequest, "请检查必填项与价格")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
