package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
	"campus-market.backend/internal/interfaces/http/response"
)

// ProductService is the listing logic behind ProductHandler
type ProductService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error)
	Get(ctx context.Context, rawID string) (*entities.Product, error)
	List(ctx context.Context, category, status string) ([]*entities.Product, error)
	AdminList(ctx context.Context, category, status string) ([]*entities.Product, error)
	ListByOwner(ctx context.Context, rawOwnerID string) ([]*entities.Product, error)
	Update(ctx context.Context, auth *entities.AuthContext, rawID string, input *entities.UpdateProductInput) (*entities.Product, error)
	Delete(ctx context.Context, auth *entities.AuthContext, rawID string) error
	Moderate(ctx context.Context, rawID, rawStatus string) (*entities.Product, error)
}

// ProductHandler handles listing endpoints
type ProductHandler struct {
	productService ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts handles GET /api/products?category=&status=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context(), c.Query("category"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	var input entities.CreateProductInput
	if !bindJSON(c, &input) {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), authCtx.UserID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct handles PATCH /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	var input entities.UpdateProductInput
	if !bindJSON(c, &input) {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), authCtx, c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// DeleteProduct handles DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	if err := h.productService.Delete(c.Request.Context(), authCtx, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"})
}

// ListUserProducts handles GET /api/users/:id/products
func (h *ProductHandler) ListUserProducts(c *gin.Context) {
	products, err := h.productService.ListByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// AdminListProducts handles GET /api/admin/products
func (h *ProductHandler) AdminListProducts(c *gin.Context) {
	products, err := h.productService.AdminList(c.Request.Context(), c.Query("category"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// ModerateProduct handles PATCH /api/admin/products/:id
func (h *ProductHandler) ModerateProduct(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}

	product, err := h.productService.Moderate(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": product})
}
