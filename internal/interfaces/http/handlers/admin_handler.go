package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-market.backend/internal/domain/entities"
	"campus-market.backend/internal/interfaces/http/response"
)

// AdminService is the user administration behind AdminHandler
type AdminService interface {
	Stats(ctx context.Context) (*entities.AdminStats, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
	UpdateUser(ctx context.Context, rawID string, input *entities.AdminUpdateUserInput) (*entities.User, error)
	DeleteUser(ctx context.Context, actorID uuid.UUID, rawID string) error
}

// AdminHandler handles admin dashboard endpoints. Routes are mounted behind
// middleware.RequireAdmin.
type AdminHandler struct {
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// UpdateUser handles PATCH /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var input entities.AdminUpdateUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.adminService.UpdateUser(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	authCtx, ok := caller(c)
	if !ok {
		return
	}
	if err := h.adminService.DeleteUser(c.Request.Context(), authCtx.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}
