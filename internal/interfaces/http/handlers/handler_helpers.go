package handlers

import (
	"github.com/gin-gonic/gin"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/interfaces/http/middleware"
	"campus-market.backend/internal/interfaces/http/response"
)

// bindJSON decodes the body into dst and writes a 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return false
	}
	return true
}

// caller returns the authenticated user or writes a 401. Routes are guarded
// by middleware.RequireAuth, so this only fails on wiring mistakes.
func caller(c *gin.Context) (*entities.AuthContext, bool) {
	authCtx, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return nil, false
	}
	return authCtx, true
}
