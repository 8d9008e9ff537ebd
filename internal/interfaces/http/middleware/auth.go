package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/interfaces/http/response"
	"campus-market.backend/pkg/logger"
)

// AuthContextKey is the gin context key holding *entities.AuthContext
const AuthContextKey = "authContext"

// Authenticator resolves a session cookie value into the caller's identity
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.AuthContext, error)
}

// SessionMiddleware attaches the caller's AuthContext when the request carries
// a valid session cookie. Requests without one continue anonymously; routes
// that need a caller add RequireAuth.
func SessionMiddleware(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		authCtx, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) || isUnauthorized(err) {
				c.Next()
				return
			}
			response.Abort(c, err)
			return
		}

		c.Set(AuthContextKey, authCtx)
		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, authCtx.UserID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetAuthContext(c); !ok {
			response.Abort(c, domainerrors.Unauthorized("Authentication required"))
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anyone but administrators
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			response.Abort(c, domainerrors.Unauthorized("Authentication required"))
			return
		}
		if !authCtx.IsAdmin() {
			response.Abort(c, domainerrors.Forbidden("Admin access required"))
			return
		}
		c.Next()
	}
}

// GetAuthContext returns the caller set by SessionMiddleware
func GetAuthContext(c *gin.Context) (*entities.AuthContext, bool) {
	v, exists := c.Get(AuthContextKey)
	if !exists {
		return nil, false
	}
	authCtx, ok := v.(*entities.AuthContext)
	return authCtx, ok && authCtx != nil
}

func isUnauthorized(err error) bool {
	var appErr *domainerrors.AppError
	return errors.As(err, &appErr) && appErr.Status == http.StatusUnauthorized
}
