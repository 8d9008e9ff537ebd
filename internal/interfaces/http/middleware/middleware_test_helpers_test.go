package middleware

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"campus-market.backend/internal/domain/entities"
	redispkg "campus-market.backend/pkg/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv := miniredis.RunT(t)
	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	prev := redispkg.GetClient()
	redispkg.SetClient(cli)
	t.Cleanup(func() {
		_ = cli.Close()
		redispkg.SetClient(prev)
	})
	return srv
}

type stubAuthenticator struct {
	authCtx *entities.AuthContext
	err     error
	tokens  []string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*entities.AuthContext, error) {
	s.tokens = append(s.tokens, token)
	return s.authCtx, s.err
}

// withAuth injects a caller the way SessionMiddleware would.
func withAuth(authCtx *entities.AuthContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authCtx != nil {
			c.Set(AuthContextKey, authCtx)
		}
		c.Next()
	}
}
