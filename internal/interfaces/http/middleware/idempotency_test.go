package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"campus-market.backend/internal/domain/entities"
)

func idempotentRouter(caller *entities.AuthContext, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(withAuth(caller), IdempotencyMiddleware())
	r.POST("/x", handler)
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	calls := 0
	r := idempotentRouter(nil, func(c *gin.Context) { calls++; c.Status(http.StatusNoContent) })
	require.Equal(t, http.StatusNoContent, postWithKey(r, "").Code)
	require.Equal(t, http.StatusNoContent, postWithKey(r, "").Code)
	require.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_ReplaysFirstSuccess(t *testing.T) {
	srv := startMiniRedis(t)
	caller := &entities.AuthContext{UserID: uuid.New()}
	calls := 0
	r := idempotentRouter(caller, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"transaction": gin.H{"n": calls}})
	})

	first := postWithKey(r, "buy-1")
	require.Equal(t, http.StatusCreated, first.Code)

	second := postWithKey(r, "buy-1")
	require.Equal(t, http.StatusCreated, second.Code)
	require.Equal(t, "true", second.Header().Get("X-Idempotency-Hit"))
	require.JSONEq(t, first.Body.String(), second.Body.String())
	require.Equal(t, 1, calls)

	storageKey := "idempotency:" + caller.UserID.String() + ":buy-1"
	require.True(t, srv.Exists(storageKey))
	require.Equal(t, RetentionDuration, srv.TTL(storageKey))

	// a different user with the same key is a different request
	other := idempotentRouter(&entities.AuthContext{UserID: uuid.New()}, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	require.Equal(t, http.StatusCreated, postWithKey(other, "buy-1").Code)
	require.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_FailureAllowsRetry(t *testing.T) {
	srv := startMiniRedis(t)
	caller := &entities.AuthContext{UserID: uuid.New()}
	status := http.StatusBadRequest
	r := idempotentRouter(caller, func(c *gin.Context) { c.JSON(status, gin.H{"message": "x"}) })

	require.Equal(t, http.StatusBadRequest, postWithKey(r, "k").Code)
	require.False(t, srv.Exists("idempotency:"+caller.UserID.String()+":k"))

	status = http.StatusCreated
	require.Equal(t, http.StatusCreated, postWithKey(r, "k").Code)
}

func TestIdempotencyMiddleware_InFlightConflict(t *testing.T) {
	srv := startMiniRedis(t)
	caller := &entities.AuthContext{UserID: uuid.New()}
	require.NoError(t, srv.Set("idempotency:"+caller.UserID.String()+":k", processingMarker))

	r := idempotentRouter(caller, func(c *gin.Context) { c.Status(http.StatusCreated) })
	w := postWithKey(r, "k")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "ERR_IDEMPOTENCY_CONFLICT")
}

func TestIdempotencyMiddleware_UnreadableRecordIsReplaced(t *testing.T) {
	srv := startMiniRedis(t)
	caller := &entities.AuthContext{UserID: uuid.New()}
	storageKey := "idempotency:" + caller.UserID.String() + ":k"
	require.NoError(t, srv.Set(storageKey, "{not json"))

	r := idempotentRouter(caller, func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) })
	require.Equal(t, http.StatusCreated, postWithKey(r, "k").Code)

	val, err := srv.Get(storageKey)
	require.NoError(t, err)
	require.Contains(t, val, `"status":201`)
}

func TestIdempotencyMiddleware_RedisHooks(t *testing.T) {
	origGet, origSetNX := redisGet, redisSetNX
	t.Cleanup(func() {
		redisGet = origGet
		redisSetNX = origSetNX
	})

	redisGet = func(context.Context, string) (string, error) { return "", errors.New("connection refused") }
	calls := 0
	r := idempotentRouter(nil, func(c *gin.Context) { calls++; c.Status(http.StatusAccepted) })
	require.Equal(t, http.StatusAccepted, postWithKey(r, "k").Code)
	require.Equal(t, 1, calls)

	startMiniRedis(t)
	redisGet = origGet
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return false, nil }
	require.Equal(t, http.StatusConflict, postWithKey(r, "k").Code)
	require.Equal(t, 1, calls)
}
