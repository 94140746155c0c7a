package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"muza-life.backend/pkg/redis"
)

const (
	// IdempotencyHeader carries the client-chosen retry key
	IdempotencyHeader = "Idempotency-Key"
	// lockDuration bounds how long a request may hold the processing lock
	lockDuration = 30 * time.Second
	// retentionDuration is how long a completed response is replayable
	retentionDuration = 24 * time.Hour
)

type bodyCapturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware makes retried mutating requests safe: the first
// request with a given key wins, a concurrent duplicate gets 409, and a
// later retry replays the captured response body.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		storageKey := fmt.Sprintf("idempotency:%d:%s", GetUserID(c), key)
		ctx := c.Request.Context()

		val, err := redis.Get(ctx, storageKey)
		if err == nil {
			if val == "processing" {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"code":    "ERR_IDEMPOTENCY_CONFLICT",
					"message": "request already in progress",
				})
				return
			}
			c.Header("Content-Type", "application/json")
			c.Header("X-Idempotency-Hit", "true")
			c.String(http.StatusOK, val)
			c.Abort()
			return
		}
		if !errors.Is(err, redis.Nil) {
			// degraded Redis must not block payments
			c.Next()
			return
		}

		acquired, err := redis.SetNX(ctx, storageKey, "processing", lockDuration)
		if err != nil || !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "ERR_IDEMPOTENCY_CONFLICT",
				"message": "request already in progress",
			})
			return
		}

		w := &bodyCapturingWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		// only successful responses are worth replaying; a failure unlocks
		// the key so the client can retry for real
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			_ = redis.Set(ctx, storageKey, w.body.String(), retentionDuration)
		} else {
			_ = redis.Del(ctx, storageKey)
		}
	}
}
