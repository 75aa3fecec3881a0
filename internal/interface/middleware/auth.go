package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/logitrack-io/logitrack/pkg/helpers"
	"github.com/logitrack-io/logitrack/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth is the gate in front of every owner-scoped operation. It reads
// the access_token cookie, validates signature and identity claims,
// and (when Redis is configured) requires a live server-side session
// whose id matches the token. Every failure mode collapses into the
// same 401 so callers cannot distinguish a missing cookie from a bad
// signature or a revoked session.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			unauthorized(c)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			unauthorized(c)
			return
		}

		if rdb != nil {
			key := "user:session:" + claims.UserID
			data, rErr := rdb.HGetAll(c.Request.Context(), key).Result()
			if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
				unauthorized(c)
				return
			}
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
	c.AbortWithStatusJSON(resp.Status, resp)
}
