package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathstarter/backend/internal/session"
	"go.uber.org/zap"
)

const sessionCookieName = "session_token"

// Context keys under which RequireAuth stores the resolved identity.
const (
	ctxKeyUserID   = "userID"
	ctxKeyUserName = "userName"
)

// RequireAuth resolves the session cookie and rejects the request with a
// uniform 401 when no valid session exists.
func RequireAuth(store session.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sess, err := store.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Error("session lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ctxKeyUserID, sess.UserID)
		c.Set(ctxKeyUserName, sess.UserName)
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
