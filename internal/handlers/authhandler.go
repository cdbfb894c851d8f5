package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathstarter/backend/internal/dtos"
	"github.com/pathstarter/backend/internal/services"
	"github.com/pathstarter/backend/internal/session"
	"go.uber.org/zap"
)

type AuthHandler struct {
	UserService *services.UserService
	Sessions    session.Store
	SessionTTL  time.Duration
	Logger      *zap.Logger
}

func NewAuthHandler(u *services.UserService, sessions session.Store, ttl time.Duration, logger *zap.Logger) *AuthHandler {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	return &AuthHandler{
		UserService: u,
		Sessions:    sessions,
		SessionTTL:  ttl,
		Logger:      logger,
	}
}

// Register is the POST /api/register endpoint.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	userID, err := h.UserService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Login is the POST /api/login endpoint. On success it issues a session
// and hands the token back as an HttpOnly cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}

	token, err := h.Sessions.Create(c.Request.Context(), user.ID, user.Name)
	if err != nil {
		h.Logger.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(h.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Logout is the POST /api/logout endpoint (authenticated). Destroying the
// session is best-effort reported: a store failure surfaces as 500, but the
// cookie is cleared either way.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err == nil {
		if destroyErr := h.Sessions.Destroy(c.Request.Context(), token); destroyErr != nil {
			h.Logger.Error("failed to destroy session", zap.Error(destroyErr))
			clearSessionCookie(c)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Profile is the GET /api/profile endpoint (authenticated).
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetUint(ctxKeyUserID)

	user, err := h.UserService.GetByID(userID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
