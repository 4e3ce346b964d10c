package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/hacklog-app/hacklog/internal/handlers/dto"
	"github.com/hacklog-app/hacklog/internal/middleware"
	"github.com/hacklog-app/hacklog/internal/models"
	"github.com/hacklog-app/hacklog/internal/services"
	"github.com/hacklog-app/hacklog/pkg/auth"
)

type AuthHandler struct {
	store      services.Storage
	jwtManager *auth.JWTManager
	redis      *redis.Client
}

func NewAuthHandler(store services.Storage, jwtMgr *auth.JWTManager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{store: store, jwtManager: jwtMgr, redis: rdb}
}

// Login verifies an identity token from the provider, upserts the user
// from its claims and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.jwtManager.VerifyIdentity(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity token"})
		return
	}

	user := &models.User{ID: claims.Subject}
	if claims.Email != "" {
		user.Email = &claims.Email
	}
	if claims.FirstName != "" {
		user.FirstName = &claims.FirstName
	}
	if claims.LastName != "" {
		user.LastName = &claims.LastName
	}
	if claims.ProfileImageURL != "" {
		user.ProfileImageURL = &claims.ProfileImageURL
	}

	stored, err := h.store.UpsertUser(user)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upsert user"})
		return
	}

	token, err := h.jwtManager.Generate(stored.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": stored, "token": token})
}

// Logout blacklists the session token's jti in Redis until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.jwtManager.Verify(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	h.redis.Set(context.Background(), "blacklist:"+claims.ID, 1, ttl)

	c.Status(http.StatusOK)
}

// GetMe returns the authenticated caller's account.
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)

	user, err := h.store.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
