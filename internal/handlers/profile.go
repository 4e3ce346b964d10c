package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hacklog-app/hacklog/internal/handlers/dto"
	"github.com/hacklog-app/hacklog/internal/middleware"
	"github.com/hacklog-app/hacklog/internal/models"
	"github.com/hacklog-app/hacklog/internal/services"
)

type ProfileHandler struct {
	store services.Storage
}

func NewProfileHandler(store services.Storage) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// PublicProfile is the unauthenticated portfolio view: the user minus
// their email, plus every project they own.
func (h *ProfileHandler) PublicProfile(c *gin.Context) {
	username := c.Param("username")

	user, err := h.store.GetUserByUsername(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	projects, err := h.store.GetProjectsByUserID(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     formatPublicUser(user),
		"projects": projects,
	})
}

// UpdateUsername claims a public-profile slug for the caller. A taken
// username is rejected up front for a clean message; the store's
// unique index backstops the race and maps to the same conflict.
func (h *ProfileHandler) UpdateUsername(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)

	var req dto.UpdateUsernameRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update username"})
		return
	}
	if existing != nil && existing.ID != userID {
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	}

	user, err := h.store.UpdateUsername(userID, req.Username)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update username"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile sets the caller's bio.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)

	var req dto.UpdateProfileRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UpdateProfile(userID, req.Bio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// formatPublicUser strips the email from a user for the public read
// path.
func formatPublicUser(user *models.User) gin.H {
	return gin.H{
		"id":              user.ID,
		"firstName":       user.FirstName,
		"lastName":        user.LastName,
		"profileImageUrl": user.ProfileImageURL,
		"username":        user.Username,
		"bio":             user.Bio,
		"createdAt":       user.CreatedAt,
		"updatedAt":       user.UpdatedAt,
	}
}
