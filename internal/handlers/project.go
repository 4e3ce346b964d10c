package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hacklog-app/hacklog/internal/handlers/dto"
	"github.com/hacklog-app/hacklog/internal/middleware"
	"github.com/hacklog-app/hacklog/internal/services"
)

type ProjectHandler struct {
	store services.Storage
}

func NewProjectHandler(store services.Storage) *ProjectHandler {
	return &ProjectHandler{store: store}
}

// ListProjects returns the caller's projects, newest date first.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)

	projects, err := h.store.GetProjectsByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project, owner only.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.store.GetProject(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if project.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to access this project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject stores a new project owned by the caller.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)

	var req dto.CreateProjectRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := req.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	if err := h.store.CreateProject(userID, project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject applies a partial payload to a project the caller owns.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.store.GetProject(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if project.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to update this project"})
		return
	}

	var req dto.UpdateProjectRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := req.ToUpdate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	updated, err := h.store.UpdateProject(id, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProject removes a project the caller owns. Immediate and
// unrecoverable.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.store.GetProject(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if project.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to delete this project"})
		return
	}

	if _, err := h.store.DeleteProject(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchProjects filters the caller's projects by title substring; an
// empty query matches everything.
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(string)
	query := c.Query("q")

	projects, err := h.store.SearchProjects(userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}
