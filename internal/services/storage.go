package services

import (
	"errors"
	"time"

	"github.com/hacklog-app/hacklog/internal/models"
)

// ErrDuplicate is returned when a write would violate a uniqueness
// constraint (user id aside): email or username already owned by a
// different user.
var ErrDuplicate = errors.New("duplicate value for unique field")

// ProjectUpdate is a partial project payload. Nil fields are left
// untouched; Technologies replaces the whole list when present.
type ProjectUpdate struct {
	HackathonName *string
	ProjectTitle  *string
	Description   *string
	Date          *time.Time
	Achievement   *string
	TeamSize      *int
	Role          *string
	DemoURL       *string
	GithubURL     *string
	DevpostURL    *string
	Technologies  *[]string
	ImageURL      *string
}

// Storage is the single gateway to the persisted users and projects
// collections. Lookups report absence as (nil, nil), not as an error.
// Implementations: database.Database (Postgres) and memstore.Store
// (tests).
type Storage interface {
	GetUser(id string) (*models.User, error)
	UpsertUser(user *models.User) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUsername(id string, username string) (*models.User, error)
	UpdateProfile(id string, bio *string) (*models.User, error)

	GetProject(id int) (*models.Project, error)
	GetProjectsByUserID(userID string) ([]models.Project, error)
	CreateProject(userID string, project *models.Project) error
	UpdateProject(id int, update ProjectUpdate) (*models.Project, error)
	DeleteProject(id int) (bool, error)
	SearchProjects(userID string, query string) ([]models.Project, error)
}
