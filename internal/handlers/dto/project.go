package dto

import (
	"time"

	"github.com/lib/pq"

	"github.com/hacklog-app/hacklog/internal/models"
	"github.com/hacklog-app/hacklog/internal/services"
)

const dateLayout = "2006-01-02"

// CreateProjectRequest carries a full project payload. Server-owned
// fields (id, userId, timestamps) have no place here; the strict
// decoder rejects them.
type CreateProjectRequest struct {
	HackathonName string   `json:"hackathonName" binding:"required"`
	ProjectTitle  string   `json:"projectTitle" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Date          string   `json:"date" binding:"required,datetime=2006-01-02"`
	Achievement   *string  `json:"achievement"`
	TeamSize      *int     `json:"teamSize" binding:"omitempty,gt=0"`
	Role          *string  `json:"role"`
	DemoURL       *string  `json:"demoUrl"`
	GithubURL     *string  `json:"githubUrl"`
	DevpostURL    *string  `json:"devpostUrl"`
	Technologies  []string `json:"technologies"`
	ImageURL      *string  `json:"imageUrl"`
}

func (r *CreateProjectRequest) ToModel() (*models.Project, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, err
	}
	return &models.Project{
		HackathonName: r.HackathonName,
		ProjectTitle:  r.ProjectTitle,
		Description:   r.Description,
		Date:          date,
		Achievement:   r.Achievement,
		TeamSize:      r.TeamSize,
		Role:          r.Role,
		DemoURL:       r.DemoURL,
		GithubURL:     r.GithubURL,
		DevpostURL:    r.DevpostURL,
		Technologies:  pq.StringArray(r.Technologies),
		ImageURL:      r.ImageURL,
	}, nil
}

// UpdateProjectRequest is the partial form: every field optional, but
// any field present obeys the same rules as on creation.
type UpdateProjectRequest struct {
	HackathonName *string   `json:"hackathonName" binding:"omitempty,min=1"`
	ProjectTitle  *string   `json:"projectTitle" binding:"omitempty,min=1"`
	Description   *string   `json:"description" binding:"omitempty,min=1"`
	Date          *string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Achievement   *string   `json:"achievement"`
	TeamSize      *int      `json:"teamSize" binding:"omitempty,gt=0"`
	Role          *string   `json:"role"`
	DemoURL       *string   `json:"demoUrl"`
	GithubURL     *string   `json:"githubUrl"`
	DevpostURL    *string   `json:"devpostUrl"`
	Technologies  *[]string `json:"technologies"`
	ImageURL      *string   `json:"imageUrl"`
}

func (r *UpdateProjectRequest) ToUpdate() (services.ProjectUpdate, error) {
	update := services.ProjectUpdate{
		HackathonName: r.HackathonName,
		ProjectTitle:  r.ProjectTitle,
		Description:   r.Description,
		Achievement:   r.Achievement,
		TeamSize:      r.TeamSize,
		Role:          r.Role,
		DemoURL:       r.DemoURL,
		GithubURL:     r.GithubURL,
		DevpostURL:    r.DevpostURL,
		Technologies:  r.Technologies,
		ImageURL:      r.ImageURL,
	}
	if r.Date != nil {
		date, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return services.ProjectUpdate{}, err
		}
		update.Date = &date
	}
	return update, nil
}
