package database

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/hacklog-app/hacklog/internal/models"
	"github.com/hacklog-app/hacklog/internal/services"
)

func (d *Database) GetProject(id int) (*models.Project, error) {
	var project models.Project
	err := d.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (d *Database) GetProjectsByUserID(userID string) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := d.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (d *Database) CreateProject(userID string, project *models.Project) error {
	project.ID = 0
	project.UserID = userID
	if project.Technologies == nil {
		project.Technologies = pq.StringArray{}
	}
	return d.db.Create(project).Error
}

// UpdateProject overwrites exactly the fields present in the partial
// payload; updated_at is refreshed either way. Returns (nil, nil) for
// an unknown id.
func (d *Database) UpdateProject(id int, update services.ProjectUpdate) (*models.Project, error) {
	updates := map[string]interface{}{}
	if update.HackathonName != nil {
		updates["hackathon_name"] = *update.HackathonName
	}
	if update.ProjectTitle != nil {
		updates["project_title"] = *update.ProjectTitle
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}
	if update.Achievement != nil {
		updates["achievement"] = *update.Achievement
	}
	if update.TeamSize != nil {
		updates["team_size"] = *update.TeamSize
	}
	if update.Role != nil {
		updates["role"] = *update.Role
	}
	if update.DemoURL != nil {
		updates["demo_url"] = *update.DemoURL
	}
	if update.GithubURL != nil {
		updates["github_url"] = *update.GithubURL
	}
	if update.DevpostURL != nil {
		updates["devpost_url"] = *update.DevpostURL
	}
	if update.Technologies != nil {
		updates["technologies"] = pq.StringArray(*update.Technologies)
	}
	if update.ImageURL != nil {
		updates["image_url"] = *update.ImageURL
	}
	if len(updates) == 0 {
		updates["updated_at"] = time.Now()
	}

	res := d.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return d.GetProject(id)
}

func (d *Database) DeleteProject(id int) (bool, error) {
	res := d.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *Database) SearchProjects(userID string, query string) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := d.db.
		Where("user_id = ? AND project_title LIKE ?", userID, "%"+query+"%").
		Order("date DESC, id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}
