package models

import (
	"time"

	"github.com/lib/pq"
)

// Project is one hackathon entry on a user's portfolio. UserID is set
// once at creation and never reassigned. Technologies keeps the order
// the user entered and is stored as text[], never NULL.
type Project struct {
	ID            int            `json:"id" gorm:"primaryKey"`
	UserID        string         `json:"userId" gorm:"not null;index"`
	HackathonName string         `json:"hackathonName" gorm:"not null"`
	ProjectTitle  string         `json:"projectTitle" gorm:"not null"`
	Description   string         `json:"description" gorm:"not null"`
	Date          time.Time      `json:"date" gorm:"type:date;not null"`
	Achievement   *string        `json:"achievement,omitempty"`
	TeamSize      *int           `json:"teamSize,omitempty"`
	Role          *string        `json:"role,omitempty"`
	DemoURL       *string        `json:"demoUrl,omitempty"`
	GithubURL     *string        `json:"githubUrl,omitempty"`
	DevpostURL    *string        `json:"devpostUrl,omitempty"`
	Technologies  pq.StringArray `json:"technologies" gorm:"type:text[]"`
	ImageURL      *string        `json:"imageUrl,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
