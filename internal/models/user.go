package models

import (
	"time"
)

// User is a hacker account. The ID is issued by the external identity
// provider; rows are created or refreshed by the login upsert and never
// deleted here. Optional columns are pointers so NULL stays distinct
// from the empty string, and the unique indexes on email/username
// admit any number of NULLs.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Email           *string   `json:"email,omitempty" gorm:"uniqueIndex"`
	FirstName       *string   `json:"firstName,omitempty"`
	LastName        *string   `json:"lastName,omitempty"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty"`
	Username        *string   `json:"username,omitempty" gorm:"uniqueIndex"`
	Bio             *string   `json:"bio,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Projects []Project `json:"-" gorm:"foreignKey:UserID"`
}
