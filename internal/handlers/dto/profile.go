package dto

import (
	"errors"
	"regexp"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
}

// Validate enforces the slug alphabet; length is covered by the
// binding tags.
func (r *UpdateUsernameRequest) Validate() error {
	if !usernameRe.MatchString(r.Username) {
		return errors.New("username may only contain letters, numbers, underscores and hyphens")
	}
	return nil
}

type UpdateProfileRequest struct {
	Bio *string `json:"bio" binding:"omitempty,max=500"`
}
