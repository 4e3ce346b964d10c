package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hacklog-app/hacklog/internal/models"
	"github.com/hacklog-app/hacklog/internal/services"
)

func (d *Database) GetUser(id string) (*models.User, error) {
	var user models.User
	err := d.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the user or, when the id already exists, merges
// the identity fields carried by the login event. Username and bio are
// owned by the user and survive re-login untouched.
func (d *Database) UpsertUser(user *models.User) (*models.User, error) {
	err := d.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, services.ErrDuplicate
		}
		return nil, err
	}
	return d.GetUser(user.ID)
}

func (d *Database) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := d.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) UpdateUsername(id string, username string) (*models.User, error) {
	res := d.db.Model(&models.User{}).Where("id = ?", id).Update("username", username)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, services.ErrDuplicate
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return d.GetUser(id)
}

func (d *Database) UpdateProfile(id string, bio *string) (*models.User, error) {
	res := d.db.Model(&models.User{}).Where("id = ?", id).Update("bio", bio)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return d.GetUser(id)
}
