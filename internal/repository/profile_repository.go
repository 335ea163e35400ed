package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) Create(profile *model.Profile) error {
	return r.DB.Create(profile).Error
}

// FindLatestByUser returns the most recent form submission for a user.
func (r *ProfileRepository) FindLatestByUser(userID uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").
		First(&profile).Error
	return &profile, err
}
