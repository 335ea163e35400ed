package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

// FindFreeByCourse lists the free resources attached to a course code.
func (r *ResourceRepository) FindFreeByCourse(courseCode string) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.DB.Where("course_code = ? AND is_free = ?", courseCode, true).Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Resource{}).Count(&count).Error
	return count, err
}

func (r *ResourceRepository) CreateBatch(resources []model.Resource) error {
	if len(resources) == 0 {
		return nil
	}
	return r.DB.Create(&resources).Error
}
