package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
)

type CollegeRepository struct {
	DB *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) *CollegeRepository {
	return &CollegeRepository{DB: db}
}

func (r *CollegeRepository) FindAll() ([]model.College, error) {
	var colleges []model.College
	err := r.DB.Find(&colleges).Error
	return colleges, err
}

func (r *CollegeRepository) FindByID(id uint) (*model.College, error) {
	var college model.College
	err := r.DB.First(&college, id).Error
	return &college, err
}

func (r *CollegeRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.College{}).Count(&count).Error
	return count, err
}

func (r *CollegeRepository) CreateBatch(colleges []model.College) error {
	if len(colleges) == 0 {
		return nil
	}
	return r.DB.Create(&colleges).Error
}
