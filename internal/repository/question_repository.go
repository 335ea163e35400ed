package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindByKind returns questions of one kind in seeded (id) order, capped
// at limit when limit > 0.
func (r *QuestionRepository) FindByKind(kind model.TestKind, limit int) ([]model.TestQuestion, error) {
	var questions []model.TestQuestion
	q := r.DB.Where("kind = ?", kind).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.TestQuestion{}).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) CreateBatch(questions []model.TestQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.Create(&questions).Error
}
