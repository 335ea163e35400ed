package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
)

type TestSessionRepository struct {
	DB *gorm.DB
}

func NewTestSessionRepository(db *gorm.DB) *TestSessionRepository {
	return &TestSessionRepository{DB: db}
}

func (r *TestSessionRepository) Create(session *model.TestSession) error {
	return r.DB.Create(session).Error
}

func (r *TestSessionRepository) FindByIDAndUser(id, userID uint) (*model.TestSession, error) {
	var session model.TestSession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	return &session, err
}

// FindLatestByUserAndKind returns the newest scored run of one test kind.
func (r *TestSessionRepository) FindLatestByUserAndKind(userID uint, kind model.TestKind) (*model.TestSession, error) {
	var session model.TestSession
	err := r.DB.Where("user_id = ? AND kind = ?", userID, kind).
		Order("id DESC").
		First(&session).Error
	return &session, err
}

func (r *TestSessionRepository) Update(session *model.TestSession) error {
	return r.DB.Save(session).Error
}
