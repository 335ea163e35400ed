package service

import (
	"career_advisor_backend/internal/engine"
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type CollegeService struct {
	CollegeRepo *repository.CollegeRepository
}

func NewCollegeService(collegeRepo *repository.CollegeRepository) *CollegeService {
	return &CollegeService{CollegeRepo: collegeRepo}
}

// Search filters and ranks the catalog for one query. The engine's
// proximity annotation stays internal; callers get plain college records
// in ranked order.
func (s *CollegeService) Search(q engine.CollegeQuery) ([]model.College, error) {
	colleges, err := s.CollegeRepo.FindAll()
	if err != nil {
		return nil, err
	}

	ranked, err := engine.RankColleges(colleges, q)
	if err != nil {
		return nil, err
	}
	return engine.Project(ranked), nil
}

func (s *CollegeService) GetByID(id uint) (*model.College, error) {
	college, err := s.CollegeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCollegeNotFound
	}
	return college, err
}
