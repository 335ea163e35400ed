package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
)

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
}

func NewResourceService(resourceRepo *repository.ResourceRepository) *ResourceService {
	return &ResourceService{ResourceRepo: resourceRepo}
}

func (s *ResourceService) FreeByCourse(courseCode string) ([]model.Resource, error) {
	return s.ResourceRepo.FindFreeByCourse(courseCode)
}
