package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
	Cache       *RecommendationCache
}

func NewProfileService(profileRepo *repository.ProfileRepository, cache *RecommendationCache) *ProfileService {
	return &ProfileService{
		ProfileRepo: profileRepo,
		Cache:       cache,
	}
}

// Submit stores a new form submission. Earlier submissions are kept; the
// recommender always reads the latest. Cached recommendations for the
// user are stale after this and get dropped.
func (s *ProfileService) Submit(ctx context.Context, profile *model.Profile) error {
	if err := s.ProfileRepo.Create(profile); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, profile.UserID)
	return nil
}

func (s *ProfileService) Latest(userID uint) (*model.Profile, error) {
	profile, err := s.ProfileRepo.FindLatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	return profile, err
}
