package service

import (
	"career_advisor_backend/internal/engine"
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
	"context"
	"encoding/json"
	"errors"
	"math"

	"gorm.io/gorm"
)

type RecommendationService struct {
	ProfileRepo *repository.ProfileRepository
	SessionRepo *repository.TestSessionRepository
	Catalog     *engine.Catalog
	Cache       *RecommendationCache
}

func NewRecommendationService(profileRepo *repository.ProfileRepository, sessionRepo *repository.TestSessionRepository, catalog *engine.Catalog, cache *RecommendationCache) *RecommendationService {
	return &RecommendationService{
		ProfileRepo: profileRepo,
		SessionRepo: sessionRepo,
		Catalog:     catalog,
		Cache:       cache,
	}
}

type CourseSuggestion struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Fit  int    `json:"fit"`
}

type Recommendations struct {
	Aptitude20  int                `json:"aptitude20"`
	Personality string             `json:"personality"`
	Courses     []CourseSuggestion `json:"courses"`
}

// ForUser assembles ranked course suggestions from the user's latest form
// submission and latest test runs. Missing test runs degrade to safe
// defaults; a missing form is the one hard error.
func (s *RecommendationService) ForUser(ctx context.Context, userID uint) (*Recommendations, error) {
	var cached Recommendations
	if s.Cache.Get(ctx, userID, &cached) {
		return &cached, nil
	}

	profile, err := s.ProfileRepo.FindLatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}

	aptitude20 := s.latestAptitude20(userID)
	personality := s.latestPersonality(userID)

	ranked := s.Catalog.RecommendCourses(
		profile.Stream,
		profile.BoardMarks,
		aptitude20,
		personality,
		profile.DreamCourse,
	)

	courses := make([]CourseSuggestion, len(ranked))
	for i, cf := range ranked {
		courses[i] = CourseSuggestion{
			Code: cf.Code,
			Name: s.Catalog.Label(cf.Code),
			Fit:  cf.Fit,
		}
	}

	recs := &Recommendations{
		Aptitude20:  aptitude20,
		Personality: personality,
		Courses:     courses,
	}
	s.Cache.Set(ctx, userID, recs)
	return recs, nil
}

// latestAptitude20 rescales the newest aptitude score onto 0-20. A session
// recorded without a question count falls back to the standard test length
// so a legacy row cannot divide by zero.
func (s *RecommendationService) latestAptitude20(userID uint) int {
	session, err := s.SessionRepo.FindLatestByUserAndKind(userID, model.KindAptitude)
	if err != nil {
		return 0
	}
	total := session.TotalMarks
	if total < 1 {
		total = questionsPerTest
	}
	return int(math.Round(float64(session.Score) / float64(total) * 20))
}

func (s *RecommendationService) latestPersonality(userID uint) string {
	session, err := s.SessionRepo.FindLatestByUserAndKind(userID, model.KindPersonality)
	if err != nil {
		return engine.DefaultTrait
	}
	traits := map[string]int{}
	if len(session.ResultJSON) > 0 {
		if err := json.Unmarshal(session.ResultJSON, &traits); err != nil {
			traits = map[string]int{}
		}
	}
	return engine.DominantTrait(traits)
}
