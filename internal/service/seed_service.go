package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// SeedService fills empty catalog tables from the JSON corpus shipped in
// the data directory. Non-empty tables are left untouched, so redeploys
// never duplicate or overwrite operator-edited data.
type SeedService struct {
	QuestionRepo *repository.QuestionRepository
	CollegeRepo  *repository.CollegeRepository
	ResourceRepo *repository.ResourceRepository
	Dir          string
}

func NewSeedService(questionRepo *repository.QuestionRepository, collegeRepo *repository.CollegeRepository, resourceRepo *repository.ResourceRepository, dir string) *SeedService {
	return &SeedService{
		QuestionRepo: questionRepo,
		CollegeRepo:  collegeRepo,
		ResourceRepo: resourceRepo,
		Dir:          dir,
	}
}

type seedQuestion struct {
	Question  string                    `json:"question"`
	Options   map[string]string         `json:"options"`
	AnswerKey string                    `json:"answer_key"`
	Traits    map[string]map[string]int `json:"traits"`
}

type seedCollege struct {
	Name         string `json:"name"`
	Country      string `json:"country"`
	City         string `json:"city"`
	IsGovernment bool   `json:"is_government"`
	Courses      string `json:"courses"`
	FeesPerYear  int    `json:"fees_per_year"`
	Scholarships string `json:"scholarships"`
	Placements   string `json:"placements"`
	Website      string `json:"website"`
}

type seedResource struct {
	CourseCode string `json:"course_code"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	IsFree     bool   `json:"is_free"`
}

func (s *SeedService) Run() error {
	if err := s.seedQuestions(); err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}
	if err := s.seedColleges(); err != nil {
		return fmt.Errorf("seed colleges: %w", err)
	}
	if err := s.seedResources(); err != nil {
		return fmt.Errorf("seed resources: %w", err)
	}
	return nil
}

func (s *SeedService) seedQuestions() error {
	count, err := s.QuestionRepo.Count()
	if err != nil || count > 0 {
		return err
	}

	files := map[model.TestKind]string{
		model.KindAptitude:    "questions_aptitude.json",
		model.KindPersonality: "questions_personality.json",
	}

	var records []model.TestQuestion
	for kind, file := range files {
		var parsed []seedQuestion
		if err := s.readJSON(file, &parsed); err != nil {
			return err
		}
		for _, q := range parsed {
			options, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			record := model.TestQuestion{
				Kind:      kind,
				Question:  q.Question,
				Options:   options,
				AnswerKey: q.AnswerKey,
			}
			if len(q.Traits) > 0 {
				record.TraitMap, err = json.Marshal(q.Traits)
				if err != nil {
					return err
				}
			}
			records = append(records, record)
		}
	}

	if err := s.QuestionRepo.CreateBatch(records); err != nil {
		return err
	}
	logger.Log.Info("Seeded test questions", zap.Int("count", len(records)))
	return nil
}

func (s *SeedService) seedColleges() error {
	count, err := s.CollegeRepo.Count()
	if err != nil || count > 0 {
		return err
	}

	var parsed []seedCollege
	if err := s.readJSON("colleges.json", &parsed); err != nil {
		return err
	}

	colleges := make([]model.College, len(parsed))
	for i, c := range parsed {
		colleges[i] = model.College{
			Name:         c.Name,
			Country:      c.Country,
			City:         c.City,
			IsGovernment: c.IsGovernment,
			Courses:      c.Courses,
			FeesPerYear:  c.FeesPerYear,
			Scholarships: c.Scholarships,
			Placements:   c.Placements,
			Website:      c.Website,
		}
	}

	if err := s.CollegeRepo.CreateBatch(colleges); err != nil {
		return err
	}
	logger.Log.Info("Seeded colleges", zap.Int("count", len(colleges)))
	return nil
}

func (s *SeedService) seedResources() error {
	count, err := s.ResourceRepo.Count()
	if err != nil || count > 0 {
		return err
	}

	var parsed []seedResource
	if err := s.readJSON("resources.json", &parsed); err != nil {
		return err
	}

	resources := make([]model.Resource, len(parsed))
	for i, r := range parsed {
		resources[i] = model.Resource{
			CourseCode: r.CourseCode,
			Title:      r.Title,
			URL:        r.URL,
			IsFree:     r.IsFree,
		}
	}

	if err := s.ResourceRepo.CreateBatch(resources); err != nil {
		return err
	}
	logger.Log.Info("Seeded resources", zap.Int("count", len(resources)))
	return nil
}

func (s *SeedService) readJSON(name string, out interface{}) error {
	raw, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
