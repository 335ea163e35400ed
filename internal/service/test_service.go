package service

import (
	"career_advisor_backend/internal/engine"
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// questionsPerTest is how many questions one test run presents.
const questionsPerTest = 20

type TestService struct {
	QuestionRepo *repository.QuestionRepository
	SessionRepo  *repository.TestSessionRepository
	Cache        *RecommendationCache
}

func NewTestService(questionRepo *repository.QuestionRepository, sessionRepo *repository.TestSessionRepository, cache *RecommendationCache) *TestService {
	return &TestService{
		QuestionRepo: questionRepo,
		SessionRepo:  sessionRepo,
		Cache:        cache,
	}
}

// QuestionView is a question as shown to a test taker: no answer key, no
// trait map.
type QuestionView struct {
	ID       uint            `json:"id"`
	Question string          `json:"question"`
	Options  json.RawMessage `json:"options"`
}

type StartedTest struct {
	SessionID uint           `json:"session_id"`
	Questions []QuestionView `json:"questions"`
}

type SubmitResult struct {
	Kind   model.TestKind `json:"kind"`
	Score  int            `json:"score,omitempty"`
	OutOf  int            `json:"out_of,omitempty"`
	Traits map[string]int `json:"traits,omitempty"`
}

// Start creates a test session over the first questions of the requested
// kind and returns them stripped of scoring data.
func (s *TestService) Start(userID uint, kind model.TestKind) (*StartedTest, error) {
	if kind != model.KindAptitude && kind != model.KindPersonality {
		return nil, util.ErrInvalidTestKind
	}

	questions, err := s.QuestionRepo.FindByKind(kind, questionsPerTest)
	if err != nil {
		return nil, err
	}

	session := &model.TestSession{
		UserID:     userID,
		Kind:       kind,
		TotalMarks: len(questions),
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}

	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		}
	}
	return &StartedTest{SessionID: session.ID, Questions: views}, nil
}

// Submit scores an answer submission against the session's question set,
// persists the outcome on the session, and drops the user's cached
// recommendations.
func (s *TestService) Submit(ctx context.Context, userID, sessionID uint, answers map[uint]string) (*SubmitResult, error) {
	session, err := s.SessionRepo.FindByIDAndUser(sessionID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	} else if err != nil {
		return nil, err
	}

	stored, err := s.QuestionRepo.FindByKind(session.Kind, 0)
	if err != nil {
		return nil, err
	}
	questions := toEngineQuestions(stored)

	var result *SubmitResult
	if session.Kind == model.KindAptitude {
		score := engine.ScoreAptitude(answers, questions)
		session.Score = score
		session.ResultJSON, _ = json.Marshal(map[string]int{"score": score})
		result = &SubmitResult{Kind: session.Kind, Score: score, OutOf: session.TotalMarks}
	} else {
		traits := engine.ScorePersonality(answers, questions)
		session.Score = 0
		session.ResultJSON, _ = json.Marshal(traits)
		result = &SubmitResult{Kind: session.Kind, Traits: traits}
	}

	if err := s.SessionRepo.Update(session); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, userID)
	return result, nil
}

// toEngineQuestions maps stored records into the engine's read contract.
func toEngineQuestions(stored []model.TestQuestion) []engine.Question {
	questions := make([]engine.Question, len(stored))
	for i, q := range stored {
		questions[i] = engine.Question{
			ID:        q.ID,
			AnswerKey: q.AnswerKey,
			Traits:    q.DecodeTraitMap(),
		}
	}
	return questions
}
