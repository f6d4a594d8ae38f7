package quizzes

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/edututor/backend/internal/assessment"
	"github.com/edututor/backend/internal/generator"
	"github.com/edututor/backend/internal/models"
)

// AttemptStore is the persistence surface the service needs. *Store satisfies
// it; tests substitute an in-memory implementation.
type AttemptStore interface {
	RecordAttempt(attempt *models.AttemptDetail) (int64, error)
	RecentPercentages(userID int64, subject string, limit int) ([]float64, error)
	ListAttempts(userID int64, limit, offset int) ([]models.QuizAttempt, int, error)
	GetProfile(userID int64) (*models.UserProfile, error)
	UpsertProfile(userID int64, level models.ProficiencyLevel, difficulty int) error
}

type Service struct {
	store     AttemptStore
	selector  *assessment.Selector
	generator *generator.Generator
	newRNG    func() *rand.Rand
}

func NewService(store AttemptStore, selector *assessment.Selector, gen *generator.Generator) *Service {
	return &Service{
		store:     store,
		selector:  selector,
		generator: gen,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// ── Quiz Generation ──────────────────────────────────────

func (s *Service) GenerateQuiz(req models.GenerateQuizRequest) *models.QuizResponse {
	questions := s.selector.Select(s.newRNG(), req.Topic, req.DifficultyLevel, req.Subject, req.Count)
	return &models.QuizResponse{
		Questions: questions,
		Total:     len(questions),
		Requested: req.Count,
	}
}

func (s *Service) Diagnostic(req models.DiagnosticRequest) *models.QuizResponse {
	questions := s.selector.BuildDiagnostic(s.newRNG(), req.Count)
	return &models.QuizResponse{
		Questions: questions,
		Total:     len(questions),
		Requested: req.Count,
	}
}

func (s *Service) AdaptiveQuiz(req models.AdaptiveQuizRequest) (*models.QuizResponse, error) {
	subjectKey := assessment.NormalizeSubject(req.Subject)
	history, err := s.store.RecentPercentages(req.UserID, subjectKey, assessment.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("load attempt history: %w", err)
	}

	questions := s.selector.Adapt(s.newRNG(), history, req.Subject, req.Count)
	return &models.QuizResponse{
		Questions: questions,
		Total:     len(questions),
		Requested: req.Count,
	}, nil
}

// ── Evaluation ───────────────────────────────────────────

// Evaluate scores a submission and, for identified users, records the
// attempt. A diagnostic submission also places the user at a starting
// proficiency. Persistence failures are logged but never fail the scoring.
func (s *Service) Evaluate(req models.EvaluateRequest) *models.EvaluateResponse {
	result := assessment.Evaluate(req.Questions, req.Answers)

	resp := &models.EvaluateResponse{EvaluationResult: result}

	if req.Diagnostic {
		level, difficulty := assessment.ProficiencyForScore(result.Percentage)
		resp.StudentLevel = level
		resp.DifficultyLevel = difficulty
	}

	if req.UserID != 0 && result.PerformanceLevel != models.PerformanceIncomplete {
		s.persistAttempt(req, resp)
	}

	return resp
}

func (s *Service) persistAttempt(req models.EvaluateRequest, resp *models.EvaluateResponse) {
	subject := ""
	topic := ""
	adaptive := false
	if len(req.Questions) > 0 {
		subject = req.Questions[0].Subject
		topic = req.Questions[0].GeneratedTopic
		adaptive = req.Questions[0].Adaptive
	}

	attempt := &models.AttemptDetail{
		QuizAttempt: models.QuizAttempt{
			UserID:           req.UserID,
			Subject:          subject,
			Topic:            topic,
			Score:            resp.CorrectAnswers,
			TotalQuestions:   resp.TotalQuestions,
			Percentage:       resp.Percentage,
			PerformanceLevel: resp.PerformanceLevel,
			Adaptive:         adaptive,
			Diagnostic:       req.Diagnostic,
		},
		Answers:  req.Answers,
		Feedback: resp.Feedback,
	}

	if _, err := s.store.RecordAttempt(attempt); err != nil {
		log.Printf("WARN: record attempt for user %d: %v", req.UserID, err)
	}

	if req.Diagnostic {
		if err := s.store.UpsertProfile(req.UserID, resp.StudentLevel, resp.DifficultyLevel); err != nil {
			log.Printf("WARN: upsert profile for user %d: %v", req.UserID, err)
		}
	}
}

// ── History & Profiles ───────────────────────────────────

func (s *Service) Attempts(userID int64, limit, offset int) (*models.AttemptListResponse, error) {
	attempts, total, err := s.store.ListAttempts(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []models.QuizAttempt{}
	}
	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}
	return &models.AttemptListResponse{
		Attempts: attempts,
		Total:    total,
		Page:     page,
		PageSize: limit,
	}, nil
}

func (s *Service) Profile(userID int64) (*models.UserProfile, error) {
	return s.store.GetProfile(userID)
}

// ── Authoring ────────────────────────────────────────────

// GenerateCandidates produces reviewed-before-use question candidates from
// the backing model. Candidates are returned to the caller, never written
// into the serving bank.
func (s *Service) GenerateCandidates(ctx context.Context, req models.GenerateQuestionsRequest) (*models.GenerateQuestionsResponse, error) {
	subjectKey := assessment.NormalizeSubject(req.Subject)

	batch, usage, err := s.generator.GenerateQuestions(ctx, subjectKey, req.Difficulty, req.Topic, req.Count)
	if err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(batch.Questions))
	for _, gq := range batch.Questions {
		questions = append(questions, models.Question{
			Text:        gq.Question,
			Options:     gq.Options,
			Correct:     gq.Correct,
			Explanation: gq.Explanation,
			Topic:       gq.Topic,
		})
	}

	resp := &models.GenerateQuestionsResponse{
		Subject:    subjectKey,
		Difficulty: req.Difficulty,
		Questions:  questions,
		Model:      s.generator.ModelName(),
	}
	if usage != nil {
		resp.PromptTokens = usage.PromptTokens
		resp.OutputTokens = usage.OutputTokens
	}
	return resp, nil
}
