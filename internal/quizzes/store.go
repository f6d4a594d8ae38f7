package quizzes

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/edututor/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Attempt History ──────────────────────────────────────

func (s *Store) RecordAttempt(attempt *models.AttemptDetail) (int64, error) {
	answersJSON, err := json.Marshal(attempt.Answers)
	if err != nil {
		return 0, fmt.Errorf("marshal answers: %w", err)
	}
	feedbackJSON, err := json.Marshal(attempt.Feedback)
	if err != nil {
		return 0, fmt.Errorf("marshal feedback: %w", err)
	}

	var id int64
	err = s.db.QueryRow(
		`INSERT INTO quiz_attempts
		   (user_id, subject, topic, score, total_questions, percentage,
		    performance_level, answers, feedback, adaptive, diagnostic)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		attempt.UserID, attempt.Subject, attempt.Topic, attempt.Score,
		attempt.TotalQuestions, attempt.Percentage, attempt.PerformanceLevel,
		answersJSON, feedbackJSON, attempt.Adaptive, attempt.Diagnostic,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("record attempt: %w", err)
	}
	return id, nil
}

// RecentPercentages returns up to limit percentages for a user and subject,
// most recent first. The ordering is what the difficulty adapter expects.
func (s *Store) RecentPercentages(userID int64, subject string, limit int) ([]float64, error) {
	rows, err := s.db.Query(
		`SELECT percentage FROM quiz_attempts
		 WHERE user_id = $1 AND subject = $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		userID, subject, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent percentages: %w", err)
	}
	defer rows.Close()

	var percentages []float64
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan percentage: %w", err)
		}
		percentages = append(percentages, p)
	}
	return percentages, rows.Err()
}

func (s *Store) ListAttempts(userID int64, limit, offset int) ([]models.QuizAttempt, int, error) {
	var total int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM quiz_attempts WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count attempts: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT id, user_id, subject, COALESCE(topic, ''), score, total_questions,
		        percentage, performance_level, adaptive, diagnostic, created_at
		 FROM quiz_attempts
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.QuizAttempt
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Subject, &a.Topic, &a.Score,
			&a.TotalQuestions, &a.Percentage, &a.PerformanceLevel,
			&a.Adaptive, &a.Diagnostic, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, total, rows.Err()
}

// ── User Profiles ────────────────────────────────────────

// GetProfile returns the stored profile, or the Beginner default for a user
// that has never completed a diagnostic.
func (s *Store) GetProfile(userID int64) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.db.QueryRow(
		`SELECT user_id, student_level, difficulty_level, diagnostic_completed, updated_at
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.StudentLevel, &p.DifficultyLevel, &p.DiagnosticCompleted, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return &models.UserProfile{
			UserID:          userID,
			StudentLevel:    models.ProficiencyBeginner,
			DifficultyLevel: 1,
			UpdatedAt:       time.Now().UTC(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (s *Store) UpsertProfile(userID int64, level models.ProficiencyLevel, difficulty int) error {
	_, err := s.db.Exec(
		`INSERT INTO user_profiles (user_id, student_level, difficulty_level, diagnostic_completed, updated_at)
		 VALUES ($1, $2, $3, TRUE, NOW())
		 ON CONFLICT (user_id) DO UPDATE
		 SET student_level = EXCLUDED.student_level,
		     difficulty_level = EXCLUDED.difficulty_level,
		     diagnostic_completed = TRUE,
		     updated_at = NOW()`,
		userID, level, difficulty,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
