package models

import "time"

// ── Attempt History Types ────────────────────────────────

type QuizAttempt struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	Subject          string           `json:"subject"`
	Topic            string           `json:"topic,omitempty"`
	Score            int              `json:"score"`
	TotalQuestions   int              `json:"total_questions"`
	Percentage       float64          `json:"percentage"`
	PerformanceLevel PerformanceLevel `json:"performance_level"`
	Adaptive         bool             `json:"adaptive"`
	Diagnostic       bool             `json:"diagnostic"`
	CreatedAt        time.Time        `json:"created_at"`
}

// AttemptDetail carries the serialized answers and feedback alongside the
// attempt summary. Answers and feedback are stored as JSON blobs.
type AttemptDetail struct {
	QuizAttempt
	Answers  AnswerSet          `json:"answers"`
	Feedback []QuestionFeedback `json:"feedback"`
}

type UserProfile struct {
	UserID              int64            `json:"user_id"`
	StudentLevel        ProficiencyLevel `json:"student_level"`
	DifficultyLevel     int              `json:"difficulty_level"`
	DiagnosticCompleted bool             `json:"diagnostic_completed"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// ── Response Types ───────────────────────────────────────

type AttemptListResponse struct {
	Attempts []QuizAttempt `json:"attempts"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
