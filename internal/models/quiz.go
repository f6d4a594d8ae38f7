package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties lists the bank tiers in ascending order. Pool extension
// and diagnostic allocation both walk this order.
var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

type PerformanceLevel string

const (
	PerformanceExcellent        PerformanceLevel = "Excellent"
	PerformanceVeryGood         PerformanceLevel = "Very Good"
	PerformanceGood             PerformanceLevel = "Good"
	PerformanceFair             PerformanceLevel = "Fair"
	PerformanceNeedsImprovement PerformanceLevel = "Needs Improvement"
	PerformanceIncomplete       PerformanceLevel = "Incomplete"
)

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "Advanced"
)

// NoAnswer is the AnswerSet sentinel for a question the user left blank.
const NoAnswer = -1

// ── Core Structs ───────────────────────────────────────

// Question is one bank record. Correct is a 0-based index into Options.
type Question struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Topic       string   `json:"topic"`
}

// Clone returns a copy that shares no memory with the receiver.
func (q Question) Clone() Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	return c
}

// QuizQuestion is a bank question copied into a generated quiz and stamped
// with selection metadata. Stamping a QuizQuestion never touches the bank.
type QuizQuestion struct {
	Question
	Subject            string     `json:"subject"`
	Difficulty         Difficulty `json:"difficulty"`
	GeneratedTopic     string     `json:"generated_topic,omitempty"`
	Adaptive           bool       `json:"adaptive,omitempty"`
	BasedOnPerformance float64    `json:"based_on_performance,omitempty"`
}

// AnswerSet holds the selected option index per quiz position, or NoAnswer.
type AnswerSet []int

type QuestionFeedback struct {
	QuestionID    int    `json:"question_id"`
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	Topic         string `json:"topic"`
}

type EvaluationResult struct {
	Score            float64            `json:"score"`
	Percentage       float64            `json:"percentage"`
	TotalQuestions   int                `json:"total_questions"`
	CorrectAnswers   int                `json:"correct_answers"`
	PerformanceLevel PerformanceLevel   `json:"performance_level"`
	Feedback         []QuestionFeedback `json:"feedback"`
	Recommendations  []string           `json:"recommendations,omitempty"`
}

// ── Request Types ─────────────────────────────────────

type GenerateQuizRequest struct {
	Topic           string `json:"topic"`
	DifficultyLevel int    `json:"difficulty_level"`
	Subject         string `json:"subject"`
	Count           int    `json:"count"`
}

type DiagnosticRequest struct {
	Count int `json:"count"`
}

type AdaptiveQuizRequest struct {
	UserID  int64  `json:"user_id"`
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

type EvaluateRequest struct {
	UserID     int64          `json:"user_id,omitempty"`
	Questions  []QuizQuestion `json:"questions"`
	Answers    AnswerSet      `json:"answers"`
	Diagnostic bool           `json:"diagnostic,omitempty"`
}

// ── Response Types ────────────────────────────────────

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
	Total     int            `json:"total"`
	Requested int            `json:"requested"`
}

// EvaluateResponse is the evaluation plus, for diagnostic submissions, the
// proficiency placement derived from the overall percentage.
type EvaluateResponse struct {
	EvaluationResult
	StudentLevel    ProficiencyLevel `json:"student_level,omitempty"`
	DifficultyLevel int              `json:"difficulty_level,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
