package assessment

import "github.com/edututor/backend/internal/models"

// NoAnswerText is reported in feedback when an answer is missing or outside
// the option range.
const NoAnswerText = "No answer"

// Evaluate scores an answered quiz. Answers pair with questions by position;
// a missing-answer sentinel or out-of-range index is simply incorrect, never
// an error. An empty quiz or answer set yields the Incomplete sentinel
// result so the percentage division never sees a zero total.
func Evaluate(quiz []models.QuizQuestion, answers models.AnswerSet) models.EvaluationResult {
	if len(quiz) == 0 || len(answers) == 0 {
		return models.EvaluationResult{
			TotalQuestions:   len(quiz),
			PerformanceLevel: models.PerformanceIncomplete,
			Feedback:         []models.QuestionFeedback{},
		}
	}

	pairs := min(len(quiz), len(answers))
	correctCount := 0
	feedback := make([]models.QuestionFeedback, 0, pairs)

	for i := 0; i < pairs; i++ {
		q := quiz[i]
		answer := answers[i]

		isCorrect := answer == q.Correct
		if isCorrect {
			correctCount++
		}

		yourAnswer := NoAnswerText
		if answer >= 0 && answer < len(q.Options) {
			yourAnswer = q.Options[answer]
		}

		correctAnswer := ""
		if q.Correct >= 0 && q.Correct < len(q.Options) {
			correctAnswer = q.Options[q.Correct]
		}

		explanation := q.Explanation
		if explanation == "" {
			explanation = "No explanation available"
		}
		topic := q.Topic
		if topic == "" {
			topic = "General"
		}

		feedback = append(feedback, models.QuestionFeedback{
			QuestionID:    i,
			Question:      q.Text,
			YourAnswer:    yourAnswer,
			CorrectAnswer: correctAnswer,
			IsCorrect:     isCorrect,
			Explanation:   explanation,
			Topic:         topic,
		})
	}

	percentage := float64(correctCount) / float64(len(quiz)) * 100

	return models.EvaluationResult{
		Score:            percentage,
		Percentage:       percentage,
		TotalQuestions:   len(quiz),
		CorrectAnswers:   correctCount,
		PerformanceLevel: PerformanceFor(percentage),
		Feedback:         feedback,
		Recommendations:  Recommend(percentage, feedback),
	}
}

// PerformanceFor classifies a percentage into a performance level. Lower
// bounds are inclusive and checked top-down.
func PerformanceFor(percentage float64) models.PerformanceLevel {
	switch {
	case percentage >= 90:
		return models.PerformanceExcellent
	case percentage >= 80:
		return models.PerformanceVeryGood
	case percentage >= 70:
		return models.PerformanceGood
	case percentage >= 60:
		return models.PerformanceFair
	default:
		return models.PerformanceNeedsImprovement
	}
}
