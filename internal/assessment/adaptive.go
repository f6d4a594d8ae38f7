package assessment

import (
	"fmt"
	"math/rand"

	"github.com/edututor/backend/internal/models"
)

// HistoryWindow is how many recent attempts feed the difficulty choice.
const HistoryWindow = 5

// LevelForAverage maps a recent-average percentage to a difficulty level.
// Bounds are inclusive: an average of exactly 65 selects level 2.
func LevelForAverage(avg float64) int {
	switch {
	case avg >= 85:
		return 3
	case avg >= 65:
		return 2
	default:
		return 1
	}
}

// Adapt builds a quiz whose difficulty level comes from the mean of the
// user's most recent attempt percentages. history must be ordered most
// recent first; only the newest five entries count. An empty history falls
// back to a medium-difficulty general assessment and the result is not
// marked adaptive.
func (s *Selector) Adapt(rng *rand.Rand, history []float64, subject string, count int) []models.QuizQuestion {
	if len(history) == 0 {
		return s.Select(rng, "General Assessment", 2, subject, count)
	}

	window := history
	if len(window) > HistoryWindow {
		window = window[:HistoryWindow]
	}
	sum := 0.0
	for _, p := range window {
		sum += p
	}
	avg := sum / float64(len(window))

	level := LevelForAverage(avg)
	topic := fmt.Sprintf("Adaptive %s Quiz", subject)

	quiz := s.Select(rng, topic, level, subject, count)
	for i := range quiz {
		quiz[i].Adaptive = true
		quiz[i].BasedOnPerformance = avg
	}
	return quiz
}

// ProficiencyForScore maps a diagnostic percentage to a starting proficiency
// level and its numeric difficulty level. This is submission-flow policy
// layered on Evaluate's output, not part of the adaptive engine proper.
func ProficiencyForScore(percentage float64) (models.ProficiencyLevel, int) {
	switch {
	case percentage >= 80:
		return models.ProficiencyAdvanced, 3
	case percentage >= 60:
		return models.ProficiencyIntermediate, 2
	default:
		return models.ProficiencyBeginner, 1
	}
}
