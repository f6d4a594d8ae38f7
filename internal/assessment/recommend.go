package assessment

import (
	"fmt"

	"github.com/edututor/backend/internal/models"
)

// Recommend derives study advice from an evaluation: a fixed set of lines
// for the score band, plus one line naming the most-missed topic when any
// answers were wrong.
func Recommend(percentage float64, feedback []models.QuestionFeedback) []string {
	var recommendations []string

	switch {
	case percentage >= 90:
		recommendations = append(recommendations,
			"Excellent work! Consider advancing to more challenging topics.",
			"You might be ready for advanced level courses.")
	case percentage >= 70:
		recommendations = append(recommendations,
			"Good performance! Review the questions you missed.",
			"Focus on strengthening weak areas for even better results.")
	default:
		recommendations = append(recommendations,
			"Consider reviewing fundamental concepts.",
			"Practice more problems in areas where you struggled.",
			"Don't hesitate to seek additional help or resources.")
	}

	// Tally misses per topic in encounter order. The strictly-greater
	// comparison below means the earliest topic wins a tie.
	missesByTopic := make(map[string]int)
	var topicOrder []string
	for _, item := range feedback {
		if item.IsCorrect {
			continue
		}
		if _, seen := missesByTopic[item.Topic]; !seen {
			topicOrder = append(topicOrder, item.Topic)
		}
		missesByTopic[item.Topic]++
	}

	weakestTopic := ""
	maxMisses := 0
	for _, topic := range topicOrder {
		if missesByTopic[topic] > maxMisses {
			maxMisses = missesByTopic[topic]
			weakestTopic = topic
		}
	}
	if weakestTopic != "" {
		recommendations = append(recommendations,
			fmt.Sprintf("Pay special attention to %s - this seems to be a challenging area.", weakestTopic))
	}

	return recommendations
}
