package assessment

import (
	"strings"
	"testing"

	"github.com/edututor/backend/internal/models"
)

func fb(topic string, correct bool) models.QuestionFeedback {
	return models.QuestionFeedback{Topic: topic, IsCorrect: correct}
}

func TestRecommendBandLineCounts(t *testing.T) {
	tests := []struct {
		percentage float64
		wantLines  int
	}{
		{95, 2},
		{90, 2},
		{80, 2},
		{70, 2},
		{69, 3},
		{40, 3},
	}

	for _, tt := range tests {
		recs := Recommend(tt.percentage, nil)
		if len(recs) != tt.wantLines {
			t.Errorf("Recommend(%v) returned %d lines, want %d", tt.percentage, len(recs), tt.wantLines)
		}
	}
}

func TestRecommendWeakTopicDetection(t *testing.T) {
	feedback := []models.QuestionFeedback{
		fb("Algebra", false),
		fb("Geometry", true),
		fb("Algebra", false),
		fb("Geometry", false),
	}

	recs := Recommend(50, feedback)
	last := recs[len(recs)-1]
	if !strings.Contains(last, "Pay special attention to Algebra") {
		t.Errorf("weak-topic line = %q, want Algebra named", last)
	}
}

func TestRecommendTieGoesToEarliestTopic(t *testing.T) {
	feedback := []models.QuestionFeedback{
		fb("Geometry", false),
		fb("Algebra", false),
		fb("Calculus", true),
	}

	recs := Recommend(30, feedback)
	last := recs[len(recs)-1]
	if !strings.Contains(last, "Geometry") {
		t.Errorf("tie must go to the earliest-encountered topic, got %q", last)
	}
}

func TestRecommendNoWeakTopicWhenAllCorrect(t *testing.T) {
	feedback := []models.QuestionFeedback{
		fb("Algebra", true),
		fb("Geometry", true),
	}

	recs := Recommend(100, feedback)
	if len(recs) != 2 {
		t.Fatalf("got %d lines, want 2 encouragement lines only", len(recs))
	}
	for _, rec := range recs {
		if strings.Contains(rec, "Pay special attention") {
			t.Error("all-correct feedback must not produce a weak-topic line")
		}
	}
}

func TestRecommendHighScoreWithOneMissStillNamesTopic(t *testing.T) {
	feedback := []models.QuestionFeedback{
		fb("Algebra", true),
		fb("Algebra", true),
		fb("Limits", false),
	}

	recs := Recommend(91, feedback)
	if len(recs) != 3 {
		t.Fatalf("got %d lines, want 2 band lines plus the topic line", len(recs))
	}
	if !strings.Contains(recs[2], "Limits") {
		t.Errorf("topic line = %q, want Limits named", recs[2])
	}
}
