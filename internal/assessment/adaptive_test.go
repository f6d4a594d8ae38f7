package assessment

import (
	"testing"

	"github.com/edututor/backend/internal/models"
)

func TestLevelForAverage(t *testing.T) {
	tests := []struct {
		avg  float64
		want int
	}{
		{100, 3},
		{90, 3},
		{85, 3},
		{84.9, 2},
		{70, 2},
		{65, 2}, // boundary is inclusive
		{64.9, 1},
		{50, 1},
		{0, 1},
	}

	for _, tt := range tests {
		if got := LevelForAverage(tt.avg); got != tt.want {
			t.Errorf("LevelForAverage(%v) = %d, want %d", tt.avg, got, tt.want)
		}
	}
}

func TestAdaptEmptyHistory(t *testing.T) {
	sel := NewSelector(newTestBank())

	quiz := sel.Adapt(testRNG(1), nil, "mathematics", 3)
	if len(quiz) == 0 {
		t.Fatal("expected a quiz from the full test bank")
	}
	for _, entry := range quiz {
		if entry.Adaptive {
			t.Error("empty history must not mark the quiz adaptive")
		}
		if entry.Difficulty != models.DifficultyMedium {
			t.Errorf("difficulty = %q, want medium for the generic fallback", entry.Difficulty)
		}
		if entry.GeneratedTopic != "General Assessment" {
			t.Errorf("generated_topic = %q, want General Assessment", entry.GeneratedTopic)
		}
	}
}

func TestAdaptDifficultyFromHistory(t *testing.T) {
	sel := NewSelector(newTestBank())

	tests := []struct {
		name    string
		history []float64
		want    models.Difficulty
		wantAvg float64
	}{
		{"high scores select hard", []float64{90, 92, 88, 91, 89}, models.DifficultyHard, 90},
		{"low scores select easy", []float64{50, 50, 50, 50, 50}, models.DifficultyEasy, 50},
		{"exactly 65 selects medium", []float64{65, 65, 65, 65, 65}, models.DifficultyMedium, 65},
	}

	for _, tt := range tests {
		quiz := sel.Adapt(testRNG(2), tt.history, "mathematics", 2)
		if len(quiz) == 0 {
			t.Fatalf("%s: expected questions", tt.name)
		}
		for _, entry := range quiz {
			if entry.Difficulty != tt.want {
				t.Errorf("%s: difficulty = %q, want %q", tt.name, entry.Difficulty, tt.want)
			}
			if !entry.Adaptive {
				t.Errorf("%s: quiz not marked adaptive", tt.name)
			}
			if entry.BasedOnPerformance != tt.wantAvg {
				t.Errorf("%s: based_on_performance = %v, want %v", tt.name, entry.BasedOnPerformance, tt.wantAvg)
			}
			if entry.GeneratedTopic != "Adaptive mathematics Quiz" {
				t.Errorf("%s: generated_topic = %q", tt.name, entry.GeneratedTopic)
			}
		}
	}
}

func TestAdaptUsesOnlyFiveMostRecent(t *testing.T) {
	sel := NewSelector(newTestBank())

	// Five recent perfect scores followed by older failures: only the
	// newest five count, so the mean is 100 and the quiz is hard.
	history := []float64{100, 100, 100, 100, 100, 0, 0, 0, 0}
	quiz := sel.Adapt(testRNG(3), history, "physics", 2)
	for _, entry := range quiz {
		if entry.Difficulty != models.DifficultyHard {
			t.Errorf("difficulty = %q, want hard from the recent window", entry.Difficulty)
		}
		if entry.BasedOnPerformance != 100 {
			t.Errorf("based_on_performance = %v, want 100", entry.BasedOnPerformance)
		}
	}
}

func TestAdaptShortHistory(t *testing.T) {
	sel := NewSelector(newTestBank())

	quiz := sel.Adapt(testRNG(4), []float64{90}, "literature", 2)
	for _, entry := range quiz {
		if entry.Difficulty != models.DifficultyHard {
			t.Errorf("difficulty = %q, want hard from a single 90", entry.Difficulty)
		}
	}
}

func TestProficiencyForScore(t *testing.T) {
	tests := []struct {
		percentage float64
		wantLevel  models.ProficiencyLevel
		wantNum    int
	}{
		{95, models.ProficiencyAdvanced, 3},
		{80, models.ProficiencyAdvanced, 3},
		{79.9, models.ProficiencyIntermediate, 2},
		{60, models.ProficiencyIntermediate, 2},
		{59.9, models.ProficiencyBeginner, 1},
		{0, models.ProficiencyBeginner, 1},
	}

	for _, tt := range tests {
		level, num := ProficiencyForScore(tt.percentage)
		if level != tt.wantLevel || num != tt.wantNum {
			t.Errorf("ProficiencyForScore(%v) = %q/%d, want %q/%d",
				tt.percentage, level, num, tt.wantLevel, tt.wantNum)
		}
	}
}
