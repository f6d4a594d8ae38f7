package assessment

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/edututor/backend/internal/models"
)

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// assertDistinct fails if two quiz entries share a question text.
func assertDistinct(t *testing.T, quiz []models.QuizQuestion) {
	t.Helper()
	seen := make(map[string]bool, len(quiz))
	for _, entry := range quiz {
		if seen[entry.Text] {
			t.Errorf("duplicate question in quiz: %q", entry.Text)
		}
		seen[entry.Text] = true
	}
}

func TestSelectCountBoundAndDistinctness(t *testing.T) {
	sel := NewSelector(newTestBank())

	for seed := int64(0); seed < 20; seed++ {
		for _, count := range []int{0, 1, 3, 5, 50} {
			quiz := sel.Select(testRNG(seed), "algebra", 2, "mathematics", count)
			if len(quiz) > count {
				t.Errorf("seed %d count %d: got %d questions, want <= %d", seed, count, len(quiz), count)
			}
			assertDistinct(t, quiz)
		}
	}
}

func TestSelectStampsMetadata(t *testing.T) {
	sel := NewSelector(newTestBank())

	quiz := sel.Select(testRNG(1), "limits and derivatives", 3, "mathematics", 2)
	if len(quiz) != 2 {
		t.Fatalf("got %d questions, want 2", len(quiz))
	}
	for _, entry := range quiz {
		if entry.Subject != "mathematics" {
			t.Errorf("subject = %q, want mathematics", entry.Subject)
		}
		if entry.Difficulty != models.DifficultyHard {
			t.Errorf("difficulty = %q, want hard", entry.Difficulty)
		}
		if entry.GeneratedTopic != "limits and derivatives" {
			t.Errorf("generated_topic = %q, want the requested topic", entry.GeneratedTopic)
		}
		if entry.Adaptive {
			t.Error("plain selection must not be marked adaptive")
		}
	}
}

func TestSelectResolvesGeneralSubject(t *testing.T) {
	sel := NewSelector(newTestBank())

	quiz := sel.Select(testRNG(2), "binary search algorithm", 2, SubjectGeneral, 3)
	for _, entry := range quiz {
		if entry.Subject != "computer_science" {
			t.Errorf("subject = %q, want computer_science (resolved from topic)", entry.Subject)
		}
	}
}

func TestSelectUnknownLevelDefaultsToMedium(t *testing.T) {
	sel := NewSelector(newTestBank())

	quiz := sel.Select(testRNG(3), "x", 7, "physics", 2)
	for _, entry := range quiz {
		if entry.Difficulty != models.DifficultyMedium {
			t.Errorf("difficulty = %q, want medium for unrecognized level", entry.Difficulty)
		}
	}
}

func TestSelectUnknownSubjectFallsBackToDefault(t *testing.T) {
	sel := NewSelector(newTestBank())

	quiz := sel.Select(testRNG(4), "x", 1, "Basket Weaving", 3)
	if len(quiz) != 3 {
		t.Fatalf("got %d questions, want 3 from the default subject pool", len(quiz))
	}

	mathEasy := map[string]bool{"m-e1": true, "m-e2": true, "m-e3": true, "m-e4": true}
	for _, entry := range quiz {
		if !mathEasy[entry.Text] {
			t.Errorf("question %q is not from mathematics/easy", entry.Text)
		}
		// The stamp carries the requested subject even when the pool fell
		// back to the default.
		if entry.Subject != "basket_weaving" {
			t.Errorf("subject stamp = %q, want basket_weaving", entry.Subject)
		}
	}
}

func TestSelectPoolExhaustedNoFallback(t *testing.T) {
	// Exactly 4 easy questions and nothing in the other tiers: a request
	// for 5 must return all 4, distinct, with no error.
	bank := NewBank(map[string]map[models.Difficulty][]models.Question{
		"mathematics": {
			models.DifficultyEasy: {q("e1", "A"), q("e2", "A"), q("e3", "B"), q("e4", "B")},
		},
	})
	sel := NewSelector(bank)

	quiz := sel.Select(testRNG(5), "x", 1, "mathematics", 5)
	if len(quiz) != 4 {
		t.Fatalf("got %d questions, want 4 (pool exhausted)", len(quiz))
	}
	assertDistinct(t, quiz)
}

func TestSelectExtendsFromOtherTiers(t *testing.T) {
	// 4 easy + 2 medium + 1 hard: a request for 5 easy questions extends
	// the pool across tiers and still returns 5 distinct questions.
	bank := NewBank(map[string]map[models.Difficulty][]models.Question{
		"mathematics": {
			models.DifficultyEasy:   {q("e1", "A"), q("e2", "A"), q("e3", "B"), q("e4", "B")},
			models.DifficultyMedium: {q("m1", "C"), q("m2", "C")},
			models.DifficultyHard:   {q("h1", "D")},
		},
	})
	sel := NewSelector(bank)

	for seed := int64(0); seed < 10; seed++ {
		quiz := sel.Select(testRNG(seed), "x", 1, "mathematics", 5)
		if len(quiz) != 5 {
			t.Fatalf("seed %d: got %d questions, want 5 after tier extension", seed, len(quiz))
		}
		assertDistinct(t, quiz)
		for _, entry := range quiz {
			// Extended questions are stamped with the requested tier.
			if entry.Difficulty != models.DifficultyEasy {
				t.Errorf("difficulty stamp = %q, want easy", entry.Difficulty)
			}
		}
	}
}

func TestSelectDedupesTierOverlap(t *testing.T) {
	// The same question authored under two tiers must not appear twice in
	// one quiz even though the extended pool contains it twice.
	shared := q("shared", "A")
	bank := NewBank(map[string]map[models.Difficulty][]models.Question{
		"mathematics": {
			models.DifficultyEasy:   {shared, q("e2", "A")},
			models.DifficultyMedium: {shared, q("m2", "B")},
		},
	})
	sel := NewSelector(bank)

	for seed := int64(0); seed < 20; seed++ {
		quiz := sel.Select(testRNG(seed), "x", 1, "mathematics", 10)
		if len(quiz) != 3 {
			t.Fatalf("seed %d: got %d questions, want 3 distinct", seed, len(quiz))
		}
		assertDistinct(t, quiz)
	}
}

func TestSelectNeverExtendsFallbackPool(t *testing.T) {
	// The subject is unknown, so the pool comes from the default subject.
	// That pool is never extended with the default subject's other tiers.
	bank := NewBank(map[string]map[models.Difficulty][]models.Question{
		"mathematics": {
			models.DifficultyEasy:   {q("e1", "A"), q("e2", "A")},
			models.DifficultyMedium: {q("m1", "B"), q("m2", "B"), q("m3", "B")},
		},
	})
	sel := NewSelector(bank)

	quiz := sel.Select(testRNG(6), "x", 1, "chemistry", 5)
	if len(quiz) != 2 {
		t.Errorf("got %d questions, want 2 (fallback pool is not extended)", len(quiz))
	}
}

func TestSelectEmptyBank(t *testing.T) {
	sel := NewSelector(NewBank(nil))

	quiz := sel.Select(testRNG(7), "x", 2, "mathematics", 5)
	if len(quiz) != 0 {
		t.Errorf("got %d questions from an empty bank, want 0", len(quiz))
	}
}

func TestSelectCopiesDoNotAliasBank(t *testing.T) {
	bank := newTestBank()
	sel := NewSelector(bank)

	quiz := sel.Select(testRNG(8), "x", 1, "mathematics", 4)
	for i := range quiz {
		quiz[i].Text = "mutated"
		quiz[i].Options[0] = "mutated"
	}

	for _, fresh := range bank.Pool("mathematics", models.DifficultyEasy) {
		if fresh.Text == "mutated" || fresh.Options[0] == "mutated" {
			t.Fatal("mutating a generated quiz changed the bank")
		}
	}
}

func TestSelectDeterministicUnderSeed(t *testing.T) {
	sel := NewSelector(newTestBank())

	first := sel.Select(testRNG(42), "algebra", 2, "mathematics", 3)
	second := sel.Select(testRNG(42), "algebra", 2, "mathematics", 3)
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different quizzes")
	}
}

func TestTierForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  models.Difficulty
	}{
		{1, models.DifficultyEasy},
		{2, models.DifficultyMedium},
		{3, models.DifficultyHard},
		{0, models.DifficultyMedium},
		{-1, models.DifficultyMedium},
		{99, models.DifficultyMedium},
	}

	for _, tt := range tests {
		if got := TierForLevel(tt.level); got != tt.want {
			t.Errorf("TierForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
