package assessment

import (
	"reflect"
	"testing"

	"github.com/edututor/backend/internal/models"
)

// q builds a four-option test question with correct index 1.
func q(text, topic string) models.Question {
	return models.Question{
		Text:        text,
		Options:     []string{"opt a", "opt b", "opt c", "opt d"},
		Correct:     1,
		Explanation: text + " explained",
		Topic:       topic,
	}
}

func newTestBank() *Bank {
	return NewBank(map[string]map[models.Difficulty][]models.Question{
		"mathematics": {
			models.DifficultyEasy:   {q("m-e1", "Arithmetic"), q("m-e2", "Arithmetic"), q("m-e3", "Fractions"), q("m-e4", "Fractions")},
			models.DifficultyMedium: {q("m-m1", "Algebra"), q("m-m2", "Algebra"), q("m-m3", "Geometry")},
			models.DifficultyHard:   {q("m-h1", "Calculus"), q("m-h2", "Calculus")},
		},
		"computer_science": {
			models.DifficultyEasy:   {q("c-e1", "Basics"), q("c-e2", "Basics"), q("c-e3", "Basics")},
			models.DifficultyMedium: {q("c-m1", "Algorithms"), q("c-m2", "Data Structures"), q("c-m3", "Databases")},
			models.DifficultyHard:   {q("c-h1", "Complexity"), q("c-h2", "Design Patterns")},
		},
		"physics": {
			models.DifficultyEasy:   {q("p-e1", "Units"), q("p-e2", "Units")},
			models.DifficultyMedium: {q("p-m1", "Mechanics"), q("p-m2", "Mechanics")},
			models.DifficultyHard:   {q("p-h1", "Quantum"), q("p-h2", "Quantum")},
		},
		"literature": {
			models.DifficultyEasy:   {q("l-e1", "Poetry"), q("l-e2", "Classics")},
			models.DifficultyMedium: {q("l-m1", "Devices"), q("l-m2", "Modern")},
			models.DifficultyHard:   {q("l-h1", "Techniques"), q("l-h2", "American")},
		},
	})
}

func TestBankSubjectsSorted(t *testing.T) {
	bank := newTestBank()

	want := []string{"computer_science", "literature", "mathematics", "physics"}
	if got := bank.Subjects(); !reflect.DeepEqual(got, want) {
		t.Errorf("Subjects() = %v, want %v", got, want)
	}
}

func TestBankNormalizesSubjectKeys(t *testing.T) {
	bank := NewBank(map[string]map[models.Difficulty][]models.Question{
		"Computer Science": {
			models.DifficultyEasy: {q("x", "Basics")},
		},
	})

	if !bank.HasSubject("computer_science") {
		t.Error("expected display name to be normalized to computer_science")
	}
	if pool := bank.Pool("computer_science", models.DifficultyEasy); len(pool) != 1 {
		t.Errorf("Pool() returned %d questions, want 1", len(pool))
	}
}

func TestBankPoolReturnsCopies(t *testing.T) {
	bank := newTestBank()

	pool := bank.Pool("mathematics", models.DifficultyEasy)
	pool[0].Text = "mutated"
	pool[0].Options[0] = "mutated"

	fresh := bank.Pool("mathematics", models.DifficultyEasy)
	if fresh[0].Text == "mutated" {
		t.Error("mutating a pool copy changed the bank's question text")
	}
	if fresh[0].Options[0] == "mutated" {
		t.Error("mutating a pool copy changed the bank's option slice")
	}
}

func TestBankUnknownLookups(t *testing.T) {
	bank := newTestBank()

	if pool := bank.Pool("astrology", models.DifficultyEasy); pool != nil {
		t.Errorf("unknown subject: got %d questions, want nil", len(pool))
	}
	if bank.HasSubject("astrology") {
		t.Error("HasSubject should be false for unknown subject")
	}
}

func TestBankEmptyTierIsNil(t *testing.T) {
	bank := NewBank(map[string]map[models.Difficulty][]models.Question{
		"mathematics": {
			models.DifficultyEasy:   {q("m-e1", "Arithmetic")},
			models.DifficultyMedium: {},
		},
	})

	if pool := bank.Pool("mathematics", models.DifficultyMedium); pool != nil {
		t.Error("empty tier should read as nil so the selector falls back")
	}
	if pool := bank.Pool("mathematics", models.DifficultyHard); pool != nil {
		t.Error("absent tier should read as nil")
	}
}

func TestBankConstructionCopiesInput(t *testing.T) {
	data := map[string]map[models.Difficulty][]models.Question{
		"mathematics": {
			models.DifficultyEasy: {q("m-e1", "Arithmetic")},
		},
	}
	bank := NewBank(data)

	data["mathematics"][models.DifficultyEasy][0].Text = "mutated"

	if pool := bank.Pool("mathematics", models.DifficultyEasy); pool[0].Text == "mutated" {
		t.Error("mutating source data after construction changed the bank")
	}
}

func TestBankSize(t *testing.T) {
	if got := newTestBank().Size(); got != 29 {
		t.Errorf("Size() = %d, want 29", got)
	}
}
