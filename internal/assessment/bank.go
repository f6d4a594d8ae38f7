package assessment

import (
	"sort"
	"strings"

	"github.com/edututor/backend/internal/models"
)

// Bank is the immutable question store, keyed by subject then difficulty
// tier. It is built once at startup and never mutated; every read hands out
// copies so callers can stamp quiz metadata without touching the canonical
// records.
type Bank struct {
	subjects map[string]map[models.Difficulty][]models.Question
	names    []string
}

// NewBank deep-copies the given data so later changes to the caller's maps
// cannot leak into the bank. Subject names are normalized to bank keys and
// kept in sorted order for deterministic iteration.
func NewBank(data map[string]map[models.Difficulty][]models.Question) *Bank {
	subjects := make(map[string]map[models.Difficulty][]models.Question, len(data))
	names := make([]string, 0, len(data))

	for subject, tiers := range data {
		key := NormalizeSubject(subject)
		copied := make(map[models.Difficulty][]models.Question, len(tiers))
		for tier, questions := range tiers {
			pool := make([]models.Question, len(questions))
			for i, q := range questions {
				pool[i] = q.Clone()
			}
			copied[tier] = pool
		}
		subjects[key] = copied
		names = append(names, key)
	}
	sort.Strings(names)

	return &Bank{subjects: subjects, names: names}
}

// NormalizeSubject converts a display subject ("Computer Science") into its
// bank key ("computer_science").
func NormalizeSubject(subject string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(subject)), " ", "_")
}

// Subjects returns the known subject keys in sorted order.
func (b *Bank) Subjects() []string {
	return append([]string(nil), b.names...)
}

func (b *Bank) HasSubject(subject string) bool {
	_, ok := b.subjects[subject]
	return ok
}

// Pool returns copies of the questions for a subject/tier. An unknown
// subject or an absent/empty tier yields nil.
func (b *Bank) Pool(subject string, tier models.Difficulty) []models.Question {
	tiers, ok := b.subjects[subject]
	if !ok {
		return nil
	}
	questions, ok := tiers[tier]
	if !ok || len(questions) == 0 {
		return nil
	}

	out := make([]models.Question, len(questions))
	for i, q := range questions {
		out[i] = q.Clone()
	}
	return out
}

// Size returns the total question count across all subjects and tiers.
func (b *Bank) Size() int {
	total := 0
	for _, tiers := range b.subjects {
		for _, questions := range tiers {
			total += len(questions)
		}
	}
	return total
}
