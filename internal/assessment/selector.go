package assessment

import (
	"math/rand"

	"github.com/edututor/backend/internal/models"
)

var tierForLevel = map[int]models.Difficulty{
	1: models.DifficultyEasy,
	2: models.DifficultyMedium,
	3: models.DifficultyHard,
}

// TierForLevel maps a numeric difficulty level (1-3) to a bank tier.
// Unrecognized levels fall back to medium.
func TierForLevel(level int) models.Difficulty {
	if tier, ok := tierForLevel[level]; ok {
		return tier
	}
	return models.DifficultyMedium
}

// Selector builds quizzes out of an immutable bank. Every sampling method
// takes its random source as a parameter so runs are reproducible under a
// fixed seed and concurrent callers can each bring their own source.
type Selector struct {
	bank *Bank
}

func NewSelector(bank *Bank) *Selector {
	return &Selector{bank: bank}
}

// Select builds a single-subject quiz of up to count questions at the tier
// for the given difficulty level. The sentinel subject "general" is resolved
// from the topic; unknown subjects fall back to the default subject's pool
// for the same tier. It never fails: a sparse or empty bank just produces a
// shorter (possibly empty) quiz.
func (s *Selector) Select(rng *rand.Rand, topic string, level int, subject string, count int) []models.QuizQuestion {
	tier := TierForLevel(level)

	if subject == SubjectGeneral {
		subject = ResolveSubject(topic)
	}
	subjectKey := NormalizeSubject(subject)

	pool := s.bank.Pool(subjectKey, tier)
	if pool == nil {
		pool = s.bank.Pool(DefaultSubject, tier)
	}

	// Extend a thin pool with the subject's other tiers, in bank order.
	// Only a known subject contributes its own tiers; a pool that came from
	// the default-subject fallback is never extended.
	if len(pool) < count && s.bank.HasSubject(subjectKey) {
		for _, other := range models.AllDifficulties {
			if other == tier {
				continue
			}
			pool = append(pool, s.bank.Pool(subjectKey, other)...)
		}
	}

	// A bank authored with the same question under two tiers can feed a
	// duplicate into the extended pool. Distinctness is guaranteed at
	// sampling time, so drop repeats here before drawing.
	pool = dedupeByText(pool)

	n := min(count, len(pool))
	if n <= 0 {
		return []models.QuizQuestion{}
	}

	quiz := make([]models.QuizQuestion, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		quiz = append(quiz, models.QuizQuestion{
			Question:       pool[idx],
			Subject:        subjectKey,
			Difficulty:     tier,
			GeneratedTopic: topic,
		})
	}
	return quiz
}

// dedupeByText keeps the first occurrence of each question text, preserving
// pool order.
func dedupeByText(pool []models.Question) []models.Question {
	seen := make(map[string]bool, len(pool))
	out := pool[:0]
	for _, q := range pool {
		if seen[q.Text] {
			continue
		}
		seen[q.Text] = true
		out = append(out, q)
	}
	return out
}
