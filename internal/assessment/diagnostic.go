package assessment

import (
	"math/rand"

	"github.com/edututor/backend/internal/models"
)

// BuildDiagnostic builds a cross-subject quiz balanced across the three
// tiers: count/3 questions each, with the remainder handed to the earlier
// tiers. Each unit draws a random subject and then a random question from
// that subject's pool for the tier; a subject missing the tier forfeits the
// unit, so a sparse bank yields a shorter quiz. The result is shuffled so
// tier and subject order are not observable from position.
func (s *Selector) BuildDiagnostic(rng *rand.Rand, count int) []models.QuizQuestion {
	subjects := s.bank.Subjects()
	if len(subjects) == 0 || count <= 0 {
		return []models.QuizQuestion{}
	}

	perTier := count / 3
	remainder := count % 3

	quiz := make([]models.QuizQuestion, 0, count)
	for i, tier := range models.AllDifficulties {
		units := perTier
		if i < remainder {
			units++
		}

		for u := 0; u < units; u++ {
			subject := subjects[rng.Intn(len(subjects))]
			pool := s.bank.Pool(subject, tier)
			if len(pool) == 0 {
				continue
			}
			quiz = append(quiz, models.QuizQuestion{
				Question:   pool[rng.Intn(len(pool))],
				Subject:    subject,
				Difficulty: tier,
			})
		}
	}

	rng.Shuffle(len(quiz), func(i, j int) { quiz[i], quiz[j] = quiz[j], quiz[i] })
	return quiz
}
