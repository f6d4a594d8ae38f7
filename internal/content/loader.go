package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edututor/backend/internal/models"
)

// Load reads a question bank from a JSON file laid out as
// subject -> difficulty -> []question. The bank is validated before
// being returned; a bank that fails validation is rejected whole.
func Load(path string) (map[string]map[models.Difficulty][]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var bank map[string]map[models.Difficulty][]models.Question
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	if err := Validate(bank); err != nil {
		return nil, fmt.Errorf("invalid question bank %s: %w", path, err)
	}
	return bank, nil
}

// Validate checks the structural integrity of a bank: recognized
// difficulty tiers, non-empty question text, at least two options, and
// a correct index inside the option range.
func Validate(bank map[string]map[models.Difficulty][]models.Question) error {
	if len(bank) == 0 {
		return fmt.Errorf("bank has no subjects")
	}
	for subject, tiers := range bank {
		if subject == "" {
			return fmt.Errorf("bank has an empty subject name")
		}
		for tier, questions := range tiers {
			if !models.ValidDifficulties[tier] {
				return fmt.Errorf("subject %s: unknown difficulty %q", subject, tier)
			}
			for i, q := range questions {
				if q.Text == "" {
					return fmt.Errorf("subject %s, %s question %d: empty question text", subject, tier, i)
				}
				if len(q.Options) < 2 {
					return fmt.Errorf("subject %s, %s question %d: needs at least 2 options, got %d", subject, tier, i, len(q.Options))
				}
				if q.Correct < 0 || q.Correct >= len(q.Options) {
					return fmt.Errorf("subject %s, %s question %d: correct index %d out of range", subject, tier, i, q.Correct)
				}
			}
		}
	}
	return nil
}
