package generator

import (
	"fmt"
	"strings"

	"github.com/edututor/backend/internal/models"
)

var subjectGuidance = map[string]string{
	"mathematics": `SUBJECT GUIDANCE (Mathematics):
- Cover arithmetic, algebra, geometry, calculus, statistics, and number theory
- Numeric answers must be exact; distractors should be results of common computational mistakes
- Show the worked solution in the explanation`,

	"computer_science": `SUBJECT GUIDANCE (Computer Science):
- Cover programming concepts, algorithms, data structures, databases, and architecture
- Complexity answers use standard big-O notation
- Distractors should reflect common misconceptions (e.g. off-by-one complexity classes)`,

	"physics": `SUBJECT GUIDANCE (Physics):
- Cover mechanics, electromagnetism, thermodynamics, and modern physics
- Use SI units throughout; state constants to standard precision
- Distractors should be plausible unit or sign errors`,

	"literature": `SUBJECT GUIDANCE (Literature):
- Cover classic and modern works, literary devices, and narrative techniques
- Attribute works and quotations accurately
- Distractors should be authors or works from the same period or movement`,
}

var difficultyGuidance = map[models.Difficulty]string{
	models.DifficultyEasy:   "Single-step recall or application. Definitions, basic facts, one-operation problems.",
	models.DifficultyMedium: "Two-step reasoning or application of a standard method. Requires understanding, not just recall.",
	models.DifficultyHard:   "Multi-step reasoning, synthesis of concepts, or subtle distinctions. At least two genuinely tempting distractors.",
}

func SystemPrompt() string {
	return `You are an experienced educational content author writing multiple-choice assessment questions for an adaptive tutoring platform.

Every question must follow these structural rules:

QUESTION:
- One clear, self-contained question requiring no external context
- Formal but accessible language appropriate to the subject
- Never references the platform, the test, or test-taking strategy

OPTIONS:
- Exactly 4 options
- Exactly ONE correct option
- The 3 wrong options must each be wrong for an identifiable reason and genuinely plausible
- Options should be similar in length and register so the correct one does not stand out

EXPLANATION:
- 1-3 sentences explaining why the correct option is right
- For computational questions, show the computation

TOPIC:
- A short human-readable topic label (e.g. "Percentages", "Data Structures", "Quantum Physics")
- Topics are used to detect a student's weak areas, so label consistently across a batch

BATCH REQUIREMENTS:
- No two questions in a batch may share the same stem
- Vary the position of the correct option across the batch

You must respond with valid JSON only. No markdown, no prose outside the JSON.`
}

func BuildUserPrompt(subject string, difficulty models.Difficulty, topic string, count int) string {
	guidance := subjectGuidance[subject]
	if guidance == "" {
		guidance = fmt.Sprintf("SUBJECT GUIDANCE (%s):\n- Write questions squarely within this subject at a standard curriculum level", SubjectDisplayName(subject))
	}

	topicLine := ""
	if topic != "" {
		topicLine = fmt.Sprintf("Focus topic: %s\n", topic)
	}

	return fmt.Sprintf(`Generate exactly %d multiple-choice questions.

Subject: %s
Difficulty: %s (%s)
%s
%s

Respond with this exact JSON structure:
{
  "questions": [
    {
      "question": "...",
      "options": ["...", "...", "...", "..."],
      "correct": 1,
      "explanation": "...",
      "topic": "..."
    }
  ]
}

Requirements:
- "correct" is the zero-based index of the right option
- Exactly 4 entries in "options"
- Every field is required and non-empty`,
		count, subject, string(difficulty), difficultyGuidance[difficulty], topicLine, guidance)
}

// SubjectDisplayName turns a normalized subject key into a readable label.
func SubjectDisplayName(subject string) string {
	return strings.ReplaceAll(subject, "_", " ")
}
