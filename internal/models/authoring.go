package models

// ── Authoring Types ──────────────────────────────────────
//
// Generated questions are returned to the authoring caller for review; they
// are never merged into the running bank, which stays immutable for the
// lifetime of the process.

type GenerateQuestionsRequest struct {
	Subject    string     `json:"subject"`
	Difficulty Difficulty `json:"difficulty"`
	Topic      string     `json:"topic,omitempty"`
	Count      int        `json:"count"`
}

type GenerateQuestionsResponse struct {
	Subject      string     `json:"subject"`
	Difficulty   Difficulty `json:"difficulty"`
	Questions    []Question `json:"questions"`
	Model        string     `json:"model"`
	PromptTokens int        `json:"prompt_tokens,omitempty"`
	OutputTokens int        `json:"output_tokens,omitempty"`
}
