package exam

import "github.com/mind-engage/mindengage-cbt/internal/bank"

// Result is one submitted exam. Answers are keyed by bank question id.
type Result struct {
	ID        string            `json:"id"`
	StudentID string            `json:"studentId"`
	Subject   string            `json:"subject"`
	Score     int               `json:"score"`
	Total     int               `json:"total"`
	Answers   map[string]string `json:"answers"`
	CreatedAt int64             `json:"createdAt"`
}

type SubjectSummary struct {
	Name      string `json:"name"`
	Questions int    `json:"questions"`
}

// Sheet is what a student sits: sampled questions with the key removed.
type Sheet struct {
	Subject     string          `json:"subject"`
	Questions   []bank.Question `json:"questions"`
	DurationSec int             `json:"durationSec"`
}

// Submission names the bank ids that were on the sheet, so unanswered
// questions still count towards the total.
type Submission struct {
	Subject     string            `json:"subject"`
	QuestionIDs []string          `json:"questionIds"`
	Answers     map[string]string `json:"answers"`
}

type Outcome struct {
	Result     Result            `json:"result"`
	Percentage int               `json:"percentage"`
	Review     []bank.ReviewItem `json:"review"`
}
