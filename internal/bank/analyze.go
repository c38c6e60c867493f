package bank

import "strings"

// Issue is one finding of the answer-key analysis. Findings are reported,
// never repaired.
type Issue struct {
	File          string   `json:"file"`
	QuestionID    ID       `json:"questionId"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []Option `json:"options"`
	Issue         string   `json:"issue"`
	Explanation   string   `json:"explanation,omitempty"`
}

const (
	IssueOutsideAD      = "Correct answer not in valid options (A, B, C, D)"
	IssueNotInOptions   = "Correct answer does not exist in options array"
	IssueOptionCTypo    = `Option C contains "s" which might be a typo for a number`
	IssueExplainedError = "Explanation indicates mathematical error or answer not in options"
)

var validAnswers = map[string]bool{"A": true, "B": true, "C": true, "D": true}

var errorPhrases = []string{
	"none of the options",
	"not listed correctly",
	"answer doesn't match",
	"possible error",
	"typo",
	"speculative",
}

// Analyze checks every question of one file. A question may yield several
// issues.
func Analyze(file string, qs []Question) []Issue {
	var out []Issue
	for _, q := range qs {
		issue := func(kind string) Issue {
			return Issue{
				File:          file,
				QuestionID:    q.ID,
				Question:      q.Question,
				CorrectAnswer: q.CorrectAnswer,
				Options:       q.Options,
				Issue:         kind,
			}
		}
		if !validAnswers[q.CorrectAnswer] {
			out = append(out, issue(IssueOutsideAD))
		}
		if !q.HasOption(q.CorrectAnswer) {
			out = append(out, issue(IssueNotInOptions))
		}
		if strings.Contains(q.Question, "s") && q.CorrectAnswer == "C" && optionText(q, "C") == "s" {
			out = append(out, issue(IssueOptionCTypo))
		}
		if explainsError(q.Explanation) {
			i := issue(IssueExplainedError)
			i.Explanation = q.Explanation
			out = append(out, i)
		}
	}
	return out
}

func optionText(q Question, id string) string {
	for _, o := range q.Options {
		if o.ID == id {
			return o.Text
		}
	}
	return ""
}

func explainsError(explanation string) bool {
	if explanation == "" {
		return false
	}
	e := strings.ToLower(explanation)
	for _, p := range errorPhrases {
		if strings.Contains(e, p) {
			return true
		}
	}
	return strings.Contains(e, "mathematically") && strings.Contains(e, "should be")
}

// MarshalIssues renders a report the same way bank files are written.
func MarshalIssues(issues []Issue) ([]byte, error) {
	if issues == nil {
		issues = []Issue{}
	}
	return encodeIndented(issues)
}
