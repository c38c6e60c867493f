package bank

import (
	"math/rand"
	"time"
)

const DefaultSheetSize = 10

// Sample draws n questions without replacement and renumbers them 1..n,
// keeping the bank id in SourceID. A pool of n or fewer is returned as is.
func Sample(pool []Question, n int, r *rand.Rand) []Question {
	if n <= 0 {
		n = DefaultSheetSize
	}
	if len(pool) <= n {
		out := append([]Question(nil), pool...)
		return out
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	idx := r.Perm(len(pool))[:n]
	out := make([]Question, 0, n)
	for i, j := range idx {
		q := pool[j]
		q.SourceID = q.ID
		q.ID = IntID(i + 1)
		out = append(out, q)
	}
	return out
}

// Public strips the answer key and explanation before a sheet goes to the
// client.
func Public(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.CorrectAnswer = ""
		q.Explanation = ""
		out[i] = q
	}
	return out
}

// Score counts questions whose chosen option equals the declared answer.
// Unanswered questions count as wrong.
func Score(qs []Question, answers map[string]string) int {
	correct := 0
	for _, q := range qs {
		if a, ok := answers[q.ID.String()]; ok && a == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}

// Percentage rounds score/total to the nearest whole percent.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (score*100 + total/2) / total
}

type ReviewItem struct {
	QuestionID    ID       `json:"questionId"`
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	Chosen        string   `json:"chosen,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Correct       bool     `json:"correct"`
	Explanation   string   `json:"explanation,omitempty"`
}

func Review(qs []Question, answers map[string]string) []ReviewItem {
	out := make([]ReviewItem, 0, len(qs))
	for _, q := range qs {
		chosen := answers[q.ID.String()]
		out = append(out, ReviewItem{
			QuestionID:    q.ID,
			Question:      q.Question,
			Options:       q.Options,
			Chosen:        chosen,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       chosen != "" && chosen == q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return out
}
