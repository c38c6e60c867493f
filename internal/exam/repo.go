package exam

import (
	"context"
	"errors"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
)

var ErrNotFound = errors.New("exam: not found")

type Store interface {
	// PutQuestions replaces a subject's questions, keeping their order.
	PutQuestions(ctx context.Context, subject string, qs []bank.Question) error
	QuestionsBySubject(ctx context.Context, subject string) ([]bank.Question, error)
	CountQuestions(ctx context.Context, subject string) (int, error)
	Subjects(ctx context.Context) ([]SubjectSummary, error)

	// SaveResult assigns the id and timestamp and returns the stored result.
	SaveResult(ctx context.Context, r Result) (Result, error)
	ResultsByStudent(ctx context.Context, studentID string) ([]Result, error)
}
