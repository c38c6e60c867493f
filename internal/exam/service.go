package exam

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
)

var (
	ErrNoStudent       = errors.New("exam: student id required")
	ErrUnknownQuestion = errors.New("exam: question not in subject")
	// ErrBadSubmission covers an empty sheet or a question listed twice.
	ErrBadSubmission = errors.New("exam: invalid submission")
)

// Service draws exam sheets from the store and grades submissions.
type Service struct {
	store     Store
	sheetSize int
	duration  time.Duration

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func NewService(store Store, sheetSize int, duration time.Duration) *Service {
	if sheetSize <= 0 {
		sheetSize = bank.DefaultSheetSize
	}
	if duration <= 0 {
		duration = time.Hour
	}
	return &Service{
		store:     store,
		sheetSize: sheetSize,
		duration:  duration,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand swaps the sampler's source; tests use a fixed seed.
func (s *Service) WithRand(r *rand.Rand) *Service {
	s.mu.Lock()
	s.rng = r
	s.mu.Unlock()
	return s
}

func (s *Service) Store() Store { return s.store }

// Seed loads each bank into the store when the store has no questions for
// that subject yet. Failures are logged and the subject skipped.
func (s *Service) Seed(ctx context.Context, banks map[string]bank.Bank) int {
	names := make([]string, 0, len(banks))
	for name := range banks {
		names = append(names, name)
	}
	sort.Strings(names)
	seeded := 0
	for _, name := range names {
		n, err := s.store.CountQuestions(ctx, name)
		if err != nil {
			log.Printf("exam: seed %s: count: %v", name, err)
			continue
		}
		if n > 0 {
			continue
		}
		if err := s.store.PutQuestions(ctx, name, banks[name].Questions); err != nil {
			log.Printf("exam: seed %s: %v", name, err)
			continue
		}
		log.Printf("exam: seeded %s with %d questions", name, len(banks[name].Questions))
		seeded++
	}
	return seeded
}

// Sheet samples a fresh sheet for subject with the answer key removed.
func (s *Service) Sheet(ctx context.Context, subject string) (Sheet, error) {
	qs, err := s.store.QuestionsBySubject(ctx, subject)
	if err != nil {
		return Sheet{}, err
	}
	s.mu.Lock()
	picked := bank.Sample(qs, s.sheetSize, s.rng)
	s.mu.Unlock()
	return Sheet{
		Subject:     subject,
		Questions:   bank.Public(picked),
		DurationSec: int(s.duration / time.Second),
	}, nil
}

// Submit grades a submission against the stored key and records the result.
func (s *Service) Submit(ctx context.Context, studentID string, sub Submission) (Outcome, error) {
	if strings.TrimSpace(studentID) == "" {
		return Outcome{}, ErrNoStudent
	}
	if len(sub.QuestionIDs) == 0 {
		return Outcome{}, fmt.Errorf("%w: no questions", ErrBadSubmission)
	}
	qs, err := s.store.QuestionsBySubject(ctx, sub.Subject)
	if err != nil {
		return Outcome{}, err
	}
	byID := make(map[string]bank.Question, len(qs))
	for _, q := range qs {
		byID[q.ID.String()] = q
	}
	sheet := make([]bank.Question, 0, len(sub.QuestionIDs))
	seen := make(map[string]bool, len(sub.QuestionIDs))
	for _, id := range sub.QuestionIDs {
		if seen[id] {
			return Outcome{}, fmt.Errorf("%w: question %s listed twice", ErrBadSubmission, id)
		}
		seen[id] = true
		q, ok := byID[id]
		if !ok {
			return Outcome{}, fmt.Errorf("%w: %s/%s", ErrUnknownQuestion, sub.Subject, id)
		}
		sheet = append(sheet, q)
	}
	answers := make(map[string]string, len(sub.Answers))
	for _, q := range sheet {
		if a, ok := sub.Answers[q.ID.String()]; ok {
			answers[q.ID.String()] = a
		}
	}

	score := bank.Score(sheet, answers)
	res, err := s.store.SaveResult(ctx, Result{
		StudentID: studentID,
		Subject:   sub.Subject,
		Score:     score,
		Total:     len(sheet),
		Answers:   answers,
	})
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Result:     res,
		Percentage: bank.Percentage(score, len(sheet)),
		Review:     bank.Review(sheet, answers),
	}, nil
}

func (s *Service) Results(ctx context.Context, studentID string) ([]Result, error) {
	return s.store.ResultsByStudent(ctx, studentID)
}

func (s *Service) Subjects(ctx context.Context) ([]SubjectSummary, error) {
	return s.store.Subjects(ctx)
}
