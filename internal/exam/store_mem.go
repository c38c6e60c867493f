package exam

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
)

type memoryStore struct {
	mu        sync.RWMutex
	questions map[string][]bank.Question
	results   []Result
}

// NewInMemoryStore keeps everything in process; used for DB_DRIVER=memory
// and in tests.
func NewInMemoryStore() Store {
	return &memoryStore{questions: map[string][]bank.Question{}}
}

func (m *memoryStore) PutQuestions(_ context.Context, subject string, qs []bank.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions[subject] = append([]bank.Question(nil), qs...)
	return nil
}

func (m *memoryStore) QuestionsBySubject(_ context.Context, subject string) ([]bank.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	qs := m.questions[subject]
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: subject %s", ErrNotFound, subject)
	}
	return append([]bank.Question(nil), qs...), nil
}

func (m *memoryStore) CountQuestions(_ context.Context, subject string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.questions[subject]), nil
}

func (m *memoryStore) Subjects(_ context.Context) ([]SubjectSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []SubjectSummary{}
	for name, qs := range m.questions {
		if len(qs) > 0 {
			out = append(out, SubjectSummary{Name: name, Questions: len(qs)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryStore) SaveResult(_ context.Context, r Result) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().Unix()
	if r.Answers == nil {
		r.Answers = map[string]string{}
	}
	m.results = append(m.results, r)
	return r, nil
}

func (m *memoryStore) ResultsByStudent(_ context.Context, studentID string) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Result{}
	for i := len(m.results) - 1; i >= 0; i-- {
		if m.results[i].StudentID == studentID {
			out = append(out, m.results[i])
		}
	}
	return out, nil
}
