package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
	syncx "github.com/mind-engage/mindengage-cbt/internal/sync"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
	events *syncx.EventRepo
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver, events: syncx.NewEventRepo(db)}
}

func (s *SQLStore) PutQuestions(ctx context.Context, subject string, qs []bank.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE subject=$1`, subject); err != nil {
		return fmt.Errorf("exam: clear %s: %w", subject, err)
	}
	for i, q := range qs {
		body, err := json.Marshal(q)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO questions (subject, position, question_id, body_json) VALUES ($1,$2,$3,$4)`,
			subject, i, q.ID.String(), string(body))
		if err != nil {
			return fmt.Errorf("exam: insert %s/%s: %w", subject, q.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLStore) QuestionsBySubject(ctx context.Context, subject string) ([]bank.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT body_json FROM questions WHERE subject=$1 ORDER BY position`, subject)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []bank.Question
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var q bank.Question
		if err := json.Unmarshal([]byte(body), &q); err != nil {
			return nil, fmt.Errorf("exam: decode %s question: %w", subject, err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: subject %s", ErrNotFound, subject)
	}
	return out, nil
}

func (s *SQLStore) CountQuestions(ctx context.Context, subject string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions WHERE subject=$1`, subject).Scan(&n)
	return n, err
}

func (s *SQLStore) Subjects(ctx context.Context) ([]SubjectSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT subject, COUNT(*) FROM questions GROUP BY subject ORDER BY subject`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []SubjectSummary{}
	for rows.Next() {
		var ss SubjectSummary
		if err := rows.Scan(&ss.Name, &ss.Questions); err != nil {
			return nil, err
		}
		out = append(out, ss)
	}
	return out, rows.Err()
}

// SaveResult stores the result and appends an ExamSubmitted event in the
// same transaction.
func (s *SQLStore) SaveResult(ctx context.Context, r Result) (Result, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().Unix()
	if r.Answers == nil {
		r.Answers = map[string]string{}
	}
	aj, err := json.Marshal(r.Answers)
	if err != nil {
		return Result{}, err
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return Result{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, err
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO exam_results (id, student_id, subject, score, total, answers_json, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		r.ID, r.StudentID, r.Subject, r.Score, r.Total, string(aj), r.CreatedAt)
	if err != nil {
		return Result{}, fmt.Errorf("exam: save result: %w", err)
	}
	if err := s.events.WithTx(tx).Append(ctx, syncx.Event{
		Type:     syncx.EventExamSubmitted,
		Key:      r.ID,
		DataJSON: string(payload),
	}); err != nil {
		return Result{}, err
	}
	if err := tx.Commit(); err != nil {
		return Result{}, err
	}
	return r, nil
}

func (s *SQLStore) ResultsByStudent(ctx context.Context, studentID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, student_id, subject, score, total, answers_json, created_at
		 FROM exam_results WHERE student_id=$1 ORDER BY created_at DESC, id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Result{}
	for rows.Next() {
		var r Result
		var aj string
		if err := rows.Scan(&r.ID, &r.StudentID, &r.Subject, &r.Score, &r.Total, &aj, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(aj), &r.Answers); err != nil {
			r.Answers = map[string]string{}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
