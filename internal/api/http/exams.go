package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/mind-engage/mindengage-cbt/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cbt/internal/exam"
)

// GET /api/subjects
func ListSubjectsHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := svc.Subjects(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, http.StatusOK, subs)
	}
}

// GET /api/subjects/{subject}/questions
func SheetHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheet, err := svc.Sheet(r.Context(), chi.URLParam(r, "subject"))
		if err != nil {
			examError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sheet)
	}
}

// POST /api/exams  { "subject": "...", "questionIds": [...], "answers": {...} }
// The student is the token subject.
func SubmitExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub exam.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		out, err := svc.Submit(r.Context(), authmw.SubjectFromContext(r.Context()), sub)
		if err != nil {
			examError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// GET /api/students/{studentID}/results
func StudentResultsHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Results(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// IsResultOwner lets students read their own results.
func IsResultOwner(r *http.Request) bool {
	sub := authmw.SubjectFromContext(r.Context())
	return sub != "" && sub == chi.URLParam(r, "studentID")
}

func examError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exam.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, exam.ErrUnknownQuestion), errors.Is(err, exam.ErrNoStudent),
		errors.Is(err, exam.ErrBadSubmission):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
