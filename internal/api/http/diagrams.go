package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-cbt/internal/diagram"
)

type diagramResponse struct {
	Success    bool   `json:"success"`
	QuestionID *int   `json:"questionId"`
	Diagram    string `json:"diagram"`
	HasDiagram bool   `json:"hasDiagram"`
}

// GET /api/diagram/{id}
func GetDiagramHandler(svc *diagram.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Question ID is required"})
			return
		}
		svg, found := svc.Lookup(id)
		writeJSON(w, http.StatusOK, diagramResponse{
			Success:    true,
			QuestionID: leadingInt(id),
			Diagram:    svg,
			HasDiagram: found,
		})
	}
}

// GET /api/diagrams
func ListDiagramsHandler(svc *diagram.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := svc.IDs()
		writeJSON(w, http.StatusOK, map[string]any{"ids": ids, "count": len(ids)})
	}
}

// PUT /api/diagram/{id}  { "svg": "<svg ...>...</svg>" }
func UpdateDiagramHandler(svc *diagram.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			SVG string `json:"svg"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !strings.Contains(req.SVG, "<svg") {
			http.Error(w, "svg markup required", http.StatusBadRequest)
			return
		}
		if err := svc.Update(id, req.SVG); err != nil {
			http.Error(w, "save diagram: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "questionId": id})
	}
}

// POST /api/diagrams/reload
func ReloadDiagramsHandler(svc *diagram.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reload(); err != nil {
			http.Error(w, "reload: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": len(svc.IDs())})
	}
}

// leadingInt reads an optionally signed run of leading digits the way the
// exam client's parseInt does; no digits gives nil. A run too long for an
// int also gives nil, where parseInt would still return a float.
func leadingInt(s string) *int {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
