package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	auth "github.com/mind-engage/mindengage-cbt/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cbt/internal/bank"
	"github.com/mind-engage/mindengage-cbt/internal/diagram"
	"github.com/mind-engage/mindengage-cbt/internal/exam"
	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

type fixture struct {
	h      http.Handler
	auth   *auth.AuthService
	blobs  *storage.MemStore
	static *storage.MemStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	blobs := storage.NewMemStore()
	src := diagram.NewBlobSource(blobs, "diagrams.json")
	if err := src.Save(diagram.Map{"1": "<svg id=\"one\"></svg>", "2": ""}); err != nil {
		t.Fatal(err)
	}

	store := exam.NewInMemoryStore()
	if err := store.PutQuestions(context.Background(), "Mathematics", []bank.Question{
		{ID: bank.IntID(1), Question: "2+2?", Options: []bank.Option{{ID: "A", Text: "3"}, {ID: "B", Text: "4"}}, CorrectAnswer: "B"},
		{ID: bank.IntID(2), Question: "3+3?", Options: []bank.Option{{ID: "A", Text: "6"}, {ID: "B", Text: "7"}}, CorrectAnswer: "A"},
	}); err != nil {
		t.Fatal(err)
	}

	static := storage.NewMemStore()
	static.Put("index.html", strings.NewReader("<h1>CBT</h1>"))
	static.Put("js/app.js", strings.NewReader("console.log(1)"))

	a := auth.NewAuthService("test-secret", auth.Options{})
	return &fixture{
		h: NewRouter(Deps{
			Auth:      a,
			LocalAuth: true,
			Diagrams:  diagram.NewService(src),
			Exams:     exam.NewService(store, 2, time.Hour),
			Static:    static,
			Artifacts: blobs,
		}),
		auth:   a,
		blobs:  blobs,
		static: static,
	}
}

func (f *fixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) token(t *testing.T, sub, role string) string {
	t.Helper()
	tok, err := f.auth.IssueJWT(sub, role)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestGetDiagram(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		path       string
		questionID any
		has        bool
	}{
		{"/api/diagram/1", float64(1), true},
		{"/api/diagram/2", float64(2), false}, // empty entry is a miss
		{"/api/diagram/99", float64(99), false},
		{"/api/diagram/12abc", float64(12), false},
		{"/api/diagram/abc", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, tc.path, "", "")
			if rec.Code != 200 {
				t.Fatalf("status %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("content type %q", ct)
			}
			var out map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
				t.Fatal(err)
			}
			if out["success"] != true || out["hasDiagram"] != tc.has || out["questionId"] != tc.questionID {
				t.Fatalf("got %v", out)
			}
			svg, _ := out["diagram"].(string)
			if !strings.HasPrefix(svg, "<svg") {
				t.Fatalf("diagram %q", svg)
			}
		})
	}
}

func TestGetDiagramMissingID(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/diagram/", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Question ID is required"}` {
		t.Fatalf("body %s", got)
	}
}

func TestListDiagrams(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/diagrams", "", "")
	var out struct {
		IDs   []string `json:"ids"`
		Count int      `json:"count"`
	}
	json.NewDecoder(rec.Body).Decode(&out)
	if out.Count != 1 || out.IDs[0] != "1" {
		t.Fatalf("got %+v", out)
	}
}

func TestUpdateDiagram(t *testing.T) {
	f := newFixture(t)
	body := `{"svg":"<svg id=\"new\"></svg>"}`

	if rec := f.do(t, http.MethodPut, "/api/diagram/5", body, ""); rec.Code != 401 {
		t.Fatalf("anonymous: %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPut, "/api/diagram/5", body, f.token(t, "stu-001", auth.RoleStudent)); rec.Code != 403 {
		t.Fatalf("student: %d", rec.Code)
	}
	admin := f.token(t, "admin", auth.RoleAdmin)
	if rec := f.do(t, http.MethodPut, "/api/diagram/5", `{"svg":"nope"}`, admin); rec.Code != 400 {
		t.Fatalf("not svg: %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPut, "/api/diagram/5", body, admin); rec.Code != 200 {
		t.Fatalf("admin: %d %s", rec.Code, rec.Body)
	}

	rec := f.do(t, http.MethodGet, "/api/diagram/5", "", "")
	if !strings.Contains(rec.Body.String(), `"hasDiagram":true`) {
		t.Fatalf("not stored: %s", rec.Body)
	}
	data, err := storage.ReadAll(f.blobs, "diagrams.json")
	if err != nil {
		t.Fatal(err)
	}
	m, err := diagram.ParseMap(data)
	if err != nil || m["5"] != `<svg id="new"></svg>` {
		t.Fatalf("persisted %v %v", m, err)
	}
}

func TestExamFlow(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/auth/login", `{"studentId":"stu-001","examCode":"JAMB"}`, "")
	if rec.Code != 200 {
		t.Fatalf("login: %d %s", rec.Code, rec.Body)
	}
	var login map[string]string
	json.NewDecoder(rec.Body).Decode(&login)
	tok := login["access_token"]

	rec = f.do(t, http.MethodGet, "/api/subjects", "", "")
	if !strings.Contains(rec.Body.String(), `"Mathematics"`) {
		t.Fatalf("subjects: %s", rec.Body)
	}

	if rec := f.do(t, http.MethodGet, "/api/subjects/Mathematics/questions", "", ""); rec.Code != 401 {
		t.Fatalf("sheet without token: %d", rec.Code)
	}
	rec = f.do(t, http.MethodGet, "/api/subjects/Mathematics/questions", "", tok)
	var sheet exam.Sheet
	if err := json.NewDecoder(rec.Body).Decode(&sheet); err != nil {
		t.Fatal(err)
	}
	if len(sheet.Questions) != 2 || sheet.DurationSec != 3600 {
		t.Fatalf("sheet %+v", sheet)
	}
	for _, q := range sheet.Questions {
		if q.CorrectAnswer != "" {
			t.Fatal("answer key leaked")
		}
	}
	if rec := f.do(t, http.MethodGet, "/api/subjects/History/questions", "", tok); rec.Code != 404 {
		t.Fatalf("unknown subject: %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/api/exams",
		`{"subject":"Mathematics","questionIds":["1","2"],"answers":{"1":"B","2":"B"}}`, tok)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body)
	}
	var out exam.Outcome
	json.NewDecoder(rec.Body).Decode(&out)
	if out.Result.Score != 1 || out.Result.Total != 2 || out.Percentage != 50 || out.Result.StudentID != "stu-001" {
		t.Fatalf("outcome %+v", out)
	}

	if rec := f.do(t, http.MethodPost, "/api/exams", `{"subject":"Mathematics","questionIds":["9"]}`, tok); rec.Code != 400 {
		t.Fatalf("unknown question: %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPost, "/api/exams", `{"subject":"Mathematics","questionIds":["1","1","1"],"answers":{"1":"B"}}`, tok); rec.Code != 400 {
		t.Fatalf("repeated question: %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPost, "/api/exams", `{"subject":"Mathematics","questionIds":[]}`, tok); rec.Code != 400 {
		t.Fatalf("empty sheet: %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/students/stu-001/results", "", tok)
	var results []exam.Result
	json.NewDecoder(rec.Body).Decode(&results)
	if rec.Code != 200 || len(results) != 1 {
		t.Fatalf("results: %d %s", rec.Code, rec.Body)
	}
	if rec := f.do(t, http.MethodGet, "/api/students/stu-002/results", "", tok); rec.Code != 403 {
		t.Fatalf("other student's results: %d", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/api/students/stu-001/results", "", f.token(t, "admin", auth.RoleAdmin)); rec.Code != 200 {
		t.Fatalf("admin results: %d", rec.Code)
	}
}

func TestStatic(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		path, ct, body string
		code           int
	}{
		{"/", "text/html", "<h1>CBT</h1>", 200},
		{"/js/app.js", "text/javascript", "console.log(1)", 200},
		{"/missing.css", "", "404 Not Found", 404},
		{"/../../etc/passwd", "", "404 Not Found", 404},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, tc.path, "", "")
			if rec.Code != tc.code || rec.Body.String() != tc.body {
				t.Fatalf("got %d %q", rec.Code, rec.Body)
			}
			if tc.ct != "" && rec.Header().Get("Content-Type") != tc.ct {
				t.Fatalf("content type %q", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestContentType(t *testing.T) {
	for name, want := range map[string]string{
		"a.JPG": "image/jpg", "b.jpeg": "image/jpg", "c.svg": "image/svg+xml",
		"d.ico": "image/ico", "e.json": "application/json", "f.txt": "text/html", "g": "text/html",
	} {
		if got := contentType(name); got != want {
			t.Errorf("%s: got %q, want %q", name, got, want)
		}
	}
}

func TestArtifacts(t *testing.T) {
	f := newFixture(t)
	if rec := f.do(t, http.MethodGet, "/artifacts/diagrams.json", "", f.token(t, "stu-001", auth.RoleStudent)); rec.Code != 403 {
		t.Fatalf("student: %d", rec.Code)
	}
	admin := f.token(t, "admin", auth.RoleAdmin)
	rec := f.do(t, http.MethodGet, "/artifacts/diagrams.json", "", admin)
	if rec.Code != 200 || rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("got %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Body.String(), `"1": "<svg id=\"one\"></svg>"`) {
		t.Fatalf("body %s", rec.Body)
	}
	if rec := f.do(t, http.MethodGet, "/artifacts/missing.svg", "", admin); rec.Code != 404 {
		t.Fatalf("missing: %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	for _, p := range []string{"/healthz", "/readyz"} {
		if rec := f.do(t, http.MethodGet, p, "", ""); rec.Code != 200 {
			t.Errorf("%s: %d", p, rec.Code)
		}
	}
}

// brokenStore fails every read and write with something other than
// storage.ErrNotFound.
type brokenStore struct{}

func (brokenStore) Put(key string, _ io.Reader) (string, error) {
	return "", fmt.Errorf("write %s: %w", key, fs.ErrPermission)
}

func (brokenStore) Get(key string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("read %s: %w", key, fs.ErrPermission)
}

func (brokenStore) SignedURL(key string) (string, error) {
	return "", fs.ErrPermission
}

func TestStaticServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	StaticHandler(brokenStore{})(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Body.String(); got != "Server Error: permission denied" {
		t.Fatalf("body %q", got)
	}
}

func TestUpdateDiagramSaveFailure(t *testing.T) {
	a := auth.NewAuthService("test-secret", auth.Options{})
	h := NewRouter(Deps{
		Auth:     a,
		Diagrams: diagram.NewService(diagram.NewBlobSource(brokenStore{}, "diagrams.json")),
		Exams:    exam.NewService(exam.NewInMemoryStore(), 2, time.Hour),
	})
	tok, err := a.IssueJWT("admin", auth.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPut, "/api/diagram/5", strings.NewReader(`{"svg":"<svg>5</svg>"}`))
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}

	// the entry stays in memory until the next reload
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagram/5", nil))
	if !strings.Contains(rec.Body.String(), `"hasDiagram":true`) {
		t.Fatalf("entry lost: %s", rec.Body)
	}
}
