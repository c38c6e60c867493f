package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	auth "github.com/mind-engage/mindengage-cbt/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cbt/internal/diagram"
	"github.com/mind-engage/mindengage-cbt/internal/exam"
	"github.com/mind-engage/mindengage-cbt/internal/rbac"
	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

// Deps is what the router serves. Static and Artifacts may be nil.
type Deps struct {
	Auth      *auth.AuthService
	LocalAuth bool
	Diagrams  *diagram.Service
	Exams     *exam.Service
	Static    storage.BlobStore
	Artifacts storage.BlobStore
	Origins   []string
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if d.LocalAuth {
		r.Post("/auth/login", auth.LoginHandler(d.Auth))
	}

	// Public reads
	r.Get("/api/diagram/", GetDiagramHandler(d.Diagrams))
	r.Get("/api/diagram/{id}", GetDiagramHandler(d.Diagrams))
	r.Get("/api/diagrams", ListDiagramsHandler(d.Diagrams))
	r.Get("/api/subjects", ListSubjectsHandler(d.Exams))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(d.Auth))

		pr.With(rbac.Require("exam:take")).
			Get("/api/subjects/{subject}/questions", SheetHandler(d.Exams))
		pr.With(rbac.Require("exam:submit")).
			Post("/api/exams", SubmitExamHandler(d.Exams))
		pr.With(rbac.RequireOwnerOr("result:view-all", IsResultOwner)).
			Get("/api/students/{studentID}/results", StudentResultsHandler(d.Exams))

		pr.With(rbac.Require("diagram:update")).
			Put("/api/diagram/{id}", UpdateDiagramHandler(d.Diagrams))
		pr.With(rbac.Require("bank:reload")).
			Post("/api/diagrams/reload", ReloadDiagramsHandler(d.Diagrams))

		if d.Artifacts != nil {
			pr.With(rbac.Require("artifact:view")).Route("/artifacts", func(ar chi.Router) {
				MountArtifacts(ar, d.Artifacts)
			})
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	if d.Static != nil {
		r.Get("/*", StaticHandler(d.Static))
	}
	return r
}
