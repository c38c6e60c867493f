package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/mind-engage/mindengage-cbt/internal/api/http"
	auth "github.com/mind-engage/mindengage-cbt/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cbt/internal/bank"
	"github.com/mind-engage/mindengage-cbt/internal/config"
	"github.com/mind-engage/mindengage-cbt/internal/diagram"
	"github.com/mind-engage/mindengage-cbt/internal/exam"
	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, closeDB, err := exam.OpenStore(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer closeDB()

	exams := exam.NewService(store, cfg.ExamQuestions, cfg.ExamDuration)
	seeded := exams.Seed(ctx, bank.LoadSubjects(cfg.BankDir, cfg.Subjects))
	log.Printf("seeded %d subjects from %s", seeded, cfg.BankDir)

	// --- Blobs ---
	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}
	static, err := storage.NewFSStore(cfg.StaticRoot)
	if err != nil {
		log.Fatalf("static root: %v", err)
	}

	// Loads lazily; a missing map serves placeholders until /api/diagrams/reload.
	diagrams := diagram.NewService(diagram.NewBlobSource(bs, cfg.DiagramMapKey))
	if err := diagrams.Reload(); err != nil {
		log.Printf("diagram map not loaded: %v", err)
	}

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret, auth.Options{
		AdminUser:     cfg.AdminUser,
		AdminPassHash: cfg.AdminPassHash,
		ExamCode:      cfg.ExamCode,
	})

	h := api.NewRouter(api.Deps{
		Auth:      authSvc,
		LocalAuth: cfg.EnableLocalAuth,
		Diagrams:  diagrams,
		Exams:     exams,
		Static:    static,
		Artifacts: bs,
		Origins:   cfg.CORSOrigins(),
	})

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, h))
}
