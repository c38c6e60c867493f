// Command bankcheck reports answer-key inconsistencies across the subject
// banks. It never edits a bank.
package main

import (
	"bytes"
	"flag"
	"log"
	"path/filepath"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
	"github.com/mind-engage/mindengage-cbt/internal/config"
	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	out := flag.String("out", "reports/answer_issues.json", "blob key of the JSON report")
	flag.Parse()

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	var issues []bank.Issue
	for _, s := range cfg.Subjects {
		file := bank.FileName(s)
		b, err := bank.LoadFile(filepath.Join(cfg.BankDir, file))
		if err != nil {
			log.Printf("skip %s: %v", s, err)
			continue
		}
		found := bank.Analyze(file, b.Questions)
		log.Printf("%s: %d questions, %d issues", s, len(b.Questions), len(found))
		issues = append(issues, found...)
	}

	data, err := bank.MarshalIssues(issues)
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	if _, err := bs.Put(*out, bytes.NewReader(data)); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("%d issues written to %s", len(issues), storage.Locate(bs, *out))
}
