// Command augment embeds generated diagrams into the mathematics, physics
// and chemistry bank files in place.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
	"github.com/mind-engage/mindengage-cbt/internal/config"
	"github.com/mind-engage/mindengage-cbt/internal/diagram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	subjects := flag.String("subjects", "Mathematics,Physics,Chemistry", "comma separated subjects to augment")
	dry := flag.Bool("dry-run", false, "report counts without rewriting files")
	flag.Parse()

	total := 0
	for _, s := range strings.Split(*subjects, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		file := filepath.Join(cfg.BankDir, bank.FileName(s))
		b, err := bank.LoadFile(file)
		if err != nil {
			log.Printf("skip %s: %v", s, err)
			continue
		}
		qs, n := diagram.Augment(s, b.Questions)
		log.Printf("%s: %d of %d questions got a diagram", s, n, len(qs))
		if *dry || n == 0 {
			continue
		}
		b.Questions = qs
		if err := bank.WriteFile(file, b); err != nil {
			log.Printf("write %s: %v", file, err)
			continue
		}
		total += n
	}
	log.Printf("done: %d diagrams added", total)
}
