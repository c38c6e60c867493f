// Command diagrams builds the diagram map and atlas for one subject and
// writes them to the blob store.
package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
	"github.com/mind-engage/mindengage-cbt/internal/config"
	"github.com/mind-engage/mindengage-cbt/internal/diagram"
	"github.com/mind-engage/mindengage-cbt/internal/render"
	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	subject := flag.String("subject", cfg.DiagramSubject, "subject whose bank file is scanned")
	img := flag.String("png", "", "also rasterise the atlas to this blob key (.png or .jpg)")
	flag.Parse()

	file := filepath.Join(cfg.BankDir, bank.FileName(*subject))
	b, err := bank.LoadFile(file)
	if err != nil {
		log.Fatalf("load %s: %v", file, err)
	}
	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	res := diagram.Build(b.Questions)
	log.Printf("%s: %d questions, %d diagram-related, %d diagrams", *subject, res.Total, res.Related, len(res.Records))

	arts := diagram.Artifacts{MapKey: cfg.DiagramMapKey, AtlasKey: cfg.AtlasKey, Source: filepath.Base(file)}
	if err := diagram.WriteArtifacts(bs, arts, res); err != nil {
		log.Fatalf("write: %v", err)
	}
	log.Printf("wrote %s and %s", storage.Locate(bs, arts.MapKey), storage.Locate(bs, arts.AtlasKey))

	if *img == "" {
		return
	}
	format := render.FormatPNG
	if ext := strings.ToLower(filepath.Ext(*img)); ext == ".jpg" || ext == ".jpeg" {
		format = render.FormatJPEG
	}
	var buf bytes.Buffer
	if err := render.SVGToImage(context.Background(), diagram.Atlas(arts.Source, res.Records), format, &buf); err != nil {
		// the map and atlas are already written
		log.Printf("rasterise atlas: %v", err)
		return
	}
	if _, err := bs.Put(*img, &buf); err != nil {
		log.Fatalf("write %s: %v", *img, err)
	}
	log.Printf("wrote %s", storage.Locate(bs, *img))
}
