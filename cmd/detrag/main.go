package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"detrag/internal/cluster/kmeans"
	"detrag/internal/config"
	"detrag/internal/corpus"
	"detrag/internal/domain"
	"detrag/internal/embedding/tfidf"
	"detrag/internal/index"
	"detrag/internal/service"
	"detrag/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/detrag/config.yaml if not provided)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: detrag [--config=config.yaml] file1.txt [file2.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Assemble components via interfaces
	var vec domain.Vectorizer
	switch cfg.Embedder.Type {
	case "tfidf", "":
		vec = tfidf.New()
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	var cl domain.Clusterer
	switch cfg.Clusterer.Type {
	case "kmeans", "":
		cl = kmeans.New()
	default:
		log.Fatalf("unknown clusterer: %s", cfg.Clusterer.Type)
	}

	docs, err := corpus.Load(inputs)
	if err != nil {
		log.Fatalf("corpus load failed: %v", err)
	}

	opts := index.BuildOptions{Clusters: cfg.Pipeline.Clusters, Seed: cfg.Pipeline.Seed}
	pipeline := service.NewPipeline(vec, cl, opts)
	if err := pipeline.Build(docs); err != nil {
		log.Fatalf("index build failed: %v", err)
	}

	m := tui.New(pipeline, pipeline.Communities(), cfg.Pipeline.TopK)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
