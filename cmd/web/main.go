package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"refquiz/internal/app"
	"refquiz/internal/app/observability"
	"refquiz/internal/bank"
	"refquiz/internal/quiz"
)

func main() {
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Printf("config error: %v", err)
		os.Exit(1)
	}

	b := bank.New()
	bank.Load(context.Background(), bankSource(cfg), b)

	mgr := quiz.NewManager(b, quiz.Config{
		TotalQuestions: cfg.TotalQuestions,
		SettleDelay:    cfg.SettleDelay,
	})

	collector := observability.NewCollector(b.Size)
	r := app.NewRouter(cfg, mgr, collector)

	log.Printf("refquiz web listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Printf("server stopped: %v", err)
		os.Exit(1)
	}
}

// bankSource picks the content provider: a URL when configured, otherwise a
// local document (json, yaml or xlsx by extension).
func bankSource(cfg *app.Config) bank.Source {
	if cfg.BankURL != "" {
		return bank.NewHTTPSource(cfg.BankURL, cfg.BankFetchTimeout)
	}
	if strings.HasSuffix(strings.ToLower(cfg.BankFile), ".xlsx") {
		return &bank.ExcelSource{Path: cfg.BankFile}
	}
	return &bank.FileSource{Path: cfg.BankFile}
}
