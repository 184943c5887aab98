package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/telos/internal/analysis"
	"github.com/alexanderramin/telos/internal/cli"
	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.telos/telos.db
	dbPath := os.Getenv("TELOS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".telos", "telos.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cfg := analysis.LoadConfig()

	var observer analysis.Observer = analysis.NoopObserver{}
	if v := os.Getenv("TELOS_LOG_ANALYSIS"); v == "1" || v == "true" {
		observer = analysis.NewLogObserver(os.Stderr)
	}

	svc, err := analysis.NewDefaultService(cfg, observer)
	if err != nil {
		return fmt.Errorf("starting analysis service: %w", err)
	}
	defer svc.Close()

	app := &cli.App{
		Analysis: svc,
		Logs:     repository.NewSQLiteAnalysisLogRepo(database),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
