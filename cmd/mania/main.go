package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/okatsune/mania/internal/app"
	"github.com/okatsune/mania/internal/catalog"
	"github.com/okatsune/mania/internal/config"
	"github.com/okatsune/mania/internal/jikan"
	"github.com/okatsune/mania/internal/log"
	"github.com/okatsune/mania/internal/store"
	"github.com/okatsune/mania/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("mania %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("mania is an interactive app and needs a terminal")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting mania", "version", Version)

	kv := store.Open(cfg.Storage.Dir, log.ForComponent(logger, "store"))
	defer kv.Close()

	client := jikan.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log.ForComponent(logger, "jikan"))
	catalogSvc := catalog.NewService(client, log.ForComponent(logger, "catalog"))
	appStore := app.NewStore(kv, log.ForComponent(logger, "app"))

	model := tui.NewModel(catalogSvc, appStore)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
