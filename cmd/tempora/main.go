package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/danielgrim/tempora/internal/cli"
	"github.com/danielgrim/tempora/internal/config"
	"github.com/danielgrim/tempora/internal/db"
	"github.com/danielgrim/tempora/internal/repository"
	"github.com/danielgrim/tempora/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("TEMPORA_CONFIG")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	tagRepo := repository.NewSQLiteTagRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging is opt-in; it writes structured lines to stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("TEMPORA_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	clock := service.SystemClock()
	app := &cli.App{
		Timers:      service.NewTimerService(entryRepo, clock, observers...),
		Entries:     service.NewEntryService(entryRepo, clock, observers...),
		Reports:     service.NewReportService(entryRepo, observers...),
		Ingest:      service.NewIngestService(uow, clock, observers...),
		Projects:    projectRepo,
		Tags:        tagRepo,
		WorkspaceID: cfg.WorkspaceID,
		UserID:      cfg.UserID,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
