package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sbelmont/intake/internal/cli"
	"github.com/sbelmont/intake/internal/config"
	"github.com/sbelmont/intake/internal/db"
	"github.com/sbelmont/intake/internal/repository"
	"github.com/sbelmont/intake/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Assessments: service.NewAssessmentService(assessmentRepo, uow),
		Catalog:     catalog,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
