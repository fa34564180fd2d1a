package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli"
	"github.com/DiegoRozo23/lexpro-abogados/internal/db"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
	"github.com/DiegoRozo23/lexpro-abogados/internal/seed"
	"github.com/DiegoRozo23/lexpro-abogados/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Every run starts from the demo dataset. LEXPRO_DB points the scratch
	// store at a file instead of :memory:, so the session's state can be
	// inspected with the sqlite shell afterwards; the file is recreated on
	// each start.
	var (
		database *sql.DB
		err      error
	)
	if path := os.Getenv("LEXPRO_DB"); path != "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("resetting store: %w", err)
		}
		database, err = db.Open(path)
	} else {
		database, err = db.OpenMemory()
	}
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer database.Close()

	// Wire repositories
	clientRepo := repository.NewSQLiteClientRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	timeEntryRepo := repository.NewSQLiteTimeEntryRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	if err := seed.Demo(context.Background(), seed.Stores{
		Users:         userRepo,
		Clients:       clientRepo,
		Projects:      projectRepo,
		Tasks:         taskRepo,
		TimeEntries:   timeEntryRepo,
		Notifications: notificationRepo,
	}); err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}

	// Wire services
	app := &cli.App{
		Clients:       service.NewClientService(clientRepo, projectRepo),
		Projects:      service.NewProjectService(projectRepo, clientRepo),
		Tasks:         service.NewTaskService(taskRepo, projectRepo, userRepo),
		TimeEntries:   service.NewTimeEntryService(timeEntryRepo, taskRepo, userRepo),
		Notifications: service.NewNotificationService(notificationRepo),
		Users:         service.NewUserService(userRepo),
		Stats:         service.NewStatsService(projectRepo, taskRepo, clientRepo, timeEntryRepo, userRepo),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
