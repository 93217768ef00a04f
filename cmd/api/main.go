package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jgkirkwood/claimtrack/internal/claim"
	claimStore "github.com/jgkirkwood/claimtrack/internal/claim/store"
	"github.com/jgkirkwood/claimtrack/internal/config"
	"github.com/jgkirkwood/claimtrack/internal/database"
	claimtrackHttp "github.com/jgkirkwood/claimtrack/internal/http"
	claimHandler "github.com/jgkirkwood/claimtrack/internal/http/claim"
	projectHandler "github.com/jgkirkwood/claimtrack/internal/http/project"
	"github.com/jgkirkwood/claimtrack/internal/project"
	projectStore "github.com/jgkirkwood/claimtrack/internal/project/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		claimService   = claim.NewService(claimStore.New(db))
		projectService = project.NewService(projectStore.New(db))
	)

	var (
		claimH   = claimHandler.NewHandler(claimService, projectService)
		projectH = projectHandler.NewHandler(projectService, claimService)
	)

	router := claimtrackHttp.New(claimH, projectH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
