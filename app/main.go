package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"internsift/app/api"
	"internsift/app/cfg"
	"internsift/app/database"
	"internsift/app/fetch"
	"internsift/app/pipeline"
	"internsift/app/rules"
	"internsift/app/source"
	"internsift/app/tasks"
)

func main() {
	// .env is optional; flags and real env vars win.
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		return // help was shown
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting internsift", "version", appCfg.Version)

	ruleSet, err := rules.NewLoader(appCfg.RulesDir).Load()
	if err != nil {
		slog.Error("Failed to load rule tables", "error", err)
		os.Exit(1)
	}

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "migration_version", version, "dirty", dirty)

	store := database.NewJobRepository(db)

	httpClient := &http.Client{Timeout: time.Duration(appCfg.FetchTimeout) * time.Second}
	fetcher := fetch.NewHTTPFetcher(httpClient, appCfg.UserAgent)

	var sources []source.Source
	for _, u := range appCfg.GithubFeedURLs {
		sources = append(sources, source.NewGithubFeed(fetcher, u, "GitHub"))
	}
	for _, u := range appCfg.RSSFeedURLs {
		sources = append(sources, source.NewRSSFeed(u, "RSS", appCfg.UserAgent))
	}
	if appCfg.EmailDir != "" {
		sources = append(sources, source.NewEmailAdapter(source.NewDirEmailSource(appCfg.EmailDir), "Email"))
	}
	if len(sources) == 0 {
		slog.Error("No sources configured; set --github-feed, --rss-feed, or --email-dir")
		os.Exit(1)
	}

	p := pipeline.New(ruleSet, fetcher, appCfg.Season, appCfg.CycleYear, appCfg.MaxJobAgeDays)
	task := tasks.NewAggregateTask(sources, p, store)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if appCfg.Schedule == "" {
		if err := task.Execute(ctx); err != nil {
			slog.Error("Run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	runner := tasks.NewRunner(task, appCfg.Schedule)
	if err := runner.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(store, appCfg.Version)
	server := &http.Server{
		Addr:    ":" + appCfg.Port,
		Handler: api.NewServer(handler, appCfg.APIAccessKey),
	}

	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	runner.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
}
