package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"scan-analytics/internal/app"
	"scan-analytics/internal/shared/configs"
)

func main() {
	configPath := flag.String("config", "", "optional path to a YAML config file")
	serve := flag.Bool("serve", false, "serve the report over HTTP instead of printing it once")
	flag.Parse()

	// Load configuration; defaults apply when no file is given
	cfg := configs.Default()
	if *configPath != "" {
		loaded, err := configs.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	eventsPath := resolveEventsPath(flag.Arg(0), cfg)

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	if *serve {
		runServer(application, eventsPath)
		return
	}

	if err := application.Run(context.Background(), eventsPath, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveEventsPath picks the events file: CLI argument, then config, then
// the conventional public/events.jsonl next to the installed binary.
func resolveEventsPath(arg string, cfg *configs.Config) string {
	if arg != "" {
		return arg
	}
	if cfg.EventLog.Path != "" {
		return cfg.EventLog.Path
	}

	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("public", "events.jsonl")
	}
	return filepath.Join(filepath.Dir(exe), "public", "events.jsonl")
}

func runServer(application *app.App, eventsPath string) {
	// Start server in goroutine
	go func() {
		if err := application.Serve(eventsPath); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Fprintln(os.Stderr, "Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
	}
}
