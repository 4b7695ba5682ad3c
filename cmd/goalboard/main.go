// Package main implements the goalboard command, an interactive menu for
// creating a user, workspaces, goal tables and goals in memory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/goalboard/internal/cli"
	"github.com/phrazzld/goalboard/internal/config"
	"github.com/phrazzld/goalboard/internal/events"
	"github.com/phrazzld/goalboard/internal/platform/logger"
	"github.com/phrazzld/goalboard/internal/service"
	"github.com/phrazzld/goalboard/internal/store"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		// Restore default handling after the first signal so a second one
		// terminates the process.
		<-ctx.Done()
		stop()
	}()
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run wires the application and drives the menu. Menu output goes to stdout,
// logs and startup errors to stderr. It returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("goalboard", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	app, err := initializeApp(fs, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "goalboard: %v\n", err)
		return 1
	}

	if err := app.menu.Run(ctx); err != nil {
		app.cleanup()
		if errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(stderr, "goalboard: %v\n", err)
		return 1
	}

	app.cleanup()
	return 0
}

type application struct {
	menu    *cli.Menu
	cleanup func()
}

// initializeApp loads configuration and builds the component graph.
func initializeApp(fs *pflag.FlagSet, stdin io.Reader, stdout, stderr io.Writer) (*application, error) {
	cfg, err := config.Load(fs)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Log, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"legacy_timestamps", cfg.Session.LegacyTimestamps,
		"strict_roles", cfg.Session.StrictRoles,
		"clear_screen", cfg.CLI.ClearScreen)

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(events.NewLogHandler(log))
	log.Debug("event handlers registered", "count", emitter.HandlerCount())

	mem := store.NewMemoryStore()
	session := service.NewSession(service.MemoryStores(mem), emitter, log, service.Options{
		LegacyTimestamps: cfg.Session.LegacyTimestamps,
		StrictRoles:      cfg.Session.StrictRoles,
	})

	menu := cli.NewMenu(session, stdin, stdout, log, cli.MenuOptions{
		ClearScreen: cfg.CLI.ClearScreen,
	})

	return &application{
		menu: menu,
		cleanup: func() {
			log.Info("session ended",
				"users", mem.Users.Len(),
				"workspaces", mem.Workspaces.Len(),
				"goal_tables", mem.GoalTables.Len(),
				"goals", mem.Goals.Len())
		},
	}, nil
}
