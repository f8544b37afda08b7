package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/aquawm/internal/config"
	"github.com/1broseidon/aquawm/internal/daemon"
	"github.com/1broseidon/aquawm/internal/hotkeys"
	"github.com/1broseidon/aquawm/internal/ipc"
	"github.com/1broseidon/aquawm/internal/wm"
	"github.com/1broseidon/aquawm/internal/x11"
)

func runWM(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", config.DefaultConfigPath(), "Config file path")
	display := fs.String("display", "", "X display to manage (default: config display, then $DISPLAY)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: aquawm run [--config PATH] [--display DISPLAY]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Manage the X display in the foreground until interrupted.")
		fs.PrintDefaults()
	}
	if code, ok := parseNoArgs(fs, "run", args); !ok {
		return code
	}

	res, err := config.LoadFromPath(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	cfg := res.Config

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	if res.File != "" {
		logger.Info("configuration loaded", "file", res.File)
	}

	if *display == "" {
		*display = cfg.Display
	}
	conn, err := x11.NewConnection(*display)
	if err != nil {
		logger.Error("failed to connect to display", "error", err)
		return 1
	}
	defer conn.Close()

	if err := conn.TakeOwnership(); err != nil {
		logger.Error("cannot manage display", "error", err)
		return 1
	}

	screen, err := conn.ScreenBounds()
	if err != nil {
		logger.Error("failed to read screen size", "error", err)
		return 1
	}
	if outputs, err := conn.Outputs(); err == nil {
		for _, o := range outputs {
			logger.Info("output", "name", o.Name, "bounds", o.Bounds, "primary", o.Primary)
		}
	} else {
		logger.Debug("outputs unavailable", "error", err)
	}
	if err := conn.WatchScreenChanges(); err != nil {
		logger.Warn("screen size changes will not be tracked", "error", err)
	}

	surface, err := x11.NewSurface(conn, logger)
	if err != nil {
		logger.Error("failed to prepare display resources", "error", err)
		return 1
	}
	defer surface.Close()

	var keys wm.KeyMatcher
	table, err := hotkeys.Grab(conn.XUtil, conn.Root, []hotkeys.Spec{
		{Sequence: cfg.Keys.Close, Action: hotkeys.ActionClose},
		{Sequence: cfg.Keys.CycleFocus, Action: hotkeys.ActionCycleFocus},
		{Sequence: cfg.Keys.Fullscreen, Action: hotkeys.ActionFullscreen},
	})
	if err != nil {
		logger.Warn("key bindings unavailable", "error", err)
	} else {
		keys = table
		defer table.Release(conn.XUtil, conn.Root)
	}

	manager := wm.New(wm.Config{
		Surface:        surface,
		Keys:           keys,
		Logger:         logger,
		Screen:         screen,
		DockHeuristics: cfg.DockHeuristics,
	})

	existing, err := conn.TopLevelWindows()
	if err != nil {
		logger.Warn("failed to list existing windows", "error", err)
	}
	manager.Adopt(existing)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("shutting down", "signal", sig.String())
		cancel()
	}()

	if cfg.IPC.Enabled {
		server, err := ipc.NewServer(manager, logger)
		if err != nil {
			logger.Error("failed to create IPC server", "error", err)
			return 1
		}
		if err := server.Start(); err != nil {
			logger.Error("failed to start IPC server", "error", err)
			return 1
		}
		defer server.Stop()
	}

	reconciler := daemon.NewReconciler(daemon.ReconcilerConfig{
		Interval: cfg.ReconcileInterval,
		Logger:   logger,
	}, manager)
	go reconciler.Run(ctx)

	err = manager.Run(ctx, conn.Events(ctx, logger))
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	case errors.Is(err, wm.ErrDisconnected):
		logger.Error("lost the X connection")
		return 1
	default:
		logger.Error("window manager failed", "error", err)
		return 1
	}
}
