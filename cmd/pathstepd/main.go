// Command pathstepd serves pathstep sessions over HTTP.
//
// Usage:
//
//	pathstepd -config configs/pathstep.yaml [-addr :8080]
//
// The config file is watched; edits to its presets take effect for sessions
// created afterwards. Server and log settings are read once at startup.
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
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathstep/config"
	"github.com/katalvlaran/pathstep/logging"
	"github.com/katalvlaran/pathstep/preset"
	"github.com/katalvlaran/pathstep/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pathstepd:", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "configs/pathstep.yaml", "Path to the YAML config")
	addr := flag.String("addr", "", "HTTP listen address (overrides server.addr)")
	flag.Parse()

	// ── Config & logging ─────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath, nil)
	if err != nil {
		return err
	}
	cfg := loader.Config()

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	reg, err := preset.NewRegistry(cfg.Presets...)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "path", *cfgPath, "presets", reg.String())

	// ── Server ───────────────────────────────────────────────────────────────
	srv := server.New(cfg.Server, reg, logger)
	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	// ── Hot reload ───────────────────────────────────────────────────────────
	loader.SetLogger(logger)
	loader.OnChange(func(c *config.Config) {
		next, err := preset.NewRegistry(c.Presets...)
		if err != nil {
			logger.Warn("hot-reload skipped: presets invalid", "err", err)
			return
		}
		srv.SetPresets(next)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		logger.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── Run until signalled ──────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Listen(listen)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down…")
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("goodbye")

	return nil
}
