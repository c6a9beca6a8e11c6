package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PlayerLevels_Go/internal/bootstrap"
	"github.com/osse101/PlayerLevels_Go/internal/command"
	"github.com/osse101/PlayerLevels_Go/internal/config"
	"github.com/osse101/PlayerLevels_Go/internal/host"
	"github.com/osse101/PlayerLevels_Go/internal/host/local"
	"github.com/osse101/PlayerLevels_Go/internal/placeholder"
	"github.com/osse101/PlayerLevels_Go/internal/plugin"
	"github.com/osse101/PlayerLevels_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runtime := local.NewRuntime(cfg.WorkerCount, cfg.WorkerQueueSize)
	gameServer := local.NewServer(local.NewConsole(os.Stdout))

	levels := plugin.New(plugin.Options{
		ConfigPath: cfg.PluginConfigPath,
		Server:     gameServer,
		Scheduler:  runtime,
		App:        cfg,
	})
	if err := levels.Enable(ctx); err != nil {
		slog.Error("Failed to enable plugin", "error", err)
		runtime.Stop()
		os.Exit(1)
	}

	command.Register(gameServer, levels, gameServer, runtime)
	gameServer.OnJoin(func(hp host.Player) {
		levels.OnJoin(ctx, hp)
	})

	var apiServer *server.Server
	if cfg.HTTPPort > 0 {
		store := levels.Store()
		apiServer = server.NewServer(server.Options{
			Port:           cfg.HTTPPort,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			Version:        cfg.Version,
		}, store, placeholder.New(store))

		go func() {
			if err := apiServer.Start(); err != nil {
				slog.Error("HTTP server failed", "error", err)
				stop()
			}
		}()
	}

	// The console shell owns stdin; "stop" or EOF shuts the server down
	go func() {
		if err := local.NewShell(gameServer, runtime).Run(ctx, os.Stdin); err != nil {
			slog.Error("Console input failed", "error", err)
		}
		stop()
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownGraceDuration)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  apiServer,
		Plugin:  levels,
		Runtime: runtime,
	})
}
