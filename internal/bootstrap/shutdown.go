package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/osse101/PlayerLevels_Go/internal/plugin"
	"github.com/osse101/PlayerLevels_Go/internal/server"
)

// Runtime is the host runtime: background workers stop first, the main loop last
type Runtime interface {
	StopWorkers()
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server  *server.Server
	Plugin  *plugin.Plugin
	Runtime Runtime
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Runtime workers (no recompute or async command may touch the store after this)
// 3. Plugin (flush cached records, close storage)
// 4. Runtime main loop
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Runtime != nil {
		components.Runtime.StopWorkers()
	}

	if components.Plugin != nil {
		if err := components.Plugin.Disable(ctx); err != nil && !errors.Is(err, plugin.ErrNotEnabled) {
			slog.Error(LogMsgPluginShutdownFailed, "error", err)
		}
	}

	if components.Runtime != nil {
		components.Runtime.Stop()
		slog.Info(LogMsgRuntimeStopped)
	}

	slog.Info(LogMsgServerStopped)
}
