package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayerLevels_Go/internal/config"
	"github.com/osse101/PlayerLevels_Go/internal/host/local"
	"github.com/osse101/PlayerLevels_Go/internal/player"
	"github.com/osse101/PlayerLevels_Go/internal/plugin"
	"github.com/osse101/PlayerLevels_Go/internal/repository"
)

type recordingRuntime struct{ calls []string }

func (r *recordingRuntime) StopWorkers() { r.calls = append(r.calls, "workers") }
func (r *recordingRuntime) Stop()        { r.calls = append(r.calls, "main") }

func TestGracefulShutdown_SkipsNilComponents(t *testing.T) {
	rt := &recordingRuntime{}
	GracefulShutdown(context.Background(), ShutdownComponents{Runtime: rt})
	assert.Equal(t, []string{"workers", "main"}, rt.calls)
}

type closeRecordingRepository struct {
	*player.FakeRepository
	rt *recordingRuntime
}

func (r closeRecordingRepository) Close() error {
	r.rt.calls = append(r.rt.calls, "storage")
	return nil
}

func TestGracefulShutdown_StopsWorkersBeforeStorage(t *testing.T) {
	rt := &recordingRuntime{}
	p := plugin.New(plugin.Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
		Server:     local.NewServer(nil),
		Scheduler:  local.Immediate{},
		OpenRepository: func(context.Context, config.Storage) (repository.Player, error) {
			return closeRecordingRepository{FakeRepository: player.NewFakeRepository(), rt: rt}, nil
		},
	})
	require.NoError(t, p.Enable(context.Background()))

	GracefulShutdown(context.Background(), ShutdownComponents{Plugin: p, Runtime: rt})

	assert.Equal(t, []string{"workers", "storage", "main"}, rt.calls)
}
