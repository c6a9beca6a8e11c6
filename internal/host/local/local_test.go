package local

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/host"
	"github.com/osse101/PlayerLevels_Go/internal/testing/leaktest"
)

var (
	_ host.Player    = (*Player)(nil)
	_ host.Server    = (*Server)(nil)
	_ host.Scheduler = (*Runtime)(nil)
	_ host.Scheduler = Immediate{}
)

type echoCommand struct {
	mu   sync.Mutex
	seen []string
}

func (c *echoCommand) Execute(_ context.Context, sender host.CommandSender, args []string) {
	c.mu.Lock()
	c.seen = append(c.seen, sender.Name()+":"+strings.Join(args, " "))
	c.mu.Unlock()
	sender.SendMessage("echo " + strings.Join(args, " "))
}

func (c *echoCommand) Complete(_ host.CommandSender, args []string) []string {
	return []string{"completed-" + args[len(args)-1]}
}

func TestOfflineID(t *testing.T) {
	id := OfflineID("Steve")

	assert.Equal(t, id, OfflineID("Steve"))
	assert.NotEqual(t, id, OfflineID("steve"))
	assert.Equal(t, 3, int(id.Version()))
}

func TestPlayer_Statistics(t *testing.T) {
	p := NewPlayer(OfflineID("Steve"), "Steve")
	p.SetStatistic("MINE_BLOCK", domain.Material("STONE"), 10)
	p.AddStatistic("MINE_BLOCK", domain.Material("STONE"), 5)

	n, err := p.Statistic("MINE_BLOCK", domain.Material("STONE"))
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	n, err = p.Statistic("MINE_BLOCK", domain.Material("DIRT"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	p.BreakStatistic("JUMP")
	_, err = p.Statistic("JUMP", domain.NoQualifier)
	assert.ErrorIs(t, err, domain.ErrStatisticLookup)
}

func TestPlayer_Permissions(t *testing.T) {
	p := NewPlayer(OfflineID("Alex"), "Alex")
	assert.False(t, p.HasPermission(domain.PermissionOthers))

	p.Grant(domain.PermissionOthers)
	assert.True(t, p.HasPermission(domain.PermissionOthers))
	assert.False(t, p.HasPermission(domain.PermissionAdmin))

	p.SetOp(true)
	assert.True(t, p.HasPermission(domain.PermissionAdmin))
}

func TestServer_JoinQuitLookup(t *testing.T) {
	s := NewServer(nil)
	var joined []string
	s.OnJoin(func(p host.Player) { joined = append(joined, p.Name()) })

	steve := NewPlayer(OfflineID("Steve"), "Steve")
	alex := NewPlayer(OfflineID("Alex"), "Alex")
	s.Join(steve)
	s.Join(alex)

	assert.Equal(t, []string{"Steve", "Alex"}, joined)
	online := s.OnlinePlayers()
	require.Len(t, online, 2)
	assert.Equal(t, "Alex", online[0].Name())

	p, ok := s.PlayerByName("steve")
	require.True(t, ok)
	assert.Equal(t, steve.ID(), p.ID())

	s.Quit(steve.ID())
	_, ok = s.Player(steve.ID())
	assert.False(t, ok)
}

func TestServer_DispatchConsoleCommand(t *testing.T) {
	var out bytes.Buffer
	s := NewServer(NewConsole(&out))
	echo := &echoCommand{}
	s.RegisterCommand("Echo", echo)

	require.NoError(t, s.DispatchConsoleCommand("echo §ahello"))
	err := s.DispatchConsoleCommand("give Steve diamond 1")

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, []string{"echo §ahello", "give Steve diamond 1"}, s.DispatchedCommands())
	assert.Equal(t, []string{"CONSOLE:§ahello"}, echo.seen)
	assert.Equal(t, "echo hello\n", out.String())
}

func TestServer_Complete(t *testing.T) {
	s := NewServer(nil)
	s.RegisterCommand("echo", &echoCommand{})

	assert.Equal(t, []string{"completed-ab"}, s.Complete(s.Console(), "echo ab"))
	assert.Equal(t, []string{"completed-"}, s.Complete(s.Console(), "echo "))
	assert.Nil(t, s.Complete(s.Console(), "echo"))
	assert.Nil(t, s.Complete(s.Console(), "nope x"))
}

func TestStripColors(t *testing.T) {
	assert.Equal(t, "Level 5!", StripColors("§aLevel §l5!"))
	assert.Equal(t, "plain", StripColors("plain"))
}

func TestRuntime_RunSyncPreservesOrder(t *testing.T) {
	r := NewRuntime(2, 16)
	defer r.Stop()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		r.RunSync(func() { got = append(got, i) })
	}
	r.Call(func() {})

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestRuntime_RunAsyncAndRepeating(t *testing.T) {
	r := NewRuntime(2, 16)
	defer r.Stop()

	done := make(chan struct{})
	r.RunAsync(func(context.Context) { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async task did not run")
	}

	var runs int32
	ticks := make(chan struct{}, 10)
	cancel := r.RunRepeatingAsync(0, 5*time.Millisecond, func(context.Context) {
		atomic.AddInt32(&runs, 1)
		ticks <- struct{}{}
	})
	for i := 0; i < 2; i++ {
		select {
		case <-ticks:
		case <-time.After(time.Second):
			t.Fatal("repeating task did not run")
		}
	}
	cancel()
	assert.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(2))
}

func TestRuntime_PanickingSyncTaskDoesNotKillLoop(t *testing.T) {
	r := NewRuntime(1, 4)
	defer r.Stop()

	r.RunSync(func() { panic("boom") })
	ran := false
	r.Call(func() { ran = true })

	assert.True(t, ran)
}

func TestRuntime_StopDropsLaterTasks(t *testing.T) {
	r := NewRuntime(1, 4)
	r.Stop()
	r.Stop()

	ran := false
	r.RunSync(func() { ran = true })
	r.Call(func() { ran = true })

	assert.False(t, ran)
}

func TestRuntime_StopWorkersKeepsMainLoop(t *testing.T) {
	r := NewRuntime(2, 8)
	defer r.Stop()

	var finished atomic.Bool
	started := make(chan struct{})
	r.RunAsync(func(context.Context) {
		close(started)
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})
	<-started

	r.StopWorkers()
	assert.True(t, finished.Load(), "running async task completes before StopWorkers returns")

	ran := false
	r.RunAsync(func(context.Context) { ran = true })
	r.Call(func() {})
	assert.False(t, ran, "async work is refused after StopWorkers")

	synced := false
	r.Call(func() { synced = true })
	assert.True(t, synced, "main loop still runs")
	r.StopWorkers()
}

func TestShell(t *testing.T) {
	var out bytes.Buffer
	s := NewServer(NewConsole(&out))
	echo := &echoCommand{}
	s.RegisterCommand("echo", echo)
	r := NewRuntime(1, 8)
	defer r.Stop()
	shell := NewShell(s, r)

	input := strings.Join([]string{
		"join Steve",
		"stat Steve MINE_BLOCK:stone 12",
		"kill Steve zombie 3",
		"op Steve",
		"as Steve echo hi",
		"echo from console",
		"list",
		"bogus",
		"stop",
		"join Never",
	}, "\n")
	require.NoError(t, shell.Run(context.Background(), strings.NewReader(input)))

	p, ok := s.LocalPlayerByName("Steve")
	require.True(t, ok)
	n, _ := p.Statistic("MINE_BLOCK", domain.Material("STONE"))
	assert.Equal(t, 12, n)
	n, _ = p.Statistic("KILL_ENTITY", domain.Entity("ZOMBIE"))
	assert.Equal(t, 3, n)
	assert.True(t, p.HasPermission(domain.PermissionAdmin))
	assert.Equal(t, []string{"echo hi"}, p.Messages())
	assert.Equal(t, []string{"Steve:hi", "CONSOLE:from console"}, echo.seen)

	_, ok = s.LocalPlayerByName("Never")
	assert.False(t, ok)
	assert.Contains(t, out.String(), "1 online: Steve")
	assert.Contains(t, out.String(), "unknown command: bogus")
}

func TestRuntime_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		rt := NewRuntime(2, 8)
		cancel := rt.RunRepeatingAsync(time.Millisecond, time.Millisecond, func(context.Context) {})
		rt.Call(func() {})
		cancel()
		rt.Stop()
	})
}
