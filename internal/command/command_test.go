package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/host"
	"github.com/osse101/PlayerLevels_Go/internal/host/local"
)

type MockLevels struct {
	mock.Mock
}

func (m *MockLevels) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockLevels) Progress(ctx context.Context, hp host.Player) (domain.PlayerProgress, bool) {
	args := m.Called(ctx, hp)
	return args.Get(0).(domain.PlayerProgress), args.Bool(1)
}

func (m *MockLevels) SetLevel(ctx context.Context, hp host.Player, level int) (domain.PlayerRecord, error) {
	args := m.Called(ctx, hp, level)
	return args.Get(0).(domain.PlayerRecord), args.Error(1)
}

func (m *MockLevels) Top(ctx context.Context, limit int) []domain.PlayerRecord {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.PlayerRecord)
}

func (m *MockLevels) Reload(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type fixture struct {
	levels *MockLevels
	server *local.Server
	steve  *local.Player
	alex   *local.Player
}

func newFixture(enabled bool) *fixture {
	f := &fixture{levels: new(MockLevels), server: local.NewServer(nil)}
	f.levels.On("Enabled").Return(enabled)
	f.steve = local.NewPlayer(local.OfflineID("Steve"), "Steve")
	f.alex = local.NewPlayer(local.OfflineID("Alex"), "Alex")
	f.server.Join(f.steve)
	f.server.Join(f.alex)
	Register(f.server, f.levels, f.server, local.Immediate{})
	return f
}

func (f *fixture) run(t *testing.T, sender host.CommandSender, line string) {
	t.Helper()
	assert.NoError(t, f.server.Execute(context.Background(), sender, line))
}

func TestLevel_Disabled(t *testing.T) {
	f := newFixture(false)

	f.run(t, f.steve, "level")
	f.run(t, f.steve, "leveltop")

	assert.Equal(t, []string{MsgPluginDisabled, MsgPluginDisabled}, f.steve.Messages())
	f.levels.AssertNotCalled(t, "Progress", mock.Anything, mock.Anything)
}

func TestLevel_Self(t *testing.T) {
	f := newFixture(true)
	f.levels.On("Progress", mock.Anything, f.steve).Return(domain.PlayerProgress{
		PlayerRecord:     domain.PlayerRecord{ID: f.steve.ID(), Name: "Steve", Experience: 120.4, Level: 2},
		ExperienceToNext: 129.6,
	}, true)

	f.run(t, f.steve, "level")

	assert.Equal(t, []string{
		"§6===== Steve's Level =====",
		"§eLevel: §f2",
		"§eTotal XP: §f120",
		"§eXP for next level: §f130",
	}, f.steve.Messages())
}

func TestLevel_ConsoleNeedsPlayer(t *testing.T) {
	f := newFixture(true)

	f.run(t, f.server.Console(), "level")

	assert.Equal(t, []string{MsgPlayersOnly}, f.server.Console().Messages())
}

func TestLevel_NoData(t *testing.T) {
	f := newFixture(true)
	f.levels.On("Progress", mock.Anything, f.steve).Return(domain.PlayerProgress{}, false)

	f.run(t, f.steve, "level")

	assert.Equal(t, []string{"§cCould not retrieve level data for Steve"}, f.steve.Messages())
}

func TestLevel_Others(t *testing.T) {
	f := newFixture(true)
	f.levels.On("Progress", mock.Anything, f.alex).Return(domain.PlayerProgress{
		PlayerRecord: domain.PlayerRecord{Name: "Alex", Level: 1}, ExperienceToNext: 100,
	}, true)

	f.run(t, f.steve, "level alex")
	assert.Equal(t, []string{MsgUnknownArgument}, f.steve.Messages())

	f.steve.Grant(domain.PermissionOthers)
	f.run(t, f.steve, "level alex")
	assert.Len(t, f.steve.Messages(), 5)
	assert.Equal(t, "§6===== Alex's Level =====", f.steve.Messages()[1])

	f.run(t, f.steve, "level Herobrine")
	assert.Equal(t, MsgUnknownArgument, f.steve.Messages()[5])
}

func TestLevel_Set(t *testing.T) {
	f := newFixture(true)
	f.levels.On("SetLevel", mock.Anything, f.alex, 5).Return(domain.PlayerRecord{Name: "Alex", Level: 5}, nil)

	f.run(t, f.steve, "level set Alex 5")
	assert.Equal(t, []string{MsgNoPermission}, f.steve.Messages())

	f.steve.SetOp(true)
	f.run(t, f.steve, "level set Alex 5")

	assert.Equal(t, "§aSet Alex's level to 5", f.steve.Messages()[1])
	assert.Equal(t, []string{"§aYour level has been set to 5"}, f.alex.Messages())
	f.levels.AssertExpectations(t)
}

func TestLevel_SetRejectsBadInput(t *testing.T) {
	f := newFixture(true)
	console := f.server.Console()

	f.run(t, console, "level set Alex")
	f.run(t, console, "level set Nobody 3")
	f.run(t, console, "level set Alex ten")
	f.run(t, console, "level set Alex 0")

	assert.Equal(t, []string{
		MsgSetUsage,
		"§cPlayer not found: Nobody",
		"§cInvalid level: ten",
		MsgLevelTooLow,
	}, console.Messages())
	f.levels.AssertNotCalled(t, "SetLevel", mock.Anything, mock.Anything, mock.Anything)
}

func TestLevel_SetStorageError(t *testing.T) {
	f := newFixture(true)
	f.levels.On("SetLevel", mock.Anything, f.alex, 3).Return(domain.PlayerRecord{}, errors.New("boom"))

	f.run(t, f.server.Console(), "level set alex 3")

	assert.Equal(t, []string{"§cCould not set level for Alex"}, f.server.Console().Messages())
	assert.Empty(t, f.alex.Messages())
}

func TestLevel_SetUnreachableLevel(t *testing.T) {
	f := newFixture(true)
	f.levels.On("SetLevel", mock.Anything, f.alex, 2000).
		Return(domain.PlayerRecord{}, fmt.Errorf("%w: %d", domain.ErrLevelUnreachable, 2000))

	f.run(t, f.server.Console(), "level set alex 2000")

	assert.Equal(t, []string{"§cLevel 2000 is beyond the highest reachable level."}, f.server.Console().Messages())
	assert.Empty(t, f.alex.Messages())
}

func TestLevel_Reload(t *testing.T) {
	f := newFixture(true)
	f.levels.On("Reload", mock.Anything).Return(nil).Once()
	f.levels.On("Reload", mock.Anything).Return(errors.New("bad yaml")).Once()

	f.run(t, f.steve, "level reload")
	f.run(t, f.server.Console(), "level RELOAD")
	f.run(t, f.server.Console(), "level reload")

	assert.Equal(t, []string{MsgNoPermission}, f.steve.Messages())
	assert.Equal(t, []string{MsgReloaded, MsgReloadFailed}, f.server.Console().Messages())
}

func TestLevel_Complete(t *testing.T) {
	f := newFixture(true)

	assert.Empty(t, f.server.Complete(f.steve, "level "))

	f.steve.Grant(domain.PermissionOthers)
	assert.Equal(t, []string{"Alex", "Steve"}, f.server.Complete(f.steve, "level "))

	f.steve.Grant(domain.PermissionAdmin)
	assert.Equal(t, []string{"reload", "set", "Alex", "Steve"}, f.server.Complete(f.steve, "level "))
	assert.Equal(t, []string{"set", "Steve"}, f.server.Complete(f.steve, "level s"))
	assert.Equal(t, []string{"Alex"}, f.server.Complete(f.steve, "level set a"))
	assert.Empty(t, f.server.Complete(f.steve, "level set Alex "))
}

func TestLevelTop(t *testing.T) {
	f := newFixture(true)
	f.levels.On("Top", mock.Anything, domain.DefaultLeaderboardLimit).Return([]domain.PlayerRecord{
		{Name: "Alex", Level: 7, Experience: 1500.5},
		{Name: "Steve", Level: 2, Experience: 120},
	})
	f.steve.Grant(domain.PermissionLeaderboard)

	f.run(t, f.steve, "leveltop")

	assert.Equal(t, []string{
		"§6===== Top 10 Players =====",
		"§e#1: §fAlex - §aLevel 7§7 (1500 XP)",
		"§e#2: §fSteve - §aLevel 2§7 (120 XP)",
	}, f.steve.Messages())
}

func TestLevelTop_Limits(t *testing.T) {
	f := newFixture(true)
	f.levels.On("Top", mock.Anything, domain.MaxLeaderboardLimit).Return([]domain.PlayerRecord{})
	f.levels.On("Top", mock.Anything, domain.MinLeaderboardLimit).Return([]domain.PlayerRecord{})
	console := f.server.Console()

	f.run(t, f.steve, "leveltop")
	f.run(t, console, "leveltop 500")
	f.run(t, console, "leveltop -3")
	f.run(t, console, "leveltop lots")

	assert.Equal(t, []string{MsgNoPermission}, f.steve.Messages())
	assert.Equal(t, []string{
		"§6===== Top 100 Players =====", MsgNoPlayers,
		"§6===== Top 1 Players =====", MsgNoPlayers,
		"§cInvalid number: lots",
	}, console.Messages())
}
