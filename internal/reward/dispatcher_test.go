package reward

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/host/local"
)

var level5 = map[int]domain.RewardRule{
	5: {
		Level:    5,
		Message:  "&aCongratulations %player%, level 5!",
		Commands: []string{"give %player% diamond 1", "say %player% reached level 5"},
	},
}

func newDispatcher(rules map[int]domain.RewardRule) (*Dispatcher, *local.Server) {
	server := local.NewServer(nil)
	return NewDispatcher(server, local.Immediate{}, rules), server
}

func TestCheck_FiresOnlyOnExactLevel(t *testing.T) {
	d, server := newDispatcher(level5)
	steve := local.NewPlayer(local.OfflineID("Steve"), "Steve")
	server.Join(steve)
	ctx := context.Background()

	assert.False(t, d.Check(ctx, steve.ID(), "Steve", 4))
	assert.False(t, d.Check(ctx, steve.ID(), "Steve", 6))
	assert.Empty(t, server.DispatchedCommands())

	assert.True(t, d.Check(ctx, steve.ID(), "Steve", 5))
	assert.Equal(t, []string{"give Steve diamond 1", "say Steve reached level 5"}, server.DispatchedCommands())
	assert.Equal(t, []string{"§aCongratulations %player%, level 5!"}, steve.Messages())
}

func TestCheck_OfflinePlayerGetsCommandsButNoMessage(t *testing.T) {
	d, server := newDispatcher(level5)
	id := local.OfflineID("Alex")

	assert.True(t, d.Check(context.Background(), id, "Alex", 5))

	assert.Equal(t, []string{"give Alex diamond 1", "say Alex reached level 5"}, server.DispatchedCommands())
}

func TestLevelSet_UsesRecordLevelAndName(t *testing.T) {
	d, server := newDispatcher(level5)

	d.LevelSet(context.Background(), domain.PlayerRecord{ID: local.OfflineID("Bob"), Name: "Bob", Level: 5})
	d.LevelSet(context.Background(), domain.PlayerRecord{ID: local.OfflineID("Bob"), Name: "Bob", Level: 7})

	assert.Len(t, server.DispatchedCommands(), 2)
	assert.Equal(t, "give Bob diamond 1", server.DispatchedCommands()[0])
}

func TestSetRules_ReplacesRules(t *testing.T) {
	d, server := newDispatcher(level5)
	rules := map[int]domain.RewardRule{10: {Level: 10, Commands: []string{"xp add %player% 100"}}}
	d.SetRules(rules)
	rules[11] = domain.RewardRule{Level: 11}

	assert.False(t, d.Check(context.Background(), local.OfflineID("Steve"), "Steve", 5))
	assert.True(t, d.Check(context.Background(), local.OfflineID("Steve"), "Steve", 10))
	_, ok := d.Rule(11)
	assert.False(t, ok, "dispatcher keeps its own copy of the rules")
	assert.Equal(t, []string{"xp add Steve 100"}, server.DispatchedCommands())
}

func TestCheck_EmptyMessageSendsNothing(t *testing.T) {
	d, server := newDispatcher(map[int]domain.RewardRule{3: {Level: 3}})
	steve := local.NewPlayer(local.OfflineID("Steve"), "Steve")
	server.Join(steve)

	assert.True(t, d.Check(context.Background(), steve.ID(), "Steve", 3))
	assert.Empty(t, steve.Messages())
}

func TestTranslateColorCodes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"&aGreen", "§aGreen"},
		{"&AUpper &lBold", "§aUpper §lBold"},
		{"Tom & Jerry", "Tom & Jerry"},
		{"&zNot a code", "&zNot a code"},
		{"trailing &", "trailing &"},
		{"&&6gold", "&§6gold"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TranslateColorCodes(tt.in), tt.in)
	}
}
