package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTwentyOneDefaults(t *testing.T) {
	cfg, err := LoadTwentyOne()
	require.NoError(t, err)
	assert.Equal(t, TwentyOne{StartingChips: 5, BrokeAt: 0, RichAt: 10}, cfg)
}

func TestLoadTwentyOneOverrides(t *testing.T) {
	t.Setenv("PARLOR_TWENTYONE_STARTING_CHIPS", "3")
	t.Setenv("PARLOR_TWENTYONE_RICH_AT", "4")
	t.Setenv("PARLOR_DEBUG", "true")
	cfg, err := LoadTwentyOne()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.StartingChips)
	assert.Equal(t, 4, cfg.RichAt)
	assert.True(t, cfg.Debug)
}

func TestLoadTwentyOneRejectsBadBounds(t *testing.T) {
	t.Setenv("PARLOR_TWENTYONE_STARTING_CHIPS", "10")
	_, err := LoadTwentyOne()
	assert.Error(t, err)

	t.Setenv("PARLOR_TWENTYONE_STARTING_CHIPS", "five")
	_, err = LoadTwentyOne()
	assert.ErrorContains(t, err, "parse env")
}

func TestLoadTicTacToe(t *testing.T) {
	cfg, err := LoadTicTacToe()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MatchGoal)

	t.Setenv("PARLOR_TICTACTOE_MATCH_GOAL", "0")
	_, err = LoadTicTacToe()
	assert.Error(t, err)
}
