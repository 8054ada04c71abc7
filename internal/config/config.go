// Package config loads game settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// TwentyOne holds the bankroll bounds for the card game.
type TwentyOne struct {
	StartingChips int  `env:"PARLOR_TWENTYONE_STARTING_CHIPS" envDefault:"5"`
	BrokeAt       int  `env:"PARLOR_TWENTYONE_BROKE_AT" envDefault:"0"`
	RichAt        int  `env:"PARLOR_TWENTYONE_RICH_AT" envDefault:"10"`
	Debug         bool `env:"PARLOR_DEBUG" envDefault:"false"`
}

// TicTacToe holds the match settings for the grid game.
type TicTacToe struct {
	MatchGoal int  `env:"PARLOR_TICTACTOE_MATCH_GOAL" envDefault:"3"`
	Debug     bool `env:"PARLOR_DEBUG" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadTwentyOne() (TwentyOne, error) {
	var cfg TwentyOne
	if err := ParseEnv(&cfg); err != nil {
		return TwentyOne{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TwentyOne{}, err
	}
	return cfg, nil
}

// Validate requires the starting chips to sit strictly between the bounds.
func (c TwentyOne) Validate() error {
	if c.BrokeAt >= c.StartingChips || c.StartingChips >= c.RichAt {
		return fmt.Errorf("config: starting chips %d must be between %d and %d", c.StartingChips, c.BrokeAt, c.RichAt)
	}
	return nil
}

func LoadTicTacToe() (TicTacToe, error) {
	var cfg TicTacToe
	if err := ParseEnv(&cfg); err != nil {
		return TicTacToe{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TicTacToe{}, err
	}
	return cfg, nil
}

func (c TicTacToe) Validate() error {
	if c.MatchGoal < 1 {
		return fmt.Errorf("config: match goal %d must be at least 1", c.MatchGoal)
	}
	return nil
}
