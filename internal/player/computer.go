package player

import (
	"errors"

	"github.com/ZygmuntJakub/parlor/internal/tictactoe"
)

var ErrNoMoves = errors.New("no squares left")

// ComputerBot plays the automated side of tic tac toe.
type ComputerBot struct {
	BotName  string
	Mark     tictactoe.Marker
	Opponent tictactoe.Marker
	Rand     tictactoe.Rand
}

func (b *ComputerBot) Name() string {
	if b.BotName == "" {
		b.BotName = "Computer"
	}
	return b.BotName
}

func (b *ComputerBot) Marker() tictactoe.Marker { return b.Mark }

func (b *ComputerBot) ChooseSquare(board *tictactoe.Board) (tictactoe.Position, error) {
	p, ok := tictactoe.SelectMove(board, b.Mark, b.Opponent, b.Rand)
	if !ok {
		return 0, ErrNoMoves
	}
	return p, nil
}

func NewComputerBot(r tictactoe.Rand) Contender {
	return &ComputerBot{Mark: tictactoe.Computer, Opponent: tictactoe.Human, Rand: r}
}
