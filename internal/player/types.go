package player

import (
	"github.com/ZygmuntJakub/parlor/internal/tictactoe"
	"github.com/ZygmuntJakub/parlor/internal/twentyone"
)

// Gambler decides whether to take another card in twenty-one.
type Gambler interface {
	Name() string
	HitOrStay(hand *twentyone.Hand) (bool, error)
}

// Contender takes turns on the tic tac toe board.
type Contender interface {
	Name() string
	Marker() tictactoe.Marker
	ChooseSquare(board *tictactoe.Board) (tictactoe.Position, error)
}
