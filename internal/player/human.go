package player

import (
	"strings"

	"github.com/ZygmuntJakub/parlor/internal/terminal"
	"github.com/ZygmuntJakub/parlor/internal/tictactoe"
	"github.com/ZygmuntJakub/parlor/internal/twentyone"
)

// Human answers every decision through the terminal.
type Human struct {
	HumanName string
	Term      terminal.Terminal
}

func (h *Human) Name() string {
	if h.HumanName == "" {
		h.HumanName = "Player"
	}
	return h.HumanName
}

func (h *Human) Marker() tictactoe.Marker { return tictactoe.Human }

func (h *Human) HitOrStay(*twentyone.Hand) (bool, error) {
	h.Term.Print("")
	i, err := terminal.Ask(h.Term, "(H)it or (s)tay? : ", "Please enter (h)it or (s)tay: ", terminal.Hit, terminal.Stay)
	if err != nil {
		return false, err
	}
	return i == 0, nil
}

// ChooseSquare prompts with the open squares until one of them is named.
func (h *Human) ChooseSquare(board *tictactoe.Board) (tictactoe.Position, error) {
	for {
		empty := board.EmptySquares()
		labels := make([]string, len(empty))
		for i, p := range empty {
			labels[i] = p.String()
		}
		line, err := h.Term.ReadLine("Choose a square (" + terminal.JoinOr(labels, ", ", "or") + "): ")
		if err != nil {
			return 0, err
		}
		p, err := tictactoe.ParsePosition(line)
		if err == nil && board.IsUnused(p) && strings.TrimSpace(line) == p.String() {
			return p, nil
		}
		h.Term.Print("Sorry, that's not a valid selection")
		h.Term.Print("")
	}
}

func NewHuman(t terminal.Terminal) *Human {
	return &Human{Term: t}
}
