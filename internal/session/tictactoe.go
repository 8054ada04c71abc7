package session

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ZygmuntJakub/parlor/internal/config"
	"github.com/ZygmuntJakub/parlor/internal/player"
	"github.com/ZygmuntJakub/parlor/internal/terminal"
	"github.com/ZygmuntJakub/parlor/internal/tictactoe"
)

// TicTacToe plays a match of single games until one side reaches the goal
// or the human stops.
type TicTacToe struct {
	ID       uuid.UUID
	Term     terminal.Terminal
	Human    player.Contender
	Computer player.Contender
	Board    *tictactoe.Board
	Score    *tictactoe.MatchScore
	Log      *log.Logger

	p     *message.Printer
	games int
}

func NewTicTacToe(cfg config.TicTacToe, term terminal.Terminal, r tictactoe.Rand, logger *log.Logger) *TicTacToe {
	return &TicTacToe{
		ID:       uuid.New(),
		Term:     term,
		Human:    player.NewHuman(term),
		Computer: player.NewComputerBot(r),
		Board:    tictactoe.NewBoard(),
		Score:    tictactoe.NewMatchScore(cfg.MatchGoal),
		Log:      logger,
		p:        message.NewPrinter(language.English),
	}
}

// Run plays one match. End of input ends the match without a champion.
func (s *TicTacToe) Run() error {
	s.Log.Printf("session %s: match to %d", s.ID, s.Score.Goal)
	s.Score.Reset()
	err := s.run()
	if errors.Is(err, io.EOF) {
		s.Log.Printf("session %s: input closed", s.ID)
		err = nil
	}
	s.Term.Print("Thanks for playing Tic Tac Toe! Goodbye!")
	if err != nil {
		return fmt.Errorf("tictactoe session %s: %w", s.ID, err)
	}
	s.Log.Printf("session %s: end after %d games, %v", s.ID, s.games, s.Score.Wins)
	return nil
}

func (s *TicTacToe) run() error {
	s.Term.ClearScreen()
	s.Term.Print("Welcome to Tic Tac Toe!")
	s.Term.Print(s.p.Sprintf("First to win %d games takes the match.", s.Score.Goal))
	s.Term.Print("")

	for {
		winner, err := s.playOneGame()
		if err != nil {
			return err
		}
		s.games++
		s.Score.Record(winner)
		s.Log.Printf("session %s: game %d winner %q", s.ID, s.games, winner)
		s.showScore()

		if champ, ok := s.Score.Champion(); ok {
			s.showChampion(champ)
			return nil
		}
		again, err := terminal.AskYesNo(s.Term, "Play again? ('y' or 'n'): ")
		if err != nil || !again {
			return err
		}
		s.Term.Print("Let's play again!")
	}
}

// playOneGame returns the winning marker, or Unused for a tie.
func (s *TicTacToe) playOneGame() (tictactoe.Marker, error) {
	s.Board.Reset()
	s.display()

	for {
		if err := s.move(s.Human); err != nil {
			return tictactoe.Unused, err
		}
		if s.Board.GameOver() {
			break
		}
		if err := s.move(s.Computer); err != nil {
			return tictactoe.Unused, err
		}
		if s.Board.GameOver() {
			break
		}
		s.displayWithClear()
	}

	s.displayWithClear()
	winner, _ := s.Board.Winner()
	switch winner {
	case s.Human.Marker():
		s.Term.Print("You won! Congratulations!")
	case s.Computer.Marker():
		s.Term.Print("I won! I won! Take that, human!")
	default:
		s.Term.Print("A tie game. How boring.")
	}
	return winner, nil
}

func (s *TicTacToe) move(c player.Contender) error {
	p, err := c.ChooseSquare(s.Board)
	if err != nil {
		return err
	}
	return s.Board.Mark(p, c.Marker())
}

func (s *TicTacToe) showScore() {
	s.Term.Print("")
	s.Term.Print(s.p.Sprintf("Score: %s %d, %s %d (first to %d)",
		s.Human.Name(), s.Score.Wins[s.Human.Marker()],
		s.Computer.Name(), s.Score.Wins[s.Computer.Marker()],
		s.Score.Goal))
	s.Term.Print("")
}

func (s *TicTacToe) showChampion(m tictactoe.Marker) {
	if m == s.Human.Marker() {
		s.Term.Print("You are the match champion!")
		return
	}
	s.Term.Print("The computer is the match champion!")
}

func (s *TicTacToe) displayWithClear() {
	s.Term.ClearScreen()
	s.Term.Print("")
	s.Term.Print("")
	s.display()
}

func (s *TicTacToe) display() {
	b := s.Board
	row := func(a, c, d tictactoe.Position) string {
		return s.p.Sprintf("  %s  |  %s  |  %s", b.At(a), b.At(c), b.At(d))
	}
	s.Term.Print("")
	s.Term.Print("     |     |")
	s.Term.Print(row(tictactoe.TopLeft, tictactoe.TopCenter, tictactoe.TopRight))
	s.Term.Print("     |     |")
	s.Term.Print("-----+-----+-----")
	s.Term.Print("     |     |")
	s.Term.Print(row(tictactoe.MiddleLeft, tictactoe.Center, tictactoe.MiddleRight))
	s.Term.Print("     |     |")
	s.Term.Print("-----+-----+-----")
	s.Term.Print("     |     |")
	s.Term.Print(row(tictactoe.BottomLeft, tictactoe.BottomCenter, tictactoe.BottomRight))
	s.Term.Print("     |     |")
	s.Term.Print("")
}
