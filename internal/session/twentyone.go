// Package session runs the turn loops of both games against a terminal.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ZygmuntJakub/parlor/internal/config"
	"github.com/ZygmuntJakub/parlor/internal/player"
	"github.com/ZygmuntJakub/parlor/internal/terminal"
	"github.com/ZygmuntJakub/parlor/internal/twentyone"
)

const (
	welcomePadSpace = 20
	divider         = "**********"
)

// TwentyOne plays rounds of twenty-one until the bankroll hits a bound or
// the player walks away.
type TwentyOne struct {
	ID       uuid.UUID
	Term     terminal.Terminal
	Gambler  player.Gambler
	Bankroll *twentyone.Bankroll
	Log      *log.Logger

	newDeck func() *twentyone.Deck
	p       *message.Printer
	rounds  int
}

func NewTwentyOne(cfg config.TwentyOne, term terminal.Terminal, r twentyone.Rand, logger *log.Logger) *TwentyOne {
	return &TwentyOne{
		ID:       uuid.New(),
		Term:     term,
		Gambler:  player.NewHuman(term),
		Bankroll: twentyone.NewBankroll(cfg.StartingChips, cfg.BrokeAt, cfg.RichAt),
		Log:      logger,
		newDeck:  func() *twentyone.Deck { return twentyone.NewShuffledDeck(r) },
		p:        message.NewPrinter(language.English),
	}
}

// Run plays the whole session. End of input ends it like declining to play
// again; any other error, such as an exhausted deck, is returned.
func (s *TwentyOne) Run() error {
	s.Log.Printf("session %s: start with %d chips", s.ID, s.Bankroll.Chips)
	err := s.run()
	if errors.Is(err, io.EOF) {
		s.Log.Printf("session %s: input closed", s.ID)
		err = nil
	}
	s.goodbye()
	if err != nil {
		return fmt.Errorf("twentyone session %s: %w", s.ID, err)
	}
	s.Log.Printf("session %s: end after %d rounds with %d chips", s.ID, s.rounds, s.Bankroll.Chips)
	return nil
}

func (s *TwentyOne) run() error {
	if err := s.welcome(); err != nil {
		return err
	}
	for {
		s.Term.ClearScreen()
		outcome, err := s.playRound()
		if err != nil {
			return err
		}
		s.Bankroll.Settle(outcome)
		s.rounds++
		s.Log.Printf("session %s: round %d %s, chips %d", s.ID, s.rounds, outcome, s.Bankroll.Chips)

		if s.Bankroll.Done() {
			s.boundMessage()
			return nil
		}
		again, err := terminal.AskYesNo(s.Term, "Would you like to play again? ")
		if err != nil || !again {
			return err
		}
	}
}

func (s *TwentyOne) playRound() (twentyone.Outcome, error) {
	round, err := twentyone.NewRound(s.newDeck())
	if err != nil {
		return twentyone.OutcomePending, err
	}
	if err := s.playerTurn(round); err != nil {
		return twentyone.OutcomePending, err
	}
	if round.PlayerBusted() {
		return round.Outcome, nil
	}
	if err := s.dealerTurn(round); err != nil {
		return twentyone.OutcomePending, err
	}
	if !round.DealerBusted() {
		s.showHand("Player", &round.Player)
		s.showHand("Dealer", &round.Dealer)
		s.showResult(round.Outcome)
	}
	return round.Outcome, nil
}

func (s *TwentyOne) playerTurn(round *twentyone.Round) error {
	s.Term.Print(s.p.Sprintf("Player's chip count: %d", s.Bankroll.Chips))
	s.Term.Print("")
	s.Term.Print("*********")
	s.Term.Print("")
	s.Term.Print("(Dealer flicks cards across table)")

	for {
		s.showDealerUpCard(&round.Dealer)
		s.showHand("Player", &round.Player)
		if round.Phase != twentyone.PhasePlayerTurn {
			break
		}
		hit, err := s.Gambler.HitOrStay(&round.Player)
		if err != nil {
			return err
		}
		if !hit {
			if err := round.Stay(); err != nil {
				return err
			}
			break
		}
		if err := round.Hit(); err != nil {
			return err
		}
		s.Term.ClearScreen()
		s.showDealt("Player", &round.Player)
	}

	s.dividerLine()
	switch score := round.Player.Score(); {
	case twentyone.IsBusted(score):
		s.Term.Print("You busted. Better luck next time.")
	case twentyone.HasBestScore(score):
		s.Term.Print("*** 21! ***")
	default:
		s.Term.Print("Player chooses to stay.")
	}
	return nil
}

func (s *TwentyOne) dealerTurn(round *twentyone.Round) error {
	s.Term.Print("Dealer's turn...")
	s.Term.Print("")
	s.Term.Print("")
	if err := terminal.Pause(s.Term, "(press enter key to continue)"); err != nil {
		return err
	}
	s.Term.ClearScreen()
	for {
		s.showHand("Dealer", &round.Dealer)
		drew, err := round.DealerStep()
		if err != nil {
			return err
		}
		if !drew {
			break
		}
		s.showDealt("Dealer", &round.Dealer)
	}

	s.dividerLine()
	if round.DealerBusted() {
		s.Term.Print("Dealer busted, player wins!")
	} else {
		s.Term.Print(s.p.Sprintf("Dealer stays at %d.", round.Dealer.Score()))
	}
	return nil
}

func (s *TwentyOne) showResult(o twentyone.Outcome) {
	s.dividerLine()
	switch o {
	case twentyone.OutcomePlayerWins:
		s.Term.Print("Player wins!")
	case twentyone.OutcomeDealerWins:
		s.Term.Print("Dealer wins!")
	default:
		s.Term.Print("Push. Bets are returned.")
	}
}

func (s *TwentyOne) boundMessage() {
	if s.Bankroll.IsBroke() {
		s.Term.Print("Your money has run out.")
		return
	}
	s.Term.Print("You've done well...too well. Come back when we have more money.")
}

func (s *TwentyOne) welcome() error {
	s.Term.ClearScreen()
	greeting := "HELLO AND WELCOME TO TWENTY ONE!"
	s.Term.Print(strings.Repeat(" ", welcomePadSpace) + greeting)
	s.Term.Print("")
	s.Term.Print(s.p.Sprintf(" The goal is to reach %d without going over.", twentyone.BustLimit))
	s.Term.Print(s.p.Sprintf(" Number cards are worth their number, face cards are worth %d,", twentyone.FaceCardValue))
	s.Term.Print(s.p.Sprintf("and Aces are worth %d or %d, depending on which keeps you under %d.",
		twentyone.LowAceValue, twentyone.HighAceValue, twentyone.BustLimit))
	s.Term.Print(s.p.Sprintf(" You start with %d dollars in chips, and gain or lose one chip for winning", s.Bankroll.Chips))
	s.Term.Print("or losing, respectively.")
	s.Term.Print(s.p.Sprintf(" Game ends when your chip count reaches %d or %d. Good luck!", s.Bankroll.BrokeAt, s.Bankroll.RichAt))
	s.Term.Print("")
	s.Term.Print("")
	return terminal.Pause(s.Term, "Press enter key to begin game.")
}

func (s *TwentyOne) goodbye() {
	s.Term.Print("")
	s.Term.Print("Thanks for playing!")
	s.Term.Print("")
}

func (s *TwentyOne) dividerLine() {
	s.Term.Print("")
	s.Term.Print(divider)
	s.Term.Print("")
}

func (s *TwentyOne) showHand(name string, h *twentyone.Hand) {
	s.Term.Print("")
	s.Term.Print(s.p.Sprintf("%s's hand is %s for a total of %d.", name, formatCards(h.Cards), h.Score()))
}

// showDealerUpCard hides everything but the dealer's first card.
func (s *TwentyOne) showDealerUpCard(h *twentyone.Hand) {
	shown := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		if i == 0 {
			shown[i] = c.String()
			continue
		}
		shown[i] = "?"
	}
	s.Term.Print("")
	s.Term.Print("Dealer's hand is " + strings.Join(shown, " and "))
}

func (s *TwentyOne) showDealt(name string, h *twentyone.Hand) {
	last, ok := h.Last()
	if !ok {
		return
	}
	s.Term.Print("")
	s.Term.Print(s.p.Sprintf("%s is dealt a %s.", name, last))
}

func formatCards(cards []twentyone.Card) string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = c.String()
	}
	return terminal.JoinAnd(labels)
}
