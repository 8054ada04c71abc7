package twentyone

import (
	"errors"
	"fmt"
)

const (
	BustLimit       = 21
	DealerStandsAt  = 17
	FaceCardValue   = 10
	LowAceValue     = 1
	HighAceValue    = 11
	InitialHandSize = 2
	HitCardAmount   = 1
	DeckSize        = 52

	aceDifferential = HighAceValue - LowAceValue
)

type PhaseError string

func (e PhaseError) Error() string { return string(e) }

// ErrDeckExhausted is returned when a deal asks for more cards than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

var (
	suits = []Suit{Hearts, Spades, Diamonds, Clubs}
	ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// Deck is an ordered pile of cards dealt from the front.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck holding exactly the given cards in order.
func NewDeck(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// FullDeck returns the 52 cards in suit-major order.
func FullDeck() []Card {
	out := make([]Card, 0, DeckSize)
	for _, s := range suits {
		for _, r := range ranks {
			out = append(out, Card{Rank: r, Suit: s})
		}
	}
	return out
}

// NewShuffledDeck builds the 52 cards and permutes them with Fisher-Yates.
func NewShuffledDeck(r Rand) *Deck {
	cards := FullDeck()
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return &Deck{cards: cards}
}

// Len returns the number of cards left.
func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the remaining cards in deal order.
func (d *Deck) Cards() []Card { return append([]Card(nil), d.cards...) }

// Deal moves the first n cards of the deck to the end of the hand.
func (d *Deck) Deal(h *Hand, n int) error {
	if n < 0 {
		return fmt.Errorf("deal %d cards: negative count", n)
	}
	if n > len(d.cards) {
		return fmt.Errorf("deal %d cards with %d left: %w", n, len(d.cards), ErrDeckExhausted)
	}
	h.Cards = append(h.Cards, d.cards[:n]...)
	d.cards = d.cards[n:]
	return nil
}

// CardValue returns the value a card contributes before ace correction.
func CardValue(r Rank) int {
	switch {
	case r == Ace:
		return HighAceValue
	case r >= Jack:
		return FaceCardValue
	default:
		return int(r)
	}
}

// Score sums the hand counting every ace high, then demotes aces one at a
// time, in hand order, while the total is still over the bust limit.
func Score(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += CardValue(c.Rank)
	}
	for _, c := range cards {
		if c.Rank != Ace {
			continue
		}
		if sum > BustLimit {
			sum -= aceDifferential
		}
	}
	return sum
}

func IsBusted(score int) bool { return score > BustLimit }

func HasBestScore(score int) bool { return score == BustLimit }

// MustHit reports whether the dealer has to draw another card.
func MustHit(score int) bool { return score < DealerStandsAt }

// Round is one deal of twenty-one between the player and the dealer.
type Round struct {
	Phase   Phase
	Deck    *Deck
	Player  Hand
	Dealer  Hand
	Outcome Outcome
}

// NewRound deals the initial two cards to the player, then to the dealer.
// A player dealt 21 skips straight to the dealer's turn.
func NewRound(deck *Deck) (*Round, error) {
	r := &Round{Phase: PhasePlayerTurn, Deck: deck}
	if err := deck.Deal(&r.Player, InitialHandSize); err != nil {
		return nil, err
	}
	if err := deck.Deal(&r.Dealer, InitialHandSize); err != nil {
		return nil, err
	}
	r.checkPlayer()
	return r, nil
}

// Hit deals one more card to the player.
func (r *Round) Hit() error {
	if r.Phase != PhasePlayerTurn {
		return PhaseError("not in player turn")
	}
	if err := r.Deck.Deal(&r.Player, HitCardAmount); err != nil {
		return err
	}
	r.checkPlayer()
	return nil
}

// Stay ends the player's turn.
func (r *Round) Stay() error {
	if r.Phase != PhasePlayerTurn {
		return PhaseError("not in player turn")
	}
	r.endPlayerTurn()
	return nil
}

// DealerStep draws one card for the dealer if the dealer must hit and
// reports whether a card was drawn. When the dealer stands or busts the
// round is settled.
func (r *Round) DealerStep() (bool, error) {
	if r.Phase != PhaseDealerTurn {
		return false, PhaseError("not in dealer turn")
	}
	if !MustHit(r.Dealer.Score()) {
		r.settle()
		return false, nil
	}
	if err := r.Deck.Deal(&r.Dealer, HitCardAmount); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Round) PlayerBusted() bool { return IsBusted(r.Player.Score()) }

func (r *Round) DealerBusted() bool { return IsBusted(r.Dealer.Score()) }

func (r *Round) checkPlayer() {
	score := r.Player.Score()
	if IsBusted(score) || HasBestScore(score) {
		r.endPlayerTurn()
	}
}

func (r *Round) endPlayerTurn() {
	if r.PlayerBusted() {
		r.Outcome = OutcomeDealerWins
		r.Phase = PhaseRoundOver
		return
	}
	r.Phase = PhaseDealerTurn
}

func (r *Round) settle() {
	player, dealer := r.Player.Score(), r.Dealer.Score()
	switch {
	case IsBusted(dealer):
		r.Outcome = OutcomePlayerWins
	case player > dealer:
		r.Outcome = OutcomePlayerWins
	case dealer > player:
		r.Outcome = OutcomeDealerWins
	default:
		r.Outcome = OutcomePush
	}
	r.Phase = PhaseRoundOver
}

// Bankroll is the player's chip count across rounds of a session.
type Bankroll struct {
	Chips   int
	BrokeAt int
	RichAt  int
}

func NewBankroll(start, brokeAt, richAt int) *Bankroll {
	return &Bankroll{Chips: start, BrokeAt: brokeAt, RichAt: richAt}
}

// Settle applies the one-chip delta for a round outcome.
func (b *Bankroll) Settle(o Outcome) {
	switch o {
	case OutcomePlayerWins:
		b.Chips++
	case OutcomeDealerWins:
		b.Chips--
	}
}

func (b *Bankroll) IsBroke() bool { return b.Chips == b.BrokeAt }

func (b *Bankroll) IsRich() bool { return b.Chips == b.RichAt }

// Done reports whether the session has hit either bound.
func (b *Bankroll) Done() bool { return b.IsBroke() || b.IsRich() }
