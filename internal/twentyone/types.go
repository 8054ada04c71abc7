package twentyone

import "strconv"

// Suit represents a card suit.
type Suit int

const (
	Hearts   Suit = iota // H
	Spades               // S
	Diamonds             // D
	Clubs                // C
)

var suitLetters = [...]string{Hearts: "H", Spades: "S", Diamonds: "D", Clubs: "C"}

func (s Suit) String() string {
	if s < Hearts || s > Clubs {
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
	return suitLetters[s]
}

// Rank represents a card rank.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return strconv.Itoa(int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "Rank(" + strconv.Itoa(int(r)) + ")"
	}
}

// Card represents a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String renders the card as rank then suit letter, e.g. "10H" or "AS".
func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// Phase represents the round phase.
type Phase int

const (
	PhasePlayerTurn Phase = iota
	PhaseDealerTurn
	PhaseRoundOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player turn"
	case PhaseDealerTurn:
		return "dealer turn"
	case PhaseRoundOver:
		return "round over"
	default:
		return "Phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// Outcome is the settled result of a round.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomePlayerWins
	OutcomeDealerWins
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomePlayerWins:
		return "player wins"
	case OutcomeDealerWins:
		return "dealer wins"
	case OutcomePush:
		return "push"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Hand holds the cards a participant received, in deal order.
type Hand struct {
	Cards []Card
}

// Score recomputes the hand total from all of its cards.
func (h *Hand) Score() int { return Score(h.Cards) }

// Last returns the most recently dealt card.
func (h *Hand) Last() (Card, bool) {
	if len(h.Cards) == 0 {
		return Card{}, false
	}
	return h.Cards[len(h.Cards)-1], true
}

// Reset empties the hand.
func (h *Hand) Reset() { h.Cards = nil }

// Rand is the random source used for shuffling.
type Rand interface {
	Intn(n int) int
}
