package session

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZygmuntJakub/parlor/internal/config"
	"github.com/ZygmuntJakub/parlor/internal/terminal/terminaltest"
	"github.com/ZygmuntJakub/parlor/internal/twentyone"
)

func card(r twentyone.Rank, s twentyone.Suit) twentyone.Card {
	return twentyone.Card{Rank: r, Suit: s}
}

var (
	// player 10H 9S (19), dealer KH 2D then 9C (21)
	dealerHitsTo21 = []twentyone.Card{
		card(twentyone.Ten, twentyone.Hearts), card(twentyone.Nine, twentyone.Spades),
		card(twentyone.King, twentyone.Hearts), card(twentyone.Two, twentyone.Diamonds),
		card(twentyone.Nine, twentyone.Clubs),
	}
	// player 10H 6S hits 9C and busts
	playerBusts = []twentyone.Card{
		card(twentyone.Ten, twentyone.Hearts), card(twentyone.Six, twentyone.Spades),
		card(twentyone.King, twentyone.Hearts), card(twentyone.Two, twentyone.Diamonds),
		card(twentyone.Nine, twentyone.Clubs),
	}
	// player 19 against dealer 17
	playerWins = []twentyone.Card{
		card(twentyone.Ten, twentyone.Hearts), card(twentyone.Nine, twentyone.Spades),
		card(twentyone.Ten, twentyone.Clubs), card(twentyone.Seven, twentyone.Diamonds),
	}
	// 18 against 18
	push = []twentyone.Card{
		card(twentyone.Ten, twentyone.Hearts), card(twentyone.Eight, twentyone.Spades),
		card(twentyone.Jack, twentyone.Clubs), card(twentyone.Eight, twentyone.Diamonds),
	}
	// player dealt ace and king
	natural = []twentyone.Card{
		card(twentyone.Ace, twentyone.Hearts), card(twentyone.King, twentyone.Spades),
		card(twentyone.Ten, twentyone.Hearts), card(twentyone.Seven, twentyone.Diamonds),
	}
)

func newTestTwentyOne(t *testing.T, start int, script *terminaltest.Script, decks ...[]twentyone.Card) (*TwentyOne, *int) {
	t.Helper()
	cfg := config.TwentyOne{StartingChips: start, BrokeAt: 0, RichAt: 10}
	require.NoError(t, cfg.Validate())
	s := NewTwentyOne(cfg, script, nil, log.New(io.Discard, "", 0))
	dealt := 0
	s.newDeck = func() *twentyone.Deck {
		require.Less(t, dealt, len(decks), "no deck left for round %d", dealt+1)
		d := twentyone.NewDeck(decks[dealt]...)
		dealt++
		return d
	}
	return s, &dealt
}

func TestTwentyOne_DealerHitsTo21(t *testing.T) {
	script := terminaltest.New("", "s", "", "n")
	s, dealt := newTestTwentyOne(t, 5, script, dealerHitsTo21)

	require.NoError(t, s.Run())
	assert.Equal(t, 4, s.Bankroll.Chips)
	assert.Equal(t, 1, *dealt)

	out := script.Text()
	assert.Contains(t, out, "Dealer's hand is KH and ?")
	assert.Contains(t, out, "Player's hand is 10H and 9S for a total of 19.")
	assert.Contains(t, out, "Player chooses to stay.")
	assert.Contains(t, out, "Dealer's hand is KH and 2D for a total of 12.")
	assert.Contains(t, out, "Dealer is dealt a 9C.")
	assert.Contains(t, out, "Dealer's hand is KH, 2D, and 9C for a total of 21.")
	assert.Contains(t, out, "Dealer stays at 21.")
	assert.Contains(t, out, "Dealer wins!")
	assert.Contains(t, out, "Thanks for playing!")
	assert.Equal(t, 1, script.Count("play again"))
	assert.Empty(t, script.Lines)
}

func TestTwentyOne_BrokeEndsWithoutPlayAgain(t *testing.T) {
	script := terminaltest.New("", "h")
	s, _ := newTestTwentyOne(t, 1, script, playerBusts)

	require.NoError(t, s.Run())
	assert.Equal(t, 0, s.Bankroll.Chips)
	out := script.Text()
	assert.Contains(t, out, "Player is dealt a 9C.")
	assert.Contains(t, out, "You busted. Better luck next time.")
	assert.Contains(t, out, "Your money has run out.")
	assert.NotContains(t, out, "Dealer's turn...")
	assert.Equal(t, 0, script.Count("play again"))
	assert.Equal(t, 0, script.Count("press enter key to continue"))
}

func TestTwentyOne_RichEndsWithoutPlayAgain(t *testing.T) {
	script := terminaltest.New("", "stay", "")
	s, _ := newTestTwentyOne(t, 9, script, playerWins)

	require.NoError(t, s.Run())
	assert.Equal(t, 10, s.Bankroll.Chips)
	out := script.Text()
	assert.Contains(t, out, "Player wins!")
	assert.Contains(t, out, "You've done well...too well. Come back when we have more money.")
	assert.Equal(t, 0, script.Count("play again"))
}

func TestTwentyOne_ContinueRebuildsDeckKeepsBankroll(t *testing.T) {
	script := terminaltest.New("", "s", "", "yes", "s", "", "no")
	s, dealt := newTestTwentyOne(t, 5, script, push, playerWins)

	require.NoError(t, s.Run())
	assert.Equal(t, 2, *dealt)
	assert.Equal(t, 6, s.Bankroll.Chips)
	out := script.Text()
	assert.Contains(t, out, "Push. Bets are returned.")
	assert.Contains(t, out, "Player's chip count: 5")
	assert.Equal(t, 2, script.Count("play again"))
}

func TestTwentyOne_NaturalSkipsHitOrStay(t *testing.T) {
	script := terminaltest.New("", "", "n")
	s, _ := newTestTwentyOne(t, 5, script, natural)

	require.NoError(t, s.Run())
	assert.Equal(t, 6, s.Bankroll.Chips)
	assert.Contains(t, script.Text(), "*** 21! ***")
	assert.Equal(t, 0, script.Count("(H)it or (s)tay"))
}

func TestTwentyOne_InvalidAnswersReprompt(t *testing.T) {
	script := terminaltest.New("", "maybe", "S", "", "what", "N")
	s, _ := newTestTwentyOne(t, 5, script, push)

	require.NoError(t, s.Run())
	assert.Equal(t, 1, script.Count("Please enter (h)it or (s)tay"))
	assert.Equal(t, 1, script.Count("Please enter (y)es or (n)o"))
	assert.Equal(t, 5, s.Bankroll.Chips)
}

func TestTwentyOne_EOFEndsSession(t *testing.T) {
	script := terminaltest.New("")
	s, _ := newTestTwentyOne(t, 5, script, push)

	require.NoError(t, s.Run())
	assert.Contains(t, script.Text(), "Thanks for playing!")
	assert.Equal(t, 5, s.Bankroll.Chips)
}

func TestTwentyOne_DeckExhaustedIsFatal(t *testing.T) {
	script := terminaltest.New("")
	s, _ := newTestTwentyOne(t, 5, script, push[:3])

	err := s.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, twentyone.ErrDeckExhausted)
}
