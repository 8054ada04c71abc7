package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownSquare = errors.New("unknown square")
	ErrSquareTaken   = errors.New("square already taken")
)

// Board is the 3x3 grid.
type Board struct {
	squares [Squares]Marker
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears every square.
func (b *Board) Reset() {
	for i := range b.squares {
		b.squares[i] = Unused
	}
}

// ParsePosition turns a square label such as "5" into a Position.
func ParsePosition(label string) (Position, error) {
	n, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil || !Position(n).Valid() {
		return 0, fmt.Errorf("square %q: %w", label, ErrUnknownSquare)
	}
	return Position(n), nil
}

// At returns the marker at p. Positions off the board read as Unused.
func (b *Board) At(p Position) Marker {
	if !p.Valid() {
		return Unused
	}
	return b.squares[p-1]
}

func (b *Board) IsUnused(p Position) bool { return p.Valid() && b.At(p) == Unused }

// Mark places m on an empty square.
func (b *Board) Mark(p Position, m Marker) error {
	if !p.Valid() {
		return fmt.Errorf("square %d: %w", p, ErrUnknownSquare)
	}
	if b.squares[p-1] != Unused {
		return fmt.Errorf("square %d: %w", p, ErrSquareTaken)
	}
	b.squares[p-1] = m
	return nil
}

// EmptySquares returns the unused positions in ascending order.
func (b *Board) EmptySquares() []Position {
	out := make([]Position, 0, Squares)
	for p := TopLeft; p <= BottomRight; p++ {
		if b.At(p) == Unused {
			out = append(out, p)
		}
	}
	return out
}

func (b *Board) IsFull() bool { return len(b.EmptySquares()) == 0 }

// CountMarkers counts the squares of t holding m.
func (b *Board) CountMarkers(m Marker, t Triple) int {
	n := 0
	for _, p := range t {
		if b.At(p) == m {
			n++
		}
	}
	return n
}

func (b *Board) IsWinner(m Marker) bool {
	for _, t := range WinningTriples {
		if b.CountMarkers(m, t) == len(t) {
			return true
		}
	}
	return false
}

// Winner returns whichever of the two players owns a full triple.
func (b *Board) Winner() (Marker, bool) {
	for _, m := range []Marker{Human, Computer} {
		if b.IsWinner(m) {
			return m, true
		}
	}
	return Unused, false
}

// GameOver reports a win for either side or a full board.
func (b *Board) GameOver() bool {
	_, won := b.Winner()
	return won || b.IsFull()
}

// CriticalSquare returns the single empty square of t when m already holds
// the other two.
func (b *Board) CriticalSquare(m Marker, t Triple) (Position, bool) {
	if b.CountMarkers(m, t) != 2 {
		return 0, false
	}
	var found Position
	empty := 0
	for _, p := range t {
		if b.At(p) == Unused {
			found = p
			empty++
		}
	}
	if empty != 1 {
		return 0, false
	}
	return found, true
}

func (b *Board) firstCriticalSquare(m Marker) (Position, bool) {
	for _, t := range WinningTriples {
		if p, ok := b.CriticalSquare(m, t); ok {
			return p, true
		}
	}
	return 0, false
}

// SelectMove picks the automated player's square. The first rule that
// applies wins: complete an own triple, block an opponent triple, take the
// center, take a uniformly random empty square. ok is false on a full board.
func SelectMove(b *Board, self, opponent Marker, r Rand) (p Position, ok bool) {
	if p, ok := b.firstCriticalSquare(self); ok {
		return p, true
	}
	if p, ok := b.firstCriticalSquare(opponent); ok {
		return p, true
	}
	if b.IsUnused(Center) {
		return Center, true
	}
	empty := b.EmptySquares()
	if len(empty) == 0 {
		return 0, false
	}
	return empty[r.Intn(len(empty))], true
}

// MatchScore tallies game wins per marker against a goal.
type MatchScore struct {
	Goal int
	Wins map[Marker]int
}

func NewMatchScore(goal int) *MatchScore {
	return &MatchScore{Goal: goal, Wins: map[Marker]int{Human: 0, Computer: 0}}
}

// Record credits a finished game. Ties (Unused) change nothing.
func (s *MatchScore) Record(winner Marker) {
	if winner == Unused {
		return
	}
	s.Wins[winner]++
}

// Champion returns the first marker whose tally reached the goal.
func (s *MatchScore) Champion() (Marker, bool) {
	for _, m := range []Marker{Human, Computer} {
		if s.Wins[m] >= s.Goal {
			return m, true
		}
	}
	return Unused, false
}

// Reset starts a new match.
func (s *MatchScore) Reset() {
	s.Wins = map[Marker]int{Human: 0, Computer: 0}
}
