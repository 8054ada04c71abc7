package tictactoe

import "strconv"

// Marker is what occupies a square.
type Marker string

const (
	Unused   Marker = " "
	Human    Marker = "X"
	Computer Marker = "O"
)

func (m Marker) String() string { return string(m) }

// Position addresses one of the nine squares, numbered 1 to 9 row by row.
type Position int

const (
	TopLeft Position = iota + 1
	TopCenter
	TopRight
	MiddleLeft
	Center
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

const Squares = 9

func (p Position) String() string { return strconv.Itoa(int(p)) }

func (p Position) Valid() bool { return p >= TopLeft && p <= BottomRight }

// Triple is a line of three squares that wins when one marker owns it.
type Triple [3]Position

// WinningTriples lists every row, column and diagonal.
var WinningTriples = [8]Triple{
	{TopLeft, TopCenter, TopRight},          // top row
	{MiddleLeft, Center, MiddleRight},       // middle row
	{BottomLeft, BottomCenter, BottomRight}, // bottom row
	{TopLeft, MiddleLeft, BottomLeft},       // left column
	{TopCenter, Center, BottomCenter},       // middle column
	{TopRight, MiddleRight, BottomRight},    // right column
	{TopLeft, Center, BottomRight},          // diagonal
	{TopRight, Center, BottomLeft},          // anti-diagonal
}

// Rand is the random source for the fallback move.
type Rand interface {
	Intn(n int) int
}
