// Package terminal is the line-oriented console the games talk through.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

// Terminal reads answers from and writes lines to the player.
type Terminal interface {
	// ReadLine shows prompt and blocks until a full line is entered.
	// It returns io.EOF once input is closed.
	ReadLine(prompt string) (string, error)
	ClearScreen()
	Print(text string)
}

const clearSequence = "\033[H\033[2J"

// Console is a Terminal over a reader and a writer, typically stdin/stdout.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

func (c *Console) ClearScreen() { fmt.Fprint(c.out, clearSequence) }

func (c *Console) Print(text string) { fmt.Fprintln(c.out, text) }

// ErrInvalidAnswer marks input outside the accepted vocabulary.
var ErrInvalidAnswer = errors.New("invalid answer")

var fold = cases.Fold()

// Normalize trims and case-folds a raw answer.
func Normalize(raw string) string {
	return fold.String(strings.TrimSpace(raw))
}

// Choice is one accepted answer with its long and short spellings.
type Choice struct {
	Long  string
	Short string
}

// Match returns the index of the choice the answer spells, either in full
// or by its short form.
func Match(raw string, choices ...Choice) (int, error) {
	answer := Normalize(raw)
	for i, c := range choices {
		if answer == c.Long || answer == c.Short {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", raw, ErrInvalidAnswer)
}

var (
	Yes  = Choice{Long: "yes", Short: "y"}
	No   = Choice{Long: "no", Short: "n"}
	Hit  = Choice{Long: "hit", Short: "h"}
	Stay = Choice{Long: "stay", Short: "s"}
)

// Ask prompts until the answer matches one of the choices. Invalid answers
// are re-prompted with retry.
func Ask(t Terminal, prompt, retry string, choices ...Choice) (int, error) {
	line, err := t.ReadLine(prompt)
	for {
		if err != nil {
			return -1, err
		}
		if i, merr := Match(line, choices...); merr == nil {
			return i, nil
		}
		line, err = t.ReadLine(retry)
	}
}

// AskYesNo asks a yes/no question and reports whether the answer was yes.
func AskYesNo(t Terminal, prompt string) (bool, error) {
	i, err := Ask(t, prompt, "Please enter (y)es or (n)o: ", Yes, No)
	return i == 0, err
}

// Pause waits for the player to press enter.
func Pause(t Terminal, prompt string) error {
	_, err := t.ReadLine(prompt)
	return err
}

// JoinOr lists items as "a", "a or b" or "a, b, or c".
func JoinOr(items []string, delimiter, word string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + word + " " + items[1]
	}
	last := len(items) - 1
	return strings.Join(items[:last], delimiter) + delimiter + word + " " + items[last]
}

// JoinAnd lists items as "a and b" or "a, b, and c".
func JoinAnd(items []string) string { return JoinOr(items, ", ", "and") }
