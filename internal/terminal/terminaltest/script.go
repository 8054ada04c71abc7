// Package terminaltest provides a scripted terminal for tests.
package terminaltest

import (
	"io"
	"strings"
)

// Script answers prompts from a fixed list of lines and records output.
// Once the lines run out ReadLine returns io.EOF.
type Script struct {
	Lines   []string
	Prompts []string
	Output  []string
	Clears  int
}

func New(lines ...string) *Script {
	return &Script{Lines: lines}
}

func (s *Script) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Lines) == 0 {
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}

func (s *Script) ClearScreen() { s.Clears++ }

func (s *Script) Print(text string) { s.Output = append(s.Output, text) }

// Text joins everything printed so far.
func (s *Script) Text() string { return strings.Join(s.Output, "\n") }

// Count returns how many prompts contained substr.
func (s *Script) Count(substr string) int {
	n := 0
	for _, p := range s.Prompts {
		if strings.Contains(p, substr) {
			n++
		}
	}
	return n
}
