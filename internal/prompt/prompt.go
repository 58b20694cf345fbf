package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Prompter reads one line of user input in response to a prompt and reports
// how long the user took. Time limits are checked by the caller after the
// read returns; the read itself is never interrupted.
type Prompter interface {
	ReadAnswer(prompt string) (text string, elapsed time.Duration, err error)
}

// Terminal is the interactive Prompter, normally over stdin/stdout.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal reading from in and echoing prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) ReadAnswer(prompt string) (string, time.Duration, error) {
	fmt.Fprint(t.out, prompt)

	start := time.Now()
	line, err := t.in.ReadString('\n')
	elapsed := time.Since(start)

	if err != nil && line == "" {
		return "", elapsed, err
	}
	return strings.TrimRight(line, "\r\n"), elapsed, nil
}

// Step is one scripted answer with its pretended thinking time.
type Step struct {
	Text    string
	Elapsed time.Duration
}

// Script replays a fixed sequence of answers. Reading past the end returns
// io.EOF, like a closed terminal would.
type Script struct {
	Steps []Step
	next  int
}

func (s *Script) ReadAnswer(string) (string, time.Duration, error) {
	if s.next >= len(s.Steps) {
		return "", 0, io.EOF
	}
	step := s.Steps[s.next]
	s.next++
	return step.Text, step.Elapsed, nil
}
