package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	text string
	err  error
}

// Prompter reads one trimmed line of input per prompt.
//
// Lines are read by a background goroutine so that Ask can return as soon as
// its context is done. A read that is blocked when the context ends stays
// blocked until the input yields a line or closes.
type Prompter struct {
	in  io.Reader
	out io.Writer

	start sync.Once
	lines chan lineResult
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan lineResult),
	}
}

// Ask writes prompt on its own line, then waits for the next input line.
// An empty prompt reads without writing. Returns io.EOF once input is
// exhausted, and ctx.Err() if ctx is done first.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		if _, err := fmt.Fprintln(p.out, prompt); err != nil {
			return "", err
		}
	}

	p.start.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return r.text, r.err
	}
}

// readLines feeds p.lines until input ends, then closes it.
func (p *Prompter) readLines() {
	defer close(p.lines)

	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		p.lines <- lineResult{text: strings.TrimSpace(scanner.Text())}
	}
	if err := scanner.Err(); err != nil {
		p.lines <- lineResult{err: fmt.Errorf("failed to read input: %w", err)}
	}
}
