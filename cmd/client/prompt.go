package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter asks for values missing from flags on an interactive input.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints label and returns the trimmed line read back. An exhausted
// input is an error so scripted runs fail instead of hanging on empty values.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", label, err)
		}
		return "", fmt.Errorf("read %s: %w", label, io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// fill prompts for *v when it is empty and rejects an empty answer.
func (p *prompter) fill(label string, v *string) error {
	if *v != "" {
		return nil
	}
	answer, err := p.ask(label)
	if err != nil {
		return err
	}
	if answer == "" {
		return errors.New(label + " is required")
	}
	*v = answer
	return nil
}
