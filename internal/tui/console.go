// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal surface of the fund client: line prompts, a
// masked password field and plain-text record views.
//
// Prompts follow the same shape everywhere: a blank line, the label, then a
// "> " marker on the next line. Input is read one line at a time so the client
// can be scripted by piping answers into stdin.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const promptMarker = "> "

// Prompter is the console as seen by the session driver.
type Prompter interface {
	// Prompt prints label and returns the next line of input without its
	// line terminator.
	Prompt(label string) (string, error)

	// PromptSecret is Prompt with the typed characters hidden when the
	// input is a terminal.
	PromptSecret(label string) (string, error)

	// PromptInt reads a line and converts it to an integer. Input that is not
	// a number yields ErrInvalidNumber.
	PromptInt(label string) (int, error)

	// PromptFloat reads a line and converts it to a finite float. Input that
	// is not a number yields ErrInvalidNumber.
	PromptFloat(label string) (float64, error)

	Heading(title string)
	Success(msg string)
	Failure(msg string)
	Print(text string)
}

// Console implements [Prompter] on top of a reader and a writer.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// terminal is set when the input is an interactive terminal; masked
	// input is only possible then.
	terminal *os.File
	styles   styles
}

// NewConsole returns a Console reading from in and writing to out. Styling is
// applied only when out is a terminal.
func NewConsole(in io.Reader, out io.Writer) *Console {
	renderer := lipgloss.NewRenderer(out)
	if !isTerminal(out) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(renderer),
	}
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		c.terminal = f
	}

	return c
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Prompt implements [Prompter].
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprintf(c.out, "\n%s\n%s", label, promptMarker)
	return c.readLine()
}

// PromptSecret implements [Prompter].
func (c *Console) PromptSecret(label string) (string, error) {
	if c.terminal == nil {
		return c.Prompt(label)
	}
	return readSecret(c.terminal, c.out, label)
}

// PromptInt implements [Prompter].
func (c *Console) PromptInt(label string) (int, error) {
	line, err := c.Prompt(label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, line)
	}
	return n, nil
}

// PromptFloat implements [Prompter].
func (c *Console) PromptFloat(label string) (float64, error) {
	line, err := c.Prompt(label)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, line)
	}
	return v, nil
}

// Heading implements [Prompter].
func (c *Console) Heading(title string) {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.heading.Render(title))
}

// Success implements [Prompter].
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.success.Render(msg))
}

// Failure implements [Prompter].
func (c *Console) Failure(msg string) {
	fmt.Fprintf(c.out, "%s\n", c.styles.failure.Render(msg))
}

// Print implements [Prompter].
func (c *Console) Print(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
