// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive selection.
type Prompter interface {
	SelectValue(title string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Confirmer asks yes/no questions. Only an explicit "y" or "yes"
// (case-insensitive) counts as yes; everything else, including an empty
// line or EOF, is no.
type Confirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConfirmer creates a Confirmer reading answers from in and writing
// prompts to out. The reader is shared across calls so buffered lookahead
// survives consecutive prompts on piped input.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{reader: bufio.NewReader(in), out: out}
}

// NewStdConfirmer creates a Confirmer bound to stdin/stderr.
func NewStdConfirmer() *Confirmer {
	return NewConfirmer(os.Stdin, os.Stderr)
}

// Confirm prints "<message> [y/N]: " and reads one answer line.
func (c *Confirmer) Confirm(message string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", message)
	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}
