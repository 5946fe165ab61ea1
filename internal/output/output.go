// Package output provides consistent CLI output formatting with
// terminal-aware coloring.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI escape sequences used when coloring is active.
const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiDim    = "\033[2m"
)

// Writer provides formatted output for the CLI.
type Writer struct {
	out      io.Writer
	useColor bool
}

// New creates a Writer, enabling color when out is a terminal and
// NO_COLOR is unset.
func New(out io.Writer) *Writer {
	return &Writer{
		out:      out,
		useColor: isTTY(out) && !noColor(),
	}
}

// NewPlain creates a Writer with coloring disabled.
func NewPlain(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Println writes a plain line.
func (w *Writer) Println(msg string) {
	_, _ = fmt.Fprintln(w.out, msg)
}

// Printf writes formatted text.
func (w *Writer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format, args...)
}

// Success prints a success message.
func (w *Writer) Success(msg string) {
	w.colored(ansiGreen, "ok", msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.colored(ansiYellow, "warn", msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.colored(ansiRed, "error", msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Context prints a retrieved context block, indented, with a dimmed
// frame when color is active.
func (w *Writer) Context(content string) {
	_, _ = fmt.Fprintln(w.out)
	for _, line := range strings.Split(content, "\n") {
		if w.useColor {
			_, _ = fmt.Fprintf(w.out, "  %s│%s %s\n", ansiDim, ansiReset, line)
		} else {
			_, _ = fmt.Fprintf(w.out, "  | %s\n", line)
		}
	}
	_, _ = fmt.Fprintln(w.out)
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

func (w *Writer) colored(color, label, msg string) {
	if w.useColor {
		_, _ = fmt.Fprintf(w.out, "%s%s:%s %s\n", color, label, ansiReset, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "%s: %s\n", label, msg)
	}
}

// isTTY checks if the writer is a terminal.
func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// noColor honors the NO_COLOR convention.
func noColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
