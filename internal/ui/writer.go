// Package ui provides the output sink used for help, version and
// diagnostics, including pager support.
//
// The pager intentionally runs whatever command is configured (--pager style
// override, config or $PAGER), like git or man do.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// Writer writes standard output and diagnostics to separate streams.
type Writer struct {
	out           io.Writer
	err           io.Writer
	pagerDisabled bool
	pagerOverride string
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer on stdout and stderr.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, os.Stderr, opts...)
}

// NewWriterTo creates a new Writer on the given streams.
func NewWriterTo(out, errOut io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		err:       errOut,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer on the standard stream.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the standard stream.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to the standard stream.
func (w *Writer) Println(line string) {
	_, _ = fmt.Fprintln(w.out, line)
}

// ErrPrintln writes a line to the diagnostic stream.
func (w *Writer) ErrPrintln(line string) {
	_, _ = fmt.Fprintln(w.err, line)
}

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. pager disabled → direct output
//  2. output not a TTY → direct output
//  3. override → uses it, "cat" bypasses
//  4. $PAGER env var → uses it, "cat" bypasses
//  5. Default: "less -FRSX"
func (w *Writer) Pager(content string) {
	if w.pagerDisabled {
		fmt.Fprint(w.out, content)
		return
	}

	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w.out, content)
		return
	}

	if w.pagerOverride != "" {
		w.runPagerCmd(w.pagerOverride, content)
		return
	}

	if w.envGetter != nil {
		if envPager := w.envGetter("PAGER"); envPager != "" {
			w.runPagerCmd(envPager, content)
			return
		}
	}

	w.runPager(f, "less", []string{"-FRSX"}, content)
}

func isBypassPager(cmd string) bool {
	return cmd == "cat"
}

func (w *Writer) runPagerCmd(pagerCmd string, content string) {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 || isBypassPager(parts[0]) {
		fmt.Fprint(w.out, content)
		return
	}
	w.runPager(w.out, parts[0], parts[1:], content)
}

func (w *Writer) runPager(stdout io.Writer, pager string, args []string, content string) {
	cmd := exec.Command(pager, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = stdout
	cmd.Stderr = w.err

	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}
