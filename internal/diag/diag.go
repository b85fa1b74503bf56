// Package diag renders human-readable messages and fatal diagnostics for the
// command-line tools. Library packages return errors and never use it.
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Width is the column limit for wrapped text and the separator length.
const Width = 70

// Separator frames every diagnostic block.
var Separator = strings.Repeat(":", Width)

// exit is replaced in tests.
var exit = os.Exit

// Message wraps every line of text to Width columns, indenting each
// wrapped line by indent spaces. Words longer than the limit are kept
// whole. The result ends with a newline; it is empty when verbose <= 0.
func Message(verbose int, text string, indent int) string {
	if verbose <= 0 {
		return ""
	}

	pad := strings.Repeat(" ", indent)
	limit := Width - indent
	if limit < 1 {
		limit = 1
	}

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		wrapped := wordwrap.WrapString(strings.Join(strings.Fields(line), " "), uint(limit))
		if wrapped == "" {
			b.WriteByte('\n')
			continue
		}
		for _, l := range strings.Split(wrapped, "\n") {
			b.WriteString(pad)
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Print writes Message(verbose, text, indent) to w.
func Print(w io.Writer, verbose int, text string, indent int) error {
	msg := Message(verbose, text, indent)
	if msg == "" {
		return nil
	}
	_, err := io.WriteString(w, msg)
	return err
}

// Frame is the call site a diagnostic refers to.
type Frame struct {
	Module   string
	Function string
	Line     int
}

// Caller returns the frame skip levels above the caller of Caller.
func Caller(skip int) Frame {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Frame{Module: "???", Function: "???"}
	}

	fn := "???"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
		if i := strings.LastIndexByte(fn, '/'); i >= 0 {
			fn = fn[i+1:]
		}
	}

	return Frame{Module: filepath.Base(file), Function: fn, Line: line}
}

// Format renders the diagnostic block for message raised at f.
func Format(f Frame, message string) string {
	body := strings.TrimSuffix(Message(1, message, 4), "\n")
	return fmt.Sprintf("%s\n  Error in module: '%s', function: '%s', line: %d\n%s\n%s",
		Separator, f.Module, f.Function, f.Line, body, Separator)
}

// Report writes the diagnostic block for err, located at the caller of
// Report, to every writer in ws.
func Report(err error, ws ...io.Writer) {
	write(Caller(1), err, ws)
}

// Fatal writes the diagnostic block for err, located at the caller of
// Fatal, to every writer in ws and terminates the process with status 1.
func Fatal(err error, ws ...io.Writer) {
	write(Caller(1), err, ws)
	exit(1)
}

func write(f Frame, err error, ws []io.Writer) {
	text := Format(f, err.Error()) + "\n"
	for _, w := range ws {
		if w != nil {
			_, _ = io.WriteString(w, text)
		}
	}
}
