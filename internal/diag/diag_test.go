package diag

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMessageSilentWhenNotVerbose(t *testing.T) {
	if got := Message(0, "hello", 0); got != "" {
		t.Fatalf("Message() = %q, want empty", got)
	}
}

func TestMessageWrapsAndIndents(t *testing.T) {
	text := strings.Repeat("word ", 30) + "\nsecond line"
	got := Message(1, text, 4)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected wrapping, got %q", got)
	}
	for _, l := range lines {
		if len(l) > Width {
			t.Fatalf("line too long (%d): %q", len(l), l)
		}
		if !strings.HasPrefix(l, "    ") {
			t.Fatalf("line not indented: %q", l)
		}
	}
	if lines[len(lines)-1] != "    second line" {
		t.Fatalf("last line = %q", lines[len(lines)-1])
	}
}

func TestMessageKeepsLongWords(t *testing.T) {
	long := strings.Repeat("x", Width+10)
	got := Message(1, long, 2)
	if got != "  "+long+"\n" {
		t.Fatalf("Message() = %q", got)
	}
}

func TestFormat(t *testing.T) {
	got := Format(Frame{Module: "box.go", Function: "extract.Box", Line: 42}, "bad bounds")
	want := Separator + "\n" +
		"  Error in module: 'box.go', function: 'extract.Box', line: 42\n" +
		"    bad bounds\n" +
		Separator
	if got != want {
		t.Fatalf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestCaller(t *testing.T) {
	f := Caller(0)
	if f.Module != "diag_test.go" {
		t.Fatalf("Module = %q, want diag_test.go", f.Module)
	}
	if f.Function != "diag.TestCaller" {
		t.Fatalf("Function = %q, want diag.TestCaller", f.Function)
	}
	if f.Line <= 0 {
		t.Fatalf("Line = %d", f.Line)
	}
}

func TestReportAndFatal(t *testing.T) {
	var buf bytes.Buffer
	Report(errors.New("shape mismatch"), &buf, nil)
	if !strings.Contains(buf.String(), "function: 'diag.TestReportAndFatal'") {
		t.Fatalf("unexpected report:\n%s", buf.String())
	}

	code := -1
	orig := exit
	exit = func(c int) { code = c }
	defer func() { exit = orig }()

	buf.Reset()
	Fatal(errors.New("boom"), &buf)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "function: 'diag.TestReportAndFatal'") {
		t.Fatalf("fatal report points at the wrong frame:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "    boom") {
		t.Fatalf("unexpected report:\n%s", buf.String())
	}
}
