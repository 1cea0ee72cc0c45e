package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableTruncatesByDisplayWidth(t *testing.T) {
	var buf bytes.Buffer
	tb := newTable(&buf, column{title: "Model", width: 8}, column{title: "Calls", width: 5, right: true})
	tb.header()
	tb.row("gemini-2.5-flash", "12")
	tb.row("営養モデル", "3")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Model     Calls" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[2] != "gemini-…     12" {
		t.Errorf("unexpected row %q", lines[2])
	}
	if lines[3] != "営養モ…       3" {
		t.Errorf("unexpected wide row %q", lines[3])
	}
}
