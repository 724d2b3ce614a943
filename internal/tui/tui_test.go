package tui

import (
	"strings"
	"testing"

	"github.com/sprite-ai/critique/internal/critic"
)

func TestRenderLines(t *testing.T) {
	segs := []critic.Segment{
		{Kind: critic.Unchanged, Text: "# Title\n\nkeep "},
		{Kind: critic.Deleted, Text: "old"},
		{Kind: critic.Inserted, Text: "new"},
		{Kind: critic.Unchanged, Text: " text"},
	}

	lines := renderLines(segs, false)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Raw != "# Title" || lines[0].Changed {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Raw != "" {
		t.Errorf("line 1 raw = %q", lines[1].Raw)
	}
	if lines[2].Raw != "keep oldnew text" || !lines[2].Changed {
		t.Errorf("line 2 = %+v", lines[2])
	}
}

func TestRenderLinesSubstitution(t *testing.T) {
	segs := []critic.Segment{
		{Kind: critic.Substituted, Old: "was", New: "is"},
	}
	lines := renderLines(segs, false)
	if len(lines) != 1 || !lines[0].Changed {
		t.Fatalf("lines = %+v", lines)
	}
	if lines[0].Raw != "wasis" {
		t.Errorf("raw = %q", lines[0].Raw)
	}
}

func TestRenderLinesFence(t *testing.T) {
	segs := []critic.Segment{
		{Kind: critic.Unchanged, Text: "```go\nfmt.Println(\"hi\")\n```"},
	}
	lines := renderLines(segs, false)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	// Highlighting must not alter the raw text.
	if lines[1].Raw != "fmt.Println(\"hi\")" {
		t.Errorf("line 1 raw = %q", lines[1].Raw)
	}
}

func TestModelNavigation(t *testing.T) {
	var segs []critic.Segment
	for i := 0; i < 5; i++ {
		segs = append(segs, critic.Segment{Kind: critic.Unchanged, Text: "line\n"})
	}
	segs = append(segs, critic.Segment{Kind: critic.Inserted, Text: "added"})

	m := New("test", segs)
	m.height = 20
	m.width = 80

	m.jumpToChange(1)
	if !m.lines[m.scrollOffset].Changed {
		t.Errorf("jumpToChange landed on unchanged line %d", m.scrollOffset)
	}

	m.scrollBy(-100)
	if m.scrollOffset != 0 {
		t.Errorf("scroll under-run: %d", m.scrollOffset)
	}
}

func TestStatusCounts(t *testing.T) {
	m := New("doc", []critic.Segment{
		{Kind: critic.Inserted, Text: "a"},
		{Kind: critic.Deleted, Text: "b"},
		{Kind: critic.Substituted, Old: "c", New: "d"},
	})
	m.width = 60
	m.height = 20

	bar := m.renderStatusBar()
	for _, want := range []string{"+1", "-1", "~1"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar missing %q: %s", want, bar)
		}
	}
}
