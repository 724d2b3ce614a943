package engine

import (
	"strings"
	"testing"

	"github.com/sprite-ai/critique/internal/doctree"
)

func para(text string) *doctree.Node {
	doc := doctree.Parse(text)
	if len(doc.Children) == 0 {
		return &doctree.Node{Kind: doctree.KindParagraph}
	}
	return doc.Children[0]
}

func TestClassifyUnchanged(t *testing.T) {
	d := classify(para("same text"), para("same text"), DefaultConfig())
	if d.Kind != Unchanged {
		t.Fatalf("got %v, want unchanged", d.Kind)
	}
	if len(d.Spans) != 1 || d.Spans[0].Kind != SpanUnchanged {
		t.Errorf("spans = %+v", d.Spans)
	}
}

func TestClassifySmallEdit(t *testing.T) {
	d := classify(
		para("The cat sat on the mat."),
		para("The cat sat on the rug."),
		DefaultConfig(),
	)
	if d.Kind != GranularEdit {
		t.Fatalf("got %v, want granular", d.Kind)
	}
	var hasDel, hasIns, hasSub bool
	for _, s := range d.Spans {
		switch s.Kind {
		case SpanDeleted:
			hasDel = true
		case SpanInserted:
			hasIns = true
		case SpanSubstituted:
			hasSub = true
		case SpanUnchanged:
		}
	}
	if !hasDel || !hasIns {
		t.Errorf("expected word-level delete and insert, spans = %+v", d.Spans)
	}
	if hasSub {
		t.Errorf("small edit must not produce a substitution, spans = %+v", d.Spans)
	}
}

func TestClassifyRewrite(t *testing.T) {
	d := classify(
		para("The report covers the budget for the next fiscal year in detail."),
		para("The report ignores the schedule for the previous fiscal cycle entirely at length."),
		DefaultConfig(),
	)
	if d.Kind != AtomicSubstitution {
		t.Fatalf("got %v, want atomic", d.Kind)
	}
	if len(d.Spans) != 1 || d.Spans[0].Kind != SpanSubstituted {
		t.Fatalf("spans = %+v", d.Spans)
	}
}

func TestClassifyEmptySide(t *testing.T) {
	d := classify(para("some text"), para(""), DefaultConfig())
	if d.Kind != AtomicSubstitution {
		t.Errorf("empty after: got %v, want atomic", d.Kind)
	}
	d = classify(para(""), para("some text"), DefaultConfig())
	if d.Kind != AtomicSubstitution {
		t.Errorf("empty before: got %v, want atomic", d.Kind)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	// Replace an increasing count of words in a ten word paragraph; the
	// decision may only move forward through unchanged, granular,
	// atomic.
	words := []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}
	before := para(strings.Join(words, " "))

	prev := Unchanged
	for k := 0; k <= len(words); k++ {
		changed := make([]string, len(words))
		copy(changed, words)
		for i := 0; i < k; i++ {
			changed[i] = "changed" + string(rune('a'+i))
		}
		d := classify(before, para(strings.Join(changed, " ")), DefaultConfig())
		if d.Kind < prev {
			t.Fatalf("k=%d: decision regressed from %v to %v", k, prev, d.Kind)
		}
		prev = d.Kind
	}
	if prev != AtomicSubstitution {
		t.Errorf("full rewrite ended at %v, want atomic", prev)
	}
}

func TestClassifySentenceRefinement(t *testing.T) {
	// Two sentences: the first untouched, the second rewritten heavily
	// enough to clear the sentence threshold but not the paragraph one.
	before := para("The quick brown fox jumps over the lazy dog near the river bank every single morning. It barked.")
	after := para("The quick brown fox jumps over the lazy dog near the river bank every single morning. Nothing happened.")

	d := classify(before, after, DefaultConfig())
	if d.Kind != GranularEdit {
		t.Fatalf("got %v, want granular", d.Kind)
	}

	var sub *Span
	for i := range d.Spans {
		if d.Spans[i].Kind == SpanSubstituted {
			if sub != nil {
				t.Fatalf("more than one substitution span: %+v", d.Spans)
			}
			sub = &d.Spans[i]
		}
	}
	if sub == nil {
		t.Fatalf("expected a per-sentence substitution, spans = %+v", d.Spans)
	}
	if !strings.Contains(sub.Old, "It barked.") || !strings.Contains(sub.New, "Nothing happened.") {
		t.Errorf("substitution pair = %q -> %q", sub.Old, sub.New)
	}
}

func TestDivergence(t *testing.T) {
	cases := []struct {
		a, b     string
		min, max float64
	}{
		{"", "", 0, 0},
		{"a b c", "", 1, 1},
		{"a b c d", "a b c d", 0, 0},
		{"a b c d", "a b c x", 0.25, 0.25},
		{"a b", "c d e f", 1, 1},
	}
	for _, c := range cases {
		got := divergence(c.a, c.b)
		if got < c.min-1e-9 || got > c.max+1e-9 {
			t.Errorf("divergence(%q, %q) = %f, want in [%f, %f]", c.a, c.b, got, c.min, c.max)
		}
	}
}
