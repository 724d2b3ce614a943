package engine

import (
	"strings"
	"testing"
)

func joinSentences(parts []string) string {
	return strings.Join(parts, "")
}

func TestSplitSentencesPartition(t *testing.T) {
	// The hard guarantee: parts joined back together equal the input.
	inputs := []string{
		"",
		"no terminator at all",
		"One. Two. Three.",
		"Trailing space after. ",
		"Ellipsis... then more? Sure!",
		"Multiple   spaces.   After terminators.",
		"A version number like 1.2.3 stays put. Mostly.",
		"Line one.\nLine two.",
	}
	for _, in := range inputs {
		parts := SplitSentences(in)
		if got := joinSentences(parts); got != in {
			t.Errorf("partition broken for %q: joined = %q", in, got)
		}
	}
}

func TestSplitSentencesCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"just one sentence.", 1},
		{"no terminator", 1},
		{"First. Second.", 2},
		{"One! Two? Three.", 3},
	}
	for _, c := range cases {
		if got := SplitSentences(c.in); len(got) != c.want {
			t.Errorf("SplitSentences(%q) = %d parts %q, want %d", c.in, len(got), got, c.want)
		}
	}
}

func TestSplitSentencesKeepsTrailingSpace(t *testing.T) {
	parts := SplitSentences("First. Second.")
	if len(parts) != 2 {
		t.Fatalf("got %d parts", len(parts))
	}
	if parts[0] != "First. " {
		t.Errorf("first part = %q, want %q", parts[0], "First. ")
	}
}
