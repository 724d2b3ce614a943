// Package textdiff computes word- or character-level alignments
// between two text runs as a typed segment sequence. It has no
// knowledge of document structure.
package textdiff

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SegKind classifies a diff segment.
type SegKind int

const (
	Unchanged SegKind = iota
	Inserted
	Deleted
)

func (k SegKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Segment is one run of text tagged with how it changed. Concatenating
// Unchanged+Deleted segments in order reconstructs the before text;
// Unchanged+Inserted reconstructs the after text.
type Segment struct {
	Kind SegKind
	Text string
}

// Granularity selects the token unit for alignment.
type Granularity int

const (
	Word Granularity = iota
	Character
)

// ParseGranularity maps a flag value to a Granularity.
func ParseGranularity(s string) (Granularity, bool) {
	switch s {
	case "word", "":
		return Word, true
	case "char", "character":
		return Character, true
	default:
		return Word, false
	}
}

// Diff aligns before and after at the requested granularity and
// returns the coalesced segment sequence.
func Diff(before, after string, g Granularity) []Segment {
	if before == "" && after == "" {
		return nil
	}
	if before == after {
		return []Segment{{Kind: Unchanged, Text: before}}
	}
	if before == "" {
		return []Segment{{Kind: Inserted, Text: after}}
	}
	if after == "" {
		return []Segment{{Kind: Deleted, Text: before}}
	}

	dmp := diffmatchpatch.New()
	var diffs []diffmatchpatch.Diff
	if g == Character {
		diffs = dmp.DiffMain(before, after, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
	} else {
		enc := newTokenEncoder()
		a := enc.encode(tokenize(before))
		b := enc.encode(tokenize(after))
		for _, d := range dmp.DiffMain(a, b, false) {
			diffs = append(diffs, diffmatchpatch.Diff{Type: d.Type, Text: enc.decode(d.Text)})
		}
	}

	segs := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			segs = append(segs, Segment{Kind: Unchanged, Text: d.Text})
		case diffmatchpatch.DiffInsert:
			segs = append(segs, Segment{Kind: Inserted, Text: d.Text})
		case diffmatchpatch.DiffDelete:
			segs = append(segs, Segment{Kind: Deleted, Text: d.Text})
		}
	}
	return Coalesce(segs)
}

// Coalesce merges adjacent segments of the same kind, minimizing
// marker count in rendered output.
func Coalesce(segs []Segment) []Segment {
	if len(segs) == 0 {
		return nil
	}
	out := []Segment{segs[0]}
	for _, s := range segs[1:] {
		if s.Kind == out[len(out)-1].Kind {
			out[len(out)-1].Text += s.Text
		} else {
			out = append(out, s)
		}
	}
	return out
}

// tokenize splits text into word, whitespace, and punctuation runs.
// Whitespace is its own token class so reflowed prose still aligns;
// each punctuation rune stands alone so "mat." and "rug." share the
// trailing period.
func tokenize(s string) []string {
	var toks []string
	var cur strings.Builder
	var curClass int // 0 none, 1 word, 2 space

	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
		curClass = 0
	}

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if curClass != 1 {
				flush()
				curClass = 1
			}
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			if curClass != 2 {
				flush()
				curClass = 2
			}
			cur.WriteRune(r)
		default:
			flush()
			toks = append(toks, string(r))
		}
	}
	flush()
	return toks
}

// tokenEncoder maps distinct tokens to runes so the Myers alignment
// in diffmatchpatch can run over token sequences as strings. Same
// idea as the library's line-mode encoding, but over word tokens.
type tokenEncoder struct {
	index map[string]rune
	toks  []string
	next  rune
}

func newTokenEncoder() *tokenEncoder {
	return &tokenEncoder{index: make(map[string]rune), next: 1}
}

func (e *tokenEncoder) encode(toks []string) string {
	var b strings.Builder
	for _, t := range toks {
		r, ok := e.index[t]
		if !ok {
			r = e.next
			e.next++
			// Surrogate halves are not valid runes in a Go string.
			if e.next == 0xD800 {
				e.next = 0xE000
			}
			e.index[t] = r
			e.toks = append(e.toks, t)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (e *tokenEncoder) decode(s string) string {
	var b strings.Builder
	for _, r := range s {
		i := int(r) - 1
		if r >= 0xE000 {
			i = int(r) - 1 - (0xE000 - 0xD800)
		}
		if i >= 0 && i < len(e.toks) {
			b.WriteString(e.toks[i])
		}
	}
	return b.String()
}
