package engine

import (
	"strings"

	"github.com/sprite-ai/critique/internal/doctree"
	"github.com/sprite-ai/critique/internal/textdiff"
)

// DecisionKind orders the rendering policies by aggressiveness. The
// classifier is monotonic over divergence: a decision only ever moves
// Unchanged → Granular → Atomic as the texts drift apart.
type DecisionKind int

const (
	Unchanged DecisionKind = iota
	GranularEdit
	AtomicSubstitution
)

func (k DecisionKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case GranularEdit:
		return "granular"
	case AtomicSubstitution:
		return "atomic"
	default:
		return "unknown"
	}
}

// SpanKind tags one rendered span of a matched block.
type SpanKind int

const (
	SpanUnchanged SpanKind = iota
	SpanInserted
	SpanDeleted
	SpanSubstituted
)

// Span is the renderer-facing unit: plain text for the first three
// kinds, an old/new pair for a substitution.
type Span struct {
	Kind SpanKind
	Text string
	Old  string
	New  string
}

// Decision is the classification of one matched block pair, with the
// span sequence the renderer emits for it.
type Decision struct {
	Kind  DecisionKind
	Spans []Span
}

// classify decides how the difference between a matched pair renders.
// It never fails; degenerate text degrades to an atomic substitution.
// Each call depends only on its own pair, so decisions across a
// document are independent.
func classify(before, after *doctree.Node, cfg Config) Decision {
	oldText, newText := before.Raw, after.Raw

	if oldText == newText {
		return Decision{Kind: Unchanged, Spans: []Span{{Kind: SpanUnchanged, Text: newText}}}
	}

	// Empty text on either side is maximally divergent.
	if strings.TrimSpace(oldText) == "" || strings.TrimSpace(newText) == "" ||
		divergence(doctree.PlainText(before), doctree.PlainText(after)) > cfg.ParagraphThreshold {
		return Decision{Kind: AtomicSubstitution, Spans: []Span{{Kind: SpanSubstituted, Old: oldText, New: newText}}}
	}

	return Decision{Kind: GranularEdit, Spans: granularSpans(oldText, newText, cfg)}
}

// granularSpans renders a below-threshold pair. When both sides split
// into the same number of sentences, each sentence pair is decided on
// its own so a heavily rewritten sentence inside a stable paragraph
// still collapses to a substitution; otherwise the whole text goes
// through one word-level diff.
func granularSpans(oldText, newText string, cfg Config) []Span {
	oldSents := SplitSentences(oldText)
	newSents := SplitSentences(newText)

	if len(oldSents) != len(newSents) || len(oldSents) < 2 {
		return segmentSpans(textdiff.Diff(oldText, newText, cfg.Granularity))
	}

	var spans []Span
	for i := range oldSents {
		os, ns := oldSents[i], newSents[i]
		switch {
		case os == ns:
			spans = append(spans, Span{Kind: SpanUnchanged, Text: ns})
		case divergence(os, ns) > cfg.SentenceThreshold:
			spans = append(spans, Span{Kind: SpanSubstituted, Old: os, New: ns})
		default:
			spans = append(spans, segmentSpans(textdiff.Diff(os, ns, cfg.Granularity))...)
		}
	}
	return spans
}

func segmentSpans(segs []textdiff.Segment) []Span {
	spans := make([]Span, 0, len(segs))
	for _, s := range segs {
		switch s.Kind {
		case textdiff.Unchanged:
			spans = append(spans, Span{Kind: SpanUnchanged, Text: s.Text})
		case textdiff.Inserted:
			spans = append(spans, Span{Kind: SpanInserted, Text: s.Text})
		case textdiff.Deleted:
			spans = append(spans, Span{Kind: SpanDeleted, Text: s.Text})
		}
	}
	return spans
}

// divergence measures how different two texts are in [0,1]: one minus
// the shared word count over the longer side's word count. Chosen over
// word edit distance as the cheaper proxy; both satisfy the monotonic
// threshold contract, and this one is easier to reason about against
// the "shares fewer than 60% of words" rewrite case.
func divergence(a, b string) float64 {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	longer := len(wordsA)
	if len(wordsB) > longer {
		longer = len(wordsB)
	}
	if longer == 0 {
		return 0
	}
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 1
	}

	counts := make(map[string]int, len(wordsA))
	for _, w := range wordsA {
		counts[w]++
	}
	shared := 0
	for _, w := range wordsB {
		if counts[w] > 0 {
			counts[w]--
			shared++
		}
	}
	return 1 - float64(shared)/float64(longer)
}
