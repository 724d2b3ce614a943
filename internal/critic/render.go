package critic

import (
	"strings"

	"github.com/sprite-ai/critique/internal/doctree"
	"github.com/sprite-ai/critique/internal/engine"
)

// Render serializes an aligned, classified block sequence as
// CriticMarkup. Block separators come from the after-tree's structure;
// a separator that exists on only one side (next to an inserted or
// deleted block) is folded into that block's marker so that the
// unchanged+inserted stream reconstructs the after-document exactly
// and unchanged+deleted reconstructs the before-document. Output is
// deterministic: same entries, same bytes.
func Render(entries []engine.Entry) string {
	var spans []engine.Span
	var prevBefore, prevAfter *doctree.Node

	push := func(kind engine.SpanKind, text string) {
		if text == "" {
			return
		}
		spans = append(spans, engine.Span{Kind: kind, Text: text})
	}

	for _, e := range entries {
		switch e.Op {
		case engine.OpMatch:
			sepB, sepA := "", ""
			if prevBefore != nil {
				sepB = doctree.Separator(prevBefore, e.Before)
			}
			if prevAfter != nil {
				sepA = doctree.Separator(prevAfter, e.After)
			}
			if sepB == sepA {
				push(engine.SpanUnchanged, sepA)
			} else {
				push(engine.SpanDeleted, sepB)
				push(engine.SpanInserted, sepA)
			}
			spans = append(spans, e.Decision.Spans...)
			prevBefore, prevAfter = e.Before, e.After

		case engine.OpInsert:
			if prevAfter != nil {
				push(engine.SpanInserted, doctree.Separator(prevAfter, e.After))
			}
			push(engine.SpanInserted, e.After.Raw)
			prevAfter = e.After

		case engine.OpDelete:
			if prevBefore != nil {
				push(engine.SpanDeleted, doctree.Separator(prevBefore, e.Before))
			}
			push(engine.SpanDeleted, e.Before.Raw)
			prevBefore = e.Before
		}
	}

	return serialize(coalesceSpans(spans))
}

// coalesceSpans merges adjacent spans of the same kind. Substitutions
// are left alone; merging old/new pairs would scramble their halves.
func coalesceSpans(spans []engine.Span) []engine.Span {
	var out []engine.Span
	for _, s := range spans {
		n := len(out)
		if n > 0 && s.Kind == out[n-1].Kind && s.Kind != engine.SpanSubstituted {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}

func serialize(spans []engine.Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case engine.SpanUnchanged:
			b.WriteString(s.Text)
		case engine.SpanInserted:
			if strings.Contains(s.Text, InsClose) && !strings.Contains(s.Text, SubClose) {
				writeSubstitution(&b, "", s.Text)
				continue
			}
			b.WriteString(InsOpen)
			b.WriteString(s.Text)
			b.WriteString(InsClose)
		case engine.SpanDeleted:
			if strings.Contains(s.Text, DelClose) &&
				!strings.Contains(s.Text, SubClose) && !strings.Contains(s.Text, SubSep) {
				writeSubstitution(&b, s.Text, "")
				continue
			}
			b.WriteString(DelOpen)
			b.WriteString(s.Text)
			b.WriteString(DelClose)
		case engine.SpanSubstituted:
			writeSubstitution(&b, s.Old, s.New)
		}
	}
	return b.String()
}

// writeSubstitution emits the {~~old~>new~~} form. It doubles as the
// escape hatch for an insertion or deletion whose text contains its own
// close delimiter: with the other half empty the content survives a
// re-parse that would otherwise close the span early. An insertion is
// safe even when its text contains the arrow, because the parser splits
// at the first one; a deletion is not, so serialize only reroutes
// deletions free of both substitution delimiters.
func writeSubstitution(b *strings.Builder, oldText, newText string) {
	b.WriteString(SubOpen)
	b.WriteString(oldText)
	b.WriteString(SubSep)
	b.WriteString(newText)
	b.WriteString(SubClose)
}
