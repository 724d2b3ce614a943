package critic

import "strings"

// marker pairs the preprocessor recognizes, checked in order.
var markers = []struct {
	kind  SegmentKind
	open  string
	close string
}{
	{Inserted, InsOpen, InsClose},
	{Deleted, DelOpen, DelClose},
	{Substituted, SubOpen, SubClose},
	{Highlighted, HlOpen, HlClose},
	{Comment, ComOpen, ComClose},
}

// Preprocess scans markup text left to right and emits its typed
// segment sequence. It is deliberately lenient: marker-like text with
// no closing delimiter, a substitution with no separator, or any other
// malformed form passes through as unchanged text. It never fails, and
// it accepts arbitrary text, not only Render output.
func Preprocess(markup string) []Segment {
	var segs []Segment
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			segs = append(segs, Segment{Kind: Unchanged, Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(markup) {
		if markup[i] != '{' {
			j := strings.IndexByte(markup[i:], '{')
			if j < 0 {
				plain.WriteString(markup[i:])
				i = len(markup)
				continue
			}
			plain.WriteString(markup[i : i+j])
			i += j
			continue
		}

		seg, consumed := scanMarker(markup[i:])
		if consumed == 0 {
			plain.WriteByte('{')
			i++
			continue
		}
		flushPlain()
		segs = append(segs, seg)
		i += consumed
	}

	flushPlain()
	return segs
}

// scanMarker tries to read one complete marker span at the start of s.
// A zero consumed count means s does not start a well-formed span.
func scanMarker(s string) (Segment, int) {
	for _, m := range markers {
		if !strings.HasPrefix(s, m.open) {
			continue
		}
		body := s[len(m.open):]
		end := strings.Index(body, m.close)
		if end < 0 {
			return Segment{}, 0
		}
		inner := body[:end]
		consumed := len(m.open) + end + len(m.close)

		if m.kind == Substituted {
			sep := strings.Index(inner, SubSep)
			if sep < 0 {
				// Old-style or malformed substitution with no arrow:
				// treat the whole span as literal text.
				return Segment{}, 0
			}
			return Segment{
				Kind: Substituted,
				Old:  inner[:sep],
				New:  inner[sep+len(SubSep):],
			}, consumed
		}
		return Segment{Kind: m.kind, Text: inner}, consumed
	}
	return Segment{}, 0
}
