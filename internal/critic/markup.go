// Package critic renders aligned block diffs as CriticMarkup text and
// parses CriticMarkup back into typed segments for editor consumption.
//
// The three forms the renderer emits:
//
//	{++inserted++}
//	{--deleted--}
//	{~~old~>new~~}
//
// The preprocessor additionally recognizes the comment {>> <<} and
// highlight {== ==} forms so it can be run over hand-annotated text.
package critic

// Marker delimiters, shared with anything that prints or strips them.
const (
	InsOpen  = "{++"
	InsClose = "++}"
	DelOpen  = "{--"
	DelClose = "--}"
	SubOpen  = "{~~"
	SubClose = "~~}"
	SubSep   = "~>"
	HlOpen   = "{=="
	HlClose  = "==}"
	ComOpen  = "{>>"
	ComClose = "<<}"
)

// SegmentKind classifies a parsed markup segment.
type SegmentKind int

const (
	Unchanged SegmentKind = iota
	Inserted
	Deleted
	Substituted
	Highlighted
	Comment
)

func (k SegmentKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	case Substituted:
		return "substituted"
	case Highlighted:
		return "highlighted"
	case Comment:
		return "comment"
	default:
		return "unknown"
	}
}

// Segment is one typed run of a CriticMarkup document. Text holds the
// content for every kind except Substituted, which carries the old and
// new halves separately.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text,omitempty"`
	Old  string      `json:"old,omitempty"`
	New  string      `json:"new,omitempty"`
}

// NewText reconstructs the after-document from a segment sequence.
func NewText(segs []Segment) string {
	var b []byte
	for _, s := range segs {
		switch s.Kind {
		case Unchanged, Inserted, Highlighted:
			b = append(b, s.Text...)
		case Substituted:
			b = append(b, s.New...)
		case Deleted, Comment:
		}
	}
	return string(b)
}

// OldText reconstructs the before-document from a segment sequence.
func OldText(segs []Segment) string {
	var b []byte
	for _, s := range segs {
		switch s.Kind {
		case Unchanged, Deleted, Highlighted:
			b = append(b, s.Text...)
		case Substituted:
			b = append(b, s.Old...)
		case Inserted, Comment:
		}
	}
	return string(b)
}
