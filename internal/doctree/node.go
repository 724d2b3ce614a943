// Package doctree defines the parsed document tree the diff engine
// operates on: a read-only tree of tagged-union nodes, block-level
// constructs containing inline content.
package doctree

import (
	"fmt"
	"strings"
)

// Kind identifies a node's construct. Block kinds come first, inline
// kinds after KindText; consumers switch exhaustively over the set.
type Kind int

const (
	KindDocument Kind = iota
	KindParagraph
	KindHeading
	KindList
	KindListItem
	KindCodeBlock
	KindBlockquote

	KindText
	KindEmphasis
	KindStrong
	KindInlineCode
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindList:
		return "list"
	case KindListItem:
		return "list_item"
	case KindCodeBlock:
		return "code_block"
	case KindBlockquote:
		return "blockquote"
	case KindText:
		return "text"
	case KindEmphasis:
		return "emphasis"
	case KindStrong:
		return "strong"
	case KindInlineCode:
		return "inline_code"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// IsBlock reports whether the kind is a block-level construct.
func (k Kind) IsBlock() bool {
	switch k {
	case KindDocument, KindParagraph, KindHeading, KindList, KindListItem, KindCodeBlock, KindBlockquote:
		return true
	case KindText, KindEmphasis, KindStrong, KindInlineCode, KindLink:
		return false
	default:
		return false
	}
}

// Node is one node of a parsed document. Trees are immutable inputs;
// nothing in this module mutates a Node after construction.
type Node struct {
	Kind     Kind
	Level    int    // heading level, 1-6
	Ordered  bool   // list: ordered vs bullet
	Lang     string // code block language tag
	URL      string // link destination
	Text     string // text content for KindText and KindInlineCode leaves
	Raw      string // block source text, markers included (e.g. "# Title", "- item")
	Children []*Node
}

// Blocks flattens the document into the ordered block sequence the
// aligner consumes. Lists are replaced by their items so that adding
// or removing a single item diffs as a single block. Returns an error
// when a child at block position is not a block kind; that is a
// malformed tree from the parsing layer, not a diffable condition.
func Blocks(doc *Node) ([]*Node, error) {
	if doc == nil {
		return nil, nil
	}
	if doc.Kind != KindDocument {
		return nil, fmt.Errorf("doctree: root node is %s, want document", doc.Kind)
	}
	var out []*Node
	for _, child := range doc.Children {
		if !child.Kind.IsBlock() || child.Kind == KindDocument {
			return nil, fmt.Errorf("doctree: %s node at block position", child.Kind)
		}
		if child.Kind == KindList {
			for _, item := range child.Children {
				if item.Kind != KindListItem {
					return nil, fmt.Errorf("doctree: %s node inside list", item.Kind)
				}
				out = append(out, item)
			}
			continue
		}
		out = append(out, child)
	}
	return out, nil
}

// PlainText returns the node's text with inline markup stripped.
func PlainText(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	plainText(n, &b)
	return b.String()
}

func plainText(n *Node, b *strings.Builder) {
	switch n.Kind {
	case KindText, KindInlineCode:
		b.WriteString(n.Text)
	default:
		for _, c := range n.Children {
			plainText(c, b)
		}
	}
}

// Separator returns the block separator that joins a with b in
// canonical document text: a single newline between sibling list
// items, a blank line otherwise.
func Separator(a, b *Node) string {
	if a != nil && b != nil && a.Kind == KindListItem && b.Kind == KindListItem {
		return "\n"
	}
	return "\n\n"
}

// Text renders the document's canonical text: each block's raw form,
// joined with Separator. Render output reconstructs to exactly this
// string, so it is the reference side of the round-trip property.
func Text(doc *Node) string {
	blocks, err := Blocks(doc)
	if err != nil || len(blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			b.WriteString(Separator(blocks[i-1], blk))
		}
		b.WriteString(blk.Raw)
	}
	return b.String()
}
