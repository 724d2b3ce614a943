package doctree

import (
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	bulletRe    = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	orderedRe   = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	fenceRe     = regexp.MustCompile("^```\\s*([A-Za-z0-9_+-]*)\\s*$")
	inlineRe    = regexp.MustCompile("(\\*\\*[^*]+\\*\\*|__[^_]+__|\\*[^*]+\\*|_[^_]+_|`[^`]+`|\\[[^\\]]*\\]\\([^)]*\\))")
	linkRe      = regexp.MustCompile(`^\[([^\]]*)\]\(([^)]*)\)$`)
	blankLineRe = regexp.MustCompile(`^\s*$`)
)

// Parse builds a document tree from markdown source. It is a
// line-oriented block parser covering the constructs the diff engine
// consumes: headings, fenced code, blockquotes, lists, paragraphs,
// and inline emphasis/strong/code/link. It is deliberately not a full
// CommonMark implementation; callers with richer input can hand the
// engine any tree that satisfies the doctree shape.
func Parse(src string) *Node {
	doc := &Node{Kind: KindDocument}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	i := 0
	for i < len(lines) {
		line := lines[i]

		if blankLineRe.MatchString(line) {
			i++
			continue
		}

		if m := fenceRe.FindStringSubmatch(line); m != nil {
			node, next := parseFence(lines, i, m[1])
			doc.Children = append(doc.Children, node)
			i = next
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			doc.Children = append(doc.Children, &Node{
				Kind:     KindHeading,
				Level:    len(m[1]),
				Raw:      line,
				Children: parseInline(m[2]),
			})
			i++
			continue
		}

		if strings.HasPrefix(line, ">") {
			node, next := parseBlockquote(lines, i)
			doc.Children = append(doc.Children, node)
			i = next
			continue
		}

		if bulletRe.MatchString(line) || orderedRe.MatchString(line) {
			node, next := parseList(lines, i)
			doc.Children = append(doc.Children, node)
			i = next
			continue
		}

		node, next := parseParagraph(lines, i)
		doc.Children = append(doc.Children, node)
		i = next
	}

	return doc
}

func parseFence(lines []string, start int, lang string) (*Node, int) {
	var body []string
	i := start + 1
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		body = append(body, lines[i])
		i++
	}
	raw := lines[start]
	if len(body) > 0 {
		raw += "\n" + strings.Join(body, "\n")
	}
	if i < len(lines) {
		raw += "\n" + lines[i]
		i++
	}
	code := strings.Join(body, "\n")
	return &Node{
		Kind:     KindCodeBlock,
		Lang:     lang,
		Raw:      raw,
		Children: []*Node{{Kind: KindText, Text: code}},
	}, i
}

func parseBlockquote(lines []string, start int) (*Node, int) {
	var raw, inner []string
	i := start
	for i < len(lines) && strings.HasPrefix(lines[i], ">") {
		raw = append(raw, lines[i])
		stripped := strings.TrimPrefix(lines[i], ">")
		stripped = strings.TrimPrefix(stripped, " ")
		inner = append(inner, stripped)
		i++
	}
	return &Node{
		Kind:     KindBlockquote,
		Raw:      strings.Join(raw, "\n"),
		Children: parseInline(strings.Join(inner, "\n")),
	}, i
}

func parseList(lines []string, start int) (*Node, int) {
	list := &Node{Kind: KindList, Ordered: orderedRe.MatchString(lines[start])}
	i := start
	for i < len(lines) {
		line := lines[i]
		var content string
		if m := bulletRe.FindStringSubmatch(line); m != nil && !list.Ordered {
			content = m[1]
		} else if m := orderedRe.FindStringSubmatch(line); m != nil && list.Ordered {
			content = m[1]
		} else {
			break
		}
		list.Children = append(list.Children, &Node{
			Kind:     KindListItem,
			Ordered:  list.Ordered,
			Raw:      line,
			Children: parseInline(content),
		})
		i++
	}
	return list, i
}

func parseParagraph(lines []string, start int) (*Node, int) {
	var body []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if blankLineRe.MatchString(line) ||
			headingRe.MatchString(line) ||
			fenceRe.MatchString(line) ||
			strings.HasPrefix(line, ">") ||
			bulletRe.MatchString(line) ||
			orderedRe.MatchString(line) {
			break
		}
		body = append(body, line)
		i++
	}
	text := strings.Join(body, "\n")
	return &Node{
		Kind:     KindParagraph,
		Raw:      text,
		Children: parseInline(text),
	}, i
}

// parseInline splits text into inline nodes. Unmatched or nested
// markers fall through as plain text.
func parseInline(text string) []*Node {
	if text == "" {
		return nil
	}
	var out []*Node
	last := 0
	for _, loc := range inlineRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			out = append(out, &Node{Kind: KindText, Text: text[last:loc[0]]})
		}
		out = append(out, inlineNode(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, &Node{Kind: KindText, Text: text[last:]})
	}
	return out
}

func inlineNode(tok string) *Node {
	switch {
	case strings.HasPrefix(tok, "**") || strings.HasPrefix(tok, "__"):
		inner := tok[2 : len(tok)-2]
		return &Node{Kind: KindStrong, Children: []*Node{{Kind: KindText, Text: inner}}}
	case strings.HasPrefix(tok, "*") || strings.HasPrefix(tok, "_"):
		inner := tok[1 : len(tok)-1]
		return &Node{Kind: KindEmphasis, Children: []*Node{{Kind: KindText, Text: inner}}}
	case strings.HasPrefix(tok, "`"):
		return &Node{Kind: KindInlineCode, Text: tok[1 : len(tok)-1]}
	default:
		if m := linkRe.FindStringSubmatch(tok); m != nil {
			return &Node{
				Kind:     KindLink,
				URL:      m[2],
				Children: []*Node{{Kind: KindText, Text: m[1]}},
			}
		}
		return &Node{Kind: KindText, Text: tok}
	}
}
