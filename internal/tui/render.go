package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sprite-ai/critique/internal/critic"
)

// renderedLine is one display line of the preview.
type renderedLine struct {
	Raw     string // unstyled text, used for fence detection
	Styled  string
	Changed bool // line carries an insertion, deletion, or substitution
}

// renderLines turns a segment sequence into display lines. In marker
// mode the CriticMarkup delimiters stay visible (dimmed) around styled
// content; otherwise changes are shown purely through color.
func renderLines(segs []critic.Segment, showMarkers bool) []renderedLine {
	lb := &lineBuilder{}

	for _, s := range segs {
		switch s.Kind {
		case critic.Unchanged:
			lb.add(s.Text, unchangedStyle, false)
		case critic.Inserted:
			lb.marked(s.Text, insertedStyle, critic.InsOpen, critic.InsClose, showMarkers)
		case critic.Deleted:
			lb.marked(s.Text, deletedStyle, critic.DelOpen, critic.DelClose, showMarkers)
		case critic.Highlighted:
			lb.marked(s.Text, highlightStyle, critic.HlOpen, critic.HlClose, showMarkers)
		case critic.Comment:
			lb.marked(s.Text, commentStyle, critic.ComOpen, critic.ComClose, showMarkers)
		case critic.Substituted:
			if showMarkers {
				lb.addLiteral(critic.SubOpen)
			}
			lb.add(s.Old, substOldStyle, true)
			lb.addLiteral(substArrowStyle.Render(" → "))
			lb.add(s.New, substNewStyle, true)
			if showMarkers {
				lb.addLiteral(critic.SubClose)
			}
		}
	}

	return highlightFences(lb.finish())
}

type lineBuilder struct {
	lines   []renderedLine
	raw     strings.Builder
	styled  strings.Builder
	changed bool
}

func (lb *lineBuilder) add(text string, style lipgloss.Style, changed bool) {
	parts := strings.Split(text, "\n")
	for i, part := range parts {
		if i > 0 {
			lb.flush()
		}
		if part == "" {
			continue
		}
		lb.raw.WriteString(part)
		lb.styled.WriteString(style.Render(part))
		lb.changed = lb.changed || changed
	}
}

func (lb *lineBuilder) marked(text string, style lipgloss.Style, open, close string, showMarkers bool) {
	if showMarkers {
		lb.addLiteral(helpBarStyle.Render(open))
	}
	lb.add(text, style, true)
	if showMarkers {
		lb.addLiteral(helpBarStyle.Render(close))
	}
}

func (lb *lineBuilder) addLiteral(styled string) {
	lb.styled.WriteString(styled)
	lb.changed = true
}

func (lb *lineBuilder) flush() {
	lb.lines = append(lb.lines, renderedLine{
		Raw:     lb.raw.String(),
		Styled:  lb.styled.String(),
		Changed: lb.changed,
	})
	lb.raw.Reset()
	lb.styled.Reset()
	lb.changed = false
}

func (lb *lineBuilder) finish() []renderedLine {
	lb.flush()
	return lb.lines
}

// highlightFences rewrites fully-unchanged lines inside fenced code
// blocks with chroma highlighting. Changed lines keep their diff
// coloring; readability of the change wins over syntax color.
func highlightFences(lines []renderedLine) []renderedLine {
	inFence := false
	lang := ""
	for i, ln := range lines {
		trimmed := strings.TrimSpace(ln.Raw)
		if strings.HasPrefix(trimmed, "```") {
			if !inFence {
				lang = strings.TrimPrefix(trimmed, "```")
			}
			inFence = !inFence
			continue
		}
		if inFence && !ln.Changed && lang != "" {
			if hl := highlightCode(lang, ln.Raw); len(hl) > 0 {
				lines[i].Styled = hl[0]
			}
		}
	}
	return lines
}
