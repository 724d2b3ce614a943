package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/charmbracelet/lipgloss"
)

// highlightCode applies syntax highlighting to a fenced code block's
// body. Returns one styled string per input line; falls back to the
// unstyled text when no lexer matches the language tag.
func highlightCode(lang, code string) []string {
	lines := strings.Split(code, "\n")
	lexer := lexerForLang(lang)
	if lexer == nil {
		return lines
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return lines
	}

	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}

	var out []string
	var cur strings.Builder
	for _, token := range iterator.Tokens() {
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
			if part == "" {
				continue
			}
			if c := tokenColor(style, token.Type); c != "" {
				cur.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(part))
			} else {
				cur.WriteString(part)
			}
		}
	}
	out = append(out, cur.String())

	for len(out) < len(lines) {
		out = append(out, "")
	}
	return out
}

func lexerForLang(lang string) chroma.Lexer {
	if lang == "" {
		return nil
	}
	lexer := lexers.Get(lang)
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return lexer
}

func tokenColor(style *chroma.Style, tt chroma.TokenType) string {
	entry := style.Get(tt)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}
