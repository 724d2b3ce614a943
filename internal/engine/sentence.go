package engine

// SplitSentences partitions text at sentence-ending punctuation. It is
// an approximation, not a linguistic boundary detector: a terminator
// is '.', '!' or '?' followed by whitespace, and abbreviations like
// "e.g." will split. The one hard guarantee, which the renderer's
// reconstruction depends on, is that the parts joined back together
// equal the input exactly.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	var parts []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		// Consume any run of terminators, then trailing whitespace.
		j := i
		for j+1 < len(runes) && (runes[j+1] == '.' || runes[j+1] == '!' || runes[j+1] == '?') {
			j++
		}
		if j+1 < len(runes) && !isSpaceRune(runes[j+1]) {
			i = j
			continue
		}
		for j+1 < len(runes) && isSpaceRune(runes[j+1]) {
			j++
		}
		parts = append(parts, string(runes[start:j+1]))
		start = j + 1
		i = j
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
