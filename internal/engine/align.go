package engine

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/sprite-ai/critique/internal/doctree"
)

// Signature is the comparable representation of a block used for
// alignment. Two blocks are identical when their signatures compare
// equal; kind and structural detail participate so a heading never
// matches a paragraph with the same words.
type Signature struct {
	Kind  doctree.Kind
	Level int
	Text  string
}

var spaceRun = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// SignatureOf derives a block's alignment signature.
func SignatureOf(n *doctree.Node) Signature {
	return Signature{
		Kind:  n.Kind,
		Level: n.Level,
		Text:  normalize(n.Raw),
	}
}

// Align pairs the before and after block sequences. Exact signature
// equality drives a longest-common-subsequence match; blocks outside
// the LCS become Delete/Insert entries, and a second pass over each
// gap pairs same-kind leftovers whose similarity clears
// cfg.MatchThreshold. Every block of both inputs appears in exactly
// one entry.
func Align(before, after []*doctree.Node, cfg Config) []Entry {
	n, m := len(before), len(after)
	sigA := make([]Signature, n)
	sigB := make([]Signature, m)
	for i, b := range before {
		sigA[i] = SignatureOf(b)
	}
	for j, b := range after {
		sigB[j] = SignatureOf(b)
	}

	// Classic LCS table.
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if sigA[i-1] == sigB[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// Backtrack, preferring diagonal moves on ties so the alignment
	// pairs blocks in their original relative order.
	var rev []Entry
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && sigA[i-1] == sigB[j-1]:
			rev = append(rev, Entry{Op: OpMatch, Before: before[i-1], After: after[j-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			rev = append(rev, Entry{Op: OpInsert, After: after[j-1]})
			j--
		default:
			rev = append(rev, Entry{Op: OpDelete, Before: before[i-1]})
			i--
		}
	}

	entries := make([]Entry, 0, len(rev))
	for k := len(rev) - 1; k >= 0; k-- {
		entries = append(entries, rev[k])
	}

	return pairGaps(entries, cfg)
}

// pairGaps walks the runs of Delete/Insert entries between matched
// anchors and promotes similar same-kind pairs to matches. Without
// this pass every edited paragraph would render as a full delete plus
// a full insert, never as an in-place change.
func pairGaps(entries []Entry, cfg Config) []Entry {
	var out []Entry
	var dels, inss []Entry

	flush := func() {
		di, ii := 0, 0
		for di < len(dels) && ii < len(inss) {
			d, ins := dels[di], inss[ii]
			if d.Before.Kind == ins.After.Kind &&
				similarity(normalize(d.Before.Raw), normalize(ins.After.Raw)) >= cfg.MatchThreshold {
				out = append(out, Entry{Op: OpMatch, Before: d.Before, After: ins.After})
				di++
				ii++
				continue
			}
			// Keep front-to-back order: emit the deletion first.
			out = append(out, d)
			di++
		}
		out = append(out, dels[di:]...)
		out = append(out, inss[ii:]...)
		dels, inss = nil, nil
	}

	for _, e := range entries {
		switch e.Op {
		case OpDelete:
			dels = append(dels, e)
		case OpInsert:
			inss = append(inss, e)
		case OpMatch:
			flush()
			out = append(out, e)
		}
	}
	flush()
	return out
}

// similarity is a normalized levenshtein score in [0,1]; 1 means
// identical.
func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	return 1 - float64(dist)/float64(maxLen)
}
