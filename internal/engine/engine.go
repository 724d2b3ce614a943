// Package engine aligns the block sequences of two document trees and
// decides, per aligned pair, how the change should be rendered. It is
// pure computation: no I/O, no shared state, safe to call from any
// number of goroutines.
package engine

import (
	"github.com/sprite-ai/critique/internal/doctree"
	"github.com/sprite-ai/critique/internal/textdiff"
)

// Config carries the classification policy. Zero value is not useful;
// start from DefaultConfig.
type Config struct {
	// Granularity of the text diff run over granular edits.
	Granularity textdiff.Granularity

	// ParagraphThreshold is the divergence ratio above which a matched
	// block renders as one atomic substitution. Word-level markup gets
	// unreadable once roughly a third of a paragraph changes.
	ParagraphThreshold float64

	// SentenceThreshold is the finer ratio applied per sentence when a
	// matched block is re-evaluated at sentence granularity.
	SentenceThreshold float64

	// MatchThreshold is the minimum normalized similarity for pairing
	// a deleted block with an inserted one during alignment.
	MatchThreshold float64
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		Granularity:        textdiff.Word,
		ParagraphThreshold: 0.40,
		SentenceThreshold:  0.15,
		MatchThreshold:     0.30,
	}
}

// Op tags an alignment entry.
type Op int

const (
	OpMatch Op = iota
	OpInsert
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpMatch:
		return "match"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Entry is one element of the aligned block sequence. Matched entries
// carry both blocks and a Decision; Insert/Delete carry one side.
type Entry struct {
	Op       Op
	Before   *doctree.Node
	After    *doctree.Node
	Decision Decision
}

// Diff aligns the two documents' blocks and classifies every matched
// pair. The only error condition is a malformed tree, which is a bug
// in the calling parser rather than a diffable input.
func Diff(before, after *doctree.Node, cfg Config) ([]Entry, error) {
	beforeBlocks, err := doctree.Blocks(before)
	if err != nil {
		return nil, err
	}
	afterBlocks, err := doctree.Blocks(after)
	if err != nil {
		return nil, err
	}

	entries := Align(beforeBlocks, afterBlocks, cfg)
	for i := range entries {
		if entries[i].Op == OpMatch {
			entries[i].Decision = classify(entries[i].Before, entries[i].After, cfg)
		}
	}
	return entries, nil
}
