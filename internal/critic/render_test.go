package critic

import (
	"strings"
	"testing"

	"github.com/sprite-ai/critique/internal/doctree"
	"github.com/sprite-ai/critique/internal/engine"
)

func renderDocs(t *testing.T, before, after string) string {
	t.Helper()
	entries, err := engine.Diff(doctree.Parse(before), doctree.Parse(after), engine.DefaultConfig())
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	return Render(entries)
}

func TestPureInsertion(t *testing.T) {
	out := renderDocs(t, "# Hello\n- Two\n- Three", "# Hello\n- Two\n- Three\n- Four")

	if !strings.Contains(out, "{++\n- Four++}") {
		t.Errorf("missing insertion of new item, output:\n%s", out)
	}
	if strings.Contains(out, DelOpen) || strings.Contains(out, SubOpen) {
		t.Errorf("pure insertion produced deletion or substitution markers:\n%s", out)
	}
}

func TestPureDeletion(t *testing.T) {
	out := renderDocs(t, "# Hello\n- Two\n- Three\n- Four", "# Hello\n- Two\n- Three")

	if !strings.Contains(out, "{--\n- Four--}") {
		t.Errorf("missing deletion of removed item, output:\n%s", out)
	}
	if strings.Contains(out, InsOpen) || strings.Contains(out, SubOpen) {
		t.Errorf("pure deletion produced insertion or substitution markers:\n%s", out)
	}
}

func TestSmallWordEdit(t *testing.T) {
	out := renderDocs(t, "The cat sat on the mat.", "The cat sat on the rug.")

	want := "The cat sat on the {--mat--}{++rug++}."
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestFullRewrite(t *testing.T) {
	out := renderDocs(t,
		"The report covers the budget for the next fiscal year in detail.",
		"The report ignores the schedule for the previous fiscal cycle entirely at length.",
	)

	if strings.Count(out, SubOpen) != 1 {
		t.Errorf("expected exactly one substitution marker, output:\n%s", out)
	}
	if strings.Contains(out, InsOpen) || strings.Contains(out, DelOpen) {
		t.Errorf("rewrite produced word-level markers:\n%s", out)
	}
}

func TestIdenticalDocuments(t *testing.T) {
	src := "# Title\n\npara one\n\n- a\n- b\n\n```go\ncode()\n```"
	out := renderDocs(t, src, src)

	doc := doctree.Parse(src)
	if want := doctree.Text(doc); out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
	for _, marker := range []string{InsOpen, DelOpen, SubOpen} {
		if strings.Contains(out, marker) {
			t.Errorf("identical documents produced %s markers:\n%s", marker, out)
		}
	}
}

func TestEmptyBefore(t *testing.T) {
	out := renderDocs(t, "", "# New\n\ncontent")
	if !strings.HasPrefix(out, InsOpen) || !strings.HasSuffix(out, InsClose) {
		t.Errorf("all-new document should be one insertion:\n%s", out)
	}
	if strings.Contains(out, DelOpen) {
		t.Errorf("empty before produced deletions:\n%s", out)
	}
}

func TestEmptyAfter(t *testing.T) {
	out := renderDocs(t, "# Old\n\ncontent", "")
	if !strings.HasPrefix(out, DelOpen) || !strings.HasSuffix(out, DelClose) {
		t.Errorf("fully-deleted document should be one deletion:\n%s", out)
	}
}

func TestDeletedTextContainingCloseDelimiter(t *testing.T) {
	out := renderDocs(t, "keep\n\nliteral --} inside removed paragraph", "keep")

	want := "keep{~~\n\nliteral --} inside removed paragraph~>~~}"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestInsertedTextContainingCloseDelimiter(t *testing.T) {
	out := renderDocs(t, "keep", "keep\n\nadded ++} literal")

	want := "keep{~~~>\n\nadded ++} literal~~}"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	before := "# Doc\n\nfirst paragraph here\n\n- one\n- two"
	after := "# Doc\n\nfirst paragraph changed here\n\n- one\n- three"
	a := renderDocs(t, before, after)
	b := renderDocs(t, before, after)
	if a != b {
		t.Errorf("render not deterministic:\n%s\nvs\n%s", a, b)
	}
}

func TestMalformedTreePropagates(t *testing.T) {
	bad := &doctree.Node{
		Kind:     doctree.KindDocument,
		Children: []*doctree.Node{{Kind: doctree.KindEmphasis}},
	}
	if _, err := engine.Diff(bad, doctree.Parse("ok"), engine.DefaultConfig()); err == nil {
		t.Error("expected error for malformed before-tree")
	}
	if _, err := engine.Diff(doctree.Parse("ok"), bad, engine.DefaultConfig()); err == nil {
		t.Error("expected error for malformed after-tree")
	}
}
