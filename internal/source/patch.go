package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// LoadPatch reads a document and a unified diff, applies the patch
// entry for that document, and returns the original as the before side
// and the patched text as the after side. Multi-file patches are fine;
// the entry whose path matches docPath (by suffix, so "a/docs/x.md"
// matches "docs/x.md") is selected.
func LoadPatch(docPath, patchPath string) (*Pair, error) {
	doc, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", docPath, err)
	}
	patch, err := os.ReadFile(patchPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", patchPath, err)
	}

	files, _, err := gitdiff.Parse(bytes.NewReader(patch))
	if err != nil {
		return nil, fmt.Errorf("parsing patch: %w", err)
	}

	file := matchFile(files, docPath)
	if file == nil {
		return nil, fmt.Errorf("patch %s has no entry for %s", patchPath, docPath)
	}

	var out bytes.Buffer
	if err := gitdiff.Apply(&out, bytes.NewReader(doc), file); err != nil {
		return nil, fmt.Errorf("applying patch to %s: %w", docPath, err)
	}

	return &Pair{
		Before: string(doc),
		After:  out.String(),
		Label:  fmt.Sprintf("%s + %s", docPath, filepath.Base(patchPath)),
	}, nil
}

func matchFile(files []*gitdiff.File, docPath string) *gitdiff.File {
	clean := filepath.ToSlash(filepath.Clean(docPath))
	for _, f := range files {
		for _, name := range []string{f.NewName, f.OldName} {
			if name == "" {
				continue
			}
			if name == clean || strings.HasSuffix(name, "/"+filepath.Base(clean)) ||
				strings.HasSuffix(clean, "/"+name) || filepath.Base(name) == clean {
				return f
			}
		}
	}
	if len(files) == 1 {
		return files[0]
	}
	return nil
}
