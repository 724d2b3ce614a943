package source

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LoadGit compares a tracked file's working-tree content against the
// committed version at rev (HEAD when rev is empty).
func LoadGit(path, rev string) (*Pair, error) {
	if rev == "" {
		rev = "HEAD"
	}

	after, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	root, err := gitRepoRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("not in a git repository (or git not installed): %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command("git", "show", rev+":"+filepath.ToSlash(rel))
	cmd.Dir = root
	before, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git show %s:%s: %w", rev, rel, err)
	}

	return &Pair{
		Before: string(before),
		After:  string(after),
		Label:  fmt.Sprintf("%s@%s → working tree", path, rev),
	}, nil
}

func gitRepoRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
