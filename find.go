package tbsh

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSearchLimit bounds the number of filesystem entries Downfind
// visits before giving up.
const DefaultSearchLimit = 1000

// Finder resolves path markers against the filesystem. The zero value is
// usable and searches with DefaultSearchLimit and no tracing.
type Finder struct {
	Limit int       // downward visit budget; DefaultSearchLimit when <= 0
	Trace io.Writer // when set, every candidate compared by Downfind is written here
}

// Upfind walks from start toward the filesystem root and returns the
// absolute path of the first child named name that is a directory. The walk
// moves outward one level at a time so the closest ancestor wins.
func (f *Finder) Upfind(name, start string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(current, name)
		if i, err := os.Stat(candidate); err == nil && i.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%s: directory %w upwards from %s", name, ErrNotFound, start)
		}
		current = parent
	}
}

// Downfind searches the subtree rooted at start breadth first for a file
// whose path relative to start ends with suffix. The match is a literal
// trailing-character test, not a glob. Every entry visited, directory or
// file, consumes one unit of the budget; when it runs out the search stops
// with ErrSearchLimit even if unexplored directories remain. Bounding the
// walk keeps pathological trees cheap at the price of possibly missing a
// match a longer search would reach.
func (f *Finder) Downfind(suffix, start string) (string, error) {
	root, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	var (
		queue   = []string{root}
		visited int
		budget  = f.Limit
	)
	if budget <= 0 {
		budget = DefaultSearchLimit
	}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			// unreadable directories are skipped, not fatal
			continue
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			if e.IsDir() {
				queue = append(queue, path)
			} else if rel, err := filepath.Rel(root, path); err == nil {
				if f.Trace != nil {
					fmt.Fprintf(f.Trace, "%s | %s\n", rel, suffix)
				}
				if strings.HasSuffix(rel, suffix) {
					return path, nil
				}
			}
			visited++
			if visited >= budget {
				return "", fmt.Errorf("%s: %w", suffix, ErrSearchLimit)
			}
		}
	}
	return "", fmt.Errorf("%s: %w", suffix, ErrNotFound)
}
