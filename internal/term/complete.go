package term

import (
	"os"
	"path/filepath"
	"strings"
)

// fileCompleter completes the word under the cursor against directory
// entries, the only completion the shell offers.
type fileCompleter struct{}

func (fileCompleter) Do(line []rune, pos int) ([][]rune, int) {
	var (
		head = string(line[:pos])
		sep  = strings.LastIndexAny(head, " \t")
		word = head[sep+1:]
	)
	dir, stem := filepath.Split(word)
	search := dir
	if search == "" {
		search = "."
	}
	entries, err := os.ReadDir(search)
	if err != nil {
		return nil, len(word)
	}
	var candidates [][]rune
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, stem) {
			continue
		}
		if e.IsDir() {
			name += string(os.PathSeparator)
		} else {
			name += " "
		}
		candidates = append(candidates, []rune(name[len(stem):]))
	}
	return candidates, len(stem)
}
