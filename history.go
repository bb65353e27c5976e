package tbsh

import (
	"fmt"
	"slices"
)

// DirHistory is an ordered record of visited working directories with a
// cursor supporting back and forward navigation. The cursor is distinct
// from the process working directory: Back and Forward only move the
// cursor, callers decide whether to re-apply the directory they return.
type DirHistory struct {
	entries []string
	cursor  int
}

// Add appends path and moves the cursor to it. Adding the path the cursor
// already points at is a no-op, so navigation cannot grow the history with
// entries it generated itself.
func (h *DirHistory) Add(path string) {
	if len(h.entries) > 0 && h.entries[h.cursor] == path {
		return
	}
	h.entries = append(h.entries, path)
	h.cursor = len(h.entries) - 1
}

// Current returns the entry under the cursor, or the empty string when the
// history has never been fed.
func (h *DirHistory) Current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[h.cursor]
}

// Back moves the cursor one entry toward the oldest directory and returns
// the entry it lands on.
func (h *DirHistory) Back() (string, error) {
	if h.cursor <= 0 {
		return "", fmt.Errorf("no previous directory: %w", ErrNoHistory)
	}
	h.cursor--
	return h.entries[h.cursor], nil
}

// Forward moves the cursor one entry toward the newest directory and
// returns the entry it lands on.
func (h *DirHistory) Forward() (string, error) {
	if h.cursor >= len(h.entries)-1 {
		return "", fmt.Errorf("no next directory: %w", ErrNoHistory)
	}
	h.cursor++
	return h.entries[h.cursor], nil
}

// Entries returns a copy of the visited directories, oldest first.
func (h *DirHistory) Entries() []string {
	return slices.Clone(h.entries)
}

// Cursor returns the index of the entry navigation currently points at.
func (h *DirHistory) Cursor() int {
	return h.cursor
}

func (h *DirHistory) Len() int {
	return len(h.entries)
}
