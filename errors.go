package tbsh

import "errors"

var (
	// ErrNotFound is returned by Upfind and Downfind when the search
	// exhausts the tree without a match.
	ErrNotFound = errors.New("not found")
	// ErrSearchLimit is returned by Downfind when the visit budget runs
	// out while unexplored directories remain.
	ErrSearchLimit = errors.New("search limit reached")
	// ErrNoHistory is returned by Back and Forward at the history
	// boundaries.
	ErrNoHistory = errors.New("no history")
	// ErrExit asks the shell loop to stop.
	ErrExit = errors.New("exit")
)
