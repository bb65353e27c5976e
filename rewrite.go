package tbsh

import (
	"regexp"
	"strings"
)

// markerPattern matches a direction sigil followed by a path pattern:
// < resolves against ancestor directories, > against the subtree below
// the working directory.
var markerPattern = regexp.MustCompile(`(<|>)([a-zA-Z0-9_.\-/]+)`)

// Rewriter replaces path markers embedded in a raw command line with the
// paths they resolve to.
type Rewriter struct {
	find *Finder
}

func NewRewriter(find *Finder) *Rewriter {
	if find == nil {
		find = &Finder{}
	}
	return &Rewriter{
		find: find,
	}
}

// Rewrite scans line left to right for markers and substitutes each one
// with the path its pattern resolves to, searching from cwd. A marker that
// fails to resolve is kept verbatim; the resolution errors are returned
// alongside the rewritten line and never prevent the rest of the line from
// being processed.
func (r *Rewriter) Rewrite(line, cwd string) (string, []error) {
	var (
		result strings.Builder
		errs   []error
		last   int
	)
	for _, m := range markerPattern.FindAllStringSubmatchIndex(line, -1) {
		result.WriteString(line[last:m[0]])
		var (
			sigil   = line[m[2]:m[3]]
			pattern = line[m[4]:m[5]]

			found string
			err   error
		)
		if sigil == "<" {
			found, err = r.find.Upfind(pattern, cwd)
		} else {
			found, err = r.find.Downfind(pattern, cwd)
		}
		if err != nil {
			errs = append(errs, err)
			result.WriteString(line[m[0]:m[1]])
		} else {
			result.WriteString(found)
		}
		last = m[1]
	}
	result.WriteString(line[last:])
	return result.String(), errs
}
