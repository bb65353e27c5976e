package tbsh

import (
	"io"
)

type ShellOption func(*Shell) error

func WithStdin(r io.Reader) ShellOption {
	return func(s *Shell) error {
		s.dispatch.stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) ShellOption {
	return func(s *Shell) error {
		s.stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) ShellOption {
	return func(s *Shell) error {
		s.stderr = w
		return nil
	}
}

// WithPrompt sets the prompt format; it should carry one %s verb for the
// working directory.
func WithPrompt(format string) ShellOption {
	return func(s *Shell) error {
		s.prompt = format
		return nil
	}
}

func WithLineSource(src LineSource) ShellOption {
	return func(s *Shell) error {
		s.source = src
		return nil
	}
}

// WithSearchLimit bounds the number of entries downward marker resolution
// may visit.
func WithSearchLimit(n int) ShellOption {
	return func(s *Shell) error {
		s.find.Limit = n
		return nil
	}
}

// WithFindTrace writes every candidate compared during downward search to w.
func WithFindTrace(w io.Writer) ShellOption {
	return func(s *Shell) error {
		s.find.Trace = w
		return nil
	}
}

func WithAlias(name, line string) ShellOption {
	return func(s *Shell) error {
		s.dispatch.Alias(name, line)
		return nil
	}
}

func WithAliases(vs map[string]string) ShellOption {
	return func(s *Shell) error {
		for k, v := range vs {
			s.dispatch.Alias(k, v)
		}
		return nil
	}
}

// WithCwd moves the shell to dir and records it in the history.
func WithCwd(dir string) ShellOption {
	return func(s *Shell) error {
		return s.dispatch.Chdir(dir, true)
	}
}
