package tbsh

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	tbshName    = "tbsh"
	tbshVersion = "0.1.0"
)

// LineSource supplies raw input lines to the shell loop. ReadLine blocks
// until a full line is available and returns io.EOF when the source is
// exhausted. Each accepted line is fed back through AppendHistory so the
// source can offer it for recall; the shell does not depend on recall
// semantics beyond that.
type LineSource interface {
	ReadLine(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// Shell drives the read-rewrite-dispatch loop. Each line goes through the
// Rewriter before the Dispatcher sees it; the loop is strictly sequential
// and a line always runs to completion before the next one is read.
type Shell struct {
	dispatch *Dispatcher
	rewrite  *Rewriter
	find     *Finder
	source   LineSource

	prompt string // format with one %s verb for the working directory

	stdout io.Writer
	stderr io.Writer
}

func New(options ...ShellOption) (*Shell, error) {
	s := Shell{
		dispatch: NewDispatcher(),
		find:     &Finder{},
		prompt:   tbshName + ":%s$ ",
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	s.rewrite = NewRewriter(s.find)
	for _, o := range options {
		if err := o(&s); err != nil {
			return nil, err
		}
	}
	s.dispatch.stdout = s.stdout
	s.dispatch.stderr = s.stderr
	if s.source == nil {
		s.source = Lines(os.Stdin)
	}
	s.Register("back", s.navigate((*DirHistory).Back, "back"))
	s.Register("forward", s.navigate((*DirHistory).Forward, "forward"))
	return &s, nil
}

// navigate wraps a cursor move into a command handler: move the cursor,
// re-apply the directory it lands on without recording a new history entry,
// report where we went.
func (s *Shell) navigate(move func(*DirHistory) (string, error), dir string) CommandFunc {
	return func(_ []string) error {
		target, err := move(s.dispatch.History())
		if err != nil {
			return fmt.Errorf("cannot go %s: %w", dir, err)
		}
		if err := s.dispatch.Chdir(target, false); err != nil {
			return fmt.Errorf("cannot go %s: %w", dir, err)
		}
		fmt.Fprintf(s.stdout, "Navigated %s to: %s\n", dir, target)
		return nil
	}
}

// Run reads lines until the source is exhausted or the exit builtin fires.
func (s *Shell) Run() error {
	defer s.source.Close()
	for {
		line, err := s.source.ReadLine(s.Prompt())
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.stdout)
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.source.AppendHistory(line)
		if err := s.Execute(line); errors.Is(err, ErrExit) {
			break
		}
	}
	fmt.Fprintf(s.stdout, "Exiting %s.\n", tbshName)
	return nil
}

// Execute runs a single raw line through the rewrite and dispatch stages.
// It returns ErrExit when the line asked the shell to stop; resolution and
// execution failures are reported, not returned.
func (s *Shell) Execute(line string) error {
	rewritten, errs := s.rewrite.Rewrite(line, s.workdir())
	for _, err := range errs {
		fmt.Fprintf(s.stderr, "[find error] %s\n", err)
	}
	if rewritten != line {
		fmt.Fprintf(s.stdout, "[Transformed] %s -> %s\n", line, rewritten)
	}
	return s.dispatch.Dispatch(rewritten)
}

// Prompt returns the prompt with the working directory substituted.
func (s *Shell) Prompt() string {
	return fmt.Sprintf(s.prompt, s.workdir())
}

func (s *Shell) workdir() string {
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// Register binds a custom command; it takes priority over every builtin.
func (s *Shell) Register(name string, fn CommandFunc) {
	s.dispatch.Register(name, fn)
}

func (s *Shell) Alias(name, line string) {
	s.dispatch.Alias(name, line)
}

// History exposes the directory navigation history.
func (s *Shell) History() *DirHistory {
	return s.dispatch.History()
}

// ExitCode returns the status set by exit or the last external command.
func (s *Shell) ExitCode() int {
	return s.dispatch.ExitCode()
}
