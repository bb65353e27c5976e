package tbsh

import (
	"io"
	"os"
	"os/exec"

	"github.com/midbel/rw"
)

// Executable is a command prepared for synchronous execution.
type Executable interface {
	Run() error

	SetIn(io.Reader)
	SetOut(io.Writer)
	SetErr(io.Writer)
}

type external struct {
	*exec.Cmd
}

// External wraps the given command line for execution as a child process.
// An empty workdir means the process working directory.
func External(name string, args, env []string, workdir string) Executable {
	c := exec.Command(name, args...)
	c.Env = env
	c.Dir = workdir
	return &external{
		Cmd: c,
	}
}

func (e *external) SetIn(r io.Reader) {
	if f, ok := unwrapFileFromReader(r); ok {
		e.Cmd.Stdin = f
		return
	}
	e.Cmd.Stdin = r
}

func (e *external) SetOut(w io.Writer) {
	if f, ok := unwrapFileFromWriter(w); ok {
		e.Cmd.Stdout = f
		return
	}
	e.Cmd.Stdout = w
}

func (e *external) SetErr(w io.Writer) {
	if f, ok := unwrapFileFromWriter(w); ok {
		e.Cmd.Stderr = f
		return
	}
	e.Cmd.Stderr = w
}

// unwrapFileFromReader recovers the file behind a wrapped reader so the
// child inherits the fd instead of going through a copy goroutine.
func unwrapFileFromReader(r io.Reader) (*os.File, bool) {
	u, ok := r.(rw.UnwrapReader)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}

func unwrapFileFromWriter(w io.Writer) (*os.File, bool) {
	u, ok := w.(rw.UnwrapWriter)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}
