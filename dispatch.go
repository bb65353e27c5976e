package tbsh

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/midbel/shlex"
)

// CommandFunc is the handler attached to a custom command. It is invoked
// with the full token list, name included.
type CommandFunc func(args []string) error

// Dispatcher tokenizes rewritten lines and routes each one to a custom
// command, a builtin, or an external process. Custom commands shadow
// builtins; aliases are expanded only when the name matches neither.
type Dispatcher struct {
	commands map[string]CommandFunc
	builtins map[string]Builtin
	aliases  map[string]string
	history  *DirHistory

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	code int
}

func NewDispatcher() *Dispatcher {
	d := Dispatcher{
		commands: make(map[string]CommandFunc),
		builtins: builtins,
		aliases:  make(map[string]string),
		history:  &DirHistory{},
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	if cwd, err := os.Getwd(); err == nil {
		d.history.Add(cwd)
	}
	return &d
}

// Register binds name to fn, overwriting any previous handler.
func (d *Dispatcher) Register(name string, fn CommandFunc) {
	d.commands[name] = fn
}

// Alias binds name to a replacement line spliced in before the remaining
// arguments when name is dispatched.
func (d *Dispatcher) Alias(name, line string) {
	d.aliases[name] = line
}

// History exposes the directory history owned by the dispatcher.
func (d *Dispatcher) History() *DirHistory {
	return d.history
}

// ExitCode returns the status recorded by the exit builtin or the last
// external command.
func (d *Dispatcher) ExitCode() int {
	return d.code
}

// Chdir changes the process working directory and, when record is set,
// appends the new location to the history. Navigation commands re-apply
// directories the history returned and pass record false.
func (d *Dispatcher) Chdir(dir string, record bool) error {
	if err := os.Chdir(dir); err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if record {
		d.history.Add(cwd)
	}
	return nil
}

// Dispatch tokenizes line and routes it. It returns ErrExit when the exit
// builtin asks the shell loop to stop; every other failure is reported on
// the error stream and swallowed so the loop continues with the next line.
func (d *Dispatcher) Dispatch(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	args, err := shlex.Split(strings.NewReader(line))
	if err != nil {
		fmt.Fprintf(d.stderr, "[error] %s\n", err)
		return nil
	}
	if len(args) == 0 {
		return nil
	}
	return d.route(args, true)
}

func (d *Dispatcher) route(args []string, expand bool) error {
	if fn, ok := d.commands[args[0]]; ok {
		if err := fn(args); err != nil {
			fmt.Fprintf(d.stderr, "[error] %s\n", err)
		}
		return nil
	}
	if b, ok := d.builtins[args[0]]; ok {
		return d.runBuiltin(b, args[1:])
	}
	if expand {
		if repl, ok := d.aliases[args[0]]; ok {
			more, err := shlex.Split(strings.NewReader(repl))
			if err == nil && len(more) > 0 {
				return d.route(append(more, args[1:]...), false)
			}
		}
	}
	return d.runExternal(args)
}

func (d *Dispatcher) runBuiltin(b Builtin, args []string) error {
	if b.Execute == nil {
		fmt.Fprintf(d.stderr, "[error] %s: builtin not implemented\n", b.Name())
		return nil
	}
	b.dispatch = d
	b.args = args
	b.stdin = d.stdin
	b.stdout = d.stdout
	b.stderr = d.stderr

	err := b.Execute(b)
	if errors.Is(err, ErrExit) {
		return err
	}
	if err != nil {
		fmt.Fprintf(d.stderr, "[error] %s\n", err)
	}
	return nil
}

func (d *Dispatcher) runExternal(args []string) error {
	cmd := External(args[0], args[1:], os.Environ(), "")
	cmd.SetIn(d.stdin)
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	err := cmd.Run()
	if err == nil {
		d.code = 0
		return nil
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		d.code = exit.ExitCode()
	} else {
		d.code = 1
		fmt.Fprintf(d.stderr, "[error] %s\n", err)
	}
	return nil
}
