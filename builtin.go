package tbsh

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

var builtins = map[string]Builtin{
	"cd": {
		Usage:   "cd [dir]",
		Short:   "change the shell working directory",
		Help:    "Without argument cd moves to the home directory, or to / when no home is set. Directories reached with cd are recorded in the navigation history.",
		Execute: runChdir,
	},
	"exit": {
		Usage:   "exit [code]",
		Short:   "exit the shell",
		Execute: runExit,
	},
	"pwd": {
		Usage:   "pwd",
		Short:   "print the name of the current shell working directory",
		Execute: runPwd,
	},
	"dirs": {
		Usage:   "dirs [-p]",
		Short:   "print the directory navigation history",
		Help:    "The entry the back/forward cursor points at is marked with a star.",
		Execute: runDirs,
	},
	"help": {
		Usage:   "help <builtin>",
		Short:   "display information about a builtin command",
		Execute: runHelp,
	},
	"builtins": {
		Usage:   "builtins",
		Short:   "display a list of supported builtins",
		Execute: runBuiltins,
	},
}

type Builtin struct {
	Usage   string
	Short   string
	Help    string
	Execute func(Builtin) error

	args     []string
	dispatch *Dispatcher

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (b *Builtin) Name() string {
	i := strings.Index(b.Usage, " ")
	if i <= 0 {
		return b.Usage
	}
	return b.Usage[:i]
}

func runChdir(b Builtin) error {
	var set flag.FlagSet
	if err := set.Parse(b.args); err != nil {
		return err
	}
	dir := set.Arg(0)
	if dir == "" {
		dir = os.Getenv("HOME")
		if dir == "" {
			dir = "/"
		}
	}
	if err := b.dispatch.Chdir(dir, true); err != nil {
		return err
	}
	fmt.Fprintf(b.stdout, "Changed directory to: %s\n", b.dispatch.History().Current())
	return nil
}

func runExit(b Builtin) error {
	var set flag.FlagSet
	if err := set.Parse(b.args); err != nil {
		return err
	}
	if c, err := strconv.Atoi(set.Arg(0)); err == nil {
		b.dispatch.code = c
	}
	return ErrExit
}

func runPwd(b Builtin) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	fmt.Fprintln(b.stdout, cwd)
	return nil
}

func runDirs(b Builtin) error {
	var (
		set  flag.FlagSet
		line = set.Bool("p", false, "print one entry per line")
	)
	set.SetOutput(b.stderr)
	if err := set.Parse(b.args); err != nil {
		return nil
	}
	var (
		h   = b.dispatch.History()
		eol = " "
	)
	if *line {
		eol = "\n"
	}
	for i, d := range h.Entries() {
		if i > 0 {
			fmt.Fprint(b.stdout, eol)
		}
		if i == h.Cursor() {
			fmt.Fprint(b.stdout, "* ")
		}
		fmt.Fprint(b.stdout, d)
	}
	fmt.Fprintln(b.stdout)
	return nil
}

func runHelp(b Builtin) error {
	var set flag.FlagSet
	if err := set.Parse(b.args); err != nil {
		return err
	}
	other, ok := b.dispatch.builtins[set.Arg(0)]
	if !ok {
		fmt.Fprintf(b.stderr, "no help match %s! try builtins to get the list of available builtins", set.Arg(0))
		fmt.Fprintln(b.stderr)
		return nil
	}
	fmt.Fprintln(b.stdout, other.Usage)
	fmt.Fprintln(b.stdout, other.Short)
	if len(other.Help) > 0 {
		fmt.Fprintln(b.stdout, other.Help)
	}
	return nil
}

func runBuiltins(b Builtin) error {
	var names []string
	for n := range b.dispatch.builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(b.stdout, "%-12s: %s", n, b.dispatch.builtins[n].Short)
		fmt.Fprintln(b.stdout)
	}
	return nil
}
