package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"tbsh"
	"tbsh/internal/config"
	"tbsh/internal/term"
)

func main() {
	var (
		cfgPath = flag.String("f", config.DefaultPath(), "configuration file")
		command = flag.String("c", "", "execute the given line and exit")
		trace   = flag.Bool("t", false, "trace downward search candidates")
	)
	flag.Parse()

	code, err := run(*cfgPath, *command, *trace)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run(cfgPath, command string, trace bool) (int, error) {
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		return 0, err
	}
	options := []tbsh.ShellOption{
		tbsh.WithPrompt(cfg.Prompt),
		tbsh.WithSearchLimit(cfg.SearchLimit),
		tbsh.WithAliases(cfg.Aliases),
	}
	if trace || cfg.FindTrace {
		options = append(options, tbsh.WithFindTrace(os.Stderr))
	}
	if command != "" {
		options = append(options, tbsh.WithLineSource(tbsh.Lines(strings.NewReader(command))))
	} else {
		ed, err := term.New(cfg.HistoryFile)
		if err != nil {
			return 0, err
		}
		options = append(options, tbsh.WithLineSource(ed))
	}
	sh, err := tbsh.New(options...)
	if err != nil {
		return 0, err
	}
	registerNavigation(sh)
	if err := sh.Run(); err != nil {
		return 0, err
	}
	return sh.ExitCode(), nil
}

// bk and fw are the short navigation commands of the original tbsh; they go
// through the public registration API like any user command would.
func registerNavigation(sh *tbsh.Shell) {
	sh.Register("bk", func(_ []string) error {
		dir, err := sh.History().Back()
		if err != nil {
			return fmt.Errorf("cannot go back: %w", err)
		}
		if err := os.Chdir(dir); err != nil {
			return err
		}
		fmt.Println("Navigated back to:", dir)
		return nil
	})
	sh.Register("fw", func(_ []string) error {
		dir, err := sh.History().Forward()
		if err != nil {
			return fmt.Errorf("cannot go forward: %w", err)
		}
		if err := os.Chdir(dir); err != nil {
			return err
		}
		fmt.Println("Navigated forward to:", dir)
		return nil
	})
}
