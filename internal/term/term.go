// Package term provides the interactive line source of the shell, backed
// by readline: line editing, persistent input history and filename
// completion.
package term

import (
	"errors"

	"github.com/chzyer/readline"
)

type Editor struct {
	rl *readline.Instance
}

// New opens the terminal for interactive editing. Input history is
// persisted to historyFile; pass an empty string to keep it in memory only.
func New(historyFile string) (*Editor, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:            historyFile,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		AutoComplete:           fileCompleter{},
	})
	if err != nil {
		return nil, err
	}
	return &Editor{
		rl: rl,
	}, nil
}

// ReadLine blocks until a full line is entered. An interrupt drops the
// pending line and prompts again; closing the terminal surfaces io.EOF.
func (e *Editor) ReadLine(prompt string) (string, error) {
	e.rl.SetPrompt(prompt)
	for {
		line, err := e.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return "", err
		}
		return line, nil
	}
}

// AppendHistory records line for recall with the up arrow.
func (e *Editor) AppendHistory(line string) {
	e.rl.SaveHistory(line)
}

func (e *Editor) Close() error {
	return e.rl.Close()
}
