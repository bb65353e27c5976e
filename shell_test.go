package tbsh_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tbsh"
)

type stdio struct {
	Out bytes.Buffer
	Err bytes.Buffer
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Setenv("PWD", cwd)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func createShell(t *testing.T, sio *stdio, options ...tbsh.ShellOption) *tbsh.Shell {
	t.Helper()
	options = append(options, tbsh.WithStdout(&sio.Out), tbsh.WithStderr(&sio.Err))
	sh, err := tbsh.New(options...)
	require.NoError(t, err)
	return sh
}

func TestShellChdir(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "sub")
	chdir(t, tmp)

	var sio stdio
	sh := createShell(t, &sio)

	start, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, sh.Execute("cd sub"))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(start, "sub"), cwd)
	require.Equal(t, cwd, sh.History().Current())
	require.Equal(t, 2, sh.History().Len())
	require.Contains(t, sio.Out.String(), "Changed directory to: "+cwd)
}

func TestShellChdirHome(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "home")
	chdir(t, tmp)
	t.Setenv("HOME", filepath.Join(tmp, "home"))

	var sio stdio
	sh := createShell(t, &sio)

	require.NoError(t, sh.Execute("cd"))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, cwd, sh.History().Current())
	require.Equal(t, "home", filepath.Base(cwd))
}

func TestShellChdirFailure(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	var sio stdio
	sh := createShell(t, &sio)

	before, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, sh.Execute("cd no-such-subdir"))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, before, cwd, "a failed cd must leave the working directory alone")
	require.Equal(t, 1, sh.History().Len(), "a failed cd must leave the history alone")
	require.Contains(t, sio.Err.String(), "[error]")
}

func TestShellNavigation(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "sub")
	chdir(t, tmp)

	var sio stdio
	sh := createShell(t, &sio)

	start, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, sh.Execute("cd sub"))
	require.NoError(t, sh.Execute("back"))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, start, cwd)
	require.Equal(t, 2, sh.History().Len(), "navigation must not record new entries")
	require.Equal(t, 0, sh.History().Cursor())
	require.Contains(t, sio.Out.String(), "Navigated back to: "+start)

	require.NoError(t, sh.Execute("back"))
	require.Contains(t, sio.Err.String(), "cannot go back")

	require.NoError(t, sh.Execute("forward"))
	cwd, err = os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(start, "sub"), cwd)

	require.NoError(t, sh.Execute("forward"))
	require.Contains(t, sio.Err.String(), "cannot go forward")
}

func TestShellCustomPriority(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "sub")
	chdir(t, tmp)

	var sio stdio
	sh := createShell(t, &sio)

	var called []string
	sh.Register("cd", func(args []string) error {
		called = args
		return nil
	})

	before, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, sh.Execute("cd sub"))
	require.Equal(t, []string{"cd", "sub"}, called, "a custom cd must shadow the builtin")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, before, cwd)
	require.Equal(t, 1, sh.History().Len())
}

func TestShellExit(t *testing.T) {
	var sio stdio
	sh := createShell(t, &sio)
	sh.Register("quit", func(_ []string) error { return nil })

	require.ErrorIs(t, sh.Execute("exit"), tbsh.ErrExit)
	require.Equal(t, 0, sh.ExitCode())

	require.ErrorIs(t, sh.Execute("exit 3"), tbsh.ErrExit)
	require.Equal(t, 3, sh.ExitCode())
}

func TestShellCustomFailureIsReported(t *testing.T) {
	var sio stdio
	sh := createShell(t, &sio)
	sh.Register("boom", func(_ []string) error {
		return fmt.Errorf("kaboom")
	})

	require.NoError(t, sh.Execute("boom"))
	require.Contains(t, sio.Err.String(), "[error] kaboom")
}

func TestShellSpawnFailure(t *testing.T) {
	var sio stdio
	sh := createShell(t, &sio)

	require.NoError(t, sh.Execute("tbsh-no-such-binary-4242"))
	require.Contains(t, sio.Err.String(), "[error]")
}

func TestShellBlankLine(t *testing.T) {
	var sio stdio
	sh := createShell(t, &sio)

	require.NoError(t, sh.Execute("   "))
	require.Empty(t, sio.Out.String())
	require.Empty(t, sio.Err.String())
}

func TestShellTransform(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "src")
	chdir(t, tmp)

	var sio stdio
	sh := createShell(t, &sio)

	var got []string
	sh.Register("show", func(args []string) error {
		got = args
		return nil
	})

	require.NoError(t, sh.Execute("show <src"))
	cwd, err := os.Getwd()
	require.NoError(t, err)

	resolved := filepath.Join(cwd, "src")
	require.Equal(t, []string{"show", resolved}, got, "handlers must see the rewritten tokens")
	require.Contains(t, sio.Out.String(), "[Transformed] show <src -> show "+resolved)
}

func TestShellUnresolvedMarker(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	var sio stdio
	sh := createShell(t, &sio)

	var got []string
	sh.Register("show", func(args []string) error {
		got = args
		return nil
	})

	require.NoError(t, sh.Execute("show <tbsh-absent-directory-4242"))
	require.Equal(t, []string{"show", "<tbsh-absent-directory-4242"}, got)
	require.Contains(t, sio.Err.String(), "[find error]")
	require.NotContains(t, sio.Out.String(), "[Transformed]")
}

func TestShellAlias(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	var sio stdio
	sh := createShell(t, &sio, tbsh.WithAlias("d", "dirs -p"))

	require.NoError(t, sh.Execute("d"))
	require.Contains(t, sio.Out.String(), "* ")

	// a custom command with the same name wins over the alias
	var called bool
	sh.Register("d", func(_ []string) error {
		called = true
		return nil
	})
	require.NoError(t, sh.Execute("d"))
	require.True(t, called)
}

func TestShellRun(t *testing.T) {
	tmp := t.TempDir()
	mkdirs(t, tmp, "sub")
	chdir(t, tmp)

	var (
		sio    stdio
		script = "cd sub\nbk\n"
	)
	sh := createShell(t, &sio, tbsh.WithLineSource(tbsh.Lines(strings.NewReader(script))))

	start, err := os.Getwd()
	require.NoError(t, err)

	// a user-registered navigation command in the style of the original
	// tbsh: move the cursor, re-apply the directory, record nothing
	sh.Register("bk", func(_ []string) error {
		dir, err := sh.History().Back()
		if err != nil {
			return err
		}
		return os.Chdir(dir)
	})

	require.NoError(t, sh.Run())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, start, cwd, "bk must restore the directory that was current before cd")
	require.Equal(t, []string{start, filepath.Join(start, "sub")}, sh.History().Entries())
	require.Equal(t, 0, sh.History().Cursor())
	require.Contains(t, sio.Out.String(), "Exiting tbsh.")
}

func TestShellRunExit(t *testing.T) {
	var sio stdio
	sh := createShell(t, &sio, tbsh.WithLineSource(tbsh.Lines(strings.NewReader("exit 7\npwd\n"))))

	require.NoError(t, sh.Run())
	require.Equal(t, 7, sh.ExitCode())
	require.NotContains(t, sio.Out.String(), "/", "no line may run after exit")
}
