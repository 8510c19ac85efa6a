package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

// fakeRunner records command lines. The archiver fake writes the archive so
// existence checks behave like the real tool.
type fakeRunner struct {
	commands []string
	outputs  map[string]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.commands = append(f.commands, line)
	if len(args) >= 2 && args[0] == "-cf" {
		if err := os.WriteFile(args[1], nil, 0644); err != nil {
			return "", err
		}
	}
	if out, ok := f.outputs[line]; ok {
		return out, nil
	}
	if strings.HasPrefix(name, "md5") && len(args) == 1 {
		return "0123456789abcdef0123456789abcdef  " + args[0] + "\n", nil
	}
	return "", nil
}

func newTestEnv(t *testing.T) (*environment, *fakeRunner) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	t.Setenv(settingsEnvName, "")

	runner := &fakeRunner{outputs: map[string]string{}}
	env := &environment{
		runner:   runner,
		lookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		stdin:    strings.NewReader(""),
		workDir:  t.TempDir(),
		now:      func() time.Time { return time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC) },
	}
	return env, runner
}

func execute(env *environment, args ...string) (stdout, stderr string, err error) {
	cmd := newRootCommand(env)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		if err := os.WriteFile(paths[i], []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
