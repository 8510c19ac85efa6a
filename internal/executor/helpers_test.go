package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harrison/dataset/internal/models"
)

// FakeCommandRunner implements CommandRunner for testing
type FakeCommandRunner struct {
	outputs  map[string]string
	errors   map[string]error
	commands []string
}

// NewFakeCommandRunner creates a new FakeCommandRunner
func NewFakeCommandRunner() *FakeCommandRunner {
	return &FakeCommandRunner{
		outputs: make(map[string]string),
		errors:  make(map[string]error),
	}
}

// SetOutput sets the output for a given command line
func (f *FakeCommandRunner) SetOutput(cmd, output string) {
	f.outputs[cmd] = output
}

// SetError sets the error for a given command line
func (f *FakeCommandRunner) SetError(cmd string, err error) {
	f.errors[cmd] = err
}

// Run records the command line and returns the configured output/error
func (f *FakeCommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.commands = append(f.commands, line)

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return f.outputs[line], f.errors[line]
}

// Commands returns all executed command lines
func (f *FakeCommandRunner) Commands() []string {
	return f.commands
}

// fakeArchiver writes an empty archive file so existence checks see it.
// With partial set it writes the file and still fails, like a tar that dies midway.
type fakeArchiver struct {
	calls   [][]string
	err     error
	partial bool
}

func (a *fakeArchiver) Archive(_ context.Context, archive string, paths []string) error {
	a.calls = append(a.calls, append([]string{archive}, paths...))
	if a.err != nil && !a.partial {
		return a.err
	}
	if err := os.WriteFile(archive, nil, 0644); err != nil {
		return err
	}
	return a.err
}

// fakeChecksummer returns "<sum>  <path>" unless the path is listed in fail.
type fakeChecksummer struct {
	fail map[string]bool
}

func (c *fakeChecksummer) Checksum(_ context.Context, path string) (string, error) {
	if c.fail[path] {
		return "", fmt.Errorf("checksumming %s: boom", path)
	}
	return "d41d8cd98f00b204e9800998ecf8427e  " + path, nil
}

// fakePresence reports the listed paths as missing.
type fakePresence map[string]bool

func (p fakePresence) Missing(path string) bool {
	return p[path]
}

// recordingAction remembers which records it was applied to.
type recordingAction struct {
	applied []string
	errFor  map[string]error
}

func (a *recordingAction) Name() string { return "record" }

func (a *recordingAction) Apply(_ context.Context, rec *models.Record) error {
	a.applied = append(a.applied, rec.Name())
	return a.errFor[rec.Name()]
}

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

// touch creates empty regular files under dir and returns their paths.
func touch(t *testing.T, dir string, names ...string) []string {
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

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "datasets.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mustRecord(t *testing.T, name string, pairs ...models.Pair) *models.Record {
	t.Helper()
	rec, err := models.NewRecord(name, pairs...)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}
