package executor

import (
	"context"
	"os/exec"
	"strings"
)

// CommandRunner abstracts sub-process execution for testability.
// Run returns what the command wrote to stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (output string, err error)
}

// ExecCommandRunner executes commands directly, without a shell.
type ExecCommandRunner struct {
	WorkDir string // Working directory for commands (empty = current dir)
}

// NewExecCommandRunner creates a CommandRunner that executes real commands.
func NewExecCommandRunner(workDir string) *ExecCommandRunner {
	return &ExecCommandRunner{WorkDir: workDir}
}

// Run executes name with args. A non-zero exit is returned as *CommandError
// carrying the command's stderr.
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if r.WorkDir != "" {
		cmd.Dir = r.WorkDir
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), &CommandError{
			Command: name,
			Args:    args,
			Output:  stderr.String(),
			Err:     err,
		}
	}
	return stdout.String(), nil
}

// LookPathFunc resolves a binary name on PATH; exec.LookPath in production.
type LookPathFunc func(file string) (string, error)

// CheckTools verifies every named binary can be resolved before any dataset is processed.
// Empty and duplicate names are ignored. Returns *MissingToolError listing every
// binary that could not be found.
func CheckTools(lookPath LookPathFunc, tools ...string) error {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	seen := make(map[string]bool)
	var missing []string
	for _, tool := range tools {
		tool = strings.TrimSpace(tool)
		if tool == "" || seen[tool] {
			continue
		}
		seen[tool] = true
		if _, err := lookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}

	if len(missing) > 0 {
		return &MissingToolError{Tools: missing}
	}
	return nil
}
