package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/harrison/dataset/internal/config"
	"github.com/harrison/dataset/internal/executor"
	"github.com/harrison/dataset/internal/logger"
	"github.com/spf13/cobra"
)

const settingsEnvName = config.SettingsEnv

// environment holds the process-level collaborators of the commands so tests
// can replace sub-processes, console input and the clock.
type environment struct {
	runner   executor.CommandRunner
	lookPath executor.LookPathFunc
	stdin    io.Reader
	workDir  string // where archives and the wizard directory are created ("" = current dir)
	now      func() time.Time
}

func defaultEnvironment() *environment {
	return &environment{
		runner:   executor.NewExecCommandRunner(""),
		lookPath: exec.LookPath,
		stdin:    os.Stdin,
		now:      time.Now,
	}
}

// session is the resolved settings and loggers of one command invocation.
type session struct {
	cfg     *config.Config
	log     logger.Logger
	fileLog *logger.FileLogger
}

// Close flushes and closes the run log, if any.
func (s *session) Close() error {
	if s.fileLog == nil {
		return nil
	}
	return s.fileLog.Close()
}

// newSession loads settings, applies flag overrides and builds the loggers.
func newSession(cmd *cobra.Command, env *environment) (*session, error) {
	settingsFlag, _ := cmd.Flags().GetString("settings")
	settingsPath := config.ResolveSettingsPath(settingsFlag, env.dir())

	cfg, err := config.LoadConfig(settingsPath)
	if err != nil {
		return nil, err
	}

	var logLevelPtr, logDirPtr *string
	var strictPtr *bool
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &v
	}
	if cmd.Flags().Changed("strict") {
		v, _ := cmd.Flags().GetBool("strict")
		strictPtr = &v
	}
	cfg.MergeWithFlags(logLevelPtr, logDirPtr, strictPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	s := &session{cfg: cfg}
	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.LogDir == "" {
		s.log = console
		return s, nil
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s.fileLog = fileLog
	s.log = logger.NewMultiLogger(console, fileLog)
	console.LogDebug(fmt.Sprintf("run log: %s", fileLog.Path()))
	return s, nil
}

func (e *environment) dir() string {
	if e.workDir == "" {
		return "."
	}
	return e.workDir
}
