package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/harrison/dataset/internal/display"
	"github.com/harrison/dataset/internal/logger"
	"github.com/harrison/dataset/internal/models"
	"github.com/harrison/dataset/internal/parser"
)

// Engine walks the records of a config file, filters them by name, gates them
// on file presence and applies an action to the survivors.
type Engine struct {
	out      io.Writer
	logger   logger.Logger
	presence PresenceChecker
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the diagnostics logger (default: discard).
func WithLogger(l logger.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithPresenceChecker replaces the filesystem presence check.
func WithPresenceChecker(p PresenceChecker) EngineOption {
	return func(e *Engine) {
		if p != nil {
			e.presence = p
		}
	}
}

// NewEngine creates an Engine writing per-record warnings to out.
func NewEngine(out io.Writer, opts ...EngineOption) *Engine {
	e := &Engine{
		out:      out,
		logger:   logger.NewNoOpLogger(),
		presence: FSPresence{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process applies action to every record of the config at configPath that
// passes filter and has all its declared files.
//
// A config path that is not an existing file is a soft failure: a warning is
// printed regardless of log level and an empty summary returned. Missing files, refusals and action
// errors are recorded per dataset and the batch continues. A syntax error in
// the config is fatal and returned as *parser.SyntaxError together with the
// partial summary.
func (e *Engine) Process(ctx context.Context, configPath string, action Action, filter Filter) (*models.RunSummary, error) {
	start := time.Now()
	summary := &models.RunSummary{Operation: action.Name(), Config: configPath}
	defer func() { summary.Duration = time.Since(start) }()

	if filter == nil {
		filter = AcceptAll()
	}

	cfg, err := parser.Open(configPath)
	if errors.Is(err, parser.ErrConfigNotFound) {
		display.NoSuchFile(configPath).Display(e.out)
		return summary, nil
	}
	if err != nil {
		return summary, err
	}
	defer cfg.Close()

	cfg.OnInclude(func(line string, lineNumber int) {
		e.logger.LogDebug(fmt.Sprintf("%s:%d: ignoring %q", configPath, lineNumber, line))
	})

	seen := make(map[string]bool)
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		rec, err := cfg.Next()
		if errors.Is(err, io.EOF) {
			return summary, nil
		}
		if err != nil {
			return summary, err
		}

		if seen[rec.Name()] {
			e.logger.LogDebug(fmt.Sprintf("dataset %s declared more than once", rec.Name()))
		}
		seen[rec.Name()] = true

		summary.Add(e.processRecord(ctx, rec, action, filter))
	}
}

func (e *Engine) processRecord(ctx context.Context, rec *models.Record, action Action, filter Filter) models.RecordResult {
	result := models.RecordResult{Name: rec.Name()}

	if !filter.Match(rec) {
		e.logger.LogTrace(fmt.Sprintf("dataset %s filtered out", rec.Name()))
		result.Outcome = models.OutcomeFiltered
		return result
	}

	for _, key := range rec.UnknownKeys() {
		e.logger.LogDebug(fmt.Sprintf("dataset %s: ignoring unknown field %q", rec.Name(), key))
	}

	if missing := MissingFiles(rec, e.presence); len(missing) > 0 {
		display.MissingFiles(rec.Name(), missing).Display(e.out)
		result.Outcome = models.OutcomeMissing
		result.Missing = missing
		result.Err = &MissingFilesError{Name: rec.Name(), Paths: missing}
		return result
	}

	err := action.Apply(ctx, rec)
	switch {
	case err == nil:
		result.Outcome = models.OutcomeApplied
	case IsSkip(err):
		e.logger.LogWarn(err.Error())
		result.Outcome = models.OutcomeSkipped
		result.Err = err
	default:
		e.logger.LogError(fmt.Sprintf("%s %s: %v", action.Name(), rec.Name(), err))
		result.Outcome = models.OutcomeFailed
		result.Err = err
	}
	return result
}
