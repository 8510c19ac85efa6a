package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/dataset/internal/models"
)

// FileLogger appends run diagnostics to a timestamped file under a log
// directory and keeps latest.log pointing at the most recent run.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger writing run-YYYYMMDD-HHMMSS.log in logDir.
// The directory is created if needed.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s.log", ts))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    uuid.NewString(),
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.writeRunLog("=== dataset run log ===\n")
	fl.writeRunLog(fmt.Sprintf("Run ID: %s\n", fl.runID))
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return fl, nil
}

// RunID returns the identifier written in the log header.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// Path returns the run log file path.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message.
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSummary writes the run counters and the per-record outcomes.
func (fl *FileLogger) LogSummary(summary models.RunSummary) {
	if !fl.shouldLog("info") {
		return
	}

	ts := timestamp()
	status := "SUCCESS"
	if !summary.Clean() {
		status = "INCOMPLETE"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n[%s] === %s SUMMARY ===\n", ts, strings.ToUpper(summary.Operation))
	fmt.Fprintf(&b, "[%s] Config:       %s\n", ts, summary.Config)
	fmt.Fprintf(&b, "[%s] Datasets:     %d\n", ts, summary.Total)
	fmt.Fprintf(&b, "[%s] Filtered out: %d\n", ts, summary.Filtered)
	fmt.Fprintf(&b, "[%s] Applied:      %d\n", ts, summary.Applied)
	fmt.Fprintf(&b, "[%s] Missing:      %d\n", ts, summary.Missing)
	fmt.Fprintf(&b, "[%s] Skipped:      %d\n", ts, summary.Skipped)
	fmt.Fprintf(&b, "[%s] Failed:       %d\n", ts, summary.Failed)
	fmt.Fprintf(&b, "[%s] Total time:   %.1fs\n", ts, summary.Duration.Seconds())
	fmt.Fprintf(&b, "[%s] Status:       %s\n", ts, status)
	for _, r := range summary.Results {
		if r.Outcome == models.OutcomeFiltered {
			continue
		}
		line := fmt.Sprintf("[%s]   - %s: %s", ts, r.Name, r.Outcome)
		if len(r.Missing) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(r.Missing, ", "))
		} else if r.Err != nil {
			line += fmt.Sprintf(" (%v)", r.Err)
		}
		b.WriteString(line + "\n")
	}

	fl.writeRunLog(b.String())
}

func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}

// Close closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog == nil {
		return nil
	}
	err := fl.runLog.Close()
	fl.runLog = nil
	return err
}
