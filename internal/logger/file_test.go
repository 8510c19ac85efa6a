package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/harrison/dataset/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, "info")
	require.NoError(t, err)
	defer fl.Close()

	assert.FileExists(t, fl.Path())
	assert.True(t, strings.HasPrefix(filepath.Base(fl.Path()), "run-"))

	_, err = uuid.Parse(fl.RunID())
	assert.NoError(t, err, "run id should be a UUID")

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(fl.Path()), target)
}

func TestFileLoggerWritesLevelsAndSummary(t *testing.T) {
	logDir := t.TempDir()

	fl, err := NewFileLogger(logDir, "warn")
	require.NoError(t, err)

	fl.LogInfo("hidden info")
	fl.LogWarn("sample1 is missing!")
	fl.LogError("md5sum failed")

	summary := models.RunSummary{Operation: "md5", Config: "ds.info"}
	summary.Add(models.RecordResult{Name: "sample1", Outcome: models.OutcomeMissing, Missing: []string{"/b.fq"}})
	// summaries are INFO level, so this one is filtered out
	fl.LogSummary(summary)
	require.NoError(t, fl.Close())

	data, err := os.ReadFile(fl.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "=== dataset run log ===")
	assert.Contains(t, content, "Run ID: "+fl.RunID())
	assert.NotContains(t, content, "hidden info")
	assert.Contains(t, content, "[WARN] sample1 is missing!")
	assert.Contains(t, content, "[ERROR] md5sum failed")
	assert.NotContains(t, content, "MD5 SUMMARY")
}

func TestFileLoggerSummaryDetails(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "info")
	require.NoError(t, err)

	summary := models.RunSummary{Operation: "tar", Config: "ds.info"}
	summary.Add(models.RecordResult{Name: "a", Outcome: models.OutcomeApplied})
	summary.Add(models.RecordResult{Name: "b", Outcome: models.OutcomeMissing, Missing: []string{"/x.fq", "/y.fq"}})
	summary.Add(models.RecordResult{Name: "skipme", Outcome: models.OutcomeFiltered})
	fl.LogSummary(summary)
	require.NoError(t, fl.Close())

	data, err := os.ReadFile(fl.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "=== TAR SUMMARY ===")
	assert.Contains(t, content, "Status:       INCOMPLETE")
	assert.Contains(t, content, "- a: applied")
	assert.Contains(t, content, "- b: missing (/x.fq, /y.fq)")
	assert.NotContains(t, content, "skipme")
}

func TestFileLoggerCloseTwice(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "info")
	require.NoError(t, err)

	assert.NoError(t, fl.Close())
	assert.NoError(t, fl.Close())
	// writes after close are dropped
	fl.LogError("late")
}
